package models

// Worker представляет анкету работника, привязанную к пользователю.
type Worker struct {
	ID          int64   // Уникальный идентификатор анкеты
	UserID      int64   // Идентификатор пользователя (уникальный)
	Name        string  // Имя работника
	Phone       string  // Телефон
	Skills      string  // Навыки (строка JSON со стороны клиента)
	Location    string  // Локация
	About       string  // О себе
	IsAvailable bool    // Доступен ли для найма
	Rating      float64 // Рейтинг
}

// DummyWorker используется для приёма анкеты работника из JSON-запроса.
// Все поля кроме имени опциональны: upsert сохраняет прежние значения.
type DummyWorker struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Phone       string `json:"phone" validate:"omitempty"`
	Skills      string `json:"skills" validate:"omitempty"`
	Location    string `json:"location" validate:"omitempty"`
	About       string `json:"about" validate:"omitempty"`
	IsAvailable *bool  `json:"isAvailable" validate:"omitempty"`
}
