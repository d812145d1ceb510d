package models

// TaskStatusClosed — единственный статус, при котором задача не считается открытой
// для подсчёта лимита бесплатного плана. Отсутствующий статус считается открытым.
const TaskStatusClosed = "closed"

// Task представляет собой задачу, размещённую постером.
type Task struct {
	ID          int64  // Уникальный идентификатор задачи
	Title       string // Заголовок
	Description string // Описание работы
	Status      string // Статус: open, in-progress, completed, pending, closed
	UserID      int64  // Идентификатор владельца задачи
}

// TaskInfo — задача вместе с именем постера для выдачи списком.
type TaskInfo struct {
	Task
	PosterName string // Имя владельца (Unknown User, если пользователь удалён)
}

// DummyTask используется для приёма данных задачи из JSON-запроса.
// Статус опционален: при создании отсутствующий статус заменяется на "open".
type DummyTask struct {
	Title       string `json:"title" validate:"required,min=3,max=200"` // Заголовок
	Description string `json:"description" validate:"required"`         // Описание
	Status      string `json:"status" validate:"omitempty"`             // Статус (опционально)
}
