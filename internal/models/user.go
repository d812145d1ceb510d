// Package models содержит доменные структуры системы BMK:
// пользователей, задачи, анкеты работников, муниципалитеты, сообщения чата,
// подписки и жалобы. Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int64  // Уникальный идентификатор пользователя
	Name         string // Отображаемое имя
	Email        string // Электронная почта (уникальная)
	Role         string // Роль: admin, worker, manager, supervisor
	PasswordHash string // Хэш пароля пользователя
	Banned       bool   // Признак блокировки модерацией
}

// DummyUser используется для приёма данных из JSON-запроса
// при создании пользователя администратором. Пароль и роль опциональны:
// отсутствующие значения заменяются дефолтными на уровне сервиса.
type DummyUser struct {
	Name     string `json:"name" validate:"required,min=2,max=100"` // Имя пользователя
	Email    string `json:"email" validate:"omitempty,email"`       // Почта (опционально, есть fallback)
	Role     string `json:"role" validate:"omitempty"`              // Роль (по умолчанию worker)
	Password string `json:"password" validate:"omitempty,min=6"`    // Пароль (по умолчанию bmk123)
}
