package models

import "time"

// Report представляет жалобу пользователя на другого пользователя или сообщение.
type Report struct {
	ID                string    // UUID жалобы
	ReporterID        int64     // Кто пожаловался
	ReportedUserID    *int64    // На кого (nil, если жалоба на сообщение)
	ReportedMessageID *int64    // На какое сообщение (nil, если жалоба на пользователя)
	Reason            string    // Причина
	Details           string    // Подробности
	CreatedAt         time.Time // Когда подана
}

// DummyReport используется для приёма жалобы из JSON-запроса.
// Должен быть указан хотя бы один из reported_user_id / reported_message_id,
// это проверяется на уровне обработчика.
type DummyReport struct {
	ReportedUserID    *int64 `json:"reported_user_id" validate:"omitempty"`
	ReportedMessageID *int64 `json:"reported_message_id" validate:"omitempty"`
	Reason            string `json:"reason" validate:"required,max=200"`
	Details           string `json:"details" validate:"omitempty,max=2000"`
}
