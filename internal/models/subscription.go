package models

import "time"

// Планы подписки. Хранимое значение plan не является источником истины
// для прав доступа: pro с истёкшим expires_at трактуется как free.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Subscription представляет запись о подписке пользователя (одна на пользователя).
// ExpiresAt может быть nil — для pro это означает бессрочную подписку.
type Subscription struct {
	ID        int64      // Уникальный идентификатор записи
	UserID    int64      // Идентификатор пользователя (уникальный)
	Plan      string     // free | pro
	ExpiresAt *time.Time // Дата истечения pro (UTC), nil — без срока
}

// Entitlement — вычисленные права пользователя на момент запроса.
// IsPro истинно только когда plan == pro и срок не истёк.
type Entitlement struct {
	Plan      string     `json:"plan"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsPro     bool       `json:"is_pro"`
}

// DummySubscriptionUpdate используется для приёма параметров апгрейда из JSON-запроса.
type DummySubscriptionUpdate struct {
	Days int `json:"days" validate:"omitempty,gt=0"` // Количество дней продления (по умолчанию 30)
}
