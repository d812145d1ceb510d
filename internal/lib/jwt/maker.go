// Package jwt реализует генерацию и парсинг JWT токенов сессии.
//
// Токен самодостаточен: несёт email, идентификатор и роль пользователя
// плюс срок действия, и проверяется без обращения к хранилищу.
// Отзыв токена до истечения срока не поддерживается.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга токенов сессии.
type Maker interface {
	// GenerateToken создает токен для пользователя с указанными email, id и ролью.
	GenerateToken(email string, userID int64, role string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует Maker на основе секретного ключа и времени жизни токена.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// NewMaker создаёт новый MakerImpl. Секрет и TTL задаются конфигурацией,
// глобального состояния пакет не держит.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
