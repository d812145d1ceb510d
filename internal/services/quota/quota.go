// Package quota реализует проверку лимита открытых задач бесплатного плана.
//
// Enforcer — чистая функция принятия решения: подсчёт открытых задач и
// вставка новой выполняются вызывающей стороной атомарно (см. storage.CreateTask).
package quota

import "errors"

// ErrQuotaExceeded возвращается, когда бесплатный план исчерпал лимит
// открытых задач. Текст показывается пользователю как приглашение к апгрейду.
var ErrQuotaExceeded = errors.New("free plan limit reached: upgrade to Pro to post more open tasks")

// Enforcer принимает решение о создании задачи.
// Состояние задаётся конфигурацией при конструировании, глобальных
// переменных нет — это делает проверку тестируемой.
type Enforcer struct {
	enabled   bool // глобальный рубильник; false — лимит не применяется вовсе
	freeLimit int  // максимум открытых задач на бесплатном плане
}

// New создает Enforcer с заданным рубильником и лимитом.
func New(enabled bool, freeLimit int) *Enforcer {
	return &Enforcer{
		enabled:   enabled,
		freeLimit: freeLimit,
	}
}

// Allow разрешает создание задачи или возвращает ErrQuotaExceeded.
// openCount — число задач пользователя в статусе, отличном от "closed"
// (отсутствие статуса считается открытой задачей).
func (e *Enforcer) Allow(isPro bool, openCount int) error {
	if !e.enabled {
		return nil
	}
	if isPro {
		return nil
	}
	if openCount >= e.freeLimit {
		return ErrQuotaExceeded
	}
	return nil
}
