package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// GetSubscription возвращает запись подписки пользователя.
// Отсутствие записи — ErrSubscriptionNotFound; для прав это эквивалент free.
func (s *Storage) GetSubscription(ctx context.Context, userID int64) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, plan, expires_at
			  FROM pro_subscriptions
			  WHERE user_id = $1`
	sub := &models.Subscription{}
	var expiresAt sql.NullTime
	row := s.DB.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&sub.ID, &sub.UserID, &sub.Plan, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if expiresAt.Valid {
		sub.ExpiresAt = &expiresAt.Time
	}
	return sub, nil
}

// UpsertSubscription создает или обновляет запись подписки пользователя.
func (s *Storage) UpsertSubscription(ctx context.Context, userID int64, plan string, expiresAt *time.Time) error {
	const op = "storage.UpsertSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO pro_subscriptions (user_id, plan, expires_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_id) DO UPDATE
			  SET plan = EXCLUDED.plan, expires_at = EXCLUDED.expires_at`
	if _, err := s.DB.ExecContext(ctx, query, userID, plan, expiresAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
