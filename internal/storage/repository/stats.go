package repository

import (
	"context"
	"fmt"
)

// Stats — счётчики для endpoint статистики приложения.
type Stats struct {
	Users        int64 `json:"users"`
	Tasks        int64 `json:"tasks"`
	ChatMessages int64 `json:"chat_messages"`
}

// GetStats возвращает количество пользователей, задач и сообщений чата.
func (s *Storage) GetStats(ctx context.Context) (*Stats, error) {
	const op = "storage.GetStats"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var stats Stats
	query := `SELECT
				  (SELECT COUNT(*) FROM users),
				  (SELECT COUNT(*) FROM tasks),
				  (SELECT COUNT(*) FROM chat_messages)`
	if err := s.DB.QueryRowContext(ctx, query).Scan(&stats.Users, &stats.Tasks, &stats.ChatMessages); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &stats, nil
}
