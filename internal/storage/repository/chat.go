package repository

import (
	"context"
	"fmt"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// ListMessages возвращает все сообщения чата в порядке добавления.
func (s *Storage) ListMessages(ctx context.Context) ([]*models.ChatMessage, error) {
	const op = "storage.ListMessages"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, content, timestamp
			  FROM chat_messages
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err = rows.Scan(&m.ID, &m.UserID, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateMessage вставляет новое сообщение и возвращает его ID.
func (s *Storage) CreateMessage(ctx context.Context, msg models.ChatMessage) (int64, error) {
	const op = "storage.CreateMessage"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO chat_messages (user_id, content, timestamp)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query,
		msg.UserID, msg.Content, msg.Timestamp).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// RemoveMessage удаляет сообщение чата по ID.
func (s *Storage) RemoveMessage(ctx context.Context, id int64) error {
	const op = "storage.RemoveMessage"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM chat_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrMessageNotFound)
	}
	return nil
}
