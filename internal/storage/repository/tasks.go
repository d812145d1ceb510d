package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// CreateTask вставляет новую задачу под защитой переданной проверки квоты.
//
// Подсчёт открытых задач и вставка выполняются в одной транзакции под
// pg_advisory_xact_lock(user_id): два конкурентных создания от одного
// пользователя сериализуются, и превысить лимит открытых задач нельзя.
// guard получает текущее число задач в статусе, отличном от "closed"
// (NULL-статус считается открытым), и возвращает ошибку для отказа.
func (s *Storage) CreateTask(ctx context.Context, task models.Task, guard func(openCount int) error) (int64, error) {
	const op = "storage.CreateTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, task.UserID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var openCount int
	countQuery := `SELECT COUNT(*) FROM tasks
				   WHERE user_id = $1 AND (status IS NULL OR status <> $2)`
	if err = tx.QueryRowContext(ctx, countQuery, task.UserID, models.TaskStatusClosed).Scan(&openCount); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = guard(openCount); err != nil {
		return 0, err
	}

	var newID int64
	insertQuery := `INSERT INTO tasks (title, description, status, user_id)
					VALUES ($1, $2, $3, $4)
					RETURNING id`
	if err = tx.QueryRowContext(ctx, insertQuery,
		task.Title, task.Description, task.Status, task.UserID).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadTask возвращает задачу по её ID.
func (s *Storage) ReadTask(ctx context.Context, id int64) (*models.Task, error) {
	const op = "storage.ReadTask"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, COALESCE(status, ''), user_id
			  FROM tasks WHERE id = $1`
	var result models.Task
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&result.ID, &result.Title, &result.Description, &result.Status, &result.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrTaskNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListTasks возвращает все задачи вместе с именем постера.
// Для удалённых пользователей имя заменяется заглушкой.
func (s *Storage) ListTasks(ctx context.Context) ([]*models.TaskInfo, error) {
	const op = "storage.ListTasks"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT t.id, t.title, t.description, COALESCE(t.status, ''), t.user_id,
				  COALESCE(u.name, 'Unknown User')
			  FROM tasks t
			  LEFT JOIN users u ON u.id = t.user_id
			  ORDER BY t.id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.TaskInfo
	for rows.Next() {
		var info models.TaskInfo
		if err = rows.Scan(&info.ID, &info.Title, &info.Description, &info.Status,
			&info.UserID, &info.PosterName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &info)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateTask обновляет заголовок, описание и статус задачи.
func (s *Storage) UpdateTask(ctx context.Context, task models.Task, id int64) error {
	const op = "storage.UpdateTask"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE tasks
			  SET title = $1, description = $2, status = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query, task.Title, task.Description, task.Status, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrTaskNotFound)
	}
	return nil
}

// RemoveTask удаляет задачу по ID.
func (s *Storage) RemoveTask(ctx context.Context, id int64) error {
	const op = "storage.RemoveTask"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrTaskNotFound)
	}
	return nil
}
