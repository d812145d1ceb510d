package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// UpsertWorker создает анкету работника или обновляет существующую
// (одна анкета на пользователя). Возвращает сохранённую анкету.
func (s *Storage) UpsertWorker(ctx context.Context, worker models.Worker) (*models.Worker, error) {
	const op = "storage.UpsertWorker"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO workers (user_id, name, phone, skills, location, about, is_available, rating)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  ON CONFLICT (user_id) DO UPDATE
			  SET name = EXCLUDED.name, phone = EXCLUDED.phone, skills = EXCLUDED.skills,
				  location = EXCLUDED.location, about = EXCLUDED.about,
				  is_available = EXCLUDED.is_available
			  RETURNING id, user_id, name, phone, skills, location, about, is_available, rating`
	var saved models.Worker
	row := s.DB.QueryRowContext(ctx, query,
		worker.UserID, worker.Name, worker.Phone, worker.Skills,
		worker.Location, worker.About, worker.IsAvailable, worker.Rating)
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Name, &saved.Phone, &saved.Skills,
		&saved.Location, &saved.About, &saved.IsAvailable, &saved.Rating); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &saved, nil
}

// ListAvailableWorkers возвращает анкеты работников, доступных для найма.
func (s *Storage) ListAvailableWorkers(ctx context.Context) ([]*models.Worker, error) {
	const op = "storage.ListAvailableWorkers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, phone, skills, location, about, is_available, rating
			  FROM workers
			  WHERE is_available = TRUE
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Worker
	for rows.Next() {
		var w models.Worker
		if err = rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Phone, &w.Skills,
			&w.Location, &w.About, &w.IsAvailable, &w.Rating); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadWorker возвращает анкету работника по её ID.
func (s *Storage) ReadWorker(ctx context.Context, id int64) (*models.Worker, error) {
	const op = "storage.ReadWorker"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, phone, skills, location, about, is_available, rating
			  FROM workers WHERE id = $1`
	var w models.Worker
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Phone, &w.Skills,
		&w.Location, &w.About, &w.IsAvailable, &w.Rating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrWorkerNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &w, nil
}

// GetWorkerByUserID возвращает анкету по идентификатору пользователя.
func (s *Storage) GetWorkerByUserID(ctx context.Context, userID int64) (*models.Worker, error) {
	const op = "storage.GetWorkerByUserID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, phone, skills, location, about, is_available, rating
			  FROM workers WHERE user_id = $1`
	var w models.Worker
	row := s.DB.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Phone, &w.Skills,
		&w.Location, &w.About, &w.IsAvailable, &w.Rating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrWorkerNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &w, nil
}
