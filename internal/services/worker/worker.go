// Package worker содержит бизнес-логику анкет работников.
package worker

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

// WorkerRepository определяет методы для работы с анкетами в хранилище.
type WorkerRepository interface {
	UpsertWorker(ctx context.Context, worker models.Worker) (*models.Worker, error)
	ListAvailableWorkers(ctx context.Context) ([]*models.Worker, error)
	ReadWorker(ctx context.Context, id int64) (*models.Worker, error)
	GetWorkerByUserID(ctx context.Context, userID int64) (*models.Worker, error)
}

// Service реализует бизнес-логику анкет работников.
type Service struct {
	repo WorkerRepository
	log  *slog.Logger
}

// New создает новый Service.
func New(repo WorkerRepository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Upsert создает анкету пользователя или обновляет существующую.
// Пустые поля запроса сохраняют прежние значения анкеты; рейтинг
// клиентом не меняется.
func (s *Service) Upsert(ctx context.Context, userID int64, req models.DummyWorker) (*models.Worker, error) {
	existing, err := s.repo.GetWorkerByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrWorkerNotFound) {
		return nil, err
	}

	entry := models.Worker{
		UserID:      userID,
		Name:        req.Name,
		Phone:       req.Phone,
		Skills:      req.Skills,
		Location:    req.Location,
		About:       req.About,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		entry.IsAvailable = *req.IsAvailable
	}
	if existing != nil {
		entry.Rating = existing.Rating
		if entry.Phone == "" {
			entry.Phone = existing.Phone
		}
		if entry.Skills == "" {
			entry.Skills = existing.Skills
		}
		if entry.Location == "" {
			entry.Location = existing.Location
		}
		if entry.About == "" {
			entry.About = existing.About
		}
	}

	saved, err := s.repo.UpsertWorker(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.log.Info("worker profile saved", slog.Int64("id", saved.ID), slog.Int64("user_id", userID))
	return saved, nil
}

// ListAvailable возвращает анкеты работников, доступных для найма.
func (s *Service) ListAvailable(ctx context.Context) ([]*models.Worker, error) {
	return s.repo.ListAvailableWorkers(ctx)
}

// Read возвращает анкету по ID.
func (s *Service) Read(ctx context.Context, id int64) (*models.Worker, error) {
	return s.repo.ReadWorker(ctx, id)
}
