// Package task содержит бизнес-логику для управления задачами,
// включая проверку лимита бесплатного плана при создании.
package task

import (
	"context"
	"log/slog"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
	"github.com/sushantkhatri01/bmk-backend/internal/services/quota"
)

// TaskRepository определяет методы для работы с задачами в хранилище.
type TaskRepository interface {
	// CreateTask вставляет задачу атомарно с проверкой guard по числу открытых задач.
	CreateTask(ctx context.Context, task models.Task, guard func(openCount int) error) (int64, error)
	// ReadTask возвращает задачу по ID.
	ReadTask(ctx context.Context, id int64) (*models.Task, error)
	// ListTasks возвращает все задачи с именами постеров.
	ListTasks(ctx context.Context) ([]*models.TaskInfo, error)
	// UpdateTask обновляет данные задачи по ID.
	UpdateTask(ctx context.Context, task models.Task, id int64) error
	// RemoveTask удаляет задачу по ID.
	RemoveTask(ctx context.Context, id int64) error
}

// EntitlementService отвечает на вопрос, действует ли платный план пользователя.
type EntitlementService interface {
	IsPro(ctx context.Context, userID int64) (bool, error)
}

// Service реализует бизнес-логику работы с задачами.
type Service struct {
	repo         TaskRepository
	entitlements EntitlementService
	enforcer     *quota.Enforcer
	log          *slog.Logger
}

// New создает новый Service.
func New(repo TaskRepository, entitlements EntitlementService, enforcer *quota.Enforcer, log *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		entitlements: entitlements,
		enforcer:     enforcer,
		log:          log,
	}
}

// Create создает задачу для пользователя. Отсутствующий статус заменяется
// на "open". Для бесплатного плана действует лимит открытых задач:
// решение принимает enforcer, а подсчёт и вставка идут в одной транзакции
// хранилища, поэтому конкурентные создания лимит не обходят.
func (s *Service) Create(ctx context.Context, userID int64, req models.DummyTask) (int64, error) {
	status := req.Status
	if status == "" {
		status = "open"
	}

	isPro, err := s.entitlements.IsPro(ctx, userID)
	if err != nil {
		return 0, err
	}

	entry := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		UserID:      userID,
	}
	id, err := s.repo.CreateTask(ctx, entry, func(openCount int) error {
		return s.enforcer.Allow(isPro, openCount)
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("created new task", slog.Int64("id", id), slog.Int64("user_id", userID))
	return id, nil
}

// Read возвращает задачу по ID.
func (s *Service) Read(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.ReadTask(ctx, id)
}

// List возвращает все задачи с именами постеров.
func (s *Service) List(ctx context.Context) ([]*models.TaskInfo, error) {
	return s.repo.ListTasks(ctx)
}

// Update обновляет заголовок, описание и статус задачи.
func (s *Service) Update(ctx context.Context, id int64, req models.DummyTask) error {
	entry := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	return s.repo.UpdateTask(ctx, entry, id)
}

// Remove удаляет задачу по ID.
func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.repo.RemoveTask(ctx, id)
}
