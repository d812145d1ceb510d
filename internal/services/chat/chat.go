// Package chat содержит бизнес-логику общего чата.
// Чат опрашивается клиентами; сообщения с запрещёнными словами отклоняются
// до записи в хранилище.
package chat

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sushantkhatri01/bmk-backend/internal/lib/contentfilter"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// ErrProhibitedContent возвращается при попытке отправить сообщение
// с запрещённым словом.
var ErrProhibitedContent = errors.New("message contains prohibited content")

// ChatRepository определяет методы для работы с сообщениями в хранилище.
type ChatRepository interface {
	ListMessages(ctx context.Context) ([]*models.ChatMessage, error)
	CreateMessage(ctx context.Context, msg models.ChatMessage) (int64, error)
	RemoveMessage(ctx context.Context, id int64) error
}

// Service реализует бизнес-логику чата.
type Service struct {
	repo   ChatRepository
	filter *contentfilter.Filter
	log    *slog.Logger
}

// New создает новый Service.
func New(repo ChatRepository, filter *contentfilter.Filter, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		filter: filter,
		log:    log,
	}
}

// List возвращает все сообщения чата.
func (s *Service) List(ctx context.Context) ([]*models.ChatMessage, error) {
	return s.repo.ListMessages(ctx)
}

// Create сохраняет сообщение пользователя после проверки фильтром.
func (s *Service) Create(ctx context.Context, userID int64, req models.DummyChatMessage) (int64, error) {
	if s.filter.Contains(req.Content) {
		s.log.Info("message blocked by content filter", slog.Int64("user_id", userID))
		return 0, ErrProhibitedContent
	}

	msg := models.ChatMessage{
		UserID:    userID,
		Content:   req.Content,
		Timestamp: req.Timestamp,
	}
	id, err := s.repo.CreateMessage(ctx, msg)
	if err != nil {
		return 0, err
	}
	s.log.Info("created chat message", slog.Int64("id", id), slog.Int64("user_id", userID))
	return id, nil
}

// Remove удаляет сообщение (модерация).
func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.repo.RemoveMessage(ctx, id)
}
