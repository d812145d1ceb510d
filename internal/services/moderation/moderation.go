// Package moderation содержит бизнес-логику действий модерации:
// бан и удаление пользователей, удаление сообщений, приём и просмотр жалоб.
package moderation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// ErrEmptyReportTarget возвращается, если в жалобе не указан ни пользователь,
// ни сообщение.
var ErrEmptyReportTarget = errors.New("report must target a user or a message")

// ModerationRepository определяет методы хранилища, нужные модерации.
type ModerationRepository interface {
	BanUser(ctx context.Context, userID int64) error
	RemoveUser(ctx context.Context, userID int64) error
	RemoveMessage(ctx context.Context, id int64) error
	CreateReport(ctx context.Context, report models.Report) error
	ListReports(ctx context.Context) ([]*models.Report, error)
}

// Service реализует действия модерации.
type Service struct {
	repo ModerationRepository
	log  *slog.Logger
}

// New создает новый Service.
func New(repo ModerationRepository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Ban выставляет пользователю признак блокировки.
// Выданные ранее токены продолжают действовать до истечения срока;
// забаненного останавливает middleware при следующем запросе.
func (s *Service) Ban(ctx context.Context, userID int64) error {
	if err := s.repo.BanUser(ctx, userID); err != nil {
		return err
	}
	s.log.Info("user banned", slog.Int64("user_id", userID))
	return nil
}

// DeleteUser окончательно удаляет пользователя.
func (s *Service) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.repo.RemoveUser(ctx, userID); err != nil {
		return err
	}
	s.log.Info("user deleted", slog.Int64("user_id", userID))
	return nil
}

// DeleteMessage удаляет сообщение чата.
func (s *Service) DeleteMessage(ctx context.Context, id int64) error {
	if err := s.repo.RemoveMessage(ctx, id); err != nil {
		return err
	}
	s.log.Info("chat message deleted", slog.Int64("message_id", id))
	return nil
}

// Report сохраняет жалобу пользователя на другого пользователя или сообщение.
func (s *Service) Report(ctx context.Context, reporterID int64, req models.DummyReport) (*models.Report, error) {
	if req.ReportedUserID == nil && req.ReportedMessageID == nil {
		return nil, ErrEmptyReportTarget
	}

	report := models.Report{
		ID:                uuid.NewString(),
		ReporterID:        reporterID,
		ReportedUserID:    req.ReportedUserID,
		ReportedMessageID: req.ReportedMessageID,
		Reason:            req.Reason,
		Details:           req.Details,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.repo.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	s.log.Info("report submitted", slog.String("report_id", report.ID), slog.Int64("reporter_id", reporterID))
	return &report, nil
}

// ListReports возвращает все жалобы для просмотра админом.
func (s *Service) ListReports(ctx context.Context) ([]*models.Report, error) {
	return s.repo.ListReports(ctx)
}
