// Package entitlement содержит бизнес-логику платного плана:
// вычисление прав пользователя, апгрейд и даунгрейд подписки.
package entitlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sushantkhatri01/bmk-backend/internal/lib/sl"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// GetSubscription возвращает запись подписки или ErrSubscriptionNotFound.
	GetSubscription(ctx context.Context, userID int64) (*models.Subscription, error)
	// UpsertSubscription создает или обновляет запись подписки.
	UpsertSubscription(ctx context.Context, userID int64, plan string, expiresAt *time.Time) error
	// GetUser возвращает пользователя или ErrUserNotFound.
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service вычисляет и изменяет права пользователей.
//
// Кешируется только сырая запись подписки; признак is_pro всегда
// пересчитывается от текущего времени, поэтому истёкший pro из кеша
// не даёт прав.
type Service struct {
	repo               SubscriptionRepository
	cache              Cache
	log                *slog.Logger
	defaultUpgradeDays int
	now                func() time.Time // подменяется в тестах
}

const cacheTTL = 5 * time.Minute

// New создает новый Service. defaultUpgradeDays используется, когда
// апгрейд вызван без явного количества дней.
func New(repo SubscriptionRepository, cache Cache, log *slog.Logger, defaultUpgradeDays int) *Service {
	return &Service{
		repo:               repo,
		cache:              cache,
		log:                log,
		defaultUpgradeDays: defaultUpgradeDays,
		now:                time.Now,
	}
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("subscription:%d", userID)
}

// Get возвращает права пользователя на текущий момент.
// Отсутствие записи подписки означает бесплатный план.
func (s *Service) Get(ctx context.Context, userID int64) (*models.Entitlement, error) {
	sub, err := s.getSubscription(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return &models.Entitlement{Plan: models.PlanFree}, nil
		}
		return nil, err
	}
	return &models.Entitlement{
		Plan:      sub.Plan,
		ExpiresAt: sub.ExpiresAt,
		IsPro:     s.isPro(sub),
	}, nil
}

// IsPro сообщает, действует ли сейчас платный план пользователя.
func (s *Service) IsPro(ctx context.Context, userID int64) (bool, error) {
	ent, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return ent.IsPro, nil
}

// Upgrade продлевает платный план на days дней (0 — на дефолтное количество).
// Продление стыкуется: базой служит текущая дата истечения, если она ещё
// в будущем, иначе — текущий момент. Оплаченные дни не теряются.
func (s *Service) Upgrade(ctx context.Context, userID int64, days int) (time.Time, error) {
	if days <= 0 {
		days = s.defaultUpgradeDays
	}

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return time.Time{}, err
	}

	sub, err := s.repo.GetSubscription(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return time.Time{}, err
		}
		sub = &models.Subscription{UserID: userID, Plan: models.PlanFree}
	}

	base := s.now().UTC()
	if sub.ExpiresAt != nil && sub.ExpiresAt.After(base) {
		base = *sub.ExpiresAt
	}
	newExpiry := base.AddDate(0, 0, days)

	if err := s.repo.UpsertSubscription(ctx, userID, models.PlanPro, &newExpiry); err != nil {
		return time.Time{}, err
	}
	s.invalidate(userID)
	s.log.Info("subscription upgraded",
		slog.Int64("user_id", userID),
		slog.Int("days", days),
		slog.Time("expires_at", newExpiry))
	return newExpiry, nil
}

// Downgrade переводит существующего пользователя на бесплатный план.
// Остаток оплаченного времени теряется — асимметрия с Upgrade намеренная.
func (s *Service) Downgrade(ctx context.Context, userID int64) error {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return err
	}

	if err := s.repo.UpsertSubscription(ctx, userID, models.PlanFree, nil); err != nil {
		return err
	}
	s.invalidate(userID)
	s.log.Info("subscription downgraded", slog.Int64("user_id", userID))
	return nil
}

// isPro: план pro и срок либо не задан, либо ещё не истёк.
// Хранимый план при истёкшем сроке обратно на free не переписывается.
func (s *Service) isPro(sub *models.Subscription) bool {
	if sub.Plan != models.PlanPro {
		return false
	}
	if sub.ExpiresAt == nil {
		return true
	}
	return !sub.ExpiresAt.Before(s.now().UTC())
}

func (s *Service) getSubscription(ctx context.Context, userID int64) (*models.Subscription, error) {
	key := cacheKey(userID)
	var cached *models.Subscription
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("failed to read subscription from cache", slog.String("key", key), sl.Err(err))
	}
	if found && cached != nil {
		return cached, nil
	}

	sub, err := s.repo.GetSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(key, sub, cacheTTL); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", key), sl.Err(err))
	}
	return sub, nil
}

func (s *Service) invalidate(userID int64) {
	key := cacheKey(userID)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to invalidate subscription cache", slog.String("key", key), sl.Err(err))
	}
}
