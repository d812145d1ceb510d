// Package municipality содержит бизнес-логику справочника муниципалитетов.
// Список почти статичен, поэтому кешируется целиком.
package municipality

import (
	"context"
	"log/slog"
	"time"

	"github.com/sushantkhatri01/bmk-backend/internal/lib/sl"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// MunicipalityRepository определяет методы для работы с муниципалитетами в хранилище.
type MunicipalityRepository interface {
	ListMunicipalities(ctx context.Context) ([]*models.Municipality, error)
	CreateMunicipality(ctx context.Context, m models.Municipality) (int64, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует бизнес-логику справочника с кешированием списка.
type Service struct {
	repo  MunicipalityRepository
	cache Cache
	log   *slog.Logger
}

const (
	listCacheKey = "municipalities:all"
	listCacheTTL = time.Hour
)

// New создает новый Service.
func New(repo MunicipalityRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает все муниципалитеты, используя кеш или хранилище.
func (s *Service) List(ctx context.Context) ([]*models.Municipality, error) {
	var cached []*models.Municipality
	found, err := s.cache.Get(listCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read municipalities from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.ListMunicipalities(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(listCacheKey, result, listCacheTTL); err != nil {
		s.log.Warn("failed to cache municipalities", sl.Err(err))
	}
	return result, nil
}

// Create добавляет муниципалитет и инвалидирует кеш списка.
func (s *Service) Create(ctx context.Context, req models.DummyMunicipality) (*models.Municipality, error) {
	entry := models.Municipality{
		Name:      req.Name,
		Province:  req.Province,
		District:  req.District,
		Ward:      req.Ward,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	id, err := s.repo.CreateMunicipality(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	if err := s.cache.Invalidate(listCacheKey); err != nil {
		s.log.Warn("failed to invalidate municipalities cache", sl.Err(err))
	}
	s.log.Info("created municipality", slog.Int64("id", id))
	return &entry, nil
}
