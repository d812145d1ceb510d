// Package bmkbackend собирает приложение: хранилище, миграции, кеш,
// сервисы и HTTP-сервер.
package bmkbackend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/sushantkhatri01/bmk-backend/internal/cache"
	"github.com/sushantkhatri01/bmk-backend/internal/config"
	"github.com/sushantkhatri01/bmk-backend/internal/lib/contentfilter"
	"github.com/sushantkhatri01/bmk-backend/internal/lib/jwt"
	"github.com/sushantkhatri01/bmk-backend/internal/migrations"
	authservice "github.com/sushantkhatri01/bmk-backend/internal/services/auth"
	chatservice "github.com/sushantkhatri01/bmk-backend/internal/services/chat"
	entitlementservice "github.com/sushantkhatri01/bmk-backend/internal/services/entitlement"
	moderationservice "github.com/sushantkhatri01/bmk-backend/internal/services/moderation"
	municipalityservice "github.com/sushantkhatri01/bmk-backend/internal/services/municipality"
	"github.com/sushantkhatri01/bmk-backend/internal/services/quota"
	taskservice "github.com/sushantkhatri01/bmk-backend/internal/services/task"
	workerservice "github.com/sushantkhatri01/bmk-backend/internal/services/worker"
	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

// App держит HTTP-сервер и ресурсы, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New создает приложение: подключается к базе, применяет миграции,
// инициализирует кеш и собирает сервисы с маршрутами.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)
	filter := contentfilter.New(contentfilter.DefaultBadWords)
	enforcer := quota.New(cfg.ProPlan.Enabled, cfg.ProPlan.FreeTaskLimit)

	authService := authservice.New(db, jwtMaker)
	entitlementService := entitlementservice.New(db, cacheRedis, logger, cfg.ProPlan.DefaultUpgradeDays)
	taskService := taskservice.New(db, entitlementService, enforcer, logger)
	chatService := chatservice.New(db, filter, logger)
	workerService := workerservice.New(db, logger)
	municipalityService := municipalityservice.New(db, cacheRedis, logger)
	moderationService := moderationservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:         authService,
		Entitlement:  entitlementService,
		Task:         taskService,
		Chat:         chatService,
		Worker:       workerService,
		Municipality: municipalityService,
		Moderation:   moderationService,
		Storage:      db,
		ProPlan:      cfg.ProPlan,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.db.DB.Close(); cerr != nil {
			a.logger.Error("failed to close database", slog.Any("err", cerr))
		}
		return err
	}
}
