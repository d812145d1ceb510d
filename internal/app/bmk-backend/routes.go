// Package bmkbackend предоставляет маршруты для основного приложения.
package bmkbackend

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sushantkhatri01/bmk-backend/internal/config"
	"github.com/sushantkhatri01/bmk-backend/internal/http/handlers/auth/login"
	"github.com/sushantkhatri01/bmk-backend/internal/http/handlers/auth/register"
	chatcreate "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/chat/create"
	chatlist "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/chat/list"
	chatremove "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/chat/remove"
	"github.com/sushantkhatri01/bmk-backend/internal/http/handlers/features"
	"github.com/sushantkhatri01/bmk-backend/internal/http/handlers/health"
	"github.com/sushantkhatri01/bmk-backend/internal/http/handlers/moderation/ban"
	"github.com/sushantkhatri01/bmk-backend/internal/http/handlers/moderation/report"
	"github.com/sushantkhatri01/bmk-backend/internal/http/handlers/moderation/reportlist"
	municipalitycreate "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/municipality/create"
	municipalitylist "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/municipality/list"
	"github.com/sushantkhatri01/bmk-backend/internal/http/handlers/stats"
	subdowngrade "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/subscription/downgrade"
	subread "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/subscription/read"
	subupgrade "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/subscription/upgrade"
	taskcreate "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/task/create"
	tasklist "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/task/list"
	taskread "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/task/read"
	taskremove "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/task/remove"
	taskupdate "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/task/update"
	userscreate "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/users/create"
	userslist "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/users/list"
	usersremove "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/users/remove"
	workerlist "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/worker/list"
	workerread "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/worker/read"
	workerupsert "github.com/sushantkhatri01/bmk-backend/internal/http/handlers/worker/upsert"
	"github.com/sushantkhatri01/bmk-backend/internal/http/middlewarectx"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
	authservice "github.com/sushantkhatri01/bmk-backend/internal/services/auth"
	chatservice "github.com/sushantkhatri01/bmk-backend/internal/services/chat"
	entitlementservice "github.com/sushantkhatri01/bmk-backend/internal/services/entitlement"
	moderationservice "github.com/sushantkhatri01/bmk-backend/internal/services/moderation"
	municipalityservice "github.com/sushantkhatri01/bmk-backend/internal/services/municipality"
	taskservice "github.com/sushantkhatri01/bmk-backend/internal/services/task"
	workerservice "github.com/sushantkhatri01/bmk-backend/internal/services/worker"
	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

// Storage перечисляет методы хранилища, которые маршруты используют
// напрямую, минуя сервисный слой: проверку забаненных, админский
// список пользователей, статистику и health-check.
type Storage interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetStats(ctx context.Context) (*repository.Stats, error)
	CheckDatabaseReady(ctx context.Context) error
}

// Services собирает сервисы приложения для регистрации маршрутов.
type Services struct {
	Auth         *authservice.AuthService
	Entitlement  *entitlementservice.Service
	Task         *taskservice.Service
	Chat         *chatservice.Service
	Worker       *workerservice.Service
	Municipality *municipalityservice.Service
	Moderation   *moderationservice.Service
	Storage      Storage
	ProPlan      config.ProPlan
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)
		r.Get("/municipalities", municipalitylist.New(logger, s.Municipality).ServeHTTP)
		r.Get("/stats", stats.New(logger, s.Storage).ServeHTTP)
		r.Get("/app/features", features.New(logger, s.ProPlan).ServeHTTP)
		r.Get("/health", health.New(logger, s.Storage).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(s.Auth, logger))
			r.Use(middlewarectx.BannedUserMiddleware(s.Storage, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/tasks", taskcreate.New(logger, s.Task).ServeHTTP)
			r.Get("/tasks", tasklist.New(logger, s.Task).ServeHTTP)
			r.Get("/tasks/{id}", taskread.New(logger, s.Task).ServeHTTP)
			r.Put("/tasks/{id}", taskupdate.New(logger, s.Task).ServeHTTP)
			r.Delete("/tasks/{id}", taskremove.New(logger, s.Task).ServeHTTP)

			r.Get("/users/{id}/subscription", subread.New(logger, s.Entitlement).ServeHTTP)

			r.Post("/workers", workerupsert.New(logger, s.Worker).ServeHTTP)
			r.Get("/workers", workerlist.New(logger, s.Worker).ServeHTTP)
			r.Get("/workers/{id}", workerread.New(logger, s.Worker).ServeHTTP)

			r.Get("/chat", chatlist.New(logger, s.Chat).ServeHTTP)
			r.Post("/chat", chatcreate.New(logger, s.Chat).ServeHTTP)

			r.Post("/report", report.New(logger, s.Moderation).ServeHTTP)

			// Административные конечные точки
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))

				r.Post("/users", userscreate.New(logger, s.Auth).ServeHTTP)
				r.Get("/users", userslist.New(logger, s.Storage).ServeHTTP)
				r.Delete("/users/{id}", usersremove.New(logger, s.Moderation).ServeHTTP)
				r.Post("/ban/{id}", ban.New(logger, s.Moderation).ServeHTTP)
				r.Delete("/chat/{id}", chatremove.New(logger, s.Moderation).ServeHTTP)
				r.Post("/municipalities", municipalitycreate.New(logger, s.Municipality).ServeHTTP)
				r.Get("/reports", reportlist.New(logger, s.Moderation).ServeHTTP)

				// Смена плана выполняется доверенным оператором, а не самим пользователем.
				r.Post("/users/{id}/upgrade", subupgrade.New(logger, s.Entitlement).ServeHTTP)
				r.Post("/users/{id}/downgrade", subdowngrade.New(logger, s.Entitlement).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
