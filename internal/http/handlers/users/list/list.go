// Package list реализует HTTP-обработчик списка пользователей (админ).
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sushantkhatri01/bmk-backend/internal/http/response"
	"github.com/sushantkhatri01/bmk-backend/internal/lib/sl"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// Handler управляет HTTP-запросами на список пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс доступа к списку пользователей.
type Service interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список пользователей (админ)
// @Description Возвращает всех пользователей без хэшей паролей. Доступно только администраторам.
// @Tags Users
// @Produce  json
// @Success 200 {object} response.Response "Список пользователей"
// @Failure 403 {object} response.ErrorResponse "Требуются права администратора"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list users"))
		return
	}

	// Хэши паролей наружу не отдаются.
	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, map[string]any{
			"id":     u.ID,
			"name":   u.Name,
			"email":  u.Email,
			"role":   u.Role,
			"banned": u.Banned,
		})
	}

	log.Info("users listed", slog.Int("count", len(out)))
	render.JSON(w, r, response.OKWithData(out))
}
