// Package read реализует HTTP-обработчик просмотра прав пользователя.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sushantkhatri01/bmk-backend/internal/http/response"
	"github.com/sushantkhatri01/bmk-backend/internal/lib/sl"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// Handler управляет HTTP-запросами на просмотр подписки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики прав пользователя.
type Service interface {
	Get(ctx context.Context, userID int64) (*models.Entitlement, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Подписка пользователя
// @Description Возвращает план, срок действия и актуальный признак Pro для пользователя.
// @Tags Subscription
// @Produce  json
// @Param id path int true "ID пользователя"
// @Success 200 {object} response.Response "Права пользователя"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /users/{id}/subscription [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	ent, err := h.service.Get(r.Context(), userID)
	if err != nil {
		log.Error("failed to read entitlement", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read subscription"))
		return
	}

	log.Info("entitlement read", slog.Int64("user_id", userID), slog.Bool("is_pro", ent.IsPro))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user_id":    userID,
		"plan":       ent.Plan,
		"expires_at": ent.ExpiresAt,
		"is_pro":     ent.IsPro,
	}))
}
