// Package stats реализует HTTP-обработчик публичной статистики площадки.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sushantkhatri01/bmk-backend/internal/http/response"
	"github.com/sushantkhatri01/bmk-backend/internal/lib/sl"
	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

// Handler управляет HTTP-запросами на статистику.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс подсчёта статистики.
// Интерфейс закрывается напрямую хранилищем.
type Service interface {
	GetStats(ctx context.Context) (*repository.Stats, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статистика площадки
// @Description Возвращает число пользователей, задач и сообщений чата.
// @Tags Stats
// @Produce  json
// @Success 200 {object} response.Response "Счетчики"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		log.Error("failed to get stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get stats"))
		return
	}

	render.JSON(w, r, response.OKWithData(stats))
}
