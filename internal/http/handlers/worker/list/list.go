// Package list реализует HTTP-обработчик списка доступных работников.
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

// Handler управляет HTTP-запросами на список работников.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка работников.
type Service interface {
	ListAvailable(ctx context.Context) ([]*models.Worker, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список доступных работников
// @Description Возвращает анкеты работников, доступных для найма.
// @Tags Workers
// @Produce  json
// @Success 200 {object} response.Response "Список анкет"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /workers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.worker.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	workers, err := h.service.ListAvailable(r.Context())
	if err != nil {
		log.Error("failed to list workers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list workers"))
		return
	}

	log.Info("workers listed", slog.Int("count", len(workers)))
	render.JSON(w, r, response.OKWithData(workers))
}
