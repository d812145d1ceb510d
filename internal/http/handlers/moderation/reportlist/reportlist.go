// Package reportlist реализует HTTP-обработчик просмотра жалоб (админ).
package reportlist

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

// Handler управляет HTTP-запросами на список жалоб.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики просмотра жалоб.
type Service interface {
	ListReports(ctx context.Context) ([]*models.Report, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список жалоб
// @Description Возвращает все жалобы, свежие первыми. Доступно только администраторам.
// @Tags Moderation
// @Produce  json
// @Success 200 {object} response.Response "Список жалоб"
// @Failure 403 {object} response.ErrorResponse "Требуются права администратора"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /reports [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.moderation.reportlist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	reports, err := h.service.ListReports(r.Context())
	if err != nil {
		log.Error("failed to list reports", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list reports"))
		return
	}

	log.Info("reports listed", slog.Int("count", len(reports)))
	render.JSON(w, r, response.OKWithData(reports))
}
