// Package list реализует HTTP-обработчик справочника муниципалитетов.
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

// Handler управляет HTTP-запросами на список муниципалитетов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики справочника.
type Service interface {
	List(ctx context.Context) ([]*models.Municipality, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список муниципалитетов
// @Description Возвращает справочник муниципалитетов с координатами.
// @Tags Municipalities
// @Produce  json
// @Success 200 {object} response.Response "Список муниципалитетов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /municipalities [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.municipality.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	municipalities, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list municipalities", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list municipalities"))
		return
	}

	log.Info("municipalities listed", slog.Int("count", len(municipalities)))
	render.JSON(w, r, response.OKWithData(municipalities))
}
