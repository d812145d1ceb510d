// Package list реализует HTTP-обработчик истории общего чата.
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

// Handler управляет HTTP-запросами на историю чата.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения чата.
type Service interface {
	List(ctx context.Context) ([]*models.ChatMessage, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary История чата
// @Description Возвращает все сообщения общего чата в порядке создания.
// @Tags Chat
// @Produce  json
// @Success 200 {object} response.Response "Список сообщений"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /chat [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	messages, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list chat messages", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list chat messages"))
		return
	}

	log.Info("chat messages listed", slog.Int("count", len(messages)))
	render.JSON(w, r, response.OKWithData(messages))
}
