// Package remove реализует HTTP-обработчик удаления сообщения чата (админ).
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sushantkhatri01/bmk-backend/internal/http/response"
	"github.com/sushantkhatri01/bmk-backend/internal/lib/sl"
	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

// Handler управляет HTTP-запросами на удаление сообщения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления сообщения.
type Service interface {
	DeleteMessage(ctx context.Context, id int64) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить сообщение чата
// @Description Удаляет сообщение по ID. Доступно только администраторам.
// @Tags Chat
// @Produce  json
// @Param id path int true "ID сообщения"
// @Success 200 {object} response.Response "Сообщение удалено"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 403 {object} response.ErrorResponse "Требуются права администратора"
// @Failure 404 {object} response.ErrorResponse "Сообщение не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /chat/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	if err := h.service.DeleteMessage(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			log.Warn("message not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("message not found"))
			return
		}
		log.Error("failed to remove message", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove message"))
		return
	}

	log.Info("chat message removed", slog.Int64("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"removed_id": id,
	}))
}
