// Package create реализует HTTP-обработчик отправки сообщения в общий чат.
//
// Сообщения проходят через фильтр контента: запрещённые слова отклоняются
// с HTTP 422 до записи в хранилище.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/sushantkhatri01/bmk-backend/internal/http/middlewarectx"
	"github.com/sushantkhatri01/bmk-backend/internal/http/response"
	"github.com/sushantkhatri01/bmk-backend/internal/lib/sl"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
	"github.com/sushantkhatri01/bmk-backend/internal/services/chat"
)

// Handler управляет HTTP-запросами на отправку сообщения.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики отправки сообщения.
type Service interface {
	Create(ctx context.Context, userID int64, req models.DummyChatMessage) (int64, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Отправить сообщение
// @Description Сохраняет сообщение текущего пользователя в общий чат после проверки фильтром контента.
// @Tags Chat
// @Accept  json
// @Produce  json
// @Param request body models.DummyChatMessage true "Текст сообщения"
// @Success 200 {object} response.Response "ID созданного сообщения"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или запрещённый контент"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /chat [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyChatMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, chat.ErrProhibitedContent) {
			log.Warn("message rejected by content filter", slog.Int64("user_id", userID))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("message contains prohibited content"))
			return
		}
		log.Error("failed to create chat message", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create chat message"))
		return
	}

	log.Info("chat message created", slog.Int64("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"last_added_id": id,
	}))
}
