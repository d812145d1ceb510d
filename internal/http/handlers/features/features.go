// Package features реализует HTTP-обработчик флагов функциональности приложения.
// Клиенты опрашивают его при старте, чтобы узнать, включён ли платный план
// и каков лимит бесплатных задач.
package features

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sushantkhatri01/bmk-backend/internal/config"
	"github.com/sushantkhatri01/bmk-backend/internal/http/response"
)

// Handler управляет HTTP-запросами на флаги функциональности.
type Handler struct {
	log *slog.Logger
	cfg config.ProPlan
}

// New создает новый Handler с переданными логгером и конфигурацией плана.
func New(log *slog.Logger, cfg config.ProPlan) *Handler {
	return &Handler{log: log, cfg: cfg}
}

// ServeHTTP godoc
// @Summary Флаги функциональности
// @Description Возвращает состояние платного плана и лимит бесплатных задач.
// @Tags Stats
// @Produce  json
// @Success 200 {object} response.Response "Флаги"
// @Router /app/features [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.features"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	log.Debug("features requested")

	render.JSON(w, r, response.OKWithData(map[string]any{
		"pro_plan_enabled":     h.cfg.Enabled,
		"free_task_limit":      h.cfg.FreeTaskLimit,
		"default_upgrade_days": h.cfg.DefaultUpgradeDays,
	}))
}
