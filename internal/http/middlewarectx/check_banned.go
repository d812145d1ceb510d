package middlewarectx

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

// UserProvider отдает актуальную запись пользователя из хранилища.
type UserProvider interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// BannedUserMiddleware перечитывает запись пользователя на каждом запросе
// и останавливает забаненных. Токен при бане не отзывается, поэтому
// проверка по базе — единственный барьер для уже выданных токенов.
func BannedUserMiddleware(users UserProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.BannedUserMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			userID, ok := r.Context().Value(UserID).(int64)
			if !ok {
				log.Error("user id not found in context")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if err != nil {
				log.Error("failed to load user", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}
			if user.Banned {
				log.Warn("banned user rejected", slog.Int64("user_id", userID))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("account is banned"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
