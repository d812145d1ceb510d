package bmkbackend

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushantkhatri01/bmk-backend/internal/config"
	jwtlib "github.com/sushantkhatri01/bmk-backend/internal/lib/jwt"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
	authservice "github.com/sushantkhatri01/bmk-backend/internal/services/auth"
	chatservice "github.com/sushantkhatri01/bmk-backend/internal/services/chat"
	entitlementservice "github.com/sushantkhatri01/bmk-backend/internal/services/entitlement"
	moderationservice "github.com/sushantkhatri01/bmk-backend/internal/services/moderation"
	municipalityservice "github.com/sushantkhatri01/bmk-backend/internal/services/municipality"
	"github.com/sushantkhatri01/bmk-backend/internal/services/quota"
	taskservice "github.com/sushantkhatri01/bmk-backend/internal/services/task"
	workerservice "github.com/sushantkhatri01/bmk-backend/internal/services/worker"
	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

// storageStub отдает фиксированного незабаненного пользователя,
// чтобы запросы проходили BannedUserMiddleware.
type storageStub struct{}

func (storageStub) GetUser(_ context.Context, userID int64) (*models.User, error) {
	return &models.User{ID: userID, Email: "stub@example.com", Role: "worker"}, nil
}

func (storageStub) ListUsers(context.Context) ([]*models.User, error) { return nil, nil }

func (storageStub) GetStats(context.Context) (*repository.Stats, error) {
	return &repository.Stats{}, nil
}

func (storageStub) CheckDatabaseReady(context.Context) error { return nil }

// subscriptionRepoStub принимает любые изменения подписки.
type subscriptionRepoStub struct{}

func (subscriptionRepoStub) GetSubscription(context.Context, int64) (*models.Subscription, error) {
	return nil, repository.ErrSubscriptionNotFound
}

func (subscriptionRepoStub) UpsertSubscription(context.Context, int64, string, *time.Time) error {
	return nil
}

func (subscriptionRepoStub) GetUser(_ context.Context, userID int64) (*models.User, error) {
	return &models.User{ID: userID, Email: "stub@example.com"}, nil
}

type cacheStub struct{}

func (cacheStub) Get(string, any) (bool, error)        { return false, nil }
func (cacheStub) Set(string, any, time.Duration) error { return nil }
func (cacheStub) Invalidate(string) error              { return nil }

func newTestRouter(t *testing.T) (chi.Router, jwtlib.Maker) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	maker := jwtlib.NewMaker("test-secret", time.Hour)

	services := &Services{
		Auth:         authservice.New(nil, maker),
		Entitlement:  entitlementservice.New(subscriptionRepoStub{}, cacheStub{}, logger, 30),
		Task:         taskservice.New(nil, nil, quota.New(true, 3), logger),
		Chat:         chatservice.New(nil, nil, logger),
		Worker:       workerservice.New(nil, logger),
		Municipality: municipalityservice.New(nil, nil, logger),
		Moderation:   moderationservice.New(nil, logger),
		Storage:      storageStub{},
		ProPlan:      config.ProPlan{Enabled: true, FreeTaskLimit: 3, DefaultUpgradeDays: 30},
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, services)
	return router, maker
}

func TestPlanChangeRoutesRequireAdmin(t *testing.T) {
	router, maker := newTestRouter(t)

	workerToken, err := maker.GenerateToken("worker@example.com", 1, "worker")
	require.NoError(t, err)
	adminToken, err := maker.GenerateToken("admin@example.com", 2, "admin")
	require.NoError(t, err)

	tests := []struct {
		name           string
		method         string
		target         string
		token          string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "апгрейд запрещен обычному пользователю",
			method:         http.MethodPost,
			target:         "/api/v1/users/5/upgrade",
			token:          workerToken,
			body:           `{"days":30}`,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"admin access required"`,
		},
		{
			name:           "даунгрейд запрещен обычному пользователю",
			method:         http.MethodPost,
			target:         "/api/v1/users/5/downgrade",
			token:          workerToken,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"admin access required"`,
		},
		{
			name:           "апгрейд доступен админу",
			method:         http.MethodPost,
			target:         "/api/v1/users/5/upgrade",
			token:          adminToken,
			body:           `{"days":30}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"plan":"pro"`,
		},
		{
			name:           "даунгрейд доступен админу",
			method:         http.MethodPost,
			target:         "/api/v1/users/5/downgrade",
			token:          adminToken,
			expectedStatus: http.StatusOK,
			expectedBody:   `"plan":"free"`,
		},
		{
			name:           "просмотр подписки не требует роли admin",
			method:         http.MethodGet,
			target:         "/api/v1/users/5/subscription",
			token:          workerToken,
			expectedStatus: http.StatusOK,
			expectedBody:   `"plan":"free"`,
		},
		{
			name:           "без токена доступ закрыт",
			method:         http.MethodPost,
			target:         "/api/v1/users/5/upgrade",
			body:           `{"days":30}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"missing or invalid authorization header"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
		})
	}
}
