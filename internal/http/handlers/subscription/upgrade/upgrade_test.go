package upgrade

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

// MockService реализует интерфейс upgrade.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Upgrade(ctx context.Context, userID int64, days int) (time.Time, error) {
	args := m.Called(ctx, userID, days)
	return args.Get(0).(time.Time), args.Error(1)
}

func TestUpgradeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	expiry := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		urlID          string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "апгрейд с явным числом дней",
			urlID: "1",
			body:  `{"days":60}`,
			setupMock: func(m *MockService) {
				m.On("Upgrade", mock.Anything, int64(1), 60).Return(expiry, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"plan":"pro"`,
		},
		{
			name:  "пустое тело использует дефолтный срок",
			urlID: "1",
			body:  ``,
			setupMock: func(m *MockService) {
				m.On("Upgrade", mock.Anything, int64(1), 0).Return(expiry, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"expires_at"`,
		},
		{
			name:           "отрицательные дни отклоняются валидацией",
			urlID:          "1",
			body:           `{"days":-5}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Days must be greater than 0`,
		},
		{
			name:           "некорректный id в URL",
			urlID:          "abc",
			body:           `{"days":30}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode id from url"`,
		},
		{
			name:  "пользователь не найден",
			urlID: "99",
			body:  `{"days":30}`,
			setupMock: func(m *MockService) {
				m.On("Upgrade", mock.Anything, int64(99), 30).
					Return(time.Time{}, repository.ErrUserNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"user not found"`,
		},
		{
			name:  "ошибка сервиса",
			urlID: "1",
			body:  `{"days":30}`,
			setupMock: func(m *MockService) {
				m.On("Upgrade", mock.Anything, int64(1), 30).
					Return(time.Time{}, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not upgrade subscription"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/users/"+tt.urlID+"/upgrade", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
