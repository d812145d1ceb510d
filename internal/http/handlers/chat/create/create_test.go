package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sushantkhatri01/bmk-backend/internal/http/middlewarectx"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
	"github.com/sushantkhatri01/bmk-backend/internal/services/chat"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID int64, req models.DummyChatMessage) (int64, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		userID         any
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешная отправка сообщения",
			body:   `{"content":"Anyone available?","timestamp":"2025-06-15T10:00:00Z"}`,
			userID: int64(1),
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(req models.DummyChatMessage) bool {
					return req.Content == "Anyone available?"
				})).Return(int64(5), nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"last_added_id":5`,
		},
		{
			name:           "пустое сообщение отклоняется валидацией",
			body:           `{"timestamp":"2025-06-15T10:00:00Z"}`,
			userID:         int64(1),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Content is a required field`,
		},
		{
			name:   "запрещенный контент дает 422",
			body:   `{"content":"spam text","timestamp":"2025-06-15T10:00:00Z"}`,
			userID: int64(1),
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(1), mock.Anything).
					Return(int64(0), chat.ErrProhibitedContent).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"message contains prohibited content"`,
		},
		{
			name:           "нет пользователя в контексте",
			body:           `{"content":"hello","timestamp":"2025-06-15T10:00:00Z"}`,
			userID:         nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:   "ошибка сервиса",
			body:   `{"content":"hello","timestamp":"2025-06-15T10:00:00Z"}`,
			userID: int64(1),
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(1), mock.Anything).
					Return(int64(0), errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not create chat message"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(tt.body))
			if tt.userID != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserID, tt.userID))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
