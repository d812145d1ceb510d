package register

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

	"github.com/sushantkhatri01/bmk-backend/internal/models"
	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	args := m.Called(ctx, name, email, password, role)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"name":"Ram Bahadur","email":"ram@example.com","password":"secret123","role":"poster"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Ram Bahadur", "ram@example.com", "secret123", "poster").
					Return(&models.User{ID: 1, Name: "Ram Bahadur", Email: "ram@example.com", Role: "poster"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name: "только имя — дефолты применяет сервис",
			body: `{"name":"Sita"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Sita", "", "", "").
					Return(&models.User{ID: 2, Name: "Sita", Email: "sita@bmk.local", Role: "worker"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"sita@bmk.local"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"name":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "отсутствует обязательное имя",
			body:           `{"email":"x@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Name is a required field`,
		},
		{
			name:           "слишком короткий пароль",
			body:           `{"name":"Ram","password":"123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is too short`,
		},
		{
			name: "занятый email дает 409",
			body: `{"name":"Ram","email":"taken@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Ram", "taken@example.com", "", "").
					Return(nil, repository.ErrEmailTaken).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"email already registered"`,
		},
		{
			name: "ошибка сервиса",
			body: `{"name":"Ram"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Ram", "", "", "").
					Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
