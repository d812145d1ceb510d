// Package auth содержит логику бизнес-уровня для регистрации,
// аутентификации и проверки токенов сессии.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sushantkhatri01/bmk-backend/internal/lib/jwt"
	"github.com/sushantkhatri01/bmk-backend/internal/lib/password"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// ErrInvalidCredentials возвращается при любой неуспешной попытке входа.
// Несуществующий email и неверный пароль не различаются, чтобы не давать
// перечислять аккаунты.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Дефолты при создании пользователя без явных пароля и роли.
// Пароль по умолчанию унаследован от первоначального деплоя как
// операторское удобство.
const (
	DefaultRole     = "worker"
	DefaultPassword = "bmk123"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	// Повторный email — ошибка, без перезаписи.
	CreateUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр AuthService.
func New(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Пустая роль заменяется на "worker", пустой пароль — на дефолтный,
// пустой email — на фолбэк вида name@bmk.local.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword, role string) (*models.User, error) {
	if email == "" {
		email = fallbackEmail(name)
	}
	if rawPassword == "" {
		rawPassword = DefaultPassword
	}
	if role == "" {
		role = DefaultRole
	}

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hashed,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return &user, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
// Ошибка всегда ErrInvalidCredentials, без уточнения причины.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := password.Verify(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidateToken проверяет JWT и возвращает claims, если токен валиден.
// Бан после выдачи токен не отзывает: блокировку забаненных делает middleware
// при следующем запросе.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// fallbackEmail строит email из имени: "Ram Bahadur" -> ram.bahadur@bmk.local.
func fallbackEmail(name string) string {
	return fmt.Sprintf("%s@bmk.local", strings.ReplaceAll(strings.ToLower(name), " ", "."))
}
