package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 60 * time.Minute
	maker := NewMaker(secretKey, tokenTTL)

	tests := []struct {
		name   string
		email  string
		userID int64
		role   string
	}{
		{
			name:   "admin user",
			email:  "admin@bmk.local",
			userID: 1,
			role:   "admin",
		},
		{
			name:   "worker",
			email:  "worker@example.com",
			userID: 42,
			role:   "worker",
		},
		{
			name:   "manager",
			email:  "manager@example.com",
			userID: 7,
			role:   "manager",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.email, tt.userID, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, tt.email, claims.Subject)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.role, claims.Role)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewMaker(secretKey, 60*time.Minute)

	validToken, err := maker.GenerateToken("user@example.com", 1, "worker")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredToken(t, secretKey),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

// Токен с нулевым TTL истекает в момент выпуска и сразу отклоняется.
func TestMaker_ZeroTTLTokenIsExpired(t *testing.T) {
	maker := NewMaker("test_secret_key", 0)

	token, err := maker.GenerateToken("user@example.com", 1, "worker")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := maker.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "expired")
}

func TestMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewMaker("first_secret_key", 60*time.Minute)
	maker2 := NewMaker("different_secret_key", 60*time.Minute)

	token, err := maker1.GenerateToken("user@example.com", 1, "worker")
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewMaker(secretKey, -time.Hour)
	token, err := maker.GenerateToken("user@example.com", 1, "worker")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewMaker("wrong_secret_key", 60*time.Minute)
	token, err := wrongMaker.GenerateToken("user@example.com", 1, "worker")
	require.NoError(t, err)
	return token
}
