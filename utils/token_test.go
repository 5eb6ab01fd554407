package utils

import (
	"testing"
	"time"

	"lokalin/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndValidateToken(t *testing.T) {
	withConfig(t, &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour})

	userID := uuid.New()
	token, claims, err := GenerateToken(userID, "sri@example.com", "seller")
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), parsed.UserID)
	assert.Equal(t, "sri@example.com", parsed.Email)
	assert.Equal(t, "seller", parsed.Role)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestValidateTokenRejects(t *testing.T) {
	withConfig(t, &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour})
	token, _, err := GenerateToken(uuid.New(), "a@b.c", "buyer")
	require.NoError(t, err)

	t.Run("tampered", func(t *testing.T) {
		_, err := ValidateToken(token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		withConfig(t, &config.Config{JWTSecret: "different", JWTExpiry: time.Hour})
		_, err := ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		withConfig(t, &config.Config{JWTSecret: "test-secret", JWTExpiry: -time.Minute})
		expired, _, err := GenerateToken(uuid.New(), "a@b.c", "buyer")
		require.NoError(t, err)

		_, err = ValidateToken(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)

	ok, err := VerifyPassword(hash, "rahasia123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = VerifyPassword(hash, "salah")
	assert.False(t, ok)

	ok, err = VerifyPassword("", "rahasia123")
	assert.NoError(t, err)
	assert.False(t, ok)
}
