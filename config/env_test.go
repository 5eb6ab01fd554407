package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "PORT", "JWT_EXPIRY", "ADMIN_EMAIL", "CART_TTL", "MAX_UPLOAD_SIZE", "DATABASE_URL"} {
		t.Setenv(key, "")
	}
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	LoadConfig()

	assert.Equal(t, "8082", AppConfig.Port)
	assert.Equal(t, 24*time.Hour, AppConfig.JWTExpiry)
	assert.Equal(t, "lokalin@gmail.com", AppConfig.AdminEmail)
	assert.Equal(t, 30*time.Minute, AppConfig.CartTTL)
	assert.Equal(t, int64(5242880), AppConfig.MaxUploadSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("ADMIN_EMAIL", "Boss@Lokal.in")
	t.Setenv("LISTING_CACHE_TTL", "not-a-duration")
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	LoadConfig()

	assert.Equal(t, "9000", AppConfig.Port)
	assert.Equal(t, 2*time.Hour, AppConfig.JWTExpiry)
	assert.Equal(t, "boss@lokal.in", AppConfig.AdminEmail)
	assert.Equal(t, 5*time.Minute, AppConfig.ListingCacheTTL)
}

func TestBuildDSN(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig = &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "lokalin", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/lokalin?sslmode=disable", buildDSN())

	AppConfig.DatabaseURL = "postgres://neon/db"
	assert.Equal(t, "postgres://neon/db", buildDSN())
}
