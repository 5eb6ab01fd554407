package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lokalin/config"
	"lokalin/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDenylist map[string]bool

func (f fakeDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f[tokenID], nil
}

type brokenDenylist struct{}

func (brokenDenylist) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func setupConfig(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour, AdminEmail: "lokalin@gmail.com"}
	t.Cleanup(func() { config.AppConfig = prev })
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "admin": actor.IsAdmin})
	})
	r.GET("/", handlers...)
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	setupConfig(t)

	userID := uuid.New()
	token, claims, err := utils.GenerateToken(userID, "sri@example.com", "buyer")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := get(newRouter(AuthMiddleware(fakeDenylist{})), token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
		assert.Contains(t, w.Body.String(), `"admin":false`)
	})

	t.Run("missing header", func(t *testing.T) {
		w := get(newRouter(AuthMiddleware(fakeDenylist{})), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token "+token)
		w := httptest.NewRecorder()
		newRouter(AuthMiddleware(fakeDenylist{})).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		w := get(newRouter(AuthMiddleware(fakeDenylist{claims.ID: true})), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("denylist outage lets token through", func(t *testing.T) {
		w := get(newRouter(AuthMiddleware(brokenDenylist{})), token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	setupConfig(t)

	w := get(newRouter(OptionalAuth(nil)), "")
	assert.Contains(t, w.Body.String(), `"anonymous":true`)

	w = get(newRouter(OptionalAuth(nil)), "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"anonymous":true`)
}

func TestAdminMiddleware(t *testing.T) {
	setupConfig(t)

	tests := []struct {
		name  string
		email string
		role  string
		want  int
	}{
		{"admin role", "boss@example.com", "admin", http.StatusOK},
		{"configured admin email", "Lokalin@Gmail.com", "buyer", http.StatusOK},
		{"seller", "sri@example.com", "seller", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := utils.GenerateToken(uuid.New(), tt.email, tt.role)
			require.NoError(t, err)

			w := get(newRouter(AuthMiddleware(nil), AdminMiddleware()), token)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
