package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lokalin/config"
	"lokalin/models"
	"lokalin/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ContextUserID      = "user_id"
	ContextUserEmail   = "user_email"
	ContextUserRole    = "user_role"
	ContextIsAdmin     = "is_admin"
	ContextTokenID     = "token_id"
	ContextTokenExpiry = "token_expiry"
)

// RevocationChecker reports whether a token id was logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

func AuthMiddleware(revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			return
		}

		claims, err := authenticate(c.Request.Context(), tokenParts[1], revoked)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth sets the caller when a valid bearer token is present and
// lets anonymous requests through otherwise.
func OptionalAuth(revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if ok && token != "" {
			if claims, err := authenticate(c.Request.Context(), token, revoked); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextUserRole); !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			return
		}

		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			return
		}

		c.Next()
	}
}

// CurrentActor returns the authenticated caller set by AuthMiddleware or
// OptionalAuth.
func CurrentActor(c *gin.Context) (*models.Actor, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return nil, false
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return nil, false
	}

	return &models.Actor{
		ID:      id,
		Email:   c.GetString(ContextUserEmail),
		Role:    c.GetString(ContextUserRole),
		IsAdmin: c.GetBool(ContextIsAdmin),
	}, true
}

// IsAdmin grants admin rights by role or by the configured admin e-mail.
func IsAdmin(role, email string) bool {
	if role == models.RoleAdmin {
		return true
	}
	return config.AppConfig != nil && config.AppConfig.AdminEmail != "" &&
		strings.EqualFold(email, config.AppConfig.AdminEmail)
}

func authenticate(ctx context.Context, token string, revoked RevocationChecker) (*utils.Claims, error) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	if revoked != nil {
		isRevoked, err := revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			log.Warn().Err(err).Msg("token denylist lookup failed")
		}
		if isRevoked {
			return nil, utils.ErrInvalidToken
		}
	}
	return claims, nil
}

func setClaims(c *gin.Context, claims *utils.Claims) {
	userID, _ := uuid.Parse(claims.UserID)

	var expiry time.Time
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	c.Set(ContextUserID, userID)
	c.Set(ContextUserEmail, claims.Email)
	c.Set(ContextUserRole, claims.Role)
	c.Set(ContextIsAdmin, IsAdmin(claims.Role, claims.Email))
	c.Set(ContextTokenID, claims.ID)
	c.Set(ContextTokenExpiry, expiry)
}
