package auth

import (
	"net/http"
	"strings"

	"device-checkout-backend/internal/database/models"
	apperrors "device-checkout-backend/internal/errors"
	"device-checkout-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const identityKey = "auth_identity"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens *TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates JWT tokens and sets the caller identity
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		identity, err := m.tokens.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error(), "details": err.Error()})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Request = c.Request.WithContext(logger.ContextWithActor(c.Request.Context(), identity.UserID.String()))
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in roles. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrUnauthorized.Error()})
		c.Abort()
	}
}

// GetIdentity is a helper function to extract the caller identity from context
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*Identity)
	return identity, ok
}

// SetIdentity stores identity on the context; used by tests that bypass token parsing
func SetIdentity(c *gin.Context, identity *Identity) {
	c.Set(identityKey, identity)
}
