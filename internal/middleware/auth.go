package middleware

import (
	"net/http"
	"strings"

	"github.com/dayflow-dev/dayflow/internal/auth"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-gonic/gin"
)

type AuthenticatedUser struct {
	ID   uint       `json:"id"`
	Role types.Role `json:"role"`
}

func (u AuthenticatedUser) IsAdmin() bool {
	return u.Role.IsAdmin()
}

type Authenticator interface {
	Authenticate(token string) (*auth.Claims, error)
}

func AuthMiddleware(authenticator Authenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := authenticator.Authenticate(strings.TrimSpace(parts[1]))

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:   claims.UserID,
			Role: claims.Role,
		})
		ctx.Next()
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)
		user, ok := value.(AuthenticatedUser)

		if !exists || !ok || !user.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		ctx.Next()
	}
}
