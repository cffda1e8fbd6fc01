package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"varsha-travels/internal/utils"
)

// TokenValidator is implemented by services.AuthService.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*utils.AdminClaims, error)
}

// AdminRequired validates the bearer token issued by the login endpoint.
// When enforce is false every request passes, which keeps the stateless
// admin frontend working.
func AdminRequired(validator TokenValidator, enforce bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enforce {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			utils.UnauthorizedResponse(c, "Bearer token required")
			return
		}

		claims, err := validator.ValidateToken(c.Request.Context(), strings.TrimSpace(tokenString))
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid token")
			return
		}

		c.Set(utils.ContextAdminEmail, claims.Email)
		c.Next()
	}
}

// TokenFromQuery copies a ?token= parameter into the Authorization header.
// Browsers cannot set headers on websocket upgrades.
func TokenFromQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.Query("token"); token != "" && c.GetHeader("Authorization") == "" {
			c.Request.Header.Set("Authorization", "Bearer "+token)
		}
		c.Next()
	}
}
