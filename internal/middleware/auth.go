package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
)

// SessionResolver creates a Gin middleware handler that resolves an optional
// bearer token into session claims. A missing, malformed, or invalid token is
// not an error here: the request simply proceeds anonymously, and route
// handlers decide whether an identity is required.
func SessionResolver(tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid, continuing as anonymous")
			c.Next()
			return
		}

		claims, err := tokenSvc.VerifyAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Bearer token rejected, continuing as anonymous", slog.String("error", err.Error()))
			c.Next()
			return
		}

		// Store the claims in the context (using standard context too, so code
		// holding only a context.Context can see the session)
		ctxWithClaims := context.WithValue(c.Request.Context(), sessionClaimsKey, claims)

		// Add user ID to the logger
		enrichedLogger := logger.With(slog.String("user_id", claims.UserID))
		ctxWithLoggerAndClaims := context.WithValue(ctxWithClaims, loggerKey, enrichedLogger)

		c.Set(string(sessionClaimsKey), claims)
		c.Set(string(loggerKey), enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndClaims)

		c.Next()
	}
}
