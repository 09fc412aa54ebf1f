package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"notification-hub/pkg/jwt"
	"notification-hub/pkg/response"
)

const (
	bearerPrefix = "Bearer "
	claimsKey    = "jwt_claims"
)

// Auth rejects requests without a valid bearer token and stores the claims
// on the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.l.Warnf(ctx, "internal.middleware.Auth: missing or malformed Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		claims, err := m.verifier.VerifyToken(tokenString)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			return
		}

		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(m.l.With(ctx, "subject", claims.Subject))
		c.Next()
	}
}

// GetClaims returns the claims stored by Auth.
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
