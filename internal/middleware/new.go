package middleware

import (
	"notification-hub/pkg/jwt"
	"notification-hub/pkg/log"
)

// TokenVerifier checks bearer tokens for the internal API.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*jwt.Claims, error)
}

type Middleware struct {
	l        log.Logger
	verifier TokenVerifier
	limiter  *RateLimiter
}

// New returns the middleware set. A nil limiter disables RateLimit.
func New(l log.Logger, verifier TokenVerifier, limiter *RateLimiter) Middleware {
	return Middleware{
		l:        l,
		verifier: verifier,
		limiter:  limiter,
	}
}
