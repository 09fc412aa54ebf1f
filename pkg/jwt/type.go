package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT configuration
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// Claims represents the JWT claims structure
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens for the internal API.
type Manager struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}
