package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims read from identity-provider access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"` // Parsed from the "sub" claim
	Email  string    `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the external identity provider.
// Token issuance is out of scope for this service.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
