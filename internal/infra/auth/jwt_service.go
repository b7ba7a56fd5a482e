// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"biolink/config"
	"biolink/internal/domain/service"
	"biolink/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const clockSkewLeeway = 30 * time.Second

// jwtService validates HS256 access tokens issued by the external identity provider.
type jwtService struct {
	accessSecret []byte // Shared secret for verifying access tokens.
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkewLeeway),
	}
	if cfg.Auth != nil && cfg.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Auth.Issuer))
	}
	if cfg.Auth != nil && cfg.Auth.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Auth.Audience))
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser:       jwt.NewParser(opts...),
	}, nil
}

// ValidateToken checks signature, expiry and configured issuer/audience, and
// requires the subject to be a user UUID.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "access token subject is not a user id")
	}
	claims.UserID = userID

	return claims, nil
}
