// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"txtchange/config"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const verificationTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret       string
	verificationSecret string
	accessTTL          time.Duration
	verificationTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Verification == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		accessTTL = cfg.Auth.TokenTTL
	}

	return &jwtService{
		accessSecret:       cfg.SecretKey.Access,
		verificationSecret: cfg.SecretKey.Verification,
		accessTTL:          accessTTL,
		verificationTTL:    verificationTTL,
	}, nil
}

// GenerateToken signs a token of tokenType for the user.
func (s *jwtService) GenerateToken(userID, email, tokenType string, generation int64) (string, error) {
	secret, ttl, err := s.settings(tokenType)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &service.Claims{
		UserID:     userID,
		Email:      email,
		Type:       tokenType,
		Generation: generation,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken parses tokenString and checks it was issued as tokenType.
func (s *jwtService) ValidateToken(tokenString, tokenType string) (*service.Claims, error) {
	secret, _, err := s.settings(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}

// TokenDuration returns the lifetime of tokens of tokenType.
func (s *jwtService) TokenDuration(tokenType string) time.Duration {
	_, ttl, err := s.settings(tokenType)
	if err != nil {
		return 0
	}

	return ttl
}

func (s *jwtService) settings(tokenType string) (string, time.Duration, error) {
	switch tokenType {
	case service.TokenTypeAccess:
		return s.accessSecret, s.accessTTL, nil
	case service.TokenTypeVerification:
		return s.verificationSecret, s.verificationTTL, nil
	default:
		return "", 0, errors.Errorf("unknown token type %q", tokenType)
	}
}
