package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes
const (
	TokenTypeAccess       = "access"
	TokenTypeVerification = "verification"
)

// Claims defines the custom claims for locally issued tokens.
type Claims struct {
	UserID     string `json:"uid"`
	Email      string `json:"email"`
	Type       string `json:"type"`
	Generation int64  `json:"gen"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateToken signs a token of the given type for a user. generation
	// must match the credential's current token generation when validated.
	GenerateToken(userID, email, tokenType string, generation int64) (string, error)

	// ValidateToken checks the signature and expiry of a token of the given type.
	ValidateToken(tokenString, tokenType string) (*Claims, error)

	// TokenDuration returns the lifetime of tokens of the given type.
	TokenDuration(tokenType string) time.Duration
}
