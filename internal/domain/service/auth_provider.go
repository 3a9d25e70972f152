package service

import (
	"context"

	"txtchange/internal/domain/entity"
)

// AuthProvider is the account backend consulted at the edge of the system.
type AuthProvider interface {
	// SignUp creates an unverified account.
	SignUp(ctx context.Context, email, password string) (*entity.Identity, error)
	// SignIn exchanges credentials for a bearer token.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	// VerifyToken resolves a bearer token to the acting identity.
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
	// SignOut invalidates every token issued to the user so far.
	SignOut(ctx context.Context, identity entity.Identity) error

	// VerificationLink returns a link that marks the email as verified when opened.
	VerificationLink(ctx context.Context, email string) (string, error)
	// ConfirmVerification consumes a verification code issued by VerificationLink.
	ConfirmVerification(ctx context.Context, code string) error
	// IsVerified reports the current verification flag of the account.
	IsVerified(ctx context.Context, userID string) (bool, error)
	// DeleteAccount removes the auth identity.
	DeleteAccount(ctx context.Context, userID string) error
}
