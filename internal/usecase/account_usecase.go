package usecase

import (
	"context"

	"txtchange/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

// ProfileInput names the profile created once the email is verified.
type ProfileInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

// --- Output DTOs ---

// SignInOutput returns the session and, once registration completed, the profile.
type SignInOutput struct {
	Session *entity.Session
	User    *entity.User
}

// AccountUsecase is the boundary to the auth provider.
type AccountUsecase interface {
	// Register creates an unverified identity, mails the verification link and
	// returns a session usable for CompleteRegistration.
	Register(ctx context.Context, input RegisterInput) (*entity.Session, error)
	// CompleteRegistration waits a bounded time for the email to be verified and
	// then creates the marketplace profile.
	CompleteRegistration(ctx context.Context, actor entity.Identity, input ProfileInput) (*entity.User, error)
	SignIn(ctx context.Context, email, password string) (*SignInOutput, error)
	SignOut(ctx context.Context, actor entity.Identity) error
	Profile(ctx context.Context, actor entity.Identity) (*entity.User, error)
	// ConfirmVerification consumes a verification code of the local provider.
	ConfirmVerification(ctx context.Context, code string) error
}
