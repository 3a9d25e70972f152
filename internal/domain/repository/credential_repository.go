package repository

import (
	"context"

	"txtchange/internal/domain/entity"
	"txtchange/internal/errors"
)

// ErrCredentialNotFound is returned when no local login exists for an email.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialsCollection holds local password logins.
const CredentialsCollection = "credentials"

// CredentialRepository stores logins for the local auth provider.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	FindByUserID(ctx context.Context, userID string) (*entity.Credential, error)
	Create(ctx context.Context, credential *entity.Credential) error
	MarkVerified(ctx context.Context, email string) error
	RevokeTokens(ctx context.Context, email string, generation int64) error
	Delete(ctx context.Context, email string) error
}
