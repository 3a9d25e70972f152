package document

import (
	"context"
	"strings"

	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"
)

// credentialRepository implements repository.CredentialRepository. Logins are
// keyed by lower-cased email.
type credentialRepository struct {
	session Session
}

// NewCredentialRepository binds a CredentialRepository to session.
func NewCredentialRepository(session Session) repository.CredentialRepository {
	return &credentialRepository{session: session}
}

func credentialKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail reads the login for email.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	snap, err := repo.session.Get(ctx, repository.CredentialsCollection, credentialKey(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find credential")
	}

	return CredentialFromSnapshot(snap), nil
}

// FindByUserID reads the login owned by userID.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID string) (*entity.Credential, error) {
	snaps, err := repo.session.Query(ctx, From(repository.CredentialsCollection).Where(KeyUserID, userID).WithLimit(1))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find credential by user")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrCredentialNotFound
	}

	return CredentialFromSnapshot(snaps[0]), nil
}

// Create writes a new login.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	key := credentialKey(credential.Email)
	credential.Email = key
	if err := repo.session.Write(ctx, Set(repository.CredentialsCollection, key, CredentialToData(credential))); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	return nil
}

// MarkVerified flags the email as verified.
func (repo *credentialRepository) MarkVerified(ctx context.Context, email string) error {
	return repo.update(ctx, email, "failed to mark credential verified", Field(true, KeyVerified))
}

// RevokeTokens stores generation as the only accepted token generation.
func (repo *credentialRepository) RevokeTokens(ctx context.Context, email string, generation int64) error {
	return repo.update(ctx, email, "failed to revoke tokens", Field(float64(generation), KeyTokenGeneration))
}

// Delete removes the login.
func (repo *credentialRepository) Delete(ctx context.Context, email string) error {
	if err := repo.session.Write(ctx, Delete(repository.CredentialsCollection, credentialKey(email))); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete credential")
	}

	return nil
}

func (repo *credentialRepository) update(ctx context.Context, email, details string, updates ...Update) error {
	err := repo.session.Write(ctx, UpdateFields(repository.CredentialsCollection, credentialKey(email), updates...))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return repository.ErrCredentialNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}

	return nil
}
