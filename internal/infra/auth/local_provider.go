package auth

import (
	"context"
	"net/url"

	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"

	"github.com/google/uuid"
)

// localProvider keeps credentials in the document store and issues its own JWTs.
type localProvider struct {
	credentials   repository.CredentialRepository
	hasher        service.PasswordHasher
	tokens        service.TokenService
	verifyBaseURL string
}

// NewLocalProvider builds the self-hosted auth backend.
func NewLocalProvider(
	credentials repository.CredentialRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	verifyBaseURL string,
) service.AuthProvider {
	return &localProvider{
		credentials:   credentials,
		hasher:        hasher,
		tokens:        tokens,
		verifyBaseURL: verifyBaseURL,
	}
}

// SignUp creates an unverified login.
func (p *localProvider) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	_, err := p.credentials.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, err
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	credential := &entity.Credential{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := p.credentials.Create(ctx, credential); err != nil {
		return nil, err
	}

	return &entity.Identity{UserID: credential.UserID, Email: credential.Email}, nil
}

// SignIn checks the password and issues an access token.
func (p *localProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	credential, err := p.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}
	if !p.hasher.Check(password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := p.tokens.GenerateToken(credential.UserID, credential.Email, service.TokenTypeAccess, credential.TokenGeneration)
	if err != nil {
		return nil, err
	}

	return &entity.Session{
		Token:    token,
		Identity: entity.Identity{UserID: credential.UserID, Email: credential.Email, EmailVerified: credential.Verified},
	}, nil
}

// VerifyToken validates an access token against the current token generation.
func (p *localProvider) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := p.tokens.ValidateToken(token, service.TokenTypeAccess)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	credential, err := p.credentials.FindByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrUnauthorized.WithDetails("account no longer exists")
		}

		return nil, err
	}
	if claims.Generation != credential.TokenGeneration {
		return nil, domainerrors.ErrUnauthorized.WithDetails("token revoked")
	}

	return &entity.Identity{UserID: credential.UserID, Email: credential.Email, EmailVerified: credential.Verified}, nil
}

// SignOut revokes every token issued so far.
func (p *localProvider) SignOut(ctx context.Context, identity entity.Identity) error {
	credential, err := p.credentials.FindByUserID(ctx, identity.UserID)
	if err != nil {
		return err
	}

	return p.credentials.RevokeTokens(ctx, credential.Email, credential.TokenGeneration+1)
}

// VerificationLink signs a verification token into the public verify URL.
func (p *localProvider) VerificationLink(ctx context.Context, email string) (string, error) {
	credential, err := p.credentials.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := p.tokens.GenerateToken(credential.UserID, credential.Email, service.TokenTypeVerification, 0)
	if err != nil {
		return "", err
	}

	link, err := url.Parse(p.verifyBaseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid verify base url")
	}
	query := link.Query()
	query.Set("token", token)
	link.RawQuery = query.Encode()

	return link.String(), nil
}

// ConfirmVerification marks the email carried by code as verified.
func (p *localProvider) ConfirmVerification(ctx context.Context, code string) error {
	claims, err := p.tokens.ValidateToken(code, service.TokenTypeVerification)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid or expired verification link")
	}

	return p.credentials.MarkVerified(ctx, claims.Email)
}

// IsVerified reports the verification flag of userID.
func (p *localProvider) IsVerified(ctx context.Context, userID string) (bool, error) {
	credential, err := p.credentials.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}

	return credential.Verified, nil
}

// DeleteAccount removes the login of userID.
func (p *localProvider) DeleteAccount(ctx context.Context, userID string) error {
	credential, err := p.credentials.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil
		}

		return err
	}

	return p.credentials.Delete(ctx, credential.Email)
}
