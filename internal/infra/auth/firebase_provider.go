package auth

import (
	"context"
	"net/http"

	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
)

// firebaseProvider delegates accounts to Firebase Authentication, the backend
// the mobile client signs in against.
type firebaseProvider struct {
	client       *auth.Client
	relyingParty *identitytoolkit.RelyingpartyService
}

// NewFirebaseProvider builds the Firebase-backed auth provider. Password
// sign-in goes through the Identity Toolkit API, which the Admin SDK lacks.
func NewFirebaseProvider(client *auth.Client, toolkit *identitytoolkit.Service) service.AuthProvider {
	return &firebaseProvider{client: client, relyingParty: toolkit.Relyingparty}
}

// SignUp creates an unverified Firebase user.
func (p *firebaseProvider) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	user, err := p.client.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password).EmailVerified(false))
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create firebase user")
	}

	return &entity.Identity{UserID: user.UID, Email: user.Email}, nil
}

// SignIn exchanges the password for a Firebase ID token.
func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	resp, err := p.relyingParty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to verify password")
	}

	user, err := p.client.GetUser(ctx, resp.LocalId)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load firebase user")
	}

	return &entity.Session{
		Token:    resp.IdToken,
		Identity: entity.Identity{UserID: user.UID, Email: user.Email, EmailVerified: user.EmailVerified},
	}, nil
}

// VerifyToken verifies a Firebase ID token, rejecting revoked sessions.
func (p *firebaseProvider) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	verified, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	email, _ := verified.Claims["email"].(string)
	emailVerified, _ := verified.Claims["email_verified"].(bool)

	return &entity.Identity{UserID: verified.UID, Email: email, EmailVerified: emailVerified}, nil
}

// SignOut revokes the user's refresh tokens.
func (p *firebaseProvider) SignOut(ctx context.Context, identity entity.Identity) error {
	if err := p.client.RevokeRefreshTokens(ctx, identity.UserID); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

// VerificationLink asks Firebase for an email verification link.
func (p *firebaseProvider) VerificationLink(ctx context.Context, email string) (string, error) {
	link, err := p.client.EmailVerificationLink(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification link")
	}

	return link, nil
}

// ConfirmVerification is handled by Firebase's hosted action page.
func (p *firebaseProvider) ConfirmVerification(_ context.Context, _ string) error {
	return domainerrors.ErrUnsupported.WithDetails("verification links are handled by Firebase")
}

// IsVerified reads the current emailVerified flag.
func (p *firebaseProvider) IsVerified(ctx context.Context, userID string) (bool, error) {
	user, err := p.client.GetUser(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to load firebase user")
	}

	return user.EmailVerified, nil
}

// DeleteAccount deletes the Firebase user.
func (p *firebaseProvider) DeleteAccount(ctx context.Context, userID string) error {
	if err := p.client.DeleteUser(ctx, userID); err != nil && !auth.IsUserNotFound(err) {
		return errors.Wrap(err, "failed to delete firebase user")
	}

	return nil
}
