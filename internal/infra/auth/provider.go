package auth

import (
	"context"

	"txtchange/config"
	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"
	"txtchange/internal/infra/persistence/document"

	fb "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// ProviderParams holds the dependencies of the auth provider.
type ProviderParams struct {
	fx.In

	Config      *config.Config
	Store       document.Store
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	FirebaseApp *fb.App `optional:"true"`
}

// NewAuthProvider selects the backend named by auth.provider.
func NewAuthProvider(params ProviderParams) (service.AuthProvider, error) {
	switch params.Config.Auth.Provider {
	case constants.AuthProviderFirebase:
		return newFirebaseProvider(params)
	case constants.AuthProviderLocal, "":
		return NewLocalProvider(
			document.NewCredentialRepository(params.Store),
			params.Hasher,
			params.Tokens,
			params.Config.Account.VerifyBaseURL,
		), nil
	default:
		return nil, errors.Errorf("unknown auth provider %q", params.Config.Auth.Provider)
	}
}

func newFirebaseProvider(params ProviderParams) (service.AuthProvider, error) {
	if params.FirebaseApp == nil {
		return nil, errors.New("firebase auth provider requires firebase.projectId")
	}
	if params.Config.Firebase.WebAPIKey == "" {
		return nil, errors.New("firebase auth provider requires firebase.webApiKey")
	}

	ctx := context.Background()
	client, err := params.FirebaseApp.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firebase auth client")
	}

	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(params.Config.Firebase.WebAPIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return NewFirebaseProvider(client, toolkit), nil
}
