package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"txtchange/config"
	deliverycontext "txtchange/internal/delivery/context"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"
	"txtchange/internal/usecase"
	"txtchange/internal/util"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	auth                 service.AuthProvider
	userRepo             repository.UserRepository
	mailer               service.Mailer
	allowedDomain        string
	verificationTimeout  time.Duration
	verificationInterval time.Duration
	deleteUnverified     bool
	logger               *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Auth     service.AuthProvider
	UserRepo repository.UserRepository
	Mailer   service.Mailer
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		auth:                 params.Auth,
		userRepo:             params.UserRepo,
		mailer:               params.Mailer,
		allowedDomain:        strings.ToLower(strings.TrimSpace(params.Config.Auth.AllowedEmailDomain)),
		verificationTimeout:  params.Config.Account.VerificationTimeout,
		verificationInterval: params.Config.Account.VerificationInterval,
		deleteUnverified:     params.Config.Account.DeleteUnverified,
		logger:               params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens an unverified account and mails the verification link.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Session, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if srv.allowedDomain != "" && !strings.HasSuffix(email, "@"+srv.allowedDomain) {
		return nil, domainerrors.ErrEmailDomainNotAllowed
	}

	identity, err := srv.auth.SignUp(ctx, email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign up")
	}
	srv.log(ctx).Info("Account created", slog.String("user_id", identity.UserID))

	session, err := srv.auth.SignIn(ctx, email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in after sign up")
	}

	link, err := srv.auth.VerificationLink(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create verification link")
	}

	msg := &service.MailMessage{
		To:      []string{email},
		Subject: "txtChange: Verify your email",
		Body: fmt.Sprintf("Hi %s,\n\nPlease verify your email address by opening the link below:\n\n%s\n\nThe txtChange Team",
			strings.TrimSpace(input.FirstName), link),
	}
	if err := srv.mailer.Send(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.String("user_id", identity.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to send verification email")
	}

	return session, nil
}

// CompleteRegistration creates the profile once the email is verified.
// Running it again returns the existing profile.
func (srv *accountService) CompleteRegistration(ctx context.Context, actor entity.Identity, input usecase.ProfileInput) (*entity.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load user")
	}

	if !actor.EmailVerified {
		if err := srv.awaitVerification(ctx, actor); err != nil {
			return nil, err
		}
	}

	user := &entity.User{
		ID:           actor.UserID,
		Email:        actor.Email,
		DisplayName:  util.DisplayNameFromEmail(actor.Email),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		BookListings: []string{},
		SavedBooks:   []string{},
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user profile")
	}

	srv.log(ctx).Info("Registration completed", slog.String("user_id", user.ID))

	return user, nil
}

// awaitVerification polls the provider's verification flag.
func (srv *accountService) awaitVerification(ctx context.Context, actor entity.Identity) error {
	err := pollUntil(ctx, srv.verificationTimeout, srv.verificationInterval, func(ctx context.Context) (bool, error) {
		return srv.auth.IsVerified(ctx, actor.UserID)
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, errPollTimeout) {
		return errors.Wrap(err, "failed to check verification")
	}

	srv.log(ctx).Warn("Email verification timed out", slog.String("user_id", actor.UserID), slog.Duration("timeout", srv.verificationTimeout))

	if srv.deleteUnverified {
		if err := srv.auth.DeleteAccount(ctx, actor.UserID); err != nil {
			srv.log(ctx).Error("Failed to delete unverified account", slog.String("user_id", actor.UserID), slog.Any("error", err))
		}
	}

	return domainerrors.ErrVerificationPending
}

// SignIn exchanges credentials for a session.
func (srv *accountService) SignIn(ctx context.Context, email, password string) (*usecase.SignInOutput, error) {
	session, err := srv.auth.SignIn(ctx, strings.ToLower(strings.TrimSpace(email)), password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in")
	}

	out := &usecase.SignInOutput{Session: session}
	user, err := srv.userRepo.FindByID(ctx, session.Identity.UserID)
	switch {
	case err == nil:
		out.User = user
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to load user")
	}

	return out, nil
}

// SignOut invalidates the actor's tokens.
func (srv *accountService) SignOut(ctx context.Context, actor entity.Identity) error {
	if err := srv.auth.SignOut(ctx, actor); err != nil {
		return errors.Wrap(err, "failed to sign out")
	}

	return nil
}

// Profile returns the actor's marketplace profile.
func (srv *accountService) Profile(ctx context.Context, actor entity.Identity) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, userLookupError(err)
	}

	return user, nil
}

// ConfirmVerification marks the email behind code as verified.
func (srv *accountService) ConfirmVerification(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("verification token is required")
	}

	return errors.WithStack(srv.auth.ConfirmVerification(ctx, code))
}
