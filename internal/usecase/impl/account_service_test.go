package impl

import (
	"context"
	"strings"
	"testing"

	"txtchange/config"
	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"
	"txtchange/internal/infra/persistence/document"
	"txtchange/internal/infra/persistence/memory"
	mockService "txtchange/internal/mocks/service"
	"txtchange/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service  usecase.AccountUsecase
	auth     *mockService.MockAuthProvider
	mailer   *mockService.MockMailer
	userRepo repository.UserRepository
}

func createTestAccountService(t *testing.T, configure ...func(*config.Config)) accountServiceFixtures {
	cfg := testConfig(constants.ConsistencyTransactional)
	for _, fn := range configure {
		fn(cfg)
	}

	auth := mockService.NewMockAuthProvider(t)
	mailer := mockService.NewMockMailer(t)
	userRepo := document.NewUserRepository(memory.NewStore())

	return accountServiceFixtures{
		service: NewAccountService(AccountServiceParams{
			Auth:     auth,
			UserRepo: userRepo,
			Mailer:   mailer,
			Config:   cfg,
			Logger:   discardLogger(),
		}),
		auth:     auth,
		mailer:   mailer,
		userRepo: userRepo,
	}
}

var newcomer = entity.Identity{UserID: "u-1", Email: "ada.l@uni.edu"}

func TestAccountService_Register(t *testing.T) {
	fx := createTestAccountService(t, func(cfg *config.Config) {
		cfg.Auth.AllowedEmailDomain = "uni.edu"
	})
	ctx := context.Background()
	session := &entity.Session{Token: "token", Identity: newcomer}

	fx.auth.EXPECT().SignUp(ctx, newcomer.Email, "secret1").Return(&newcomer, nil)
	fx.auth.EXPECT().SignIn(ctx, newcomer.Email, "secret1").Return(session, nil)
	fx.auth.EXPECT().VerificationLink(ctx, newcomer.Email).Return("http://localhost/auth/verify?token=abc", nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *service.MailMessage) bool {
			return msg.To[0] == newcomer.Email &&
				msg.Subject == "txtChange: Verify your email" &&
				strings.Contains(msg.Body, "Hi Ada,") &&
				strings.Contains(msg.Body, "http://localhost/auth/verify?token=abc")
		})).
		Return(nil)

	got, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:     "Ada.L@Uni.edu",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestAccountService_Register_Rejections(t *testing.T) {
	fx := createTestAccountService(t, func(cfg *config.Config) {
		cfg.Auth.AllowedEmailDomain = "uni.edu"
	})
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "ada@gmail.com", Password: "secret1", FirstName: "A", LastName: "L"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailDomainNotAllowed))

	_, err = fx.service.Register(ctx, usecase.RegisterInput{Email: "ada@uni.edu", Password: "123", FirstName: "A", LastName: "L"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Register(ctx, usecase.RegisterInput{Email: "not-an-email", Password: "secret1", FirstName: "A", LastName: "L"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Register_SignUpError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.auth.EXPECT().SignUp(ctx, newcomer.Email, "secret1").Return(nil, domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: newcomer.Email, Password: "secret1", FirstName: "A", LastName: "L"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Register_MailError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.auth.EXPECT().SignUp(ctx, newcomer.Email, "secret1").Return(&newcomer, nil)
	fx.auth.EXPECT().SignIn(ctx, newcomer.Email, "secret1").Return(&entity.Session{Token: "t", Identity: newcomer}, nil)
	fx.auth.EXPECT().VerificationLink(ctx, newcomer.Email).Return("link", nil)
	fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("relay down"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: newcomer.Email, Password: "secret1", FirstName: "A", LastName: "L"})
	assert.ErrorContains(t, err, "relay down")
}

func TestAccountService_CompleteRegistration_Verified(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	actor := newcomer
	actor.EmailVerified = true

	user, err := fx.service.CompleteRegistration(ctx, actor, usecase.ProfileInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "ada.l", user.DisplayName)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Empty(t, user.BookListings)

	stored, err := fx.userRepo.FindByID(ctx, actor.UserID)
	require.NoError(t, err)
	assert.Equal(t, actor.Email, stored.Email)

	again, err := fx.service.CompleteRegistration(ctx, actor, usecase.ProfileInput{FirstName: "Other", LastName: "Name"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.FirstName)
}

func TestAccountService_CompleteRegistration_WaitsForVerification(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.auth.EXPECT().IsVerified(mock.Anything, newcomer.UserID).Return(false, nil).Twice()
	fx.auth.EXPECT().IsVerified(mock.Anything, newcomer.UserID).Return(true, nil).Once()

	user, err := fx.service.CompleteRegistration(ctx, newcomer, usecase.ProfileInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, newcomer.UserID, user.ID)
}

func TestAccountService_CompleteRegistration_Timeout(t *testing.T) {
	for _, deleteUnverified := range []bool{false, true} {
		fx := createTestAccountService(t, func(cfg *config.Config) {
			cfg.Account.DeleteUnverified = deleteUnverified
		})
		ctx := context.Background()

		fx.auth.EXPECT().IsVerified(mock.Anything, newcomer.UserID).Return(false, nil)
		if deleteUnverified {
			fx.auth.EXPECT().DeleteAccount(ctx, newcomer.UserID).Return(nil).Once()
		}

		_, err := fx.service.CompleteRegistration(ctx, newcomer, usecase.ProfileInput{FirstName: "Ada", LastName: "Lovelace"})
		assert.True(t, errors.Is(err, domainerrors.ErrVerificationPending))

		_, err = fx.userRepo.FindByID(ctx, newcomer.UserID)
		assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	}
}

func TestAccountService_CompleteRegistration_CheckError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.auth.EXPECT().IsVerified(mock.Anything, newcomer.UserID).Return(false, errors.New("provider down")).Once()

	_, err := fx.service.CompleteRegistration(ctx, newcomer, usecase.ProfileInput{FirstName: "Ada", LastName: "Lovelace"})
	assert.ErrorContains(t, err, "provider down")
	assert.False(t, errors.Is(err, domainerrors.ErrVerificationPending))
}

func TestAccountService_SignIn(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	session := &entity.Session{Token: "token", Identity: newcomer}

	fx.auth.EXPECT().SignIn(ctx, newcomer.Email, "secret1").Return(session, nil).Twice()

	out, err := fx.service.SignIn(ctx, "ADA.L@uni.edu", "secret1")
	require.NoError(t, err)
	assert.Equal(t, session, out.Session)
	assert.Nil(t, out.User)

	require.NoError(t, fx.userRepo.Create(ctx, &entity.User{ID: newcomer.UserID, Email: newcomer.Email}))
	out, err = fx.service.SignIn(ctx, newcomer.Email, "secret1")
	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.Equal(t, newcomer.UserID, out.User.ID)

	fx.auth.EXPECT().SignIn(ctx, newcomer.Email, "wrong").Return(nil, domainerrors.ErrInvalidCredentials)
	_, err = fx.service.SignIn(ctx, newcomer.Email, "wrong")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_SignOutProfileAndVerification(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.auth.EXPECT().SignOut(ctx, newcomer).Return(nil)
	require.NoError(t, fx.service.SignOut(ctx, newcomer))

	_, err := fx.service.Profile(ctx, newcomer)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	err = fx.service.ConfirmVerification(ctx, " ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	fx.auth.EXPECT().ConfirmVerification(ctx, "code").Return(nil)
	require.NoError(t, fx.service.ConfirmVerification(ctx, "code"))
}
