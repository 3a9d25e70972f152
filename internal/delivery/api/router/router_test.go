package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"txtchange/config"
	apimiddleware "txtchange/internal/delivery/api/middleware"
	"txtchange/internal/delivery/api/response"
	"txtchange/internal/delivery/api/router/handler"
	"txtchange/internal/delivery/api/validator"
	deliverycontext "txtchange/internal/delivery/context"
	"txtchange/internal/delivery/middleware"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	servicemocks "txtchange/internal/mocks/service"
	usecasemocks "txtchange/internal/mocks/usecase"
	"txtchange/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	sellerIdentity  = entity.Identity{UserID: "seller-1", Email: "sam.seller@uni.edu", EmailVerified: true}
	buyerIdentity   = entity.Identity{UserID: "buyer-1", Email: "bo.buyer@uni.edu", EmailVerified: true}
	pendingIdentity = entity.Identity{UserID: "pending-1", Email: "pat.pending@uni.edu"}
)

type routerFixtures struct {
	e        *echo.Echo
	auth     *servicemocks.MockAuthProvider
	account  *usecasemocks.MockAccountUsecase
	listing  *usecasemocks.MockListingUsecase
	interest *usecasemocks.MockInterestUsecase
	search   *usecasemocks.MockSearchUsecase
	contact  *usecasemocks.MockContactUsecase
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func createTestRouter(t *testing.T, testRoutes bool) *routerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: testRoutes}}

	fx := &routerFixtures{
		auth:     servicemocks.NewMockAuthProvider(t),
		account:  usecasemocks.NewMockAccountUsecase(t),
		listing:  usecasemocks.NewMockListingUsecase(t),
		interest: usecasemocks.NewMockInterestUsecase(t),
		search:   usecasemocks.NewMockSearchUsecase(t),
		contact:  usecasemocks.NewMockContactUsecase(t),
	}

	tokens := map[string]entity.Identity{
		"seller-token":  sellerIdentity,
		"buyer-token":   buyerIdentity,
		"pending-token": pendingIdentity,
	}
	fx.auth.EXPECT().VerifyToken(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, token string) (*entity.Identity, error) {
			identity, ok := tokens[token]
			if !ok {
				return nil, domainerrors.ErrUnauthorized
			}

			return &identity, nil
		}).Maybe()

	e := echo.New()
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	r := NewRouter(RouterParams{
		AccountHandler:  handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: fx.account, Logger: logger}),
		ListingHandler:  handler.NewListingHandler(handler.ListingHandlerParams{ListingUC: fx.listing, ContactUC: fx.contact, Logger: logger}),
		InterestHandler: handler.NewInterestHandler(handler.InterestHandlerParams{InterestUC: fx.interest, Logger: logger}),
		SearchHandler:   handler.NewSearchHandler(handler.SearchHandlerParams{SearchUC: fx.search, Logger: logger}),
		TestHandler:     handler.NewTestHandler(),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(fx.auth, logger),
		Config:          cfg,
	})
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)
	fx.e = e

	return fx
}

func (fx *routerFixtures) do(t *testing.T, method, target, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get(echo.HeaderContentType) != "image/png" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func sampleBook() *entity.Book {
	expressed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	return &entity.Book{
		ID:         "book-1",
		OwnerID:    sellerIdentity.UserID,
		OwnerEmail: sellerIdentity.Email,
		Title:      "The C Programming Language",
		Author:     "Kernighan",
		ISBN:       "9780131103627",
		Category:   entity.CategoryComputingEngineering,
		Condition:  entity.ConditionGood,
		Price:      25,
		Interests: map[string]*entity.Interest{
			"buyer-1seller-1": {ID: "buyer-1seller-1", BuyerID: "buyer-1", BuyerEmail: buyerIdentity.Email, ExpressedAt: expressed},
			"buyer-2seller-1": {ID: "buyer-2seller-1", BuyerID: "buyer-2", BuyerEmail: "other@uni.edu", ExpressedAt: expressed.Add(time.Minute)},
		},
	}
}

func TestRouter_Public(t *testing.T) {
	fx := createTestRouter(t, false)

	t.Run("health", func(t *testing.T) {
		rec, _ := fx.do(t, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("categories and conditions", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodGet, "/api/v1/categories", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var catalog handler.CatalogResponse
		require.NoError(t, json.Unmarshal(env.Data, &catalog))
		assert.Len(t, catalog.Categories, 12)
		assert.Equal(t, "Business and Economics", catalog.Categories[0])
		require.Len(t, catalog.Conditions, 6)
		assert.Equal(t, "As New", catalog.Conditions[0].Name)
		assert.NotEmpty(t, catalog.Conditions[0].Description)
	})

	t.Run("test routes disabled", func(t *testing.T) {
		rec, _ := fx.do(t, http.MethodGet, "/test/public", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_Authentication(t *testing.T) {
	fx := createTestRouter(t, true)

	t.Run("missing token", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodGet, "/api/v1/featured", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		rec, _ := fx.do(t, http.MethodGet, "/api/v1/featured", "forged", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unverified email cannot use the marketplace", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodGet, "/api/v1/me", "pending-token", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "EMAIL_NOT_VERIFIED", env.Error.Code)
	})

	t.Run("unverified email can complete registration", func(t *testing.T) {
		fx.account.EXPECT().
			CompleteRegistration(mock.Anything, pendingIdentity, usecase.ProfileInput{FirstName: "Pat", LastName: "Pending"}).
			Return(nil, domainerrors.ErrVerificationPending).Once()

		rec, env := fx.do(t, http.MethodPost, "/auth/register/complete", "pending-token",
			map[string]string{"first_name": "Pat", "last_name": "Pending"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VERIFICATION_PENDING", env.Error.Code)
	})

	t.Run("test route echoes the identity", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodGet, "/test/auth", "pending-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "pending-1", data["user_id"])
		assert.Equal(t, false, data["email_verified"])
	})
}

func TestRouter_Account(t *testing.T) {
	fx := createTestRouter(t, false)

	t.Run("login validates the payload", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.NotNil(t, env.Error.Details)
	})

	t.Run("login returns the session and profile", func(t *testing.T) {
		fx.account.EXPECT().SignIn(mock.Anything, "sam.seller@uni.edu", "secret1").
			Return(&usecase.SignInOutput{
				Session: &entity.Session{Token: "seller-token", Identity: sellerIdentity},
				User:    &entity.User{ID: "seller-1", Email: "sam.seller@uni.edu", DisplayName: "sam.seller"},
			}, nil).Once()

		rec, env := fx.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "sam.seller@uni.edu", "password": "secret1"})
		require.Equal(t, http.StatusOK, rec.Code)

		var session handler.SessionResponse
		require.NoError(t, json.Unmarshal(env.Data, &session))
		assert.Equal(t, "seller-token", session.Token)
		require.NotNil(t, session.User)
		assert.Equal(t, "sam.seller", session.User.DisplayName)
		assert.Empty(t, session.User.BookListings)
		assert.NotNil(t, session.User.BookListings)
	})

	t.Run("register maps domain errors", func(t *testing.T) {
		fx.account.EXPECT().Register(mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
			Return(nil, domainerrors.ErrEmailDomainNotAllowed).Once()

		rec, env := fx.do(t, http.MethodPost, "/auth/register", "",
			map[string]string{"email": "x@gmail.com", "password": "secret1", "first_name": "X", "last_name": "Y"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMAIL_DOMAIN_NOT_ALLOWED", env.Error.Code)
	})

	t.Run("verify requires a token", func(t *testing.T) {
		rec, _ := fx.do(t, http.MethodGet, "/auth/verify", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("verify consumes the code", func(t *testing.T) {
		fx.account.EXPECT().ConfirmVerification(mock.Anything, "abc").Return(nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/auth/verify?token=abc", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("logout", func(t *testing.T) {
		fx.account.EXPECT().SignOut(mock.Anything, buyerIdentity).Return(nil).Once()

		rec, _ := fx.do(t, http.MethodPost, "/auth/logout", "buyer-token", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRouter_Listings(t *testing.T) {
	fx := createTestRouter(t, false)

	t.Run("create passes the seller's input", func(t *testing.T) {
		input := usecase.CreateListingInput{ISBN: "9780131103627", Price: "25", Condition: "Good", Category: "Computing and Engineering"}
		fx.listing.EXPECT().Create(mock.Anything, sellerIdentity, input).Return(sampleBook(), nil).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/listings", "seller-token",
			map[string]string{"isbn": "9780131103627", "price": "25", "condition": "Good", "mcategory": "Computing and Engineering"})
		require.Equal(t, http.StatusCreated, rec.Code)

		var book handler.BookResponse
		require.NoError(t, json.Unmarshal(env.Data, &book))
		assert.Equal(t, "book-1", book.ID)
		assert.Equal(t, "Computing and Engineering", book.Category)
		assert.Len(t, book.Interests, 2, "the owner sees every interest")
	})

	t.Run("lookup miss", func(t *testing.T) {
		fx.listing.EXPECT().Create(mock.Anything, sellerIdentity, mock.Anything).Return(nil, domainerrors.ErrLookupNoResults).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/listings", "seller-token", map[string]string{"isbn": "1"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "LOOKUP_NO_RESULTS", env.Error.Code)
		assert.Equal(t, "No results found", env.Error.Message)
	})

	t.Run("a buyer only sees their own interest", func(t *testing.T) {
		fx.listing.EXPECT().Get(mock.Anything, "book-1").Return(sampleBook(), nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/listings/book-1", "buyer-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var book handler.BookResponse
		require.NoError(t, json.Unmarshal(env.Data, &book))
		require.Len(t, book.Interests, 1)
		assert.Equal(t, "buyer-1seller-1", book.Interests[0].ID)
		assert.Equal(t, "PENDING", book.Interests[0].State)
	})

	t.Run("mine is not captured by the id route", func(t *testing.T) {
		fx.listing.EXPECT().ListOwned(mock.Anything, sellerIdentity).Return([]*entity.Book{}, nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/listings/mine", "seller-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", string(env.Data))
	})

	t.Run("confirm rejects an unknown party", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodPost, "/api/v1/listings/book-1/confirm", "seller-token",
			map[string]string{"party": "broker", "interest_id": "buyer-1seller-1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("confirm toggles the caller's side", func(t *testing.T) {
		interest := &entity.Interest{ID: "buyer-1seller-1", BuyerID: "buyer-1", BuyerConfirmed: true, SellerConfirmed: true}
		fx.listing.EXPECT().ToggleConfirm(mock.Anything, sellerIdentity, "book-1", "buyer-1seller-1", entity.PartySeller).
			Return(&usecase.ConfirmOutput{Interest: interest, State: entity.InterestBothConfirmed, Completed: true}, nil).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/listings/book-1/confirm", "seller-token",
			map[string]string{"party": "seller", "interest_id": "buyer-1seller-1"})
		require.Equal(t, http.StatusOK, rec.Code)

		var out handler.ConfirmResponse
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.True(t, out.Completed)
		assert.Equal(t, "BOTH_CONFIRMED", out.State)
	})

	t.Run("confirm maps permission errors", func(t *testing.T) {
		fx.listing.EXPECT().ToggleConfirm(mock.Anything, buyerIdentity, "book-1", "buyer-1seller-1", entity.PartySeller).
			Return(nil, domainerrors.ErrBuyerCannotConfirmAsSeller).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/listings/book-1/confirm", "buyer-token",
			map[string]string{"party": "seller", "interest_id": "buyer-1seller-1"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "BUYER_CANNOT_CONFIRM_AS_SELLER", env.Error.Code)
	})

	t.Run("partial write hides details", func(t *testing.T) {
		fx.listing.EXPECT().Delete(mock.Anything, sellerIdentity, "book-1").
			Return(domainerrors.ErrPartialWrite.WithDetails("users/buyer-1 saved_books")).Once()

		rec, env := fx.do(t, http.MethodDelete, "/api/v1/listings/book-1", "seller-token", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "PARTIAL_WRITE", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("delete", func(t *testing.T) {
		fx.listing.EXPECT().Delete(mock.Anything, sellerIdentity, "book-1").Return(nil).Once()

		rec, _ := fx.do(t, http.MethodDelete, "/api/v1/listings/book-1", "seller-token", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("share code is a png", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G'}
		fx.listing.EXPECT().ShareCode(mock.Anything, "book-1").Return(png, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/listings/book-1/qr", "buyer-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("contact draft", func(t *testing.T) {
		draft := entity.NewContactDraft("The C Programming Language", 25, sellerIdentity.Email, buyerIdentity.Email, "")
		fx.contact.EXPECT().ContactSeller(mock.Anything, buyerIdentity, "book-1").Return(draft, nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/listings/book-1/contact", "buyer-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got entity.ContactDraft
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, sellerIdentity.Email, got.To)
		assert.Equal(t, "txtChange: Interest in Book The C Programming Language", got.Subject)
	})

	t.Run("unhandled error becomes a generic 500", func(t *testing.T) {
		fx.listing.EXPECT().ListSaved(mock.Anything, buyerIdentity).Return(nil, errors.New("connection reset")).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/saved", "buyer-token", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, env.Error.Message, "connection reset")
	})
}

func TestRouter_Interests(t *testing.T) {
	fx := createTestRouter(t, false)

	t.Run("add", func(t *testing.T) {
		fx.interest.EXPECT().AddInterest(mock.Anything, buyerIdentity, "book-1").
			Return(&entity.Interest{ID: "buyer-1seller-1", BuyerID: "buyer-1"}, nil).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/listings/book-1/interests", "buyer-token", nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var interest handler.InterestResponse
		require.NoError(t, json.Unmarshal(env.Data, &interest))
		assert.Equal(t, "buyer-1seller-1", interest.ID)
	})

	t.Run("remove", func(t *testing.T) {
		fx.interest.EXPECT().RemoveInterest(mock.Anything, sellerIdentity, "book-1", "buyer-1seller-1").Return(nil).Once()

		rec, _ := fx.do(t, http.MethodDelete, "/api/v1/listings/book-1/interests/buyer-1seller-1", "seller-token", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("seller view", func(t *testing.T) {
		book := sampleBook()
		var seq iter.Seq2[*usecase.SellerInterest, error] = func(yield func(*usecase.SellerInterest, error) bool) {
			yield(&usecase.SellerInterest{Book: book, Interests: book.InterestList()}, nil)
		}
		fx.interest.EXPECT().ListSellerInterest(mock.Anything, sellerIdentity).Return(seq).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/interests/seller", "seller-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out []handler.SellerInterestResponse
		require.NoError(t, json.Unmarshal(env.Data, &out))
		require.Len(t, out, 1)
		require.Len(t, out[0].Interests, 2)
		assert.Equal(t, "buyer-1seller-1", out[0].Interests[0].ID)
		assert.Equal(t, "buyer-2seller-1", out[0].Interests[1].ID)
	})

	t.Run("seller view query error", func(t *testing.T) {
		var seq iter.Seq2[*usecase.SellerInterest, error] = func(yield func(*usecase.SellerInterest, error) bool) {
			yield(nil, domainerrors.ErrUserNotReady)
		}
		fx.interest.EXPECT().ListSellerInterest(mock.Anything, sellerIdentity).Return(seq).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/interests/seller", "seller-token", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "USER_NOT_READY", env.Error.Code)
	})
}

func TestRouter_Search(t *testing.T) {
	fx := createTestRouter(t, false)

	t.Run("by field", func(t *testing.T) {
		fx.search.EXPECT().SearchByField(mock.Anything, buyerIdentity, repository.BookFieldTitle, "The C Programming Language").
			Return([]*entity.Book{sampleBook()}, nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/search?field=title&value=The+C+Programming+Language", "buyer-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var books []handler.BookResponse
		require.NoError(t, json.Unmarshal(env.Data, &books))
		require.Len(t, books, 1)
		assert.Equal(t, 25.0, books[0].Price)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodGet, "/api/v1/search?field=price&value=1", "buyer-token", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("by category with an escaped name", func(t *testing.T) {
		fx.search.EXPECT().SearchByCategory(mock.Anything, buyerIdentity, entity.CategoryComputingEngineering).
			Return([]*entity.Book{}, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/search/category/Computing%20and%20Engineering", "buyer-token", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("featured", func(t *testing.T) {
		fx.search.EXPECT().Featured(mock.Anything, buyerIdentity).Return([]*entity.Book{}, nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/featured", "buyer-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", string(env.Data))
	})

	t.Run("request id is echoed", func(t *testing.T) {
		fx.search.EXPECT().Featured(mock.Anything, buyerIdentity).Return([]*entity.Book{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/featured", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer buyer-token")
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()
		fx.e.ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, "req-42", env.Meta.RequestID)
		assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}
