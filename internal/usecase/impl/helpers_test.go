package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"txtchange/config"
	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/entity"
	"txtchange/internal/domain/repository"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"
	"txtchange/internal/infra/persistence/document"
	"txtchange/internal/infra/persistence/memory"
	mockService "txtchange/internal/mocks/service"
	"txtchange/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var consistencyModes = []string{constants.ConsistencyTransactional, constants.ConsistencyIndependent}

var errInjected = errors.New("injected fault")

var (
	seller = entity.Identity{UserID: "seller", Email: "seller@uni.edu", EmailVerified: true}
	buyer  = entity.Identity{UserID: "buyer", Email: "buyer@uni.edu", EmailVerified: true}
	saver  = entity.Identity{UserID: "saver", Email: "saver@uni.edu", EmailVerified: true}
)

// marketplaceFixtures wires the marketplace services onto an in-memory store.
type marketplaceFixtures struct {
	store     *memory.Store
	cfg       *config.Config
	bookRepo  repository.BookRepository
	userRepo  repository.UserRepository
	lookup    *mockService.MockBookLookup
	publisher *mockService.MockEventPublisher
	qrCode    *mockService.MockQRCodeService
	listing   usecase.ListingUsecase
	interest  usecase.InterestUsecase
	search    usecase.SearchUsecase
	contact   usecase.ContactUsecase

	mu     sync.Mutex
	events []*service.ListingEvent
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(consistency string) *config.Config {
	return &config.Config{
		Store:   config.StoreConfig{Provider: constants.StoreProviderMemory, Consistency: consistency},
		Listing: &config.ListingConfig{SupportEmail: "support@txtchange.test"},
		Search: &config.SearchConfig{
			UserLoadTimeout:  200 * time.Millisecond,
			UserLoadInterval: 10 * time.Millisecond,
		},
		Auth: &config.AuthConfig{Provider: constants.AuthProviderLocal},
		Account: &config.AccountConfig{
			VerificationTimeout:  100 * time.Millisecond,
			VerificationInterval: 10 * time.Millisecond,
		},
	}
}

func createMarketplace(t *testing.T, consistency string, configure ...func(*config.Config)) *marketplaceFixtures {
	t.Helper()

	cfg := testConfig(consistency)
	for _, fn := range configure {
		fn(cfg)
	}

	store := memory.NewStore()
	logger := discardLogger()
	txManager := document.NewTransactionManager(document.TransactionParams{Store: store, Config: cfg})

	f := &marketplaceFixtures{
		store:     store,
		cfg:       cfg,
		bookRepo:  document.NewBookRepository(store),
		userRepo:  document.NewUserRepository(store),
		lookup:    mockService.NewMockBookLookup(t),
		publisher: mockService.NewMockEventPublisher(t),
		qrCode:    mockService.NewMockQRCodeService(t),
	}

	f.publisher.EXPECT().
		PublishListingEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.ListingEvent) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, event)

			return nil
		}).
		Maybe()

	f.listing = NewListingService(ListingServiceParams{
		TxManager: txManager,
		BookRepo:  f.bookRepo,
		UserRepo:  f.userRepo,
		Lookup:    f.lookup,
		Publisher: f.publisher,
		QRCode:    f.qrCode,
		Config:    cfg,
		Logger:    logger,
	})
	f.interest = NewInterestService(InterestServiceParams{
		TxManager: txManager,
		BookRepo:  f.bookRepo,
		UserRepo:  f.userRepo,
		Publisher: f.publisher,
		Logger:    logger,
	})
	f.search = NewSearchService(SearchServiceParams{
		BookRepo: f.bookRepo,
		UserRepo: f.userRepo,
		Config:   cfg,
		Logger:   logger,
	})
	f.contact = NewContactService(f.bookRepo, cfg)

	for _, identity := range []entity.Identity{seller, buyer, saver} {
		f.seedUser(t, identity)
	}

	return f
}

func (f *marketplaceFixtures) seedUser(t *testing.T, identity entity.Identity) {
	t.Helper()

	require.NoError(t, f.userRepo.Create(context.Background(), &entity.User{
		ID:           identity.UserID,
		Email:        identity.Email,
		DisplayName:  identity.UserID,
		BookListings: []string{},
		SavedBooks:   []string{},
	}))
}

func (f *marketplaceFixtures) expectLookup(isbn, title string) {
	f.lookup.EXPECT().
		LookupISBN(mock.Anything, isbn).
		Return(&entity.BookMetadata{
			Title:            title,
			Author:           "Author of " + title,
			ImageURL:         "http://books.example/" + isbn + ".jpg",
			Description:      "About " + title,
			ExternalCategory: "Computers",
		}, nil).
		Once()
}

// createListing lists a book through the service and fails the test on error.
func (f *marketplaceFixtures) createListing(t *testing.T, owner entity.Identity, isbn, price string, category entity.Category) *entity.Book {
	t.Helper()

	f.expectLookup(isbn, "Title "+isbn)
	book, err := f.listing.Create(context.Background(), owner, usecase.CreateListingInput{
		ISBN:      isbn,
		Price:     price,
		Condition: string(entity.ConditionGood),
		Category:  string(category),
	})
	require.NoError(t, err)

	return book
}

func (f *marketplaceFixtures) user(t *testing.T, userID string) *entity.User {
	t.Helper()

	user, err := f.userRepo.FindByID(context.Background(), userID)
	require.NoError(t, err)

	return user
}

// copies returns the flat and category copies of a listing; a missing copy is nil.
func (f *marketplaceFixtures) copies(t *testing.T, bookID string, category entity.Category) (flat, byCategory *entity.Book) {
	t.Helper()

	ctx := context.Background()
	flat, err := f.bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
	if !errors.Is(err, repository.ErrBookNotFound) {
		require.NoError(t, err)
	}
	byCategory, err = f.bookRepo.FindByID(ctx, category.Collection(), bookID)
	if !errors.Is(err, repository.ErrBookNotFound) {
		require.NoError(t, err)
	}

	return flat, byCategory
}

func (f *marketplaceFixtures) eventTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	types := make([]string, 0, len(f.events))
	for _, event := range f.events {
		types = append(types, event.Type)
	}

	return types
}

// failWrites makes every mutation matching match fail.
func (f *marketplaceFixtures) failWrites(match func(m document.Mutation) bool) {
	f.store.SetFault(func(m document.Mutation) error {
		if match(m) {
			return errInjected
		}

		return nil
	})
}

func inCollection(collection string) func(m document.Mutation) bool {
	return func(m document.Mutation) bool { return m.Collection == collection }
}
