package document_test

import (
	"context"
	"testing"
	"time"

	"txtchange/config"
	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/entity"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"
	"txtchange/internal/infra/persistence/document"
	"txtchange/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBook() *entity.Book {
	return &entity.Book{
		ID:          "book-1",
		OwnerID:     "seller",
		OwnerEmail:  "seller@example.edu",
		Title:       "Calculus",
		Author:      "Stewart",
		ISBN:        "9780538497817",
		ImageURL:    "http://img",
		Description: "Limits and derivatives",
		Category:    entity.CategoryMathematicsStatistics,
		Condition:   entity.ConditionGood,
		Price:       42.5,
		Interests:   map[string]*entity.Interest{},
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestBookRepository_RoundTripAndInterestUpdates(t *testing.T) {
	ctx := context.Background()
	repo := document.NewBookRepository(memory.NewStore())
	book := sampleBook()

	require.NoError(t, repo.Save(ctx, repository.BooksCollection, book))

	found, err := repo.FindByID(ctx, repository.BooksCollection, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, found)

	interest := &entity.Interest{
		ID:          entity.InterestID("buyer", "seller"),
		BuyerID:     "buyer",
		BuyerEmail:  "buyer@example.edu",
		ExpressedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.PutInterest(ctx, repository.BooksCollection, book.ID, interest))
	require.NoError(t, repo.SetConfirmation(ctx, repository.BooksCollection, book.ID, interest.ID, entity.PartySeller, true))

	found, err = repo.FindByID(ctx, repository.BooksCollection, book.ID)
	require.NoError(t, err)
	got, ok := found.Interest(interest.ID)
	require.True(t, ok)
	assert.Equal(t, entity.InterestSellerConfirmed, got.State())
	assert.Equal(t, interest.ExpressedAt, got.ExpressedAt)

	require.NoError(t, repo.RemoveInterest(ctx, repository.BooksCollection, book.ID, interest.ID))
	found, err = repo.FindByID(ctx, repository.BooksCollection, book.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Interests)
}

func TestBookRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := document.NewBookRepository(memory.NewStore())

	_, err := repo.FindByID(ctx, repository.BooksCollection, "missing")
	assert.True(t, errors.Is(err, repository.ErrBookNotFound))

	err = repo.UpdatePriceCondition(ctx, repository.BooksCollection, "missing", 1, entity.ConditionFair)
	assert.True(t, errors.Is(err, repository.ErrBookNotFound))
}

func TestBookRepository_FindByFieldAndOwner(t *testing.T) {
	ctx := context.Background()
	repo := document.NewBookRepository(memory.NewStore())

	first := sampleBook()
	second := sampleBook()
	second.ID = "book-2"
	second.OwnerID = "other"
	second.Title = "Linear Algebra"
	require.NoError(t, repo.Save(ctx, repository.BooksCollection, first))
	require.NoError(t, repo.Save(ctx, repository.BooksCollection, second))

	byISBN, err := repo.FindByField(ctx, repository.BooksCollection, repository.BookFieldISBN, first.ISBN)
	require.NoError(t, err)
	assert.Len(t, byISBN, 2)

	byTitle, err := repo.FindByField(ctx, repository.BooksCollection, repository.BookFieldTitle, "Linear Algebra")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "book-2", byTitle[0].ID)

	owned, err := repo.FindByOwner(ctx, "seller")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "book-1", owned[0].ID)

	_, err = repo.FindByField(ctx, repository.BooksCollection, repository.BookField("price"), "1")
	assert.Error(t, err)
}

func TestUserRepository_ReferenceSets(t *testing.T) {
	ctx := context.Background()
	repo := document.NewUserRepository(memory.NewStore())

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "a@example.edu", DisplayName: "a"}))
	require.NoError(t, repo.AddListing(ctx, "u1", "b1"))
	require.NoError(t, repo.AddListing(ctx, "u1", "b1"))
	require.NoError(t, repo.SaveBook(ctx, "u1", "b9"))

	user, err := repo.FindByEmail(ctx, "a@example.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, user.BookListings)
	assert.True(t, user.HasSaved("b9"))

	savers, err := repo.FindBySavedBook(ctx, "b9")
	require.NoError(t, err)
	require.Len(t, savers, 1)
	assert.Equal(t, "u1", savers[0].ID)

	require.NoError(t, repo.RemoveListing(ctx, "u1", "b1"))
	require.NoError(t, repo.UnsaveBook(ctx, "u1", "b9"))
	user, err = repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, user.BookListings)
	assert.Empty(t, user.SavedBooks)

	err = repo.AddListing(ctx, "ghost", "b1")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestCredentialRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := document.NewCredentialRepository(memory.NewStore())

	require.NoError(t, repo.Create(ctx, &entity.Credential{UserID: "u1", Email: "A@Example.edu", PasswordHash: "h"}))
	require.NoError(t, repo.MarkVerified(ctx, "a@example.edu"))
	require.NoError(t, repo.RevokeTokens(ctx, "a@example.edu", 3))

	cred, err := repo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, cred.Verified)
	assert.Equal(t, int64(3), cred.TokenGeneration)
	assert.Equal(t, "a@example.edu", cred.Email)

	require.NoError(t, repo.Delete(ctx, "a@example.edu"))
	_, err = repo.FindByEmail(ctx, "a@example.edu")
	assert.True(t, errors.Is(err, repository.ErrCredentialNotFound))
}

func TestTransactionManager_Modes(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		consistency string
		atomic      bool
		persisted   bool
	}{
		{consistency: constants.ConsistencyTransactional, atomic: true, persisted: false},
		{consistency: constants.ConsistencyIndependent, atomic: false, persisted: true},
	} {
		t.Run(tc.consistency, func(t *testing.T) {
			store := memory.NewStore()
			cfg := &config.Config{Store: config.StoreConfig{Consistency: tc.consistency}}
			tm := document.NewTransactionManager(document.TransactionParams{Store: store, Config: cfg})
			assert.Equal(t, tc.atomic, tm.Atomic())

			boom := errors.New("boom")
			err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				if err := f.BookRepo().Save(ctx, repository.BooksCollection, sampleBook()); err != nil {
					return err
				}

				return boom
			})
			assert.True(t, errors.Is(err, boom))

			_, err = document.NewBookRepository(store).FindByID(ctx, repository.BooksCollection, "book-1")
			assert.Equal(t, tc.persisted, err == nil)
		})
	}
}
