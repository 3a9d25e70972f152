package impl

import (
	"context"
	"testing"
	"time"

	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookIDs(books []*entity.Book) []string {
	ids := make([]string, 0, len(books))
	for _, book := range books {
		ids = append(ids, book.ID)
	}

	return ids
}

func TestSearchService_SearchByField_ExcludesOwnListings(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryComputingEngineering)

	found, err := fx.search.SearchByField(ctx, buyer, repository.BookFieldISBN, knrISBN)
	require.NoError(t, err)
	assert.Equal(t, []string{book.ID}, bookIDs(found))

	found, err = fx.search.SearchByField(ctx, buyer, repository.BookFieldTitle, "Title "+knrISBN)
	require.NoError(t, err)
	assert.Equal(t, []string{book.ID}, bookIDs(found))

	own, err := fx.search.SearchByField(ctx, seller, repository.BookFieldISBN, knrISBN)
	require.NoError(t, err)
	assert.NotNil(t, own)
	assert.Empty(t, own)
}

func TestSearchService_SortsByPriceStable(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	first := fx.createListing(t, seller, knrISBN, "30", entity.CategoryOther)
	cheapest := fx.createListing(t, seller, knrISBN, "10", entity.CategoryOther)
	third := fx.createListing(t, seller, knrISBN, "30.00", entity.CategoryOther)
	fx.createListing(t, buyer, knrISBN, "5", entity.CategoryOther)

	found, err := fx.search.SearchByField(ctx, buyer, repository.BookFieldISBN, knrISBN)
	require.NoError(t, err)
	assert.Equal(t, []string{cheapest.ID, first.ID, third.ID}, bookIDs(found))

	byCategory, err := fx.search.SearchByCategory(ctx, buyer, entity.CategoryOther)
	require.NoError(t, err)
	assert.Equal(t, []string{cheapest.ID, first.ID, third.ID}, bookIDs(byCategory))
}

func TestSearchService_SearchByCategory(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyIndependent)
	ctx := context.Background()
	maths := fx.createListing(t, seller, knrISBN, "30", entity.CategoryMathematicsStatistics)
	fx.createListing(t, seller, clrsISBN, "30", entity.CategoryComputingEngineering)

	found, err := fx.search.SearchByCategory(ctx, buyer, entity.CategoryMathematicsStatistics)
	require.NoError(t, err)
	assert.Equal(t, []string{maths.ID}, bookIDs(found))

	empty, err := fx.search.SearchByCategory(ctx, buyer, entity.CategoryEducation)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSearchService_Featured(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	fx.createListing(t, buyer, knrISBN, "30", entity.CategoryOther)
	other := fx.createListing(t, seller, knrISBN, "40", entity.CategoryOther)
	computing := fx.createListing(t, seller, clrsISBN, "80", entity.CategoryComputingEngineering)

	featured, err := fx.search.Featured(ctx, buyer)
	require.NoError(t, err)
	assert.Equal(t, []string{computing.ID, other.ID}, bookIDs(featured))

	own, err := fx.search.Featured(ctx, seller)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, buyer.UserID, own[0].OwnerID)
}

func TestSearchService_InvalidInput(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()

	found, err := fx.search.SearchByField(ctx, buyer, repository.BookField("publisher"), "x")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.NotNil(t, found)

	found, err = fx.search.SearchByField(ctx, buyer, repository.BookFieldTitle, "  ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.NotNil(t, found)

	found, err = fx.search.SearchByCategory(ctx, buyer, entity.Category("Astrology"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.NotNil(t, found)
}

func TestSearchService_UserNotReady(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	fx.createListing(t, seller, knrISBN, "30", entity.CategoryOther)
	ghost := entity.Identity{UserID: "ghost", Email: "ghost@uni.edu"}

	start := time.Now()
	found, err := fx.search.SearchByCategory(ctx, ghost, entity.CategoryOther)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotReady))
	assert.NotNil(t, found)
	assert.Empty(t, found)
	assert.GreaterOrEqual(t, time.Since(start), fx.cfg.Search.UserLoadTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSearchService_UserAppearsWhilePolling(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "30", entity.CategoryOther)
	late := entity.Identity{UserID: "late", Email: "late@uni.edu", EmailVerified: true}

	timer := time.AfterFunc(30*time.Millisecond, func() {
		_ = fx.userRepo.Create(context.Background(), &entity.User{ID: late.UserID, Email: late.Email})
	})
	defer timer.Stop()

	found, err := fx.search.SearchByCategory(ctx, late, entity.CategoryOther)
	require.NoError(t, err)
	assert.Equal(t, []string{book.ID}, bookIDs(found))
}

func TestSearchService_CanceledContext(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	found, err := fx.search.SearchByCategory(ctx, entity.Identity{UserID: "ghost"}, entity.CategoryOther)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotReady))
	assert.NotNil(t, found)
}
