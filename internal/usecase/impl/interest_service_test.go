package impl

import (
	"context"
	"testing"

	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/errors"
	mockRepo "txtchange/internal/mocks/repository"
	mockService "txtchange/internal/mocks/service"
	"txtchange/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInterestService_AddInterest(t *testing.T) {
	for _, mode := range consistencyModes {
		t.Run(mode, func(t *testing.T) {
			fx := createMarketplace(t, mode)
			ctx := context.Background()
			book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)

			interest, err := fx.interest.AddInterest(ctx, buyer, book.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.InterestID(buyer.UserID, seller.UserID), interest.ID)
			assert.Equal(t, buyer.UserID, interest.BuyerID)
			assert.Equal(t, buyer.Email, interest.BuyerEmail)
			assert.Equal(t, buyer.UserID, interest.BuyerDisplayName)
			assert.False(t, interest.BuyerConfirmed)
			assert.False(t, interest.SellerConfirmed)

			flat, byCategory := fx.copies(t, book.ID, entity.CategoryOther)
			require.Len(t, flat.InterestList(), 1)
			assert.Equal(t, flat, byCategory)

			fx.mu.Lock()
			require.Len(t, fx.events, 1)
			event := fx.events[0]
			fx.mu.Unlock()
			assert.Equal(t, constants.EventInterestAdded, event.Type)
			assert.Equal(t, buyer.Email, event.BuyerEmail)
			assert.Equal(t, seller.Email, event.SellerEmail)
		})
	}
}

func TestInterestService_AddInterest_Idempotent(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)

	first, err := fx.interest.AddInterest(ctx, buyer, book.ID)
	require.NoError(t, err)
	_, err = fx.listing.ToggleBuyerConfirm(ctx, buyer, book.ID, first.ID)
	require.NoError(t, err)

	again, err := fx.interest.AddInterest(ctx, buyer, book.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, again.BuyerConfirmed)

	stored, err := fx.listing.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Interests, 1)
	assert.Equal(t, []string{constants.EventInterestAdded}, fx.eventTypes())
}

func TestInterestService_AddInterest_Rejections(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)

	_, err := fx.interest.AddInterest(ctx, seller, book.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnerCannotExpressInterest))

	_, err = fx.interest.AddInterest(ctx, buyer, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))

	stored, err := fx.listing.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Interests)
}

func TestInterestService_AddInterest_NameFromEmailWithoutProfile(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)

	stranger := entity.Identity{UserID: "stranger", Email: "jane.doe@uni.edu", EmailVerified: true}
	interest, err := fx.interest.AddInterest(ctx, stranger, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", interest.BuyerDisplayName)
}

func TestInterestService_AddInterest_PartialWrite(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyIndependent)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
	fx.failWrites(inCollection(string(entity.CategoryOther)))

	_, err := fx.interest.AddInterest(ctx, buyer, book.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPartialWrite))
	assert.Empty(t, fx.eventTypes())

	flat, byCategory := fx.copies(t, book.ID, entity.CategoryOther)
	assert.Len(t, flat.Interests, 1)
	assert.Empty(t, byCategory.Interests)
}

func TestInterestService_RemoveInterest(t *testing.T) {
	for _, mode := range consistencyModes {
		t.Run(mode, func(t *testing.T) {
			fx := createMarketplace(t, mode)
			ctx := context.Background()
			book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)

			byBuyer, err := fx.interest.AddInterest(ctx, buyer, book.ID)
			require.NoError(t, err)
			bySaver, err := fx.interest.AddInterest(ctx, saver, book.ID)
			require.NoError(t, err)

			err = fx.interest.RemoveInterest(ctx, saver, book.ID, byBuyer.ID)
			assert.True(t, errors.Is(err, domainerrors.ErrNotInterestParty))

			require.NoError(t, fx.interest.RemoveInterest(ctx, buyer, book.ID, byBuyer.ID))
			require.NoError(t, fx.interest.RemoveInterest(ctx, seller, book.ID, bySaver.ID))

			err = fx.interest.RemoveInterest(ctx, buyer, book.ID, byBuyer.ID)
			assert.True(t, errors.Is(err, domainerrors.ErrInterestNotFound))

			flat, byCategory := fx.copies(t, book.ID, entity.CategoryOther)
			assert.Empty(t, flat.Interests)
			assert.Equal(t, flat, byCategory)
		})
	}
}

func TestInterestService_ListSellerInterest_Restartable(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	first := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
	fx.createListing(t, seller, clrsISBN, "80", entity.CategoryOther)
	fx.createListing(t, buyer, clrsISBN, "60", entity.CategoryOther)

	seq := fx.interest.ListSellerInterest(ctx, seller)

	collect := func() []*usecase.SellerInterest {
		var out []*usecase.SellerInterest
		for item, err := range seq {
			require.NoError(t, err)
			out = append(out, item)
		}

		return out
	}

	before := collect()
	require.Len(t, before, 2)
	for _, item := range before {
		assert.Empty(t, item.Interests)
	}

	_, err := fx.interest.AddInterest(ctx, buyer, first.ID)
	require.NoError(t, err)

	after := collect()
	require.Len(t, after, 2)
	assert.Equal(t, first.ID, after[0].Book.ID)
	require.Len(t, after[0].Interests, 1)
	assert.Equal(t, buyer.UserID, after[0].Interests[0].BuyerID)

	count := 0
	for range seq {
		count++

		break
	}
	assert.Equal(t, 1, count)
}

func TestInterestService_ListSellerInterest_QueryError(t *testing.T) {
	bookRepo := mockRepo.NewMockBookRepository(t)
	srv := NewInterestService(InterestServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		BookRepo:  bookRepo,
		UserRepo:  mockRepo.NewMockUserRepository(t),
		Publisher: mockService.NewMockEventPublisher(t),
		Logger:    discardLogger(),
	})
	ctx := context.Background()

	bookRepo.EXPECT().
		FindByOwner(mock.Anything, seller.UserID).
		Return(nil, errors.New("store offline"))

	var errs []error
	for item, err := range srv.ListSellerInterest(ctx, seller) {
		assert.Nil(t, item)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "store offline")
}
