package impl

import (
	"context"
	"sync"
	"testing"

	"txtchange/config"
	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"
	"txtchange/internal/infra/persistence/document"
	"txtchange/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	knrISBN  = "9780131103627"
	clrsISBN = "9780262033848"
)

func TestListingService_Create_StoresBothCopies(t *testing.T) {
	for _, mode := range consistencyModes {
		t.Run(mode, func(t *testing.T) {
			fx := createMarketplace(t, mode)
			ctx := context.Background()

			fx.lookup.EXPECT().
				LookupISBN(mock.Anything, knrISBN).
				Return(&entity.BookMetadata{Title: "The C Programming Language", Author: "Kernighan, Ritchie"}, nil)

			book, err := fx.listing.Create(ctx, seller, usecase.CreateListingInput{
				ISBN:      knrISBN,
				Price:     "45.00",
				Condition: "Good",
				Category:  "Computing and Engineering",
			})
			require.NoError(t, err)
			assert.NotEmpty(t, book.ID)
			assert.Equal(t, "The C Programming Language", book.Title)
			assert.Equal(t, seller.UserID, book.OwnerID)
			assert.Equal(t, seller.Email, book.OwnerEmail)
			assert.Equal(t, 45.0, book.Price)
			assert.Equal(t, entity.ConditionGood, book.Condition)
			assert.Equal(t, entity.CategoryComputingEngineering, book.Category)
			assert.False(t, book.BuyerConfirmed)
			assert.False(t, book.SellerConfirmed)
			assert.Empty(t, book.InterestList())

			flat, byCategory := fx.copies(t, book.ID, entity.CategoryComputingEngineering)
			require.NotNil(t, flat)
			require.NotNil(t, byCategory)
			assert.Equal(t, flat, byCategory)
			assert.Equal(t, knrISBN, flat.ISBN)
			assert.Empty(t, flat.Interests)

			assert.Equal(t, []string{book.ID}, fx.user(t, seller.UserID).BookListings)
		})
	}
}

func TestListingService_Create_ValidationWritesNothing(t *testing.T) {
	cases := []struct {
		name  string
		input usecase.CreateListingInput
	}{
		{"zero price", usecase.CreateListingInput{ISBN: knrISBN, Price: "0", Condition: "Good", Category: "Other"}},
		{"letters in isbn", usecase.CreateListingInput{ISBN: "abc123", Price: "10", Condition: "Good", Category: "Other"}},
		{"three decimals", usecase.CreateListingInput{ISBN: knrISBN, Price: "10.005", Condition: "Good", Category: "Other"}},
		{"unknown condition", usecase.CreateListingInput{ISBN: knrISBN, Price: "10", Condition: "Mint", Category: "Other"}},
		{"unknown category", usecase.CreateListingInput{ISBN: knrISBN, Price: "10", Condition: "Good", Category: "Astrology"}},
		{"missing isbn", usecase.CreateListingInput{Price: "10", Condition: "Good", Category: "Other"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createMarketplace(t, constants.ConsistencyTransactional)
			ctx := context.Background()

			book, err := fx.listing.Create(ctx, seller, tc.input)
			require.Error(t, err)
			assert.Nil(t, book)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			books, err := fx.bookRepo.FindAll(ctx, repository.BooksCollection, 0)
			require.NoError(t, err)
			assert.Empty(t, books)
			assert.Empty(t, fx.user(t, seller.UserID).BookListings)
		})
	}
}

func TestListingService_Create_LookupMiss(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()

	fx.lookup.EXPECT().
		LookupISBN(mock.Anything, knrISBN).
		Return(nil, domainerrors.ErrLookupNoResults)

	_, err := fx.listing.Create(ctx, seller, usecase.CreateListingInput{
		ISBN: knrISBN, Price: "12", Condition: "Fair", Category: "Other",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLookupNoResults))

	books, err := fx.bookRepo.FindAll(ctx, repository.BooksCollection, 0)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestListingService_Create_StrictISBN(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional, func(cfg *config.Config) {
		cfg.Listing.StrictISBN = true
	})
	ctx := context.Background()

	_, err := fx.listing.Create(ctx, seller, usecase.CreateListingInput{
		ISBN: "9780131103620", Price: "12", Condition: "Fair", Category: "Other",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	book := fx.createListing(t, seller, knrISBN, "12", entity.CategoryOther)
	assert.Equal(t, knrISBN, book.ISBN)
}

func TestListingService_Create_UnknownOwner(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()

	fx.expectLookup(knrISBN, "K&R")
	_, err := fx.listing.Create(ctx, entity.Identity{UserID: "ghost"}, usecase.CreateListingInput{
		ISBN: knrISBN, Price: "12", Condition: "Fair", Category: "Other",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestListingService_Create_FaultBetweenCopies(t *testing.T) {
	category := string(entity.CategoryComputingEngineering)
	input := usecase.CreateListingInput{ISBN: knrISBN, Price: "20", Condition: "Good", Category: category}

	t.Run(constants.ConsistencyIndependent, func(t *testing.T) {
		fx := createMarketplace(t, constants.ConsistencyIndependent)
		ctx := context.Background()
		fx.failWrites(inCollection(category))

		fx.expectLookup(knrISBN, "K&R")
		_, err := fx.listing.Create(ctx, seller, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrPartialWrite))

		flat, err := fx.bookRepo.FindAll(ctx, repository.BooksCollection, 0)
		require.NoError(t, err)
		require.Len(t, flat, 1)
		byCategory, err := fx.bookRepo.FindAll(ctx, category, 0)
		require.NoError(t, err)
		assert.Empty(t, byCategory)
		assert.Equal(t, []string{flat[0].ID}, fx.user(t, seller.UserID).BookListings)
	})

	t.Run(constants.ConsistencyTransactional, func(t *testing.T) {
		fx := createMarketplace(t, constants.ConsistencyTransactional)
		ctx := context.Background()
		fx.failWrites(inCollection(category))

		fx.expectLookup(knrISBN, "K&R")
		_, err := fx.listing.Create(ctx, seller, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))

		flat, err := fx.bookRepo.FindAll(ctx, repository.BooksCollection, 0)
		require.NoError(t, err)
		assert.Empty(t, flat)
		assert.Empty(t, fx.user(t, seller.UserID).BookListings)
	})
}

func TestListingService_EditPriceCondition(t *testing.T) {
	for _, mode := range consistencyModes {
		t.Run(mode, func(t *testing.T) {
			fx := createMarketplace(t, mode)
			ctx := context.Background()
			book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryComputingEngineering)

			updated, err := fx.listing.EditPriceCondition(ctx, seller, book.ID, usecase.EditListingInput{Price: "30.5", Condition: "Fair"})
			require.NoError(t, err)
			assert.Equal(t, 30.5, updated.Price)
			assert.Equal(t, entity.ConditionFair, updated.Condition)

			flat, byCategory := fx.copies(t, book.ID, entity.CategoryComputingEngineering)
			for _, stored := range []*entity.Book{flat, byCategory} {
				require.NotNil(t, stored)
				assert.Equal(t, 30.5, stored.Price)
				assert.Equal(t, entity.ConditionFair, stored.Condition)
			}
		})
	}
}

func TestListingService_EditPriceCondition_Rejections(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)

	_, err := fx.listing.EditPriceCondition(ctx, buyer, book.ID, usecase.EditListingInput{Price: "1", Condition: "Fair"})
	assert.True(t, errors.Is(err, domainerrors.ErrNotBookOwner))

	_, err = fx.listing.EditPriceCondition(ctx, seller, "missing", usecase.EditListingInput{Price: "1", Condition: "Fair"})
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))

	_, err = fx.listing.EditPriceCondition(ctx, seller, book.ID, usecase.EditListingInput{Price: "-3", Condition: "Fair"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	stored, err := fx.listing.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 45.0, stored.Price)
	assert.Equal(t, entity.ConditionGood, stored.Condition)
}

func TestListingService_DualConfirmation_CompletesSale(t *testing.T) {
	orders := map[string][]entity.Party{
		"buyer first":  {entity.PartyBuyer, entity.PartySeller},
		"seller first": {entity.PartySeller, entity.PartyBuyer},
	}

	for _, mode := range consistencyModes {
		for name, order := range orders {
			t.Run(mode+"/"+name, func(t *testing.T) {
				fx := createMarketplace(t, mode)
				ctx := context.Background()
				category := entity.CategoryComputingEngineering
				book := fx.createListing(t, seller, knrISBN, "45", category)

				require.NoError(t, fx.listing.SaveBook(ctx, saver, book.ID))
				interest, err := fx.interest.AddInterest(ctx, buyer, book.ID)
				require.NoError(t, err)
				assert.Equal(t, buyer.UserID+seller.UserID, interest.ID)
				assert.Equal(t, entity.InterestPending, interest.State())

				actors := map[entity.Party]entity.Identity{entity.PartyBuyer: buyer, entity.PartySeller: seller}

				first, err := fx.listing.ToggleConfirm(ctx, actors[order[0]], book.ID, interest.ID, order[0])
				require.NoError(t, err)
				assert.False(t, first.Completed)
				assert.True(t, first.Interest.Confirmed(order[0]))
				assert.False(t, first.Interest.Confirmed(order[1]))

				flat, byCategory := fx.copies(t, book.ID, category)
				require.NotNil(t, flat)
				assert.Equal(t, flat, byCategory)
				stored, ok := flat.Interest(interest.ID)
				require.True(t, ok)
				assert.Equal(t, first.State, stored.State())

				second, err := fx.listing.ToggleConfirm(ctx, actors[order[1]], book.ID, interest.ID, order[1])
				require.NoError(t, err)
				assert.True(t, second.Completed)
				assert.Equal(t, entity.InterestBothConfirmed, second.State)

				flat, byCategory = fx.copies(t, book.ID, category)
				assert.Nil(t, flat)
				assert.Nil(t, byCategory)
				assert.NotContains(t, fx.user(t, seller.UserID).BookListings, book.ID)
				assert.NotContains(t, fx.user(t, saver.UserID).SavedBooks, book.ID)

				assert.Equal(t, []string{constants.EventInterestAdded, constants.EventListingCompleted}, fx.eventTypes())
			})
		}
	}
}

func TestListingService_Toggle_Guards(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
	interest, err := fx.interest.AddInterest(ctx, buyer, book.ID)
	require.NoError(t, err)

	_, err = fx.listing.ToggleBuyerConfirm(ctx, seller, book.ID, interest.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnerCannotConfirmAsBuyer))

	_, err = fx.listing.ToggleSellerConfirm(ctx, buyer, book.ID, interest.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrBuyerCannotConfirmAsSeller))

	_, err = fx.listing.ToggleBuyerConfirm(ctx, saver, book.ID, interest.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotInterestParty))

	_, err = fx.listing.ToggleSellerConfirm(ctx, seller, book.ID, "unknown")
	assert.True(t, errors.Is(err, domainerrors.ErrInterestNotFound))

	_, err = fx.listing.ToggleSellerConfirm(ctx, seller, "missing", interest.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))

	_, err = fx.listing.ToggleConfirm(ctx, seller, book.ID, interest.ID, entity.Party("broker"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	stored, err := fx.listing.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InterestPending, stored.Interests[interest.ID].State())
}

func TestListingService_Toggle_OffReturnsToPending(t *testing.T) {
	for _, mode := range consistencyModes {
		t.Run(mode, func(t *testing.T) {
			fx := createMarketplace(t, mode)
			ctx := context.Background()
			book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
			interest, err := fx.interest.AddInterest(ctx, buyer, book.ID)
			require.NoError(t, err)

			out, err := fx.listing.ToggleSellerConfirm(ctx, seller, book.ID, interest.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.InterestSellerConfirmed, out.State)

			out, err = fx.listing.ToggleSellerConfirm(ctx, seller, book.ID, interest.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.InterestPending, out.State)
			assert.False(t, out.Completed)

			flat, byCategory := fx.copies(t, book.ID, entity.CategoryOther)
			require.NotNil(t, flat)
			assert.Equal(t, flat, byCategory)
			assert.Equal(t, entity.InterestPending, flat.Interests[interest.ID].State())
		})
	}
}

func TestListingService_Toggle_OnlyTouchesTargetInterest(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)

	first, err := fx.interest.AddInterest(ctx, buyer, book.ID)
	require.NoError(t, err)
	second, err := fx.interest.AddInterest(ctx, saver, book.ID)
	require.NoError(t, err)

	_, err = fx.listing.ToggleBuyerConfirm(ctx, buyer, book.ID, first.ID)
	require.NoError(t, err)
	_, err = fx.listing.ToggleSellerConfirm(ctx, seller, book.ID, second.ID)
	require.NoError(t, err)

	stored, err := fx.listing.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InterestBuyerConfirmed, stored.Interests[first.ID].State())
	assert.Equal(t, entity.InterestSellerConfirmed, stored.Interests[second.ID].State())
}

func TestListingService_Toggle_ConcurrentPartiesComplete(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
	interest, err := fx.interest.AddInterest(ctx, buyer, book.ID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	outputs := make([]*usecase.ConfirmOutput, 2)
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		outputs[0], errs[0] = fx.listing.ToggleBuyerConfirm(ctx, buyer, book.ID, interest.ID)
	}()
	go func() {
		defer wg.Done()
		outputs[1], errs[1] = fx.listing.ToggleSellerConfirm(ctx, seller, book.ID, interest.ID)
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.NotEqual(t, outputs[0].Completed, outputs[1].Completed)

	_, err = fx.listing.Get(ctx, book.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
	assert.Empty(t, fx.user(t, seller.UserID).BookListings)
}

func TestListingService_Toggle_FaultOnCategoryCopy(t *testing.T) {
	category := string(entity.CategoryOther)
	isCategoryUpdate := func(m document.Mutation) bool {
		return m.Collection == category && m.Kind == document.MutationUpdate
	}

	t.Run(constants.ConsistencyIndependent, func(t *testing.T) {
		fx := createMarketplace(t, constants.ConsistencyIndependent)
		ctx := context.Background()
		book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
		interest, err := fx.interest.AddInterest(ctx, buyer, book.ID)
		require.NoError(t, err)
		fx.failWrites(isCategoryUpdate)

		_, err = fx.listing.ToggleBuyerConfirm(ctx, buyer, book.ID, interest.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrPartialWrite))

		flat, byCategory := fx.copies(t, book.ID, entity.CategoryOther)
		assert.True(t, flat.Interests[interest.ID].BuyerConfirmed)
		assert.False(t, byCategory.Interests[interest.ID].BuyerConfirmed)
	})

	t.Run(constants.ConsistencyTransactional, func(t *testing.T) {
		fx := createMarketplace(t, constants.ConsistencyTransactional)
		ctx := context.Background()
		book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
		interest, err := fx.interest.AddInterest(ctx, buyer, book.ID)
		require.NoError(t, err)
		fx.failWrites(isCategoryUpdate)

		_, err = fx.listing.ToggleBuyerConfirm(ctx, buyer, book.ID, interest.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))

		flat, byCategory := fx.copies(t, book.ID, entity.CategoryOther)
		assert.False(t, flat.Interests[interest.ID].BuyerConfirmed)
		assert.Equal(t, flat, byCategory)
	})
}

func TestListingService_Delete_Cascades(t *testing.T) {
	for _, mode := range consistencyModes {
		t.Run(mode, func(t *testing.T) {
			fx := createMarketplace(t, mode)
			ctx := context.Background()
			book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryMathematicsStatistics)
			require.NoError(t, fx.listing.SaveBook(ctx, saver, book.ID))
			_, err := fx.interest.AddInterest(ctx, buyer, book.ID)
			require.NoError(t, err)

			err = fx.listing.Delete(ctx, buyer, book.ID)
			assert.True(t, errors.Is(err, domainerrors.ErrNotBookOwner))

			require.NoError(t, fx.listing.Delete(ctx, seller, book.ID))

			flat, byCategory := fx.copies(t, book.ID, entity.CategoryMathematicsStatistics)
			assert.Nil(t, flat)
			assert.Nil(t, byCategory)
			assert.Empty(t, fx.user(t, seller.UserID).BookListings)
			assert.Empty(t, fx.user(t, saver.UserID).SavedBooks)

			fx.mu.Lock()
			last := fx.events[len(fx.events)-1]
			fx.mu.Unlock()
			assert.Equal(t, constants.EventListingDeleted, last.Type)
			assert.Equal(t, []string{buyer.UserID}, last.InterestedBuyerIDs)

			err = fx.listing.Delete(ctx, seller, book.ID)
			assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
		})
	}
}

func TestListingService_Delete_FaultOnSaverCleanup(t *testing.T) {
	isSaverUpdate := func(m document.Mutation) bool {
		return m.Collection == repository.UsersCollection && m.ID == saver.UserID
	}

	t.Run(constants.ConsistencyIndependent, func(t *testing.T) {
		fx := createMarketplace(t, constants.ConsistencyIndependent)
		ctx := context.Background()
		book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
		require.NoError(t, fx.listing.SaveBook(ctx, saver, book.ID))
		fx.failWrites(isSaverUpdate)

		err := fx.listing.Delete(ctx, seller, book.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrPartialWrite))

		flat, byCategory := fx.copies(t, book.ID, entity.CategoryOther)
		assert.Nil(t, flat)
		assert.Nil(t, byCategory)
		assert.Contains(t, fx.user(t, saver.UserID).SavedBooks, book.ID)
		assert.Empty(t, fx.eventTypes())
	})

	t.Run(constants.ConsistencyTransactional, func(t *testing.T) {
		fx := createMarketplace(t, constants.ConsistencyTransactional)
		ctx := context.Background()
		book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
		require.NoError(t, fx.listing.SaveBook(ctx, saver, book.ID))
		fx.failWrites(isSaverUpdate)

		err := fx.listing.Delete(ctx, seller, book.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))

		flat, byCategory := fx.copies(t, book.ID, entity.CategoryOther)
		assert.NotNil(t, flat)
		assert.NotNil(t, byCategory)
		assert.Equal(t, []string{book.ID}, fx.user(t, seller.UserID).BookListings)
		assert.Contains(t, fx.user(t, saver.UserID).SavedBooks, book.ID)
	})
}

func TestListingService_RemoveIfBothPartiesVerified(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)

	removed, err := fx.listing.RemoveIfBothPartiesVerified(ctx, book.ID, &entity.Interest{ID: "x", BuyerConfirmed: true})
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = fx.listing.RemoveIfBothPartiesVerified(ctx, book.ID, nil)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = fx.listing.Get(ctx, book.ID)
	require.NoError(t, err)

	removed, err = fx.listing.RemoveIfBothPartiesVerified(ctx, book.ID, &entity.Interest{
		ID: "x", BuyerID: buyer.UserID, BuyerConfirmed: true, SellerConfirmed: true,
	})
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = fx.listing.Get(ctx, book.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
	assert.Equal(t, []string{constants.EventListingCompleted}, fx.eventTypes())
}

func TestListingService_SavedBooks(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	first := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
	second := fx.createListing(t, seller, clrsISBN, "80", entity.CategoryOther)

	require.NoError(t, fx.listing.SaveBook(ctx, saver, first.ID))
	require.NoError(t, fx.listing.SaveBook(ctx, saver, second.ID))
	require.NoError(t, fx.listing.SaveBook(ctx, saver, first.ID))
	require.NoError(t, fx.userRepo.SaveBook(ctx, saver.UserID, "dangling"))

	err := fx.listing.SaveBook(ctx, saver, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))

	saved, err := fx.listing.ListSaved(ctx, saver)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, first.ID, saved[0].ID)
	assert.Equal(t, second.ID, saved[1].ID)

	require.NoError(t, fx.listing.UnsaveBook(ctx, saver, first.ID))
	require.NoError(t, fx.listing.UnsaveBook(ctx, saver, first.ID))

	saved, err = fx.listing.ListSaved(ctx, saver)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, second.ID, saved[0].ID)
}

func TestListingService_ListOwned(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)
	fx.createListing(t, buyer, clrsISBN, "80", entity.CategoryOther)

	owned, err := fx.listing.ListOwned(ctx, seller)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, book.ID, owned[0].ID)
}

func TestListingService_ShareCode(t *testing.T) {
	fx := createMarketplace(t, constants.ConsistencyTransactional)
	ctx := context.Background()
	book := fx.createListing(t, seller, knrISBN, "45", entity.CategoryOther)

	fx.qrCode.EXPECT().GenerateListingQR(book.ID).Return([]byte("png"), nil)
	png, err := fx.listing.ShareCode(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.listing.ShareCode(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))

	fx.qrCode.EXPECT().ParseListingQR("txtchange://book/"+book.ID).Return(book.ID, nil)
	resolved, err := fx.listing.ResolveShareCode(ctx, "txtchange://book/"+book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, resolved.ID)

	fx.qrCode.EXPECT().ParseListingQR("garbage").Return("", errors.New("bad prefix"))
	_, err = fx.listing.ResolveShareCode(ctx, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
