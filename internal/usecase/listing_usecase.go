// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"txtchange/internal/domain/entity"
)

// --- Input DTOs ---

// CreateListingInput is what a seller supplies for a new listing. The rest of
// the record comes from the ISBN lookup.
type CreateListingInput struct {
	ISBN      string `validate:"required,isbn_digits"`
	Price     string `validate:"required,price"`
	Condition string `validate:"required,condition"`
	Category  string `validate:"required,category"`
}

// EditListingInput holds the two seller-editable attributes.
type EditListingInput struct {
	Condition string `validate:"required,condition"`
	Price     string `validate:"required,price"`
}

// --- Output DTOs ---

// ConfirmOutput reports the interest after a confirmation toggle.
type ConfirmOutput struct {
	Interest *entity.Interest
	State    entity.InterestState
	// Completed is true when both parties confirmed and the listing was removed.
	Completed bool
}

// ListingUsecase drives a listing from creation to removal.
type ListingUsecase interface {
	// Create validates the input, enriches it from the ISBN lookup and writes
	// the flat copy, the owner's reference and the category copy.
	Create(ctx context.Context, actor entity.Identity, input CreateListingInput) (*entity.Book, error)
	Get(ctx context.Context, bookID string) (*entity.Book, error)
	ListOwned(ctx context.Context, actor entity.Identity) ([]*entity.Book, error)
	EditPriceCondition(ctx context.Context, actor entity.Identity, bookID string, input EditListingInput) (*entity.Book, error)

	// ToggleBuyerConfirm flips the buyer bit of an interest. Only the interested buyer may call it.
	ToggleBuyerConfirm(ctx context.Context, actor entity.Identity, bookID, interestID string) (*ConfirmOutput, error)
	// ToggleSellerConfirm flips the seller bit of an interest. Only the owner may call it.
	ToggleSellerConfirm(ctx context.Context, actor entity.Identity, bookID, interestID string) (*ConfirmOutput, error)
	// ToggleConfirm dispatches to the buyer or seller toggle.
	ToggleConfirm(ctx context.Context, actor entity.Identity, bookID, interestID string, party entity.Party) (*ConfirmOutput, error)
	// RemoveIfBothPartiesVerified removes the listing and every reference to it
	// when the given interest is confirmed by both sides. It reports whether it did.
	RemoveIfBothPartiesVerified(ctx context.Context, bookID string, interest *entity.Interest) (bool, error)

	// Delete removes a listing on behalf of its owner.
	Delete(ctx context.Context, actor entity.Identity, bookID string) error

	SaveBook(ctx context.Context, actor entity.Identity, bookID string) error
	UnsaveBook(ctx context.Context, actor entity.Identity, bookID string) error
	// ListSaved returns the bookmarked listings that still exist.
	ListSaved(ctx context.Context, actor entity.Identity) ([]*entity.Book, error)

	// ShareCode renders a PNG QR code linking to the listing.
	ShareCode(ctx context.Context, bookID string) ([]byte, error)
	// ResolveShareCode returns the listing a scanned share code refers to.
	ResolveShareCode(ctx context.Context, payload string) (*entity.Book, error)
}
