package usecase

import (
	"context"
	"iter"

	"txtchange/internal/domain/entity"
)

// SellerInterest is one of the seller's listings with the buyers interested in it.
type SellerInterest struct {
	Book      *entity.Book
	Interests []*entity.Interest
}

// InterestUsecase manages buyers' interest in listings.
type InterestUsecase interface {
	// AddInterest records the actor's interest in a listing. Repeating it keeps
	// the existing record.
	AddInterest(ctx context.Context, actor entity.Identity, bookID string) (*entity.Interest, error)

	// RemoveInterest withdraws an interest. The interested buyer and the owner may call it.
	RemoveInterest(ctx context.Context, actor entity.Identity, bookID, interestID string) error

	// ListSellerInterest yields every listing of the actor with its interests in
	// expression order. Each range over the sequence queries the store afresh.
	// A failed query yields a single nil entry with the error.
	ListSellerInterest(ctx context.Context, actor entity.Identity) iter.Seq2[*SellerInterest, error]
}
