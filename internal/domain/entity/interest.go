package entity

import "time"

// Party identifies which side of a sale a confirmation belongs to.
type Party string

const (
	PartyBuyer  Party = "buyer"
	PartySeller Party = "seller"
)

// Valid reports whether p names a known party.
func (p Party) Valid() bool {
	return p == PartyBuyer || p == PartySeller
}

// InterestState is the dual-confirmation state of one Interest.
type InterestState string

const (
	InterestPending         InterestState = "PENDING"
	InterestBuyerConfirmed  InterestState = "BUYER_CONFIRMED"
	InterestSellerConfirmed InterestState = "SELLER_CONFIRMED"
	InterestBothConfirmed   InterestState = "BOTH_CONFIRMED"
)

// Interest is one prospective buyer's intent to purchase a listing.
type Interest struct {
	ID               string
	BuyerID          string
	BuyerDisplayName string
	BuyerEmail       string
	BuyerConfirmed   bool
	SellerConfirmed  bool
	ExpressedAt      time.Time
}

// InterestID derives the key of the interest a buyer holds on a seller's listing.
// A buyer therefore has at most one Interest per listing.
func InterestID(buyerID, sellerID string) string {
	return buyerID + sellerID
}

// State folds the two confirmation bits into the state machine.
func (i *Interest) State() InterestState {
	switch {
	case i.BuyerConfirmed && i.SellerConfirmed:
		return InterestBothConfirmed
	case i.BuyerConfirmed:
		return InterestBuyerConfirmed
	case i.SellerConfirmed:
		return InterestSellerConfirmed
	default:
		return InterestPending
	}
}

// Confirmed returns the confirmation bit held by party.
func (i *Interest) Confirmed(party Party) bool {
	if party == PartySeller {
		return i.SellerConfirmed
	}

	return i.BuyerConfirmed
}

// SetConfirmed sets the confirmation bit held by party.
func (i *Interest) SetConfirmed(party Party, value bool) {
	if party == PartySeller {
		i.SellerConfirmed = value

		return
	}
	i.BuyerConfirmed = value
}

// Clone returns a copy of i.
func (i *Interest) Clone() *Interest {
	c := *i

	return &c
}
