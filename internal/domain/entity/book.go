package entity

import (
	"sort"
	"time"
)

// Book is a listing. The same record lives in the flat books collection and in
// the collection of its Category, keyed by the same ID.
type Book struct {
	ID         string
	OwnerID    string
	OwnerEmail string

	Title            string
	Author           string
	ISBN             string
	ImageURL         string
	Description      string
	ExternalCategory string

	Category  Category
	Condition Condition
	Price     float64

	// Legacy single-buyer flags. Kept for stored-data compatibility only;
	// confirmation is tracked per Interest.
	BuyerConfirmed  bool
	SellerConfirmed bool

	Interests map[string]*Interest
	CreatedAt time.Time
}

// OwnedBy reports whether userID owns the listing.
func (b *Book) OwnedBy(userID string) bool {
	return b.OwnerID == userID
}

// Interest returns the interest keyed by id.
func (b *Book) Interest(id string) (*Interest, bool) {
	i, ok := b.Interests[id]

	return i, ok
}

// InterestList returns the interests in expression order.
func (b *Book) InterestList() []*Interest {
	out := make([]*Interest, 0, len(b.Interests))
	for _, i := range b.Interests {
		out = append(out, i.Clone())
	}
	sort.Slice(out, func(a, c int) bool {
		if out[a].ExpressedAt.Equal(out[c].ExpressedAt) {
			return out[a].ID < out[c].ID
		}

		return out[a].ExpressedAt.Before(out[c].ExpressedAt)
	})

	return out
}

// Clone returns a deep copy of b.
func (b *Book) Clone() *Book {
	c := *b
	c.Interests = make(map[string]*Interest, len(b.Interests))
	for id, i := range b.Interests {
		c.Interests[id] = i.Clone()
	}

	return &c
}

// BookMetadata is what the external lookup contributes to a new listing.
type BookMetadata struct {
	Title            string
	Author           string
	ImageURL         string
	Description      string
	ExternalCategory string
}
