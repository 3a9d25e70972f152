// Package repository declares the persistence ports of the marketplace.
package repository

import (
	"context"

	"txtchange/internal/domain/entity"
	"txtchange/internal/errors"
)

// ErrBookNotFound is returned when no listing exists under the requested id.
var ErrBookNotFound = errors.New("book not found")

// BooksCollection is the flat collection holding every listing.
const BooksCollection = "books"

// BookField names a searchable listing attribute.
type BookField string

const (
	BookFieldISBN   BookField = "isbn"
	BookFieldTitle  BookField = "title"
	BookFieldAuthor BookField = "author"
)

// Valid reports whether f is a searchable field.
func (f BookField) Valid() bool {
	return f == BookFieldISBN || f == BookFieldTitle || f == BookFieldAuthor
}

// BookRepository reads and writes one copy of a listing. Every call names the
// collection explicitly: BooksCollection or a Category collection.
type BookRepository interface {
	FindByID(ctx context.Context, collection, bookID string) (*entity.Book, error)
	FindByField(ctx context.Context, collection string, field BookField, value string) ([]*entity.Book, error)
	// FindAll returns up to limit listings in storage order; limit <= 0 means no limit.
	FindAll(ctx context.Context, collection string, limit int) ([]*entity.Book, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Book, error)

	Save(ctx context.Context, collection string, book *entity.Book) error
	UpdatePriceCondition(ctx context.Context, collection, bookID string, price float64, condition entity.Condition) error
	Delete(ctx context.Context, collection, bookID string) error

	// PutInterest writes a single keyed entry of the interest map.
	PutInterest(ctx context.Context, collection, bookID string, interest *entity.Interest) error
	RemoveInterest(ctx context.Context, collection, bookID, interestID string) error
	// SetConfirmation flips one confirmation bit through a targeted field update.
	SetConfirmation(ctx context.Context, collection, bookID, interestID string, party entity.Party, value bool) error
}
