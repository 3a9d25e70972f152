package document

import (
	"context"

	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"
)

// bookRepository implements repository.BookRepository on a document Session.
type bookRepository struct {
	session Session
}

// NewBookRepository binds a BookRepository to session, which may be a Store or
// an open transaction.
func NewBookRepository(session Session) repository.BookRepository {
	return &bookRepository{session: session}
}

// FindByID reads one listing copy.
func (repo *bookRepository) FindByID(ctx context.Context, collection, bookID string) (*entity.Book, error) {
	snap, err := repo.session.Get(ctx, collection, bookID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find book by id")
	}

	return BookFromSnapshot(snap), nil
}

// FindByField returns the listings whose field equals value exactly.
func (repo *bookRepository) FindByField(ctx context.Context, collection string, field repository.BookField, value string) ([]*entity.Book, error) {
	if !field.Valid() {
		return nil, errors.Errorf("unsupported search field %q", field)
	}

	return repo.query(ctx, From(collection).Where(string(field), value))
}

// FindAll returns up to limit listings of collection.
func (repo *bookRepository) FindAll(ctx context.Context, collection string, limit int) ([]*entity.Book, error) {
	return repo.query(ctx, From(collection).WithLimit(limit))
}

// FindByOwner returns every listing the owner sells.
func (repo *bookRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Book, error) {
	return repo.query(ctx, From(repository.BooksCollection).Where(KeyOwnerID, ownerID))
}

func (repo *bookRepository) query(ctx context.Context, q Query) ([]*entity.Book, error) {
	snaps, err := repo.session.Query(ctx, q)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query books")
	}

	books := make([]*entity.Book, 0, len(snaps))
	for _, snap := range snaps {
		books = append(books, BookFromSnapshot(snap))
	}

	return books, nil
}

// Save creates or overwrites one listing copy.
func (repo *bookRepository) Save(ctx context.Context, collection string, book *entity.Book) error {
	if err := repo.session.Write(ctx, Set(collection, book.ID, BookToData(book))); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save book")
	}

	return nil
}

// UpdatePriceCondition rewrites the two seller-editable fields.
func (repo *bookRepository) UpdatePriceCondition(ctx context.Context, collection, bookID string, price float64, condition entity.Condition) error {
	return repo.update(ctx, collection, bookID, "failed to update price and condition",
		Field(price, KeyPrice),
		Field(string(condition), KeyCondition),
	)
}

// Delete removes one listing copy.
func (repo *bookRepository) Delete(ctx context.Context, collection, bookID string) error {
	if err := repo.session.Write(ctx, Delete(collection, bookID)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete book")
	}

	return nil
}

// PutInterest writes interest_list.<id> without touching sibling entries.
func (repo *bookRepository) PutInterest(ctx context.Context, collection, bookID string, interest *entity.Interest) error {
	return repo.update(ctx, collection, bookID, "failed to put interest",
		Field(InterestToData(interest), KeyInterestList, interest.ID),
	)
}

// RemoveInterest deletes interest_list.<id>.
func (repo *bookRepository) RemoveInterest(ctx context.Context, collection, bookID, interestID string) error {
	return repo.update(ctx, collection, bookID, "failed to remove interest",
		Field(DeleteField, KeyInterestList, interestID),
	)
}

// SetConfirmation writes interest_list.<id>.<buyer_confirm|seller_confirm>.
func (repo *bookRepository) SetConfirmation(ctx context.Context, collection, bookID, interestID string, party entity.Party, value bool) error {
	return repo.update(ctx, collection, bookID, "failed to set confirmation",
		Field(value, KeyInterestList, interestID, ConfirmKey(party)),
	)
}

func (repo *bookRepository) update(ctx context.Context, collection, bookID, details string, updates ...Update) error {
	if err := repo.session.Write(ctx, UpdateFields(collection, bookID, updates...)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return repository.ErrBookNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}

	return nil
}
