package repository

import (
	"context"

	"txtchange/internal/domain/entity"
	"txtchange/internal/errors"
)

// ErrUserNotFound is returned when no profile exists for the requested user.
var ErrUserNotFound = errors.New("user not found")

// UsersCollection holds one profile document per account.
const UsersCollection = "users"

// UserRepository manages marketplace profiles and their listing reference sets.
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error

	AddListing(ctx context.Context, userID, bookID string) error
	RemoveListing(ctx context.Context, userID, bookID string) error

	SaveBook(ctx context.Context, userID, bookID string) error
	UnsaveBook(ctx context.Context, userID, bookID string) error
	// FindBySavedBook returns every user whose saved_books contains bookID.
	FindBySavedBook(ctx context.Context, bookID string) ([]*entity.User, error)
}
