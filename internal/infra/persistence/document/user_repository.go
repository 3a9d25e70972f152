package document

import (
	"context"

	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"
)

// userRepository implements repository.UserRepository on a document Session.
// Profiles are keyed by user ID.
type userRepository struct {
	session Session
}

// NewUserRepository binds a UserRepository to session.
func NewUserRepository(session Session) repository.UserRepository {
	return &userRepository{session: session}
}

// FindByID reads a profile.
func (repo *userRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	snap, err := repo.session.Get(ctx, repository.UsersCollection, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return UserFromSnapshot(snap), nil
}

// FindByEmail reads the profile registered under email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	snaps, err := repo.session.Query(ctx, From(repository.UsersCollection).Where(KeyEmail, email).WithLimit(1))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return UserFromSnapshot(snaps[0]), nil
}

// Create writes a new profile.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := repo.session.Write(ctx, Set(repository.UsersCollection, user.ID, UserToData(user))); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// AddListing adds bookID to book_listings.
func (repo *userRepository) AddListing(ctx context.Context, userID, bookID string) error {
	return repo.update(ctx, userID, "failed to add listing", Field(ArrayUnion(bookID), KeyBookListings))
}

// RemoveListing removes bookID from book_listings.
func (repo *userRepository) RemoveListing(ctx context.Context, userID, bookID string) error {
	return repo.update(ctx, userID, "failed to remove listing", Field(ArrayRemove(bookID), KeyBookListings))
}

// SaveBook adds bookID to saved_books.
func (repo *userRepository) SaveBook(ctx context.Context, userID, bookID string) error {
	return repo.update(ctx, userID, "failed to save book", Field(ArrayUnion(bookID), KeySavedBooks))
}

// UnsaveBook removes bookID from saved_books.
func (repo *userRepository) UnsaveBook(ctx context.Context, userID, bookID string) error {
	return repo.update(ctx, userID, "failed to unsave book", Field(ArrayRemove(bookID), KeySavedBooks))
}

// FindBySavedBook returns every profile that bookmarked bookID.
func (repo *userRepository) FindBySavedBook(ctx context.Context, bookID string) ([]*entity.User, error) {
	snaps, err := repo.session.Query(ctx, From(repository.UsersCollection).WhereArrayContains(KeySavedBooks, bookID))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find users by saved book")
	}

	users := make([]*entity.User, 0, len(snaps))
	for _, snap := range snaps {
		users = append(users, UserFromSnapshot(snap))
	}

	return users, nil
}

func (repo *userRepository) update(ctx context.Context, userID, details string, updates ...Update) error {
	if err := repo.session.Write(ctx, UpdateFields(repository.UsersCollection, userID, updates...)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}

	return nil
}
