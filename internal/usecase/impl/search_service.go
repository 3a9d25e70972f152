package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"txtchange/config"
	deliverycontext "txtchange/internal/delivery/context"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"
	"txtchange/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	bookRepo         repository.BookRepository
	userRepo         repository.UserRepository
	userLoadTimeout  time.Duration
	userLoadInterval time.Duration
	logger           *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	BookRepo repository.BookRepository
	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		bookRepo:         params.BookRepo,
		userRepo:         params.UserRepo,
		userLoadTimeout:  params.Config.Search.UserLoadTimeout,
		userLoadInterval: params.Config.Search.UserLoadInterval,
		logger:           params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchByField runs an equality query on the flat collection.
func (srv *searchService) SearchByField(ctx context.Context, actor entity.Identity, field repository.BookField, value string) ([]*entity.Book, error) {
	value = strings.TrimSpace(value)
	if !field.Valid() {
		return []*entity.Book{}, domainerrors.ErrValidationFailed.WithDetails("field must be isbn, title or author")
	}
	if value == "" {
		return []*entity.Book{}, domainerrors.ErrValidationFailed.WithDetails("search value is required")
	}

	return srv.search(ctx, actor, func(ctx context.Context) ([]*entity.Book, error) {
		return srv.bookRepo.FindByField(ctx, repository.BooksCollection, field, value)
	})
}

// SearchByCategory lists the category collection.
func (srv *searchService) SearchByCategory(ctx context.Context, actor entity.Identity, category entity.Category) ([]*entity.Book, error) {
	if !category.Valid() {
		return []*entity.Book{}, domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}

	return srv.search(ctx, actor, func(ctx context.Context) ([]*entity.Book, error) {
		return srv.bookRepo.FindAll(ctx, category.Collection(), 0)
	})
}

// Featured picks the first listing of every category that the actor does not own.
func (srv *searchService) Featured(ctx context.Context, actor entity.Identity) ([]*entity.Book, error) {
	user, err := srv.loadUser(ctx, actor)
	if err != nil {
		return []*entity.Book{}, err
	}

	categories := entity.Categories()
	picks := make([]*entity.Book, len(categories))
	group, groupCtx := errgroup.WithContext(ctx)
	for idx, category := range categories {
		group.Go(func() error {
			// Own listings may come first, so read past them.
			books, err := srv.bookRepo.FindAll(groupCtx, category.Collection(), len(user.BookListings)+1)
			if err != nil {
				srv.log(ctx).Error("Featured query failed", slog.String("category", string(category)), slog.Any("error", err))

				return err
			}
			if visible := excludeOwned(books, actor, user); len(visible) > 0 {
				picks[idx] = visible[0]
			}

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return []*entity.Book{}, errors.Wrap(err, "failed to load featured listings")
	}

	featured := make([]*entity.Book, 0, len(picks))
	for _, book := range picks {
		if book != nil {
			featured = append(featured, book)
		}
	}

	return featured, nil
}

// search loads the actor's profile, runs query and applies self-exclusion and
// price ordering.
func (srv *searchService) search(ctx context.Context, actor entity.Identity, query func(ctx context.Context) ([]*entity.Book, error)) ([]*entity.Book, error) {
	user, err := srv.loadUser(ctx, actor)
	if err != nil {
		return []*entity.Book{}, err
	}

	books, err := query(ctx)
	if err != nil {
		srv.log(ctx).Error("Search query failed", slog.Any("error", err))

		return []*entity.Book{}, errors.Wrap(err, "failed to search books")
	}

	result := excludeOwned(books, actor, user)
	slices.SortStableFunc(result, func(a, b *entity.Book) int {
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		default:
			return 0
		}
	})

	return result, nil
}

// loadUser waits a bounded time for the actor's profile to become readable.
func (srv *searchService) loadUser(ctx context.Context, actor entity.Identity) (*entity.User, error) {
	var user *entity.User
	err := pollUntil(ctx, srv.userLoadTimeout, srv.userLoadInterval, func(ctx context.Context) (bool, error) {
		found, err := srv.userRepo.FindByID(ctx, actor.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		user = found

		return true, nil
	})

	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, errPollTimeout):
		srv.log(ctx).Warn("User profile not ready", slog.String("user_id", actor.UserID), slog.Duration("timeout", srv.userLoadTimeout))

		return nil, domainerrors.ErrUserNotReady
	default:
		return nil, errors.Wrap(err, "failed to load user")
	}
}

// excludeOwned drops listings the actor sells.
func excludeOwned(books []*entity.Book, actor entity.Identity, user *entity.User) []*entity.Book {
	out := make([]*entity.Book, 0, len(books))
	for _, book := range books {
		if book.OwnedBy(actor.UserID) || user.Owns(book.ID) {
			continue
		}
		out = append(out, book)
	}

	return out
}
