package impl

import (
	"context"
	"iter"
	"log/slog"
	"time"

	deliverycontext "txtchange/internal/delivery/context"
	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"
	"txtchange/internal/usecase"
	"txtchange/internal/util"

	"go.uber.org/fx"
)

// interestService implements the InterestUsecase interface.
type interestService struct {
	uow       *unitOfWork
	bookRepo  repository.BookRepository
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// InterestServiceParams holds dependencies for InterestService, injected by Fx.
type InterestServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewInterestService is the constructor for interestService.
func NewInterestService(params InterestServiceParams) usecase.InterestUsecase {
	return &interestService{
		uow:       newUnitOfWork(params.TxManager, params.Logger),
		bookRepo:  params.BookRepo,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *interestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddInterest writes the actor's interest entry into both copies of the listing.
func (srv *interestService) AddInterest(ctx context.Context, actor entity.Identity, bookID string) (*entity.Interest, error) {
	var (
		book    *entity.Book
		result  *entity.Interest
		created bool
	)

	err := srv.uow.execute(ctx, "add interest", func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		userRepo := repoFactory.UserRepo()

		var err error
		book, err = bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
		if err != nil {
			return bookLookupError(err)
		}
		if book.OwnedBy(actor.UserID) {
			return domainerrors.ErrOwnerCannotExpressInterest
		}

		interestID := entity.InterestID(actor.UserID, book.OwnerID)
		if existing, ok := book.Interest(interestID); ok {
			result = existing
			created = false

			return nil
		}

		displayName := util.DisplayNameFromEmail(actor.Email)
		buyer, err := userRepo.FindByID(ctx, actor.UserID)
		switch {
		case err == nil && buyer.DisplayName != "":
			displayName = buyer.DisplayName
		case err != nil && !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to load buyer profile")
		}

		interest := &entity.Interest{
			ID:               interestID,
			BuyerID:          actor.UserID,
			BuyerDisplayName: displayName,
			BuyerEmail:       actor.Email,
			ExpressedAt:      srv.now().UTC(),
		}

		err = srv.uow.apply(ctx, "add interest", false,
			writeStep{name: "books copy", apply: func(ctx context.Context) error {
				return bookRepo.PutInterest(ctx, repository.BooksCollection, book.ID, interest)
			}},
			writeStep{name: "category copy", apply: func(ctx context.Context) error {
				return bookRepo.PutInterest(ctx, book.Category.Collection(), book.ID, interest)
			}},
		)
		if err != nil {
			return err
		}

		book.Interests[interest.ID] = interest
		result = interest
		created = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		srv.log(ctx).Info("Interest added", slog.String("book_id", bookID), slog.String("interest_id", result.ID))

		event := newListingEvent(ctx, constants.EventInterestAdded, book, result)
		if err := srv.publisher.PublishListingEvent(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish interest event", slog.String("book_id", bookID), slog.Any("error", err))
		}
	}

	return result.Clone(), nil
}

// RemoveInterest deletes an interest entry from both copies of the listing.
func (srv *interestService) RemoveInterest(ctx context.Context, actor entity.Identity, bookID, interestID string) error {
	return srv.uow.execute(ctx, "remove interest", func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		book, err := bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
		if err != nil {
			return bookLookupError(err)
		}
		interest, ok := book.Interest(interestID)
		if !ok {
			return domainerrors.ErrInterestNotFound
		}
		if interest.BuyerID != actor.UserID && !book.OwnedBy(actor.UserID) {
			return domainerrors.ErrNotInterestParty
		}

		return srv.uow.apply(ctx, "remove interest", false,
			writeStep{name: "books copy", apply: func(ctx context.Context) error {
				return bookRepo.RemoveInterest(ctx, repository.BooksCollection, book.ID, interestID)
			}},
			writeStep{name: "category copy", apply: func(ctx context.Context) error {
				return bookRepo.RemoveInterest(ctx, book.Category.Collection(), book.ID, interestID)
			}},
		)
	})
}

// ListSellerInterest queries the actor's listings each time the sequence is ranged over.
func (srv *interestService) ListSellerInterest(ctx context.Context, actor entity.Identity) iter.Seq2[*usecase.SellerInterest, error] {
	return func(yield func(*usecase.SellerInterest, error) bool) {
		books, err := srv.bookRepo.FindByOwner(ctx, actor.UserID)
		if err != nil {
			yield(nil, errors.Wrap(err, "failed to list seller books"))

			return
		}

		for _, book := range books {
			if !yield(&usecase.SellerInterest{Book: book, Interests: book.InterestList()}, nil) {
				return
			}
		}
	}
}
