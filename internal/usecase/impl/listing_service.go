package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"txtchange/config"
	deliverycontext "txtchange/internal/delivery/context"
	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"
	"txtchange/internal/usecase"
	"txtchange/internal/util"

	"github.com/google/uuid"
	"github.com/moraes/isbn"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	uow        *unitOfWork
	bookRepo   repository.BookRepository
	userRepo   repository.UserRepository
	lookup     service.BookLookup
	publisher  service.EventPublisher
	qrCode     service.QRCodeService
	strictISBN bool
	logger     *slog.Logger
	now        func() time.Time
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	UserRepo  repository.UserRepository
	Lookup    service.BookLookup
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	strictISBN := false
	if params.Config != nil && params.Config.Listing != nil {
		strictISBN = params.Config.Listing.StrictISBN
	}

	return &listingService{
		uow:        newUnitOfWork(params.TxManager, params.Logger),
		bookRepo:   params.BookRepo,
		userRepo:   params.UserRepo,
		lookup:     params.Lookup,
		publisher:  params.Publisher,
		qrCode:     params.QRCode,
		strictISBN: strictISBN,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the input, looks the ISBN up and writes the new listing.
// Nothing is written when validation or the lookup fails.
func (srv *listingService) Create(ctx context.Context, actor entity.Identity, input usecase.CreateListingInput) (*entity.Book, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	isbnValue := strings.TrimSpace(input.ISBN)
	if srv.strictISBN && !isbn.Validate(isbnValue) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("ISBN checksum does not match")
	}
	price, _ := util.ParsePrice(input.Price)

	metadata, err := srv.lookup.LookupISBN(ctx, isbnValue)
	if err != nil {
		srv.log(ctx).Warn("ISBN lookup failed", slog.String("isbn", isbnValue), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up book details")
	}

	book := &entity.Book{
		ID:               uuid.NewString(),
		OwnerID:          actor.UserID,
		OwnerEmail:       actor.Email,
		Title:            metadata.Title,
		Author:           metadata.Author,
		ISBN:             isbnValue,
		ImageURL:         metadata.ImageURL,
		Description:      metadata.Description,
		ExternalCategory: metadata.ExternalCategory,
		Category:         entity.Category(strings.TrimSpace(input.Category)),
		Condition:        entity.Condition(strings.TrimSpace(input.Condition)),
		Price:            price,
		Interests:        map[string]*entity.Interest{},
		CreatedAt:        srv.now().UTC(),
	}

	err = srv.uow.execute(ctx, "create listing", func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, actor.UserID); err != nil {
			return userLookupError(err)
		}

		return srv.uow.apply(ctx, "create listing", false,
			writeStep{name: "books copy", apply: func(ctx context.Context) error {
				return bookRepo.Save(ctx, repository.BooksCollection, book)
			}},
			writeStep{name: "owner book_listings", apply: func(ctx context.Context) error {
				return userRepo.AddListing(ctx, actor.UserID, book.ID)
			}},
			writeStep{name: "category copy", apply: func(ctx context.Context) error {
				return bookRepo.Save(ctx, book.Category.Collection(), book)
			}},
		)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing created", slog.String("book_id", book.ID), slog.String("owner_id", actor.UserID))

	return book, nil
}

// Get returns the flat copy of a listing.
func (srv *listingService) Get(ctx context.Context, bookID string) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
	if err != nil {
		return nil, bookLookupError(err)
	}

	return book, nil
}

// ListOwned returns the actor's listings in storage order.
func (srv *listingService) ListOwned(ctx context.Context, actor entity.Identity) ([]*entity.Book, error) {
	books, err := srv.bookRepo.FindByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned books")
	}

	return books, nil
}

// EditPriceCondition updates price and condition on both copies of a listing.
func (srv *listingService) EditPriceCondition(ctx context.Context, actor entity.Identity, bookID string, input usecase.EditListingInput) (*entity.Book, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	price, _ := util.ParsePrice(input.Price)
	condition := entity.Condition(strings.TrimSpace(input.Condition))

	var updated *entity.Book
	err := srv.uow.execute(ctx, "edit listing", func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		book, err := bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
		if err != nil {
			return bookLookupError(err)
		}
		if !book.OwnedBy(actor.UserID) {
			return domainerrors.ErrNotBookOwner
		}

		err = srv.uow.apply(ctx, "edit listing", false,
			writeStep{name: "books copy", apply: func(ctx context.Context) error {
				return bookRepo.UpdatePriceCondition(ctx, repository.BooksCollection, book.ID, price, condition)
			}},
			writeStep{name: "category copy", apply: func(ctx context.Context) error {
				return bookRepo.UpdatePriceCondition(ctx, book.Category.Collection(), book.ID, price, condition)
			}},
		)
		if err != nil {
			return err
		}

		book.Price = price
		book.Condition = condition
		updated = book

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ToggleBuyerConfirm flips the buyer bit of an interest.
func (srv *listingService) ToggleBuyerConfirm(ctx context.Context, actor entity.Identity, bookID, interestID string) (*usecase.ConfirmOutput, error) {
	return srv.toggle(ctx, actor, bookID, interestID, entity.PartyBuyer)
}

// ToggleSellerConfirm flips the seller bit of an interest.
func (srv *listingService) ToggleSellerConfirm(ctx context.Context, actor entity.Identity, bookID, interestID string) (*usecase.ConfirmOutput, error) {
	return srv.toggle(ctx, actor, bookID, interestID, entity.PartySeller)
}

// ToggleConfirm dispatches on party.
func (srv *listingService) ToggleConfirm(ctx context.Context, actor entity.Identity, bookID, interestID string, party entity.Party) (*usecase.ConfirmOutput, error) {
	if !party.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("party must be buyer or seller")
	}

	return srv.toggle(ctx, actor, bookID, interestID, party)
}

// toggle flips one confirmation bit on both copies. When the interest reaches
// BOTH_CONFIRMED the listing is removed in the same unit of work.
func (srv *listingService) toggle(ctx context.Context, actor entity.Identity, bookID, interestID string, party entity.Party) (*usecase.ConfirmOutput, error) {
	var (
		out  *usecase.ConfirmOutput
		book *entity.Book
	)

	err := srv.uow.execute(ctx, "toggle confirmation", func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		userRepo := repoFactory.UserRepo()

		var err error
		book, err = bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
		if err != nil {
			return bookLookupError(err)
		}

		interest, ok := book.Interest(interestID)
		if !ok {
			return domainerrors.ErrInterestNotFound
		}
		if err := authorizeConfirm(actor, book, interest, party); err != nil {
			return err
		}

		updated := interest.Clone()
		updated.SetConfirmed(party, !interest.Confirmed(party))
		value := updated.Confirmed(party)
		completed := updated.State() == entity.InterestBothConfirmed

		// Reads must precede the first write of a transaction.
		var savers []*entity.User
		if completed {
			if savers, err = userRepo.FindBySavedBook(ctx, book.ID); err != nil {
				return errors.Wrap(err, "failed to find users who saved the book")
			}
		}

		err = srv.uow.apply(ctx, "toggle confirmation", false,
			writeStep{name: "books copy", apply: func(ctx context.Context) error {
				return bookRepo.SetConfirmation(ctx, repository.BooksCollection, book.ID, interestID, party, value)
			}},
			writeStep{name: "category copy", apply: func(ctx context.Context) error {
				return bookRepo.SetConfirmation(ctx, book.Category.Collection(), book.ID, interestID, party, value)
			}},
		)
		if err != nil {
			return err
		}
		book.Interests[interestID] = updated

		out = &usecase.ConfirmOutput{Interest: updated, State: updated.State()}
		if !completed {
			return nil
		}
		if err := srv.removeListing(ctx, bookRepo, userRepo, book, savers); err != nil {
			return err
		}
		out.Completed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Confirmation toggled",
		slog.String("book_id", bookID),
		slog.String("interest_id", interestID),
		slog.String("party", string(party)),
		slog.String("state", string(out.State)),
	)
	if out.Completed {
		srv.publish(ctx, constants.EventListingCompleted, book, out.Interest)
	}

	return out, nil
}

// authorizeConfirm allows the buyer bit to the interested buyer only and the
// seller bit to the owner only.
func authorizeConfirm(actor entity.Identity, book *entity.Book, interest *entity.Interest, party entity.Party) error {
	if party == entity.PartySeller {
		if !book.OwnedBy(actor.UserID) {
			return domainerrors.ErrBuyerCannotConfirmAsSeller
		}

		return nil
	}

	if book.OwnedBy(actor.UserID) {
		return domainerrors.ErrOwnerCannotConfirmAsBuyer
	}
	if interest.BuyerID != actor.UserID {
		return domainerrors.ErrNotInterestParty
	}

	return nil
}

// RemoveIfBothPartiesVerified removes the listing when interest is confirmed by both sides.
func (srv *listingService) RemoveIfBothPartiesVerified(ctx context.Context, bookID string, interest *entity.Interest) (bool, error) {
	if interest == nil || interest.State() != entity.InterestBothConfirmed {
		return false, nil
	}

	var book *entity.Book
	err := srv.uow.execute(ctx, "complete listing", func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		userRepo := repoFactory.UserRepo()

		var err error
		book, err = bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
		if err != nil {
			return bookLookupError(err)
		}
		savers, err := userRepo.FindBySavedBook(ctx, book.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find users who saved the book")
		}

		return srv.removeListing(ctx, bookRepo, userRepo, book, savers)
	})
	if err != nil {
		return false, err
	}

	srv.publish(ctx, constants.EventListingCompleted, book, interest)

	return true, nil
}

// Delete removes a listing on behalf of its owner.
func (srv *listingService) Delete(ctx context.Context, actor entity.Identity, bookID string) error {
	var book *entity.Book
	err := srv.uow.execute(ctx, "delete listing", func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		userRepo := repoFactory.UserRepo()

		var err error
		book, err = bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
		if err != nil {
			return bookLookupError(err)
		}
		if !book.OwnedBy(actor.UserID) {
			return domainerrors.ErrNotBookOwner
		}
		savers, err := userRepo.FindBySavedBook(ctx, book.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find users who saved the book")
		}

		return srv.removeListing(ctx, bookRepo, userRepo, book, savers)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Listing deleted", slog.String("book_id", bookID), slog.String("owner_id", actor.UserID))
	srv.publish(ctx, constants.EventListingDeleted, book, nil)

	return nil
}

// removeListing deletes both copies of book, drops it from the owner's
// listings and from every saver's bookmarks. Its interests go with the record.
func (srv *listingService) removeListing(
	ctx context.Context,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	book *entity.Book,
	savers []*entity.User,
) error {
	steps := []writeStep{
		{name: "books copy", apply: func(ctx context.Context) error {
			return bookRepo.Delete(ctx, repository.BooksCollection, book.ID)
		}},
		{name: "category copy", apply: func(ctx context.Context) error {
			return bookRepo.Delete(ctx, book.Category.Collection(), book.ID)
		}},
		{name: "owner book_listings", apply: func(ctx context.Context) error {
			return userRepo.RemoveListing(ctx, book.OwnerID, book.ID)
		}},
	}
	for _, saver := range savers {
		steps = append(steps, writeStep{
			name: "saved_books of " + saver.ID,
			apply: func(ctx context.Context) error {
				return userRepo.UnsaveBook(ctx, saver.ID, book.ID)
			},
		})
	}

	return srv.uow.apply(ctx, "remove listing", true, steps...)
}

// SaveBook bookmarks an existing listing.
func (srv *listingService) SaveBook(ctx context.Context, actor entity.Identity, bookID string) error {
	if _, err := srv.Get(ctx, bookID); err != nil {
		return err
	}
	if err := srv.userRepo.SaveBook(ctx, actor.UserID, bookID); err != nil {
		return userLookupError(err)
	}

	return nil
}

// UnsaveBook removes a bookmark. Removing a missing bookmark succeeds.
func (srv *listingService) UnsaveBook(ctx context.Context, actor entity.Identity, bookID string) error {
	if err := srv.userRepo.UnsaveBook(ctx, actor.UserID, bookID); err != nil {
		return userLookupError(err)
	}

	return nil
}

// ListSaved resolves the actor's bookmarks, skipping listings that are gone.
func (srv *listingService) ListSaved(ctx context.Context, actor entity.Identity) ([]*entity.Book, error) {
	user, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, userLookupError(err)
	}

	books := make([]*entity.Book, 0, len(user.SavedBooks))
	for _, bookID := range user.SavedBooks {
		book, err := srv.bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
		if errors.Is(err, repository.ErrBookNotFound) {
			srv.log(ctx).Debug("Skipping dangling saved book", slog.String("book_id", bookID))

			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load saved book")
		}
		books = append(books, book)
	}

	return books, nil
}

// ShareCode renders the listing's QR code.
func (srv *listingService) ShareCode(ctx context.Context, bookID string) ([]byte, error) {
	if _, err := srv.Get(ctx, bookID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateListingQR(bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

// ResolveShareCode returns the listing referenced by a scanned share code.
func (srv *listingService) ResolveShareCode(ctx context.Context, payload string) (*entity.Book, error) {
	bookID, err := srv.qrCode.ParseListingQR(payload)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unrecognized share code")
	}

	return srv.Get(ctx, bookID)
}

// publish hands an event to the worker. The listing change already happened,
// so a failure is only logged.
func (srv *listingService) publish(ctx context.Context, eventType string, book *entity.Book, interest *entity.Interest) {
	event := newListingEvent(ctx, eventType, book, interest)
	if err := srv.publisher.PublishListingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish listing event",
			slog.String("type", eventType),
			slog.String("book_id", book.ID),
			slog.Any("error", err),
		)
	}
}

// bookLookupError maps a missing listing to BOOK_NOT_FOUND.
func bookLookupError(err error) error {
	if errors.Is(err, repository.ErrBookNotFound) {
		return domainerrors.ErrBookNotFound
	}

	return errors.Wrap(err, "failed to load book")
}

// userLookupError maps a missing profile to USER_NOT_FOUND.
func userLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to load user")
}
