package impl

import (
	"context"

	"txtchange/config"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/usecase"
)

type contactService struct {
	bookRepo     repository.BookRepository
	supportEmail string
}

// NewContactService creates the contact draft service.
func NewContactService(bookRepo repository.BookRepository, cfg *config.Config) usecase.ContactUsecase {
	supportEmail := ""
	if cfg.Listing != nil {
		supportEmail = cfg.Listing.SupportEmail
	}

	return &contactService{bookRepo: bookRepo, supportEmail: supportEmail}
}

// ContactSeller drafts the actor's enquiry to the owner of bookID.
func (srv *contactService) ContactSeller(ctx context.Context, actor entity.Identity, bookID string) (*entity.ContactDraft, error) {
	book, err := srv.bookRepo.FindByID(ctx, repository.BooksCollection, bookID)
	if err != nil {
		return nil, bookLookupError(err)
	}
	if book.OwnedBy(actor.UserID) {
		return nil, domainerrors.ErrOwnerCannotExpressInterest
	}

	return entity.NewContactDraft(book.Title, book.Price, book.OwnerEmail, actor.Email, srv.supportEmail), nil
}
