package usecase

import (
	"context"

	"txtchange/internal/domain/entity"
)

// ContactUsecase prepares buyer to seller email.
type ContactUsecase interface {
	// ContactSeller returns a pre-filled enquiry about a listing.
	ContactSeller(ctx context.Context, actor entity.Identity, bookID string) (*entity.ContactDraft, error)
}
