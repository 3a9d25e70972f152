package service

import (
	"context"

	"txtchange/internal/domain/entity"
)

// BookLookup resolves an ISBN to descriptive metadata from an external catalogue.
// Implementations return domainerrors.ErrLookupNoResults for an empty result and
// domainerrors.ErrLookupFailed for any other failure.
type BookLookup interface {
	LookupISBN(ctx context.Context, isbn string) (*entity.BookMetadata, error)
}
