package usecase

import (
	"context"

	"txtchange/internal/domain/entity"
	"txtchange/internal/domain/repository"
)

// SearchUsecase finds listings for a buyer. Results never include the actor's
// own listings and are ordered by ascending price. On failure the returned
// slice is empty, never nil.
type SearchUsecase interface {
	SearchByField(ctx context.Context, actor entity.Identity, field repository.BookField, value string) ([]*entity.Book, error)
	SearchByCategory(ctx context.Context, actor entity.Identity, category entity.Category) ([]*entity.Book, error)
	// Featured returns at most one listing per category, for the home feed.
	Featured(ctx context.Context, actor entity.Identity) ([]*entity.Book, error)
}
