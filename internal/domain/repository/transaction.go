package repository

import "context"

// TransactionManager runs a unit of work against the document store.
type TransactionManager interface {
	// Execute runs fn with repositories bound to one unit of work. When Atomic
	// reports true the unit commits or rolls back as a whole; otherwise every
	// write is applied as soon as it is issued and nothing is rolled back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error

	// Atomic reports whether Execute is backed by a store transaction.
	Atomic() bool
}

// RepositoryFactory provides repositories bound to the current unit of work.
type RepositoryFactory interface {
	BookRepo() BookRepository
	UserRepo() UserRepository
}
