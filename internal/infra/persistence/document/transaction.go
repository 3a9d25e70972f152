package document

import (
	"context"

	"txtchange/config"
	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"

	"go.uber.org/fx"
)

// TransactionParams holds the dependencies of the transaction manager.
type TransactionParams struct {
	fx.In

	Store  Store
	Config *config.Config
}

// storeTransactionManager implements repository.TransactionManager.
type storeTransactionManager struct {
	store  Store
	atomic bool
}

// sessionRepositoryFactory hands out repositories bound to one Session.
type sessionRepositoryFactory struct {
	session Session
}

// BookRepo returns a book repository bound to the session.
func (f *sessionRepositoryFactory) BookRepo() repository.BookRepository {
	return NewBookRepository(f.session)
}

// UserRepo returns a user repository bound to the session.
func (f *sessionRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.session)
}

// NewTransactionManager builds the manager for the configured consistency mode.
// In transactional mode Execute runs inside Store.RunTransaction; in
// independent mode the callback writes straight to the store.
func NewTransactionManager(params TransactionParams) repository.TransactionManager {
	return &storeTransactionManager{
		store:  params.Store,
		atomic: params.Config.Store.Consistency != constants.ConsistencyIndependent,
	}
}

// Atomic reports whether Execute commits as a whole.
func (tm *storeTransactionManager) Atomic() bool {
	return tm.atomic
}

// Execute runs fn against one unit of work.
func (tm *storeTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if !tm.atomic {
		return fn(&sessionRepositoryFactory{session: tm.store})
	}

	err := tm.store.RunTransaction(ctx, func(ctx context.Context, tx Session) error {
		return fn(&sessionRepositoryFactory{session: &contextSession{ctx: ctx, Session: tx}})
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// contextSession pins the transaction's context onto every call, so callers
// holding the outer context still run inside the transaction scope.
type contextSession struct {
	Session

	ctx context.Context
}

func (s *contextSession) Get(_ context.Context, collection, id string) (*Snapshot, error) {
	return s.Session.Get(s.ctx, collection, id)
}

func (s *contextSession) Query(_ context.Context, q Query) ([]*Snapshot, error) {
	return s.Session.Query(s.ctx, q)
}

func (s *contextSession) Write(_ context.Context, m Mutation) error {
	return s.Session.Write(s.ctx, m)
}
