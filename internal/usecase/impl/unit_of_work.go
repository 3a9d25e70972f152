// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "txtchange/internal/delivery/context"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"

	"golang.org/x/sync/errgroup"
)

// maxFanOut caps concurrent writes of an independent-mode cascade.
const maxFanOut = 8

// writeStep is one write of a change that spans several documents.
type writeStep struct {
	name  string
	apply func(ctx context.Context) error
}

// unitOfWork runs multi-document changes in the configured consistency mode.
type unitOfWork struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

func newUnitOfWork(txManager repository.TransactionManager, logger *slog.Logger) *unitOfWork {
	return &unitOfWork{txManager: txManager, logger: logger}
}

func (u *unitOfWork) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, u.logger)
}

// execute runs fn as one unit of work. Failures that are not already
// application errors surface as TRANSACTION_FAILED.
func (u *unitOfWork) execute(ctx context.Context, op string, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := u.txManager.Execute(ctx, fn)
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, op)
	}

	u.log(ctx).Error("Unit of work failed", slog.String("op", op), slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrTransactionFailed, op)
}

// apply issues the writes of one change. Inside a transaction the steps run in
// order and the first failure aborts the unit. Otherwise every step is
// attempted (concurrently when fanOut is set) and nothing is rolled back; a mix
// of applied and failed steps is reported as PARTIAL_WRITE.
func (u *unitOfWork) apply(ctx context.Context, op string, fanOut bool, steps ...writeStep) error {
	if u.txManager.Atomic() {
		for _, step := range steps {
			if err := step.apply(ctx); err != nil {
				return errors.Wrapf(err, "%s: %s", op, step.name)
			}
		}

		return nil
	}

	results := make([]error, len(steps))
	if fanOut {
		var group errgroup.Group
		group.SetLimit(maxFanOut)
		for idx, step := range steps {
			group.Go(func() error {
				results[idx] = step.apply(ctx)

				return nil
			})
		}
		_ = group.Wait()
	} else {
		for idx, step := range steps {
			results[idx] = step.apply(ctx)
		}
	}

	var applied, failed []string
	var errs []error
	for idx, err := range results {
		if err != nil {
			failed = append(failed, steps[idx].name)
			errs = append(errs, err)

			continue
		}
		applied = append(applied, steps[idx].name)
	}

	if len(failed) == 0 {
		return nil
	}
	if len(applied) == 0 {
		return errors.Wrapf(errs[0], "%s: %s", op, failed[0])
	}

	u.log(ctx).Error("Partial write, documents diverged",
		slog.String("op", op),
		slog.Any("applied", applied),
		slog.Any("failed", failed),
		slog.Any("error", errors.Join(errs...)),
	)

	return errors.Wrap(domainerrors.ErrPartialWrite.WithDetails(strings.Join(failed, ", ")+" failed"), op)
}
