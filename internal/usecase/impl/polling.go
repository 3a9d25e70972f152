package impl

import (
	"context"
	"time"

	"txtchange/internal/errors"

	"github.com/cenkalti/backoff/v4"
)

var (
	errPollTimeout = errors.New("poll timed out")
	errNotYet      = errors.New("condition not met yet")
)

// pollUntil calls check right away and then every interval until it reports
// done. It gives up with errPollTimeout after timeout, and returns the caller's
// context error when ctx ends first. An error from check stops the poll.
func pollUntil(ctx context.Context, timeout, interval time.Duration, check func(ctx context.Context) (bool, error)) error {
	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := backoff.Retry(func() error {
		done, err := check(pollCtx)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !done {
			return errNotYet
		}

		return nil
	}, backoff.WithContext(backoff.NewConstantBackOff(interval), pollCtx))
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return errors.WithStack(ctx.Err())
	}
	if pollCtx.Err() != nil || errors.Is(err, errNotYet) {
		return errPollTimeout
	}

	return err
}
