package usecase

import (
	"context"

	"txtchange/internal/domain/service"
	"txtchange/internal/errors"
)

// ErrPoisonEvent marks an event that can never be processed, such as an
// unknown type or a payload missing its recipients.
var ErrPoisonEvent = errors.New("event cannot be processed")

// NotificationUsecase turns listing events into email and push notifications.
type NotificationUsecase interface {
	// HandleListingEvent delivers the notifications of one event. Errors
	// wrapping ErrPoisonEvent must not be retried.
	HandleListingEvent(ctx context.Context, event *service.ListingEvent) error
}
