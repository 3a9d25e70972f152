package impl

import (
	"context"
	"time"

	deliverycontext "txtchange/internal/delivery/context"
	"txtchange/internal/domain/entity"
	"txtchange/internal/domain/service"

	"github.com/google/uuid"
)

// newListingEvent describes a change of book for the worker. interest may be nil.
func newListingEvent(ctx context.Context, eventType string, book *entity.Book, interest *entity.Interest) *service.ListingEvent {
	event := &service.ListingEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        eventType,
		BookID:      book.ID,
		Title:       book.Title,
		Price:       book.Price,
		SellerID:    book.OwnerID,
		SellerEmail: book.OwnerEmail,
		OccurredAt:  time.Now().UTC(),
	}
	if interest != nil {
		event.BuyerID = interest.BuyerID
		event.BuyerEmail = interest.BuyerEmail
		event.BuyerName = interest.BuyerDisplayName
	}
	for _, i := range book.InterestList() {
		event.InterestedBuyerIDs = append(event.InterestedBuyerIDs, i.BuyerID)
	}

	return event
}
