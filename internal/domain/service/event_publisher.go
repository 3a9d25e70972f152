package service

import (
	"context"
	"time"
)

// ListingEvent is published after a listing or interest changes, for the worker to act on.
type ListingEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	BookID      string    `json:"book_id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	SellerID    string    `json:"seller_id"`
	SellerEmail string    `json:"seller_email"`
	BuyerID     string    `json:"buyer_id,omitempty"`
	BuyerEmail  string    `json:"buyer_email,omitempty"`
	BuyerName   string    `json:"buyer_name,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`

	// InterestedBuyerIDs lists every buyer holding an interest when the event fired.
	InterestedBuyerIDs []string `json:"interested_buyer_ids,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingEvent publishes a listing event for async processing
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
