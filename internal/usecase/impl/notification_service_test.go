package impl

import (
	"context"
	"testing"

	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"
	mockService "txtchange/internal/mocks/service"
	"txtchange/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service  usecase.NotificationUsecase
	mailer   *mockService.MockMailer
	notifier *mockService.MockPushNotifier
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	mailer := mockService.NewMockMailer(t)
	notifier := mockService.NewMockPushNotifier(t)

	return notificationServiceFixtures{
		service: NewNotificationService(NotificationServiceParams{
			Mailer:   mailer,
			Notifier: notifier,
			Config:   testConfig(constants.ConsistencyTransactional),
			Logger:   discardLogger(),
		}),
		mailer:   mailer,
		notifier: notifier,
	}
}

func sampleEvent(eventType string) *service.ListingEvent {
	return &service.ListingEvent{
		EventID:     "evt-1",
		Type:        eventType,
		BookID:      "book-1",
		Title:       "The C Programming Language",
		Price:       45,
		SellerID:    "seller",
		SellerEmail: "seller@uni.edu",
		BuyerID:     "buyer",
		BuyerEmail:  "buyer@uni.edu",
		BuyerName:   "Buyer",
	}
}

func TestNotificationService_InterestAdded(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *service.MailMessage) bool {
			return msg.To[0] == "seller@uni.edu" &&
				msg.ReplyTo == "buyer@uni.edu" &&
				len(msg.Bcc) == 1 && msg.Bcc[0] == "support@txtchange.test" &&
				msg.Subject == "txtChange: Interest in Book The C Programming Language"
		})).
		Return(nil)
	fx.notifier.EXPECT().
		NotifyUser(ctx, "seller", "New interest in your listing", "Buyer is interested in 'The C Programming Language'", mock.Anything).
		Return(nil)

	require.NoError(t, fx.service.HandleListingEvent(ctx, sampleEvent(constants.EventInterestAdded)))
}

func TestNotificationService_InterestAdded_MailErrorIsReturned(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("relay down"))

	err := fx.service.HandleListingEvent(ctx, sampleEvent(constants.EventInterestAdded))
	require.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrPoisonEvent))
}

func TestNotificationService_ListingCompleted(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	for _, to := range []string{"seller@uni.edu", "buyer@uni.edu"} {
		fx.mailer.EXPECT().
			Send(ctx, mock.MatchedBy(func(msg *service.MailMessage) bool {
				return msg.To[0] == to && msg.Subject == "txtChange: Sale completed for The C Programming Language"
			})).
			Return(nil).
			Once()
	}
	fx.notifier.EXPECT().NotifyUser(ctx, "seller", "Sale completed", mock.Anything, mock.Anything).Return(nil)
	fx.notifier.EXPECT().
		NotifyUser(ctx, "buyer", "Purchase completed", mock.Anything, mock.Anything).
		Return(errors.New("no devices"))

	require.NoError(t, fx.service.HandleListingEvent(ctx, sampleEvent(constants.EventListingCompleted)))
}

func TestNotificationService_ListingDeleted(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	event := sampleEvent(constants.EventListingDeleted)
	event.InterestedBuyerIDs = []string{"buyer", "other"}
	for _, userID := range event.InterestedBuyerIDs {
		fx.notifier.EXPECT().
			NotifyUser(ctx, userID, "Listing removed", "'The C Programming Language' is no longer available", mock.Anything).
			Return(nil).
			Once()
	}

	require.NoError(t, fx.service.HandleListingEvent(ctx, event))
}

func TestNotificationService_PoisonEvents(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	err := fx.service.HandleListingEvent(ctx, sampleEvent("listing.archived"))
	assert.True(t, errors.Is(err, usecase.ErrPoisonEvent))

	event := sampleEvent(constants.EventInterestAdded)
	event.BuyerEmail = ""
	err = fx.service.HandleListingEvent(ctx, event)
	assert.True(t, errors.Is(err, usecase.ErrPoisonEvent))

	event = sampleEvent(constants.EventListingCompleted)
	event.SellerEmail = ""
	err = fx.service.HandleListingEvent(ctx, event)
	assert.True(t, errors.Is(err, usecase.ErrPoisonEvent))
}
