package impl

import (
	"context"
	"fmt"
	"log/slog"

	"txtchange/config"
	deliverycontext "txtchange/internal/delivery/context"
	"txtchange/internal/domain/constants"
	"txtchange/internal/domain/entity"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"
	"txtchange/internal/usecase"
	"txtchange/internal/util"

	"go.uber.org/fx"
)

type notificationService struct {
	mailer       service.Mailer
	notifier     service.PushNotifier
	supportEmail string
	logger       *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Mailer   service.Mailer
	Notifier service.PushNotifier
	Config   *config.Config
	Logger   *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	supportEmail := ""
	if params.Config.Listing != nil {
		supportEmail = params.Config.Listing.SupportEmail
	}

	return &notificationService{
		mailer:       params.Mailer,
		notifier:     params.Notifier,
		supportEmail: supportEmail,
		logger:       params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleListingEvent mails and pushes the notifications of one event. Mail
// failures are returned for redelivery; push failures are only logged.
func (s *notificationService) HandleListingEvent(ctx context.Context, event *service.ListingEvent) error {
	switch event.Type {
	case constants.EventInterestAdded:
		return s.interestAdded(ctx, event)
	case constants.EventListingCompleted:
		return s.listingCompleted(ctx, event)
	case constants.EventListingDeleted:
		return s.listingDeleted(ctx, event)
	default:
		return errors.Wrapf(usecase.ErrPoisonEvent, "unknown event type %q", event.Type)
	}
}

// interestAdded forwards the buyer's enquiry to the seller.
func (s *notificationService) interestAdded(ctx context.Context, event *service.ListingEvent) error {
	if event.SellerEmail == "" || event.BuyerEmail == "" {
		return errors.Wrap(usecase.ErrPoisonEvent, "interest event without seller or buyer email")
	}

	draft := entity.NewContactDraft(event.Title, event.Price, event.SellerEmail, event.BuyerEmail, s.supportEmail)
	msg := &service.MailMessage{
		To:      []string{draft.To},
		ReplyTo: draft.ReplyTo,
		Subject: draft.Subject,
		Body:    draft.Body,
	}
	if draft.Bcc != "" {
		msg.Bcc = []string{draft.Bcc}
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to mail seller")
	}

	buyer := event.BuyerName
	if buyer == "" {
		buyer = util.DisplayNameFromEmail(event.BuyerEmail)
	}
	s.push(ctx, event, event.SellerID, "New interest in your listing",
		fmt.Sprintf("%s is interested in '%s'", buyer, event.Title))

	return nil
}

// listingCompleted sends both parties a receipt.
func (s *notificationService) listingCompleted(ctx context.Context, event *service.ListingEvent) error {
	if event.SellerEmail == "" {
		return errors.Wrap(usecase.ErrPoisonEvent, "completion event without seller email")
	}

	body := fmt.Sprintf("The sale of '%s' for $%s has been confirmed by both the buyer and the seller. "+
		"The listing has been removed from txtChange.\n\nThe txtChange Team", event.Title, util.FormatPrice(event.Price))
	subject := "txtChange: Sale completed for " + event.Title

	recipients := []string{event.SellerEmail}
	if event.BuyerEmail != "" {
		recipients = append(recipients, event.BuyerEmail)
	}
	for _, to := range recipients {
		if err := s.mailer.Send(ctx, &service.MailMessage{To: []string{to}, Subject: subject, Body: body}); err != nil {
			return errors.Wrapf(err, "failed to mail receipt to %s", to)
		}
	}

	s.push(ctx, event, event.SellerID, "Sale completed", fmt.Sprintf("'%s' was sold", event.Title))
	if event.BuyerID != "" {
		s.push(ctx, event, event.BuyerID, "Purchase completed", fmt.Sprintf("You bought '%s'", event.Title))
	}

	return nil
}

// listingDeleted tells interested buyers the listing is gone.
func (s *notificationService) listingDeleted(ctx context.Context, event *service.ListingEvent) error {
	for _, buyerID := range event.InterestedBuyerIDs {
		s.push(ctx, event, buyerID, "Listing removed",
			fmt.Sprintf("'%s' is no longer available", event.Title))
	}

	return nil
}

func (s *notificationService) push(ctx context.Context, event *service.ListingEvent, userID, title, body string) {
	if userID == "" {
		return
	}

	data := map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
		"book_id":  event.BookID,
	}
	if err := s.notifier.NotifyUser(ctx, userID, title, body, data); err != nil {
		s.log(ctx).Warn("Push notification failed",
			slog.String("user_id", userID),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
