// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"txtchange/internal/domain/service"
	"txtchange/internal/errors"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
)

// UserTopic is the FCM topic the mobile client subscribes each signed-in user to.
func UserTopic(userID string) string {
	return "user_" + userID
}

// messageSender is the slice of the FCM client the notifier uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// Params holds the dependencies of the push notifier.
type Params struct {
	fx.In

	Logger      *slog.Logger
	FirebaseApp *fb.App `optional:"true"`
}

// NewPushNotifier returns an FCM notifier, or a no-op one without a Firebase project.
func NewPushNotifier(params Params) (service.PushNotifier, error) {
	if params.FirebaseApp == nil {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &noopNotifier{logger: params.Logger}, nil
	}

	client, err := params.FirebaseApp.Messaging(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: params.Logger}, nil
}

// NotifyUser sends one message to the user's topic.
func (s *firebaseService) NotifyUser(ctx context.Context, userID, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: UserTopic(userID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.DebugContext(ctx, "Push notification sent",
		slog.String("topic", message.Topic),
		slog.String("message_id", id),
	)

	return nil
}

type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) NotifyUser(ctx context.Context, userID, title, _ string, _ map[string]string) error {
	n.logger.DebugContext(ctx, "Push notification skipped",
		slog.String("user_id", userID),
		slog.String("title", title),
	)

	return nil
}
