package service

import "context"

// PushNotifier sends mobile push notifications to a user's devices.
type PushNotifier interface {
	// NotifyUser pushes a notification to every device subscribed for userID.
	NotifyUser(ctx context.Context, userID, title, body string, data map[string]string) error
}
