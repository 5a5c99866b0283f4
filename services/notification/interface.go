package notification

import "context"

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendClientPushNotification(ctx context.Context, clientID, title, body string, data map[string]string) error
	SendBarberPushNotification(ctx context.Context, barberID, title, body string, data map[string]string) error
}
