package notification

import (
	"context"
	"fmt"

	barberRepo "barberbook/database/repository/barber"
	clientRepo "barberbook/database/repository/client"
	"barberbook/utils"

	"firebase.google.com/go/v4/messaging"
)

// DefaultNotificationService is the production FCM implementation.
type DefaultNotificationService struct {
	Clients clientRepo.ClientRepository
	Barbers barberRepo.BarberRepository
}

// SendClientPushNotification looks up a client's FCM token and sends a push.
func (s *DefaultNotificationService) SendClientPushNotification(
	ctx context.Context,
	clientID, title, body string,
	data map[string]string,
) error {
	c, err := s.Clients.GetByID(clientID)
	if err != nil {
		return fmt.Errorf("SendClientPushNotification: could not find client %s: %w", clientID, err)
	}
	if c.FCMToken == "" {
		return fmt.Errorf("SendClientPushNotification: client %s has no FCM token", clientID)
	}

	msg := &messaging.Message{
		Token: c.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendClientPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

// SendBarberPushNotification looks up a barber's FCM token and sends a push.
func (s *DefaultNotificationService) SendBarberPushNotification(
	ctx context.Context,
	barberID, title, body string,
	data map[string]string,
) error {
	b, err := s.Barbers.GetByID(barberID)
	if err != nil {
		return fmt.Errorf("SendBarberPushNotification: could not find barber %s: %w", barberID, err)
	}
	if b.FCMToken == "" {
		return fmt.Errorf("SendBarberPushNotification: barber %s has no FCM token", barberID)
	}

	msg := &messaging.Message{
		Token: b.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendBarberPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
