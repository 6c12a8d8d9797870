package notification

import (
	"context"
	"fmt"

	profileRepo "expertly/database/repository/profile"
	"expertly/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	// SendPushNotification looks up a profile's FCM token and sends a push.
	SendPushNotification(ctx context.Context, profileID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Profiles profileRepo.ProfileRepository
}

// NewDefaultNotificationService wires the notification service.
func NewDefaultNotificationService(profiles profileRepo.ProfileRepository) (*DefaultNotificationService, error) {
	if profiles == nil {
		return nil, fmt.Errorf("notification service initialization error: profile repository is nil")
	}
	return &DefaultNotificationService{Profiles: profiles}, nil
}

// SendPushNotification looks up a profile's FCM token and sends a push.
func (s *DefaultNotificationService) SendPushNotification(
	ctx context.Context,
	profileID, title, body string,
	data map[string]string,
) error {
	profile, err := s.Profiles.GetByID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("SendPushNotification: could not find profile %s: %w", profileID, err)
	}
	token := profile.FCMToken
	if token == "" {
		return fmt.Errorf("SendPushNotification: profile %s has no FCM token", profileID)
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "messages",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
