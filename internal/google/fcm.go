package google

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

type PushNotificationPayload struct {
	Topic string            `json:"topic,omitempty"`
	Token string            `json:"token,omitempty"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// FCMService delivers push notifications through Firebase Cloud Messaging.
// Mobile clients subscribe to the per-user topic "user-<uid>".
type FCMService struct {
	client *messaging.Client
}

func NewFCMService(ctx context.Context, app *firebase.App) (*FCMService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %v", err)
	}

	return &FCMService{client: client}, nil
}

// UserTopic returns the FCM topic a user's devices subscribe to.
func UserTopic(userID string) string {
	return "user-" + userID
}

// SendPushNotification sends a single push, addressed by topic or device token.
func (f *FCMService) SendPushNotification(ctx context.Context, payload *PushNotificationPayload) (string, error) {
	message := &messaging.Message{
		Topic: payload.Topic,
		Token: payload.Token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	response, err := f.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("error sending message: %v", err)
	}

	return response, nil
}
