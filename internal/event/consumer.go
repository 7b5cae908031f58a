package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"insurance-service/internal/google"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailLookup resolves a user reference to an email address. Returning an
// empty address skips email delivery for that user.
type EmailLookup func(ctx context.Context, userID string) (string, error)

// PushConsumer drains the push event queue and delivers FCM pushes and
// optional notification emails. Failures are dead-lettered, never retried.
type PushConsumer struct {
	conn          *RabbitMQConnection
	fcmService    *google.FCMService
	emailService  *google.EmailService
	lookupEmail   EmailLookup
	prefetchCount int
}

func NewPushConsumer(conn *RabbitMQConnection, fcm *google.FCMService, email *google.EmailService, lookup EmailLookup, prefetchCount int) *PushConsumer {
	if prefetchCount <= 0 {
		prefetchCount = 10
	}
	return &PushConsumer{
		conn:          conn,
		fcmService:    fcm,
		emailService:  email,
		lookupEmail:   lookup,
		prefetchCount: prefetchCount,
	}
}

// Start declares the queues and consumes until the context is cancelled.
func (c *PushConsumer) Start(ctx context.Context) error {
	ch := c.conn.Channel

	if err := ch.Qos(c.prefetchCount, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %v", err)
	}

	for _, queue := range []string{PushNotiQueue, PushNotiDLQ} {
		_, err := ch.QueueDeclare(
			queue,
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue %s: %v", queue, err)
		}
	}

	deliveries, err := ch.ConsumeWithContext(ctx, PushNotiQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %v", err)
	}

	slog.Info("Push consumer started", "queue", PushNotiQueue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("push event channel closed")
			}
			if err := c.process(ctx, delivery.Body); err != nil {
				slog.Error("Push delivery failed", "error", err)
				c.deadLetter(ctx, delivery.Body)
			}
			if err := delivery.Ack(false); err != nil {
				slog.Error("Failed to ack push event", "error", err)
			}
		}
	}
}

func (c *PushConsumer) process(ctx context.Context, body []byte) error {
	var event PushEventModel
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode push event: %w", err)
	}

	if c.fcmService != nil {
		_, err := c.fcmService.SendPushNotification(ctx, &google.PushNotificationPayload{
			Topic: google.UserTopic(event.UserID),
			Title: event.Title,
			Body:  event.Message,
			Data: map[string]string{
				"related_type": event.RelatedType,
				"related_id":   event.RelatedID,
			},
		})
		if err != nil {
			return fmt.Errorf("fcm delivery failed: %w", err)
		}
	}

	if c.emailService != nil && c.lookupEmail != nil {
		address, err := c.lookupEmail(ctx, event.UserID)
		if err != nil {
			slog.Warn("Email lookup failed, skipping email delivery", "user_id", event.UserID, "error", err)
			return nil
		}
		if address != "" {
			if err := c.emailService.SendNotificationEmail(address, event.Title, event.Message); err != nil {
				return fmt.Errorf("email delivery failed: %w", err)
			}
		}
	}

	return nil
}

func (c *PushConsumer) deadLetter(ctx context.Context, body []byte) {
	err := c.conn.Channel.PublishWithContext(
		ctx,
		"",
		PushNotiDLQ,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		slog.Error("Failed to dead-letter push event", "error", err)
	}
}
