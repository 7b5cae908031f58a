package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PushPublisher publishes push delivery events to RabbitMQ
type PushPublisher struct {
	conn              *RabbitMQConnection
	messagesPublished int64
	messagesFailed    int64
	lastPublishTime   time.Time
}

// NewPushPublisher creates a new push event publisher
func NewPushPublisher(conn *RabbitMQConnection) *PushPublisher {
	return &PushPublisher{
		conn:            conn,
		lastPublishTime: time.Now(),
	}
}

// Publish publishes a push event to the push_noti_events queue
func (p *PushPublisher) Publish(ctx context.Context, event PushEventModel) error {
	// Ensure the queue exists
	_, err := p.conn.Channel.QueueDeclare(
		PushNotiQueue, // queue name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to marshal push event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",            // exchange
		PushNotiQueue, // routing key (queue name)
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to publish push event: %w", err)
	}

	p.messagesPublished++
	p.lastPublishTime = time.Now()

	slog.Info("Push event published",
		"queue", PushNotiQueue,
		"title", event.Title,
		"user_id", event.UserID,
	)

	return nil
}

// GetMetrics returns publisher metrics
func (p *PushPublisher) GetMetrics() map[string]any {
	return map[string]any{
		"messages_published": p.messagesPublished,
		"messages_failed":    p.messagesFailed,
		"last_publish_time":  p.lastPublishTime,
		"queue":              PushNotiQueue,
	}
}

// HealthCheck returns the health status of the publisher
func (p *PushPublisher) HealthCheck() PublisherHealthStatus {
	isHealthy := p.conn != nil && p.conn.Connection != nil && !p.conn.Connection.IsClosed()

	return PublisherHealthStatus{
		IsHealthy:         isHealthy,
		MessagesPublished: p.messagesPublished,
		MessagesFailed:    p.messagesFailed,
		LastPublishTime:   p.lastPublishTime,
		Queue:             PushNotiQueue,
	}
}

// PublisherHealthStatus represents the health status of the publisher
type PublisherHealthStatus struct {
	IsHealthy         bool      `json:"is_healthy"`
	MessagesPublished int64     `json:"messages_published"`
	MessagesFailed    int64     `json:"messages_failed"`
	LastPublishTime   time.Time `json:"last_publish_time"`
	Queue             string    `json:"queue"`
}
