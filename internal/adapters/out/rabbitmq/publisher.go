// Package rabbitmq publishes notification events to a RabbitMQ topic exchange.
// Consumers bind with routing keys like "notification.order_created" or
// "notification.*" to receive the event stream.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/notification"

	"github.com/streadway/amqp"
)

// Publisher delivers notification events over an AMQP topic exchange.
// Implements the ports.EventPublisher interface.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// notificationEvent is the wire representation of a published notification.
type notificationEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	RecipientID string    `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	ReferenceID string    `json:"reference_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPublisher connects to RabbitMQ and declares a durable topic exchange.
// The caller owns the returned publisher and must Close it on shutdown.
func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish sends the notification to the exchange with the routing key
// "notification.<type>". Returns an error when the broker refuses the
// message so the caller can mark the notification failed.
func (p *Publisher) Publish(_ context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := notificationEvent{
		ID:          aggregate.ID().String(),
		Type:        string(aggregate.Kind()),
		RecipientID: aggregate.RecipientID().String(),
		Subject:     aggregate.Subject(),
		Message:     aggregate.Message(),
		ReferenceID: aggregate.ReferenceID().String(),
		CreatedAt:   aggregate.CreatedAt(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	routingKey := fmt.Sprintf("notification.%s", aggregate.Kind())
	err = p.channel.Publish(
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.CreatedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
