package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// RabbitMQService publishes API key events to a topic exchange
type RabbitMQService struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewRabbitMQService dials url and declares exchange
func NewRabbitMQService(url, exchange string) (*RabbitMQService, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logrus.WithField("exchange", exchange).Info("RabbitMQ service initialized successfully")
	return &RabbitMQService{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish sends event to the exchange using its type as routing key.
// Failures are logged; a broker outage never fails the API call that caused the event.
func (s *RabbitMQService) Publish(ctx context.Context, event models.APIKeyEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		logrus.Errorf("Failed to marshal event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = s.channel.PublishWithContext(ctx,
		s.exchange,         // exchange
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		logrus.WithError(err).WithField("event", event.Type).Warn("Failed to publish API key event")
		return
	}

	logrus.WithFields(logrus.Fields{"event": event.Type, "api_key_id": event.APIKeyID}).Debug("API key event published")
}

// Close closes the RabbitMQ connection
func (s *RabbitMQService) Close() error {
	if s.channel != nil {
		if err := s.channel.Close(); err != nil {
			logrus.Warnf("Error closing channel: %v", err)
		}
	}
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			logrus.Warnf("Error closing connection: %v", err)
		}
	}
	return nil
}
