package driving

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "wellness.events"
	queueName    = "driving_alerts"
)

// AlertDispatcher publishes fired alerts to RabbitMQ so downstream
// consumers (notification senders, analytics) can react without blocking
// the request path.
type AlertDispatcher struct {
	ch *amqp.Channel
}

func NewAlertDispatcher(conn *amqp.Connection) (*AlertDispatcher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &AlertDispatcher{ch: ch}, nil
}

type alertEvent struct {
	AlertID   string  `json:"alert_id"`
	UserID    int     `json:"user_id"`
	DeviceID  string  `json:"device_id"`
	Venue     string  `json:"venue"`
	Distance  float64 `json:"distance"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

func (d *AlertDispatcher) PublishAlert(ctx context.Context, userID int, deviceID string, sample Sample, match Match) error {
	if d == nil {
		return nil
	}

	event := alertEvent{
		AlertID:   uuid.NewString(),
		UserID:    userID,
		DeviceID:  deviceID,
		Venue:     match.Name,
		Distance:  match.Distance,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Timestamp: sample.Timestamp.Unix(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal alert event: %w", err)
	}

	return d.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
}
