package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"waterdelivery/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the fanout exchange notifications are published to.
const DefaultExchange = "waterdelivery.notifications"

type amqpPublisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
}

// notificationMessage is the JSON body of a published notification.
type notificationMessage struct {
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	CreatedOrderID *string   `json:"created_order_id,omitempty"`
	RaisedAt       time.Time `json:"raised_at"`
}

// AMQPSink publishes notifications as persistent JSON messages.
type AMQPSink struct {
	channel  amqpPublisher
	exchange string
	now      func() time.Time
}

func NewAMQPSink(channel amqpPublisher, exchange string) *AMQPSink {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &AMQPSink{
		channel:  channel,
		exchange: exchange,
		now:      time.Now,
	}
}

func (s *AMQPSink) Name() string {
	return "amqp"
}

func (s *AMQPSink) Send(ctx context.Context, notification ports.Notification) error {
	msg := notificationMessage{
		Title:    notification.Title,
		Message:  notification.Message,
		RaisedAt: s.now().UTC(),
	}
	if notification.CreatedOrderID != nil {
		id := notification.CreatedOrderID.String()
		msg.CreatedOrderID = &id
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("amqp: marshal notification: %w", err)
	}

	err = s.channel.PublishWithContext(ctx,
		s.exchange, // exchange
		"",         // routing key, ignored by fanout
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    msg.RaisedAt,
		})
	if err != nil {
		return fmt.Errorf("amqp: publish to %s: %w", s.exchange, err)
	}
	return nil
}

// DialAMQP connects to the broker and declares the durable fanout exchange.
// The caller closes the returned connection.
func DialAMQP(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("amqp: dial: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("amqp: open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("amqp: declare exchange %s: %w", exchange, err)
	}

	return conn, channel, nil
}
