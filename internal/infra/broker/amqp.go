package broker

import (
	"context"
	"sync"

	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errs.New("publisher is closed")

// AMQPPublisher publishes persistent JSON messages to a durable topic
// exchange, using the event topic as routing key.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	clock    clock.Clock
	closed   bool
}

func NewAMQPPublisher(url, exchange string, clk clock.Clock) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		clock:    clk,
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, messageID uuid.UUID, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID.String(),
		Type:         topic,
		Timestamp:    p.clock.Now().UTC(),
		Body:         payload,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, topic, false, false, msg); err != nil {
		return errs.Wrapf(err, "failed to publish %s", topic)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if err := p.ch.Close(); err != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
		return errs.Wrap(err, "failed to close channel")
	}
	if p.conn.IsClosed() {
		return nil
	}
	if err := p.conn.Close(); err != nil {
		return errs.Wrap(err, "failed to close connection")
	}
	return nil
}
