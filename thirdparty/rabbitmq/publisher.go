package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher dials lazily and redials whenever the broker closed its
// channel, so a broker outage only fails the publishes made during it.
type Publisher struct {
	url     string
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(host string, port int, user, password string) *Publisher {
	p := &Publisher{url: dsn(host, port, user, password)}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connect(); err != nil {
		logger.Warn("[Publisher] broker unreachable, will redial on publish", zap.String("error", err.Error()))
	}
	return p
}

// connect opens a channel unless a live one exists. p.mu must be held.
func (p *Publisher) connect() error {
	if p.channel != nil && !p.channel.IsClosed() {
		return nil
	}
	p.reset()

	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("channel open: %w", err)
	}
	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return err
	}
	p.conn, p.channel = conn, channel
	return nil
}

func (p *Publisher) reset() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
	}
	p.conn = nil
}

// PublishGlobalSlotTask queues the task on the delayed exchange. The broker
// holds it for delay before routing it to the worker queue.
func (p *Publisher) PublishGlobalSlotTask(ctx context.Context, task model.GlobalSlotTask, delay time.Duration) error {
	body, err := json.Marshal(task)
	if err != nil {
		return err
	}

	delayMs := delay.Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}

	return p.publish(ctx, globalSlotExchange, globalSlotRoutingKey, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    task.TaskID,
		Timestamp:    time.Now(),
		Body:         body,
		Headers: amqp091.Table{
			"x-delay": delayMs,
		},
	})
}

func (p *Publisher) PublishBookingFinalized(ctx context.Context, event model.BookingFinalizedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, bookingEventsExchange, bookingFinalizedKey, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Type:         event.Event,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// amqp channels must not be shared between concurrent publishers
func (p *Publisher) publish(ctx context.Context, exchange, key string, msg amqp091.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connect(); err != nil {
		return err
	}
	err := p.channel.PublishWithContext(ctx, exchange, key, false, false, msg)
	if err == nil || !p.channel.IsClosed() {
		return err
	}
	// the channel died under us, one redial
	logger.Warn("[Publisher] channel closed, redialing", zap.String("error", err.Error()))
	if err := p.connect(); err != nil {
		return err
	}
	return p.channel.PublishWithContext(ctx, exchange, key, false, false, msg)
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}
