package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// TaskHandler applies one delivered global slot task.
type TaskHandler interface {
	Handle(ctx context.Context, task model.GlobalSlotTask) error
}

type Consumer struct {
	url      string
	handler  TaskHandler
	prefetch int
}

func NewConsumer(host string, port int, user, password string, handler TaskHandler) *Consumer {
	return &Consumer{
		url:      dsn(host, port, user, password),
		handler:  handler,
		prefetch: 1,
	}
}

// Start consumes the global slot queue in the background until ctx is done,
// reconnecting with a growing delay whenever the broker goes away.
func (c *Consumer) Start(ctx context.Context) {
	go func() {
		backoff := time.Second
		for {
			conn, err := amqp091.Dial(c.url)
			if err != nil {
				logger.Warn("[Consumer] dial broker failed", zap.String("error", err.Error()), zap.Duration("retry_in", backoff))
				if !sleep(ctx, backoff) {
					return
				}
				if backoff < 30*time.Second {
					backoff *= 2
				}
				continue
			}
			backoff = time.Second

			err = c.consumeLoop(ctx, conn)
			conn.Close()
			if ctx.Err() != nil {
				return
			}
			logger.Warn("[Consumer] consume loop ended, reconnecting", zap.Error(err))
			if !sleep(ctx, 2*time.Second) {
				return
			}
		}
	}()
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp091.Connection) error {
	channel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = channel.Close() }()

	if err := declareTopology(channel); err != nil {
		return err
	}
	if err := channel.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	msgs, err := channel.Consume(
		globalSlotQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.deliver(ctx, msg)
		}
	}
}

func (c *Consumer) deliver(ctx context.Context, msg amqp091.Delivery) {
	var task model.GlobalSlotTask
	if err := json.Unmarshal(msg.Body, &task); err != nil {
		logger.Error("[Consumer] drop malformed global slot task", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.handler.Handle(ctx, task); err != nil {
		logger.Error("[Consumer] handle global slot task",
			zap.String("task_id", task.TaskID),
			zap.String("error", err.Error()),
		)
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
