package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	globalSlotExchange   = "global_slot_exchange"
	globalSlotQueue      = "global_slot_queue"
	globalSlotRoutingKey = "global_slot"

	bookingEventsExchange = "booking_events"
	bookingFinalizedKey   = "booking.finalized"
)

func dsn(host string, port int, user, password string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
}

// declareTopology declares the delayed global slot exchange with its queue
// and the booking events exchange. Publisher and consumer both call it, so
// either may start first.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		globalSlotExchange,  // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return fmt.Errorf("declare %s: %w", globalSlotExchange, err)
	}

	if _, err := channel.QueueDeclare(globalSlotQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare %s: %w", globalSlotQueue, err)
	}

	if err := channel.QueueBind(globalSlotQueue, globalSlotRoutingKey, globalSlotExchange, false, nil); err != nil {
		return fmt.Errorf("bind %s: %w", globalSlotQueue, err)
	}

	if err := channel.ExchangeDeclare(bookingEventsExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare %s: %w", bookingEventsExchange, err)
	}
	return nil
}
