package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"logiflow/internal/entities"
)

const (
	OrdersExchange = "orders.exchange"

	// Сообщения, исчерпавшие попытки обработки, паркуются здесь.
	DeadLetterExchange = "orders.dlx"
	DeadLetterQueue    = "orders.dlq"

	// Отложенный повтор: сообщение из retry-очереди по истечении TTL
	// возвращается в исходную очередь через default-обменник.
	retryExchange  = "orders.retry"
	retryQueueTTL  = int32(5000)
	retrySuffix    = ".retry"
	deadLetterArgs = "x-dead-letter-exchange"

	QueueOrderCreated       = "order.created.queue"
	QueueOrderStatusChanged = "order.status.changed.queue"
)

// declareTopology объявляет обменники, очереди и привязки. Вызывается
// при каждом подключении: повторное объявление идемпотентно.
func declareTopology(ch *amqp.Channel) error {
	exchanges := []struct {
		name string
		kind string
	}{
		{OrdersExchange, "topic"},
		{retryExchange, "direct"},
		{DeadLetterExchange, "direct"},
	}

	for _, ex := range exchanges {
		if err := ch.ExchangeDeclare(ex.name, ex.kind, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare exchange %s: %w", ex.name, err)
		}
	}

	queues := []struct {
		name       string
		routingKey string
	}{
		{QueueOrderCreated, entities.RoutingKeyOrderCreated},
		{QueueOrderStatusChanged, entities.RoutingKeyOrderStatusChanged},
	}

	for _, q := range queues {
		if _, err := ch.QueueDeclare(q.name, true, false, false, false, amqp.Table{
			deadLetterArgs:              retryExchange,
			"x-dead-letter-routing-key": q.name,
		}); err != nil {
			return fmt.Errorf("declare queue %s: %w", q.name, err)
		}

		if err := ch.QueueBind(q.name, q.routingKey, OrdersExchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", q.name, OrdersExchange, err)
		}

		// retry-очередь: TTL истекает, сообщение возвращается в
		// исходную очередь через default-обменник.
		retryQueue := q.name + retrySuffix
		if _, err := ch.QueueDeclare(retryQueue, true, false, false, false, amqp.Table{
			"x-message-ttl":             retryQueueTTL,
			deadLetterArgs:              "",
			"x-dead-letter-routing-key": q.name,
		}); err != nil {
			return fmt.Errorf("declare queue %s: %w", retryQueue, err)
		}

		if err := ch.QueueBind(retryQueue, q.name, retryExchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", retryQueue, retryExchange, err)
		}
	}

	if _, err := ch.QueueDeclare(DeadLetterQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", DeadLetterQueue, err)
	}
	for _, q := range queues {
		if err := ch.QueueBind(DeadLetterQueue, q.name, DeadLetterExchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", DeadLetterQueue, DeadLetterExchange, err)
		}
	}

	return nil
}
