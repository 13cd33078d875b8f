package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"logiflow/pkg/logger"
)

// ConsumerConfig задаёт параметры потребления одной очереди.
type ConsumerConfig struct {
	Queue       string
	ConsumerTag string
	Prefetch    int

	// Сколько раз сообщение проходит через retry-очередь, прежде чем
	// быть припаркованным в DLQ.
	MaxDeliveryAttempts int64
}

func (c *Client) newConsumerChannel(prefetch int) (*amqp.Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return nil, errors.New("rabbitmq: connection is not ready")
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("rabbitmq: set QoS (prefetch=%d): %w", prefetch, err)
	}

	return ch, nil
}

// Consume читает очередь с ручными подтверждениями. Ошибка обработчика
// отправляет сообщение в retry-очередь; после исчерпания попыток
// сообщение паркуется в DLQ и подтверждается.
func (c *Client) Consume(
	ctx context.Context,
	cfg ConsumerConfig,
	handler func(context.Context, amqp.Delivery) error,
) error {
	ch, err := c.newConsumerChannel(cfg.Prefetch)
	if err != nil {
		return err
	}
	defer ch.Close()

	deliveries, err := ch.Consume(
		cfg.Queue,
		cfg.ConsumerTag,
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("rabbitmq: consume(%s): %w", cfg.Queue, err)
	}

	chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))

	for {
		select {
		case <-ctx.Done():
			if cfg.ConsumerTag != "" {
				_ = ch.Cancel(cfg.ConsumerTag, false)
			}
			return nil

		case cerr := <-chClosed:
			if cerr != nil {
				return fmt.Errorf("rabbitmq: channel closed while consuming %s: %w", cfg.Queue, cerr)
			}
			return nil

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			if err := handler(ctx, d); err != nil {
				c.rejectDelivery(ctx, cfg, d, err)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Client) rejectDelivery(ctx context.Context, cfg ConsumerConfig, d amqp.Delivery, handlerErr error) {
	attempts := deathCount(d, cfg.Queue)
	if attempts >= cfg.MaxDeliveryAttempts {
		c.log.Error("message parked to dead letter queue",
			logger.NewField("queue", cfg.Queue),
			logger.NewField("message_id", d.MessageId),
			logger.NewField("attempts", attempts),
			logger.NewField("error", handlerErr),
		)

		if err := c.Publish(ctx, DeadLetterExchange, cfg.Queue, d.MessageId, d.Body); err != nil {
			c.log.Error("dead letter publish failed, message requeued",
				logger.NewField("queue", cfg.Queue),
				logger.NewField("message_id", d.MessageId),
				logger.NewField("error", err),
			)
			_ = d.Nack(false, true)
			return
		}
		_ = d.Ack(false)
		return
	}

	c.log.Warn("message processing failed, scheduling retry",
		logger.NewField("queue", cfg.Queue),
		logger.NewField("message_id", d.MessageId),
		logger.NewField("attempts", attempts),
		logger.NewField("error", handlerErr),
	)

	// nack без requeue уводит сообщение в retry-очередь через DLX
	_ = d.Nack(false, false)
}

// deathCount извлекает из заголовка x-death число прохождений сообщения
// через retry-цикл данной очереди.
func deathCount(d amqp.Delivery, queue string) int64 {
	deaths, ok := d.Headers["x-death"].([]interface{})
	if !ok {
		return 0
	}

	for _, raw := range deaths {
		death, ok := raw.(amqp.Table)
		if !ok {
			continue
		}
		if death["queue"] != queue {
			continue
		}
		if count, ok := death["count"].(int64); ok {
			return count
		}
	}
	return 0
}
