package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publish отправляет persistent-сообщение в обменник и ждёт
// подтверждения брокера. Неподтверждённая публикация - ошибка,
// вызывающая сторона решает, повторять ли её.
func (c *Client) Publish(ctx context.Context, exchange, routingKey, messageID string, body []byte) error {
	c.mu.RLock()
	ch := c.pubChan
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return errors.New("rabbitmq: connection is not open")
	}
	if ch == nil || ch.IsClosed() {
		return errors.New("rabbitmq: publish channel is not open")
	}

	c.pubMu.Lock()
	defer c.pubMu.Unlock()
	confirms := c.pubConfirms

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := ch.PublishWithContext(ctx, exchange, routingKey, true /* mandatory */, false, /* immediate */
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    messageID,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq: publish %s: %w", routingKey, err)
	}

	select {
	case confirm := <-confirms:
		if !confirm.Ack {
			return fmt.Errorf("rabbitmq: publish %s not acknowledged", routingKey)
		}
	case <-ctx.Done():
		// выравниваем поток подтверждений: пытаемся вычитать ровно одно
		select {
		case confirm := <-confirms:
			if !confirm.Ack {
				return fmt.Errorf("rabbitmq: publish %s not acknowledged after timeout", routingKey)
			}
		case <-time.After(2 * time.Second):
		}
		return ctx.Err()
	}

	return nil
}
