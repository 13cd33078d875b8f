package outbox_relay

import (
	"context"
	"fmt"
	"time"

	"logiflow/internal/entities"
	"logiflow/internal/pkg/rabbitmq"
)

type OutboxRepository interface {
	FetchUnpublished(ctx context.Context, limit int) ([]entities.OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []int64) error
}

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey, messageID string, body []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// OutboxRelay публикует накопленные в outbox события в брокер.
// Выборка под блокировкой и пометка published_at в одной транзакции
// дают at-least-once: при сбое после публикации событие уйдёт повторно,
// дедупликация лежит на потребителях (inbox по messageId).
type OutboxRelay struct {
	outbox    OutboxRepository
	publisher Publisher
	txManager TxManager
	interval  time.Duration
	batchSize int
}

func New(outbox OutboxRepository, publisher Publisher, txManager TxManager, interval time.Duration, batchSize int) *OutboxRelay {
	return &OutboxRelay{
		outbox:    outbox,
		publisher: publisher,
		txManager: txManager,
		interval:  interval,
		batchSize: batchSize,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do выполняет логику задачи.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	for {
		published, err := o.relayBatch(ctxWithTimeout)
		if err != nil {
			return err
		}
		if published < o.batchSize {
			return nil
		}
	}
}

func (o *OutboxRelay) relayBatch(ctx context.Context) (int, error) {
	var published int

	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		messages, err := o.outbox.FetchUnpublished(ctx, o.batchSize)
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(messages))
		for _, message := range messages {
			err := o.publisher.Publish(ctx, rabbitmq.OrdersExchange, message.RoutingKey, message.MessageID, message.Payload)
			if err != nil {
				// уже опубликованную часть партии помечаем, остальное
				// заберёт следующий прогон
				break
			}
			ids = append(ids, message.ID)
		}

		if len(ids) == 0 {
			return fmt.Errorf("outbox relay: no messages published")
		}

		published = len(ids)

		return o.outbox.MarkPublished(ctx, ids)
	})
	if err != nil {
		return 0, err
	}

	return published, nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
