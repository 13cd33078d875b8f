package outbox

import (
	"context"
	"fmt"

	"logiflow/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append пишет событие в outbox внутри той же транзакции, что и
// породившее его изменение. Публикацией занимается фоновый ретранслятор.
func (r *Repository) Append(ctx context.Context, messageID, routingKey string, payload []byte) error {
	query := `
		INSERT INTO outbox_events (message_id, routing_key, payload, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	if _, err := r.querier.Exec(ctx, query, messageID, routingKey, payload); err != nil {
		return fmt.Errorf("unexpected outbox repository append error: %w", err)
	}
	return nil
}

// FetchUnpublished забирает партию неопубликованных событий, блокируя
// строки. SKIP LOCKED позволяет нескольким экземплярам ретранслятора
// работать параллельно без дублей.
func (r *Repository) FetchUnpublished(ctx context.Context, limit int) ([]entities.OutboxMessage, error) {
	query := `
		SELECT id, message_id, routing_key, payload, created_at
		FROM outbox_events
		WHERE published_at IS NULL
		ORDER BY id
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.OutboxMessage, 0, limit)
	for rows.Next() {
		var message entities.OutboxMessage
		err := rows.Scan(
			&message.ID,
			&message.MessageID,
			&message.RoutingKey,
			&message.Payload,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}

	return messages, nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE outbox_events
		SET published_at = NOW()
		WHERE id = ANY($1)
	`

	if _, err := r.querier.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("unexpected outbox repository mark error: %w", err)
	}
	return nil
}
