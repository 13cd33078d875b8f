package inbox

import (
	"context"
	"fmt"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// TryInsert атомарно помечает сообщение обработанным. Возвращает false,
// когда messageId уже встречался: проверка и вставка - один оператор,
// поэтому гонки между конкурентными доставками исключены. Вызов внутри
// транзакции обработчика делает пометку атомарной с его эффектами.
func (r *Repository) TryInsert(ctx context.Context, messageID, eventType string) (bool, error) {
	query := `
		INSERT INTO processed_messages (message_id, event_type, processed_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (message_id) DO NOTHING
	`

	result, err := r.querier.Exec(ctx, query, messageID, eventType)
	if err != nil {
		return false, fmt.Errorf("unexpected inbox repository insert error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}
