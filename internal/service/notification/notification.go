package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"logiflow/internal/entities"
	"logiflow/pkg/logger"
)

type Notification struct {
	log        serviceLogger
	repository Repository
	sender     Sender
}

func New(log serviceLogger, repository Repository, sender Sender) *Notification {
	return &Notification{
		log:        log,
		repository: repository,
		sender:     sender,
	}
}

// HandleOrderCreated записывает и отправляет подтверждение нового заказа.
// Ошибка внешнего канала не прерывает обработку: уведомление фиксируется
// со статусом FAILED.
func (n *Notification) HandleOrderCreated(ctx context.Context, event entities.OrderCreatedEvent) error {
	if strings.TrimSpace(event.MessageID) == "" || strings.TrimSpace(event.OrderID) == "" {
		return ErrInvalidEvent
	}

	created, err := n.repository.Create(ctx, entities.Notification{
		OrderID:   event.OrderID,
		Recipient: event.CustomerID,
		Subject:   "Order confirmation - LogiFlow",
		Body: fmt.Sprintf("Your order %s from %s to %s has been registered with priority %s.",
			event.OrderID, event.Origin, event.Destination, event.Priority),
		Type:      entities.NotificationOrderCreated,
		Status:    entities.NotificationPending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return n.deliver(ctx, created)
}

// HandleOrderStatusChanged записывает и отправляет уведомление о смене
// статуса заказа.
func (n *Notification) HandleOrderStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error {
	if strings.TrimSpace(event.MessageID) == "" || strings.TrimSpace(event.OrderID) == "" {
		return ErrInvalidEvent
	}

	created, err := n.repository.Create(ctx, entities.Notification{
		OrderID: event.OrderID,
		Subject: "Order status update - LogiFlow",
		Body: fmt.Sprintf("Order %s moved from %s to %s (by %s).",
			event.OrderID, event.PreviousStatus, event.NewStatus, event.ActingUser),
		Type:      entities.NotificationOrderStatusChanged,
		Status:    entities.NotificationPending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return n.deliver(ctx, created)
}

func (n *Notification) deliver(ctx context.Context, notification *entities.Notification) error {
	if err := n.sender.Send(ctx, *notification); err != nil {
		n.log.Warn("notification send failed",
			logger.NewField("notification_id", notification.ID),
			logger.NewField("order_id", notification.OrderID),
			logger.NewField("error", err),
		)
		if markErr := n.repository.MarkFailed(ctx, notification.ID); markErr != nil {
			return fmt.Errorf("mark notification failed: %w", markErr)
		}
		return nil
	}

	if err := n.repository.MarkSent(ctx, notification.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark notification sent: %w", err)
	}
	return nil
}
