package order_status_changed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"logiflow/internal/entities"
	"logiflow/pkg/logger"
)

type Handler struct {
	log                      handlerLogger
	notificationService      Service
	inbox                    InboxRepository
	txManager                TxManager
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, inbox InboxRepository, txManager TxManager, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:                      handlerLog,
		notificationService:      notificationService,
		inbox:                    inbox,
		txManager:                txManager,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Handle(ctx context.Context, delivery amqp.Delivery) error {
	ctx, cancel := context.WithTimeout(ctx, h.messageProcessingTimeout)
	defer cancel()

	var event entities.OrderStatusChangedEvent
	err := json.Unmarshal(delivery.Body, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("message_id", delivery.MessageId),
		).Error("order.status.changed handler received bad message")
		return nil
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.NewStatus.String()),
		logger.NewField("message_id", event.MessageID),
	)

	err = h.txManager.Do(ctx, func(ctx context.Context) error {
		inserted, err := h.inbox.TryInsert(ctx, event.MessageID, entities.RoutingKeyOrderStatusChanged)
		if err != nil {
			return fmt.Errorf("inbox mark: %w", err)
		}
		if !inserted {
			msgLog.Info("order.status.changed already processed, skipping")
			return nil
		}

		return h.notificationService.HandleOrderStatusChanged(ctx, event)
	})
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.status.changed handler failed to process event")
		return err
	}

	msgLog.Info("order.status.changed processed")

	return nil
}
