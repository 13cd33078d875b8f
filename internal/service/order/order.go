package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"logiflow/internal/entities"
	"logiflow/pkg/logger"
)

type Order struct {
	log            serviceLogger
	repository     Repository
	outbox         OutboxRepository
	billingGateway BillingGateway
	fleetGateway   FleetGateway
	distancePolicy DistancePolicy
	txManager      TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	outbox OutboxRepository,
	billingGateway BillingGateway,
	fleetGateway FleetGateway,
	distancePolicy DistancePolicy,
	txManager TxManager,
) *Order {
	return &Order{
		log:            log,
		repository:     repository,
		outbox:         outbox,
		billingGateway: billingGateway,
		fleetGateway:   fleetGateway,
		distancePolicy: distancePolicy,
		txManager:      txManager,
	}
}

// CreateOrder проводит заказ через весь цикл создания: валидация покрытия,
// оценка дистанции, фиксация PENDING-заказа вместе с событием OrderCreated
// в одной транзакции, затем синхронные вызовы биллинга и флота.
// Недоступность биллинга или флота не отменяет заказ: он остаётся PENDING
// и обрабатывается позже.
func (o *Order) CreateOrder(ctx context.Context, draft entities.Order) (*entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	distance, err := o.distancePolicy.EstimateDistance(draft.Modality)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModality, draft.Modality)
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Status = entities.DefaultOrderStatus
	draft.DistanceKm = &distance
	if draft.Priority == "" {
		draft.Priority = entities.DefaultOrderPriority
	}
	draft.CreatedAt = now
	draft.UpdatedAt = now

	var created *entities.Order
	err = o.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = o.repository.Create(ctx, draft)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		event := entities.OrderCreatedEvent{
			MessageID:    uuid.NewString(),
			OrderID:      created.ID,
			CustomerID:   created.CustomerID,
			Origin:       created.OriginAddress,
			OriginCity:   created.OriginCity,
			Destination:  created.DestAddress,
			DestCity:     created.DestCity,
			WeightKg:     created.WeightKg,
			Priority:     created.Priority,
			State:        created.Status,
			DeliveryType: created.DeliveryType,
			Modality:     created.Modality,
			DistanceKm:   distance,
			CreatedAt:    created.CreatedAt,
		}
		return o.appendToOutbox(ctx, event.MessageID, entities.RoutingKeyOrderCreated, event)
	})
	if err != nil {
		return nil, err
	}

	o.invoiceOrder(ctx, created, distance)
	o.assignOrder(ctx, created)

	return created, nil
}

// CancelOrder переводит заказ в CANCELLED, публикует события и освобождает
// закреплённого за этим заказом курьера. Терминальные заказы не отменяются.
func (o *Order) CancelOrder(ctx context.Context, orderID, actingUser, reason string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var cancelled *entities.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		switch current.Status {
		case entities.OrderCancelled:
			return ErrOrderAlreadyCancelled
		case entities.OrderDelivered:
			return ErrOrderAlreadyDelivered
		case entities.OrderInTransit:
			return ErrOrderStateConflict
		}

		cancelled, err = o.repository.UpdateStatus(ctx, orderID, current.Status, entities.OrderCancelled)
		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}

		now := time.Now().UTC()
		statusEvent := o.newStatusChangedEvent(cancelled, current.Status, actingUser, now)
		if err := o.appendToOutbox(ctx, statusEvent.MessageID, entities.RoutingKeyOrderStatusChanged, statusEvent); err != nil {
			return err
		}

		cancelEvent := entities.OrderCancelledEvent{
			MessageID:   uuid.NewString(),
			OrderID:     cancelled.ID,
			Reason:      reason,
			CancelledAt: now,
			CourierID:   cancelled.CourierID,
			VehicleID:   cancelled.VehicleID,
		}
		return o.appendToOutbox(ctx, cancelEvent.MessageID, entities.RoutingKeyOrderCancelled, cancelEvent)
	})
	if err != nil {
		return nil, err
	}

	if releaseErr := o.fleetGateway.Release(ctx, orderID, false); releaseErr != nil {
		o.log.Error("release courier for cancelled order failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", releaseErr),
		)
	}

	return cancelled, nil
}

// UpdateOrderStatus продвигает заказ по графу жизненного цикла.
func (o *Order) UpdateOrderStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType, actingUser string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		switch {
		case current.Status == entities.OrderCancelled:
			return ErrOrderAlreadyCancelled
		case current.Status == entities.OrderDelivered:
			return ErrOrderAlreadyDelivered
		case !current.Status.CanTransitionTo(newStatus):
			return ErrOrderStateConflict
		}

		updated, err = o.repository.UpdateStatus(ctx, orderID, current.Status, newStatus)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		event := o.newStatusChangedEvent(updated, current.Status, actingUser, time.Now().UTC())
		return o.appendToOutbox(ctx, event.MessageID, entities.RoutingKeyOrderStatusChanged, event)
	})
	if err != nil {
		return nil, err
	}

	if newStatus == entities.OrderDelivered {
		if releaseErr := o.fleetGateway.Release(ctx, orderID, true); releaseErr != nil {
			o.log.Error("release courier for delivered order failed",
				logger.NewField("order_id", orderID),
				logger.NewField("error", releaseErr),
			)
		}
	}

	return updated, nil
}

func (o *Order) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	return o.repository.GetByID(ctx, orderID)
}

func (o *Order) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return nil, ErrInvalidStatus
	}
	return o.repository.List(ctx, filter)
}

// invoiceOrder синхронно запрашивает тариф у биллинга. Ошибка не фатальна:
// заказ остаётся без счёта и дособирается позже.
func (o *Order) invoiceOrder(ctx context.Context, created *entities.Order, distance float64) {
	invoice, err := o.billingGateway.CreateInvoice(ctx, entities.InvoiceRequest{
		OrderID:      created.ID,
		DeliveryType: created.DeliveryType,
		DistanceKm:   distance,
		Axles:        entities.DefaultAxles,
	})
	if err != nil {
		o.log.Warn("billing unavailable, order left uninvoiced",
			logger.NewField("order_id", created.ID),
			logger.NewField("error", err),
		)
		return
	}

	updated, err := o.repository.Update(ctx, entities.OrderModify{
		ID:         &created.ID,
		InvoiceID:  &invoice.ID,
		FareAmount: &invoice.Amount,
	})
	if err != nil {
		o.log.Error("store invoice reference failed",
			logger.NewField("order_id", created.ID),
			logger.NewField("invoice_id", invoice.ID),
			logger.NewField("error", err),
		)
		return
	}
	*created = *updated
}

// assignOrder синхронно запрашивает подбор курьера. REJECTED и ошибки шлюза
// оставляют заказ в PENDING.
func (o *Order) assignOrder(ctx context.Context, created *entities.Order) {
	result, err := o.fleetGateway.Assign(ctx, entities.AssignmentRequest{
		OrderID:      created.ID,
		WeightKg:     created.WeightKg,
		Priority:     created.Priority,
		DeliveryType: created.DeliveryType,
		Modality:     created.Modality,
		OriginCity:   created.OriginCity,
		DestCity:     created.DestCity,
	})
	if err != nil {
		o.log.Warn("fleet unavailable, order left pending",
			logger.NewField("order_id", created.ID),
			logger.NewField("error", err),
		)
		return
	}

	if result.Status != entities.AssignmentAccepted {
		o.log.Warn("assignment rejected, order left pending",
			logger.NewField("order_id", created.ID),
			logger.NewField("reason", result.Reason),
		)
		return
	}

	err = o.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := o.repository.UpdateStatus(ctx, created.ID, entities.OrderPending, entities.OrderAssigned); err != nil {
			return fmt.Errorf("mark order assigned: %w", err)
		}

		assigned, err := o.repository.Update(ctx, entities.OrderModify{
			ID:        &created.ID,
			CourierID: result.CourierID,
			VehicleID: result.VehicleID,
		})
		if err != nil {
			return fmt.Errorf("store assignment binding: %w", err)
		}

		event := o.newStatusChangedEvent(assigned, entities.OrderPending, systemUser, time.Now().UTC())
		if err := o.appendToOutbox(ctx, event.MessageID, entities.RoutingKeyOrderStatusChanged, event); err != nil {
			return err
		}

		*created = *assigned
		return nil
	})
	if err != nil {
		// Заказ успел измениться (например, отменён) - возвращаем курьера.
		o.log.Error("apply assignment failed, releasing courier",
			logger.NewField("order_id", created.ID),
			logger.NewField("error", err),
		)
		if releaseErr := o.fleetGateway.Release(ctx, created.ID, false); releaseErr != nil {
			o.log.Error("release courier after failed assignment",
				logger.NewField("order_id", created.ID),
				logger.NewField("error", releaseErr),
			)
		}
	}
}

const systemUser = "SYSTEM"

func (o *Order) newStatusChangedEvent(order *entities.Order, previous entities.OrderStatusType, actingUser string, at time.Time) entities.OrderStatusChangedEvent {
	if actingUser == "" {
		actingUser = systemUser
	}
	return entities.OrderStatusChangedEvent{
		MessageID:      uuid.NewString(),
		OrderID:        order.ID,
		PreviousStatus: previous,
		NewStatus:      order.Status,
		ChangedAt:      at,
		ActingUser:     actingUser,
		CourierID:      order.CourierID,
		VehicleID:      order.VehicleID,
	}
}

func (o *Order) appendToOutbox(ctx context.Context, messageID, routingKey string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", routingKey, err)
	}
	if err := o.outbox.Append(ctx, messageID, routingKey, payload); err != nil {
		return fmt.Errorf("append %s to outbox: %w", routingKey, err)
	}
	return nil
}
