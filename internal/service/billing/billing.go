package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"logiflow/internal/entities"
)

type Billing struct {
	repository   Repository
	tariffPolicy TariffPolicy
	txManager    TxManager
}

func New(repository Repository, tariffPolicy TariffPolicy, txManager TxManager) *Billing {
	return &Billing{
		repository:   repository,
		tariffPolicy: tariffPolicy,
		txManager:    txManager,
	}
}

// CreateInvoice рассчитывает тариф и создаёт черновик счёта. На заказ
// допускается ровно один счёт: повторный запрос отклоняется, исходный
// счёт не меняется.
func (b *Billing) CreateInvoice(ctx context.Context, request entities.InvoiceRequest) (*entities.Invoice, error) {
	if err := validateInvoiceRequest(request); err != nil {
		return nil, err
	}

	amount, err := b.tariffPolicy.Calculate(request.DeliveryType, request.DistanceKm, request.Axles)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDeliveryType, request.DeliveryType)
	}

	now := time.Now().UTC()
	invoice := entities.Invoice{
		ID:           uuid.NewString(),
		OrderID:      request.OrderID,
		DeliveryType: request.DeliveryType,
		DistanceKm:   request.DistanceKm,
		Amount:       amount,
		Status:       entities.DefaultInvoiceStatus,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := b.repository.Create(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return created, nil
}

func (b *Billing) GetInvoice(ctx context.Context, invoiceID string) (*entities.Invoice, error) {
	if !isValidInvoiceID(invoiceID) {
		return nil, ErrInvalidInvoiceID
	}
	return b.repository.GetByID(ctx, invoiceID)
}

func (b *Billing) GetInvoiceByOrder(ctx context.Context, orderID string) (*entities.Invoice, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	return b.repository.GetByOrderID(ctx, orderID)
}

// UpdateInvoiceStatus продвигает счёт строго вперёд:
// DRAFT -> ISSUED -> PAID, аннулирование из нетерминальных статусов.
func (b *Billing) UpdateInvoiceStatus(ctx context.Context, invoiceID string, newStatus entities.InvoiceStatusType) (*entities.Invoice, error) {
	if !isValidInvoiceID(invoiceID) {
		return nil, ErrInvalidInvoiceID
	}
	if !isValidInvoiceStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Invoice
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := b.repository.GetByID(ctx, invoiceID)
		if err != nil {
			return fmt.Errorf("get invoice: %w", err)
		}

		if !current.Status.CanTransitionTo(newStatus) {
			return ErrInvoiceStateConflict
		}

		updated, err = b.repository.UpdateStatus(ctx, invoiceID, current.Status, newStatus)
		if err != nil {
			return fmt.Errorf("update invoice status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
