package invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"logiflow/internal/entities"
	"logiflow/internal/repository"
	"logiflow/internal/service/billing"
)

const invoiceColumns = `id, order_id, delivery_type, distance_km, amount, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет счёт. Уникальный индекс по order_id гарантирует не
// больше одного счёта на заказ; дубликат не трогает исходный счёт.
func (r *Repository) Create(ctx context.Context, invoiceEntity entities.Invoice) (*entities.Invoice, error) {
	query := `
		INSERT INTO invoices (id, order_id, delivery_type, distance_km, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + invoiceColumns

	var invoiceModel InvoiceDB
	err := r.querier.QueryRow(
		ctx,
		query,
		invoiceEntity.ID,
		invoiceEntity.OrderID,
		invoiceEntity.DeliveryType.String(),
		invoiceEntity.DistanceKm,
		invoiceEntity.Amount,
		invoiceEntity.Status.String(),
		invoiceEntity.CreatedAt,
	).Scan(scanTargets(&invoiceModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, billing.ErrInvoiceAlreadyExists
		}
		return nil, fmt.Errorf("unexpected invoice repository create error: %w", err)
	}

	return ToDomain(&invoiceModel), nil
}

func (r *Repository) GetByID(ctx context.Context, invoiceID string) (*entities.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1`

	var invoiceModel InvoiceDB
	err := r.querier.QueryRow(ctx, query, invoiceID).Scan(scanTargets(&invoiceModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, billing.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("unexpected invoice repository getbyid error: %w", err)
	}

	return ToDomain(&invoiceModel), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE order_id = $1`

	var invoiceModel InvoiceDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(scanTargets(&invoiceModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, billing.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("unexpected invoice repository getbyorder error: %w", err)
	}

	return ToDomain(&invoiceModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, invoiceID string, from, to entities.InvoiceStatusType) (*entities.Invoice, error) {
	query := `
		UPDATE invoices
		SET status = $3,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + invoiceColumns

	var invoiceModel InvoiceDB
	err := r.querier.QueryRow(ctx, query, invoiceID, from.String(), to.String()).Scan(scanTargets(&invoiceModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, invoiceID); getErr != nil {
				return nil, getErr
			}
			return nil, billing.ErrInvoiceStateConflict
		}
		return nil, fmt.Errorf("unexpected invoice repository status update error: %w", err)
	}

	return ToDomain(&invoiceModel), nil
}

func scanTargets(i *InvoiceDB) []interface{} {
	return []interface{}{
		&i.ID,
		&i.OrderID,
		&i.DeliveryType,
		&i.DistanceKm,
		&i.Amount,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}
