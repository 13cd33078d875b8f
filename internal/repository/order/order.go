package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logiflow/internal/entities"
	"logiflow/internal/repository"
	"logiflow/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, customer_id, origin_address, origin_city, dest_address, dest_city,
	weight_kg, priority, delivery_type, modality, status, courier_id, vehicle_id, invoice_id,
	fare_amount, distance_km, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (id, customer_id, origin_address, origin_city, dest_address, dest_city,
			weight_kg, priority, delivery_type, modality, status, distance_km, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.CustomerID,
		orderEntity.OriginAddress,
		orderEntity.OriginCity,
		orderEntity.DestAddress,
		orderEntity.DestCity,
		orderEntity.WeightKg,
		orderEntity.Priority.String(),
		orderEntity.DeliveryType.String(),
		orderEntity.Modality.String(),
		orderEntity.Status.String(),
		orderEntity.DistanceKm,
		orderEntity.CreatedAt,
	).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrOrderStateConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(scanTargets(&orderModel)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.CourierID != nil {
		builder = builder.Set("courier_id", orderModify.CourierID)
	}
	if orderModify.VehicleID != nil {
		builder = builder.Set("vehicle_id", orderModify.VehicleID)
	}
	if orderModify.InvoiceID != nil {
		builder = builder.Set("invoice_id", orderModify.InvoiceID)
	}
	if orderModify.FareAmount != nil {
		builder = builder.Set("fare_amount", orderModify.FareAmount)
	}
	if orderModify.DistanceKm != nil {
		builder = builder.Set("distance_km", orderModify.DistanceKm)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// UpdateStatus меняет статус только из ожидаемого текущего. Ноль
// обновлённых строк означает либо отсутствие заказа, либо конкурентную
// смену статуса.
func (r *Repository) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $3,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID, from.String(), to.String()).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, orderID); getErr != nil {
				return nil, getErr
			}
			return nil, order.ErrOrderStateConflict
		}
		return nil, fmt.Errorf("unexpected order repository status update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.CustomerID,
		&o.OriginAddress,
		&o.OriginCity,
		&o.DestAddress,
		&o.DestCity,
		&o.WeightKg,
		&o.Priority,
		&o.DeliveryType,
		&o.Modality,
		&o.Status,
		&o.CourierID,
		&o.VehicleID,
		&o.InvoiceID,
		&o.FareAmount,
		&o.DistanceKm,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
