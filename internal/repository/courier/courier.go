package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logiflow/internal/entities"
	"logiflow/internal/repository"
	"logiflow/internal/service/courier"
	"logiflow/internal/service/fleet"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, full_name, document_id, phone, license_type, license_expiry, zone,
	status, vehicle_id, rating, rating_count, completed_deliveries, failed_deliveries, active,
	created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (full_name, document_id, phone, license_type, license_expiry, zone, status, vehicle_id, active)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, ''), COALESCE($7, 'AVAILABLE'), $8, COALESCE($9, TRUE))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.FullName,
		courierModifyModel.DocumentID,
		courierModifyModel.Phone,
		courierModifyModel.LicenseType,
		courierModifyModel.LicenseExpiry,
		courierModifyModel.Zone,
		courierModifyModel.Status,
		courierModifyModel.VehicleID,
		courierModifyModel.Active,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опциональные поля
	if courierModifyModel.FullName != nil {
		builder = builder.Set("full_name", courierModifyModel.FullName)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.LicenseType != nil {
		builder = builder.Set("license_type", courierModifyModel.LicenseType)
	}
	if courierModifyModel.LicenseExpiry != nil {
		builder = builder.Set("license_expiry", courierModifyModel.LicenseExpiry)
	}
	if courierModifyModel.Zone != nil {
		builder = builder.Set("zone", courierModifyModel.Zone)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.VehicleID != nil {
		builder = builder.Set("vehicle_id", courierModifyModel.VehicleID)
	}
	if courierModifyModel.Rating != nil {
		builder = builder.Set("rating", courierModifyModel.Rating)
	}
	if courierModifyModel.RatingCount != nil {
		builder = builder.Set("rating_count", courierModifyModel.RatingCount)
	}
	if courierModifyModel.CompletedDeliveries != nil {
		builder = builder.Set("completed_deliveries", courierModifyModel.CompletedDeliveries)
	}
	if courierModifyModel.FailedDeliveries != nil {
		builder = builder.Set("failed_deliveries", courierModifyModel.FailedDeliveries)
	}
	if courierModifyModel.Active != nil {
		builder = builder.Set("active", courierModifyModel.Active)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&courierModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&courierModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		if err := rows.Scan(scanTargets(&courierModel)...); err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

// GetCandidateForAssignment выбирает лучшего доступного курьера с
// транспортом подходящей грузоподъёмности и блокирует его строку.
// SKIP LOCKED не даёт конкурирующим транзакциям получить того же
// кандидата.
func (r *Repository) GetCandidateForAssignment(ctx context.Context, weightKg float64) (*entities.Courier, error) {
	query := `
		SELECT c.id, c.full_name, c.document_id, c.phone, c.license_type, c.license_expiry, c.zone,
			c.status, c.vehicle_id, c.rating, c.rating_count, c.completed_deliveries, c.failed_deliveries,
			c.active, c.created_at, c.updated_at,
			v.plate, v.type, v.capacity_kg, v.axles, v.active
		FROM couriers c
		JOIN vehicles v ON v.id = c.vehicle_id
		WHERE c.status = 'AVAILABLE'
			AND c.active
			AND c.license_expiry > NOW()
			AND v.active
			AND v.capacity_kg >= $1
		ORDER BY c.rating DESC NULLS LAST, c.completed_deliveries DESC, c.id
		LIMIT 1
		FOR UPDATE OF c SKIP LOCKED
	`

	var candidate CandidateCourierDB
	targets := scanTargets(&candidate.CourierDB)
	targets = append(targets,
		&candidate.VehiclePlate,
		&candidate.VehicleType,
		&candidate.VehicleCapacityKg,
		&candidate.VehicleAxles,
		&candidate.VehicleActive,
	)

	err := r.querier.QueryRow(ctx, query, weightKg).Scan(targets...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrNoCandidateFound
		}
		return nil, fmt.Errorf("unexpected courier repository candidate error: %w", err)
	}

	return ToCandidateDomain(&candidate), nil
}

func (r *Repository) CountAvailableCouriers(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM couriers
		WHERE status = 'AVAILABLE'
			AND active
			AND license_expiry > NOW()
	`

	var count int64
	if err := r.querier.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected courier repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) UpdateCourierStatus(ctx context.Context, courierID int64, from, to entities.CourierStatusType) error {
	query := `
		UPDATE couriers
		SET status = $3,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.querier.Exec(ctx, query, courierID, from.String(), to.String())
	if err != nil {
		return fmt.Errorf("unexpected courier repository status update error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fleet.ErrCourierStateConflict
	}
	return nil
}

// ReleaseCourier возвращает курьера в AVAILABLE; завершённая доставка
// увеличивает счётчик, используемый при ранжировании кандидатов.
func (r *Repository) ReleaseCourier(ctx context.Context, courierID int64, completed bool) error {
	query := `
		UPDATE couriers
		SET status = 'AVAILABLE',
			completed_deliveries = completed_deliveries + CASE WHEN $2 THEN 1 ELSE 0 END,
			failed_deliveries = failed_deliveries + CASE WHEN $2 THEN 0 ELSE 1 END,
			updated_at = NOW()
		WHERE id = $1 AND status = 'EN_ROUTE'
	`

	result, err := r.querier.Exec(ctx, query, courierID, completed)
	if err != nil {
		return fmt.Errorf("unexpected courier repository release error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fleet.ErrCourierStateConflict
	}
	return nil
}

func scanTargets(c *CourierDB) []interface{} {
	return []interface{}{
		&c.ID,
		&c.FullName,
		&c.DocumentID,
		&c.Phone,
		&c.LicenseType,
		&c.LicenseExpiry,
		&c.Zone,
		&c.Status,
		&c.VehicleID,
		&c.Rating,
		&c.RatingCount,
		&c.CompletedDeliveries,
		&c.FailedDeliveries,
		&c.Active,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}
