package zone

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"facility_id",
	"name",
	"capacity",
	"is_active",
	"is_main_zone",
	"parent_zone_id",
	"bookable_independently",
	"conflicting_zone_ids",
}

// Repository репозиторий зон объектов (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория зон
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFacility возвращает все зоны объекта, включая неактивные
func (r *Repository) GetByFacility(ctx context.Context, facilityID string) ([]domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("zones").
		Where(squirrel.Eq{"facility_id": facilityID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var zones []domain.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFacility - scan row: %v", ErrScanRow, err)
		}
		zones = append(zones, *z)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - iterate rows: %v", ErrScanRow, err)
	}

	return zones, nil
}

// GetByID получает зону по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("zones").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	z, err := scanZone(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrZoneNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return z, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanZone(row scanner) (*domain.Zone, error) {
	var (
		z           domain.Zone
		parentID    sql.NullString
		conflicting []string
	)

	if err := row.Scan(
		&z.ID,
		&z.FacilityID,
		&z.Name,
		&z.Capacity,
		&z.IsActive,
		&z.IsMainZone,
		&parentID,
		&z.BookableIndependently,
		pq.Array(&conflicting),
	); err != nil {
		return nil, err
	}

	if parentID.Valid {
		z.ParentZoneID = &parentID.String
	}
	z.ConflictingZoneIDs = conflicting

	return &z, nil
}
