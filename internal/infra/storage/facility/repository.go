package facility

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
	"name",
	"facility_type",
	"area",
	"capacity",
	"price_per_hour",
	"amenities",
	"description",
	"is_active",
}

// Repository репозиторий объектов (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	f, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return f, nil
}

// List возвращает все объекты, упорядоченные по названию
// Фильтрация выполняется на стороне сервиса
func (r *Repository) List(ctx context.Context) ([]domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("facilities").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var facilities []domain.Facility
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return facilities, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row scanner) (*domain.Facility, error) {
	var (
		f           domain.Facility
		area        sql.NullString
		description sql.NullString
		amenities   []string
	)

	if err := row.Scan(
		&f.ID,
		&f.Name,
		&f.FacilityType,
		&area,
		&f.Capacity,
		&f.PricePerHour,
		pq.Array(&amenities),
		&description,
		&f.IsActive,
	); err != nil {
		return nil, err
	}

	f.Area = area.String
	f.Description = description.String
	f.Amenities = amenities

	return &f, nil
}
