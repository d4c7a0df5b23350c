package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/psqlbuilder"
)

// Repository репозиторий бронирований (только чтение)
// Жизненным циклом бронирований управляет внешний сервис
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFacility возвращает активные бронирования объекта
// Разовые бронирования ограничиваются окном From/To (если задано),
// повторяющиеся возвращаются всегда: их повторения может попасть в окно любое.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) GetByFacility(ctx context.Context, filter domain.BookingsFilter) ([]domain.BookingEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildGetByFacilityQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []domain.BookingEntry
	for rows.Next() {
		var (
			b              domain.BookingEntry
			zoneID         sql.NullString
			recurrenceRule sql.NullString
		)

		if err := rows.Scan(
			&b.ID,
			&b.FacilityID,
			&zoneID,
			&b.StartDateTime,
			&b.EndDateTime,
			&recurrenceRule,
			&b.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByFacility - scan row: %v", ErrScanRow, err)
		}

		b.ZoneID = zoneID.String
		if recurrenceRule.Valid && recurrenceRule.String != "" {
			rule := recurrenceRule.String
			b.RecurrenceRule = &rule
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - iterate rows: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func buildGetByFacilityQuery(filter domain.BookingsFilter) (string, []interface{}, error) {
	inactive := make([]string, 0, len(domain.InactiveStatuses))
	for _, s := range domain.InactiveStatuses {
		inactive = append(inactive, string(s))
	}

	builder := psqlbuilder.Select(
		"id",
		"facility_id",
		"zone_id",
		"start_date_time",
		"end_date_time",
		"recurrence_rule",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"facility_id": filter.FacilityID}).
		Where(squirrel.NotEq{"status": inactive})

	if len(filter.ZoneIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"zone_id": filter.ZoneIDs})
	}

	// Окно по времени применяется только к разовым бронированиям
	window := squirrel.And{}
	if filter.From != nil {
		window = append(window, squirrel.Gt{"end_date_time": *filter.From})
	}
	if filter.To != nil {
		window = append(window, squirrel.Lt{"start_date_time": *filter.To})
	}
	if len(window) > 0 {
		builder = builder.Where(squirrel.Or{
			squirrel.NotEq{"recurrence_rule": nil},
			window,
		})
	}

	return builder.OrderBy("start_date_time").ToSql()
}
