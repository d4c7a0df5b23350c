package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

func TestBuildGetByFacilityQuery(t *testing.T) {
	query, args, err := buildGetByFacilityQuery(domain.BookingsFilter{FacilityID: "f-1"})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, facility_id, zone_id, start_date_time, end_date_time, recurrence_rule, status FROM bookings "+
			"WHERE facility_id = $1 AND status NOT IN ($2,$3) ORDER BY start_date_time",
		query)
	assert.Equal(t, []interface{}{"f-1", "cancelled", "rejected"}, args)
}

func TestBuildGetByFacilityQuery_Window(t *testing.T) {
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	query, args, err := buildGetByFacilityQuery(domain.BookingsFilter{
		FacilityID: "f-1",
		From:       &from,
		To:         &to,
		ZoneIDs:    []string{"z-1", "z-2"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, facility_id, zone_id, start_date_time, end_date_time, recurrence_rule, status FROM bookings "+
			"WHERE facility_id = $1 AND status NOT IN ($2,$3) AND zone_id IN ($4,$5) "+
			"AND (recurrence_rule IS NOT NULL OR (end_date_time > $6 AND start_date_time < $7)) "+
			"ORDER BY start_date_time",
		query)
	assert.Len(t, args, 7)
	assert.Equal(t, from, args[5])
	assert.Equal(t, to, args[6])
}
