package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Date     string `json:"date" validate:"required,date"`
	TimeSlot string `json:"timeSlot" validate:"required,timeslot"`
	Mode     string `json:"mode" validate:"oneof=one-time recurring"`
	Count    int    `json:"count" validate:"gte=1"`
}

func TestValidate(t *testing.T) {
	ok := sample{Date: "2024-06-10", TimeSlot: "14:00-16:00", Mode: "recurring", Count: 2}
	assert.Nil(t, Validate(ok))

	bad := sample{Date: "10.06.2024", TimeSlot: "14-16", Mode: "weekly", Count: 0}
	errs := Validate(bad)

	assert.Equal(t, "invalid date, expected YYYY-MM-DD", errs["date"])
	assert.Equal(t, "invalid time slot, expected HH:MM-HH:MM", errs["timeSlot"])
	assert.Equal(t, "must be one of: one-time recurring", errs["mode"])
	assert.Equal(t, "must be at least 1", errs["count"])
}
