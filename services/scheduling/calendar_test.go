package scheduling

import (
	"testing"

	"agendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-09-07 is a Monday, 2026-09-13 a Sunday.
const (
	monday = "2026-09-07"
	sunday = "2026-09-13"
)

func testSettings() *models.BusinessSettings {
	return &models.BusinessSettings{
		BusinessHours: map[string]models.DayHours{
			"mon": {Enabled: true, Open: "09:00", Close: "18:00"},
			"sat": {Enabled: false, Open: "09:00", Close: "13:00"},
		},
	}
}

func TestHoursForOpenDay(t *testing.T) {
	cal := NewBusinessCalendar(testSettings())

	hours, open := cal.HoursFor(monday)
	require.True(t, open)
	assert.Equal(t, "09:00", hours.Open)
	assert.Equal(t, "18:00", hours.Close)
	assert.True(t, cal.IsOpen(monday))
	assert.Empty(t, cal.ClosedReason(monday))
}

func TestHoursForDisabledWeekday(t *testing.T) {
	cal := NewBusinessCalendar(testSettings())

	// Saturday is configured but disabled.
	_, open := cal.HoursFor("2026-09-12")
	assert.False(t, open)
}

func TestHoursForUnconfiguredWeekday(t *testing.T) {
	cal := NewBusinessCalendar(testSettings())

	// Sunday is absent from the map entirely: closed, never implicitly open.
	_, open := cal.HoursFor(sunday)
	assert.False(t, open)
	assert.NotEmpty(t, cal.ClosedReason(sunday))
}

func TestHoursForBlockedDate(t *testing.T) {
	settings := testSettings()
	settings.BlockedDates = []models.BlockedDate{
		{Date: monday, Reason: "public holiday"},
	}
	cal := NewBusinessCalendar(settings)

	_, open := cal.HoursFor(monday)
	assert.False(t, open)
	assert.Equal(t, "public holiday", cal.ClosedReason(monday))
}

func TestHoursForBlockedDateWithoutReason(t *testing.T) {
	settings := testSettings()
	settings.BlockedDates = []models.BlockedDate{{Date: monday}}
	cal := NewBusinessCalendar(settings)

	assert.False(t, cal.IsOpen(monday))
	assert.Equal(t, "this date is unavailable", cal.ClosedReason(monday))
}

func TestHoursForMalformedDate(t *testing.T) {
	cal := NewBusinessCalendar(testSettings())

	_, open := cal.HoursFor("07/09/2026")
	assert.False(t, open)
	_, open = cal.HoursFor("")
	assert.False(t, open)
}

func TestHoursForNilSettings(t *testing.T) {
	cal := NewBusinessCalendar(nil)
	assert.False(t, cal.IsOpen(monday))
}
