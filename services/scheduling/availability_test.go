package scheduling

import (
	"testing"

	"agendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAvailabilityMarksOccupiedSlots(t *testing.T) {
	slots := []string{"09:00", "10:00", "11:00"}
	appointments := []models.Appointment{
		{ProfessionalID: "pro-1", Date: monday, Time: "10:00", Status: models.StatusPending},
	}

	statuses := ResolveAvailability(monday, "pro-1", slots, appointments)
	require.Len(t, statuses, 3)

	assert.True(t, statuses[0].Available)
	assert.False(t, statuses[1].Available)
	assert.Equal(t, 1, statuses[1].OccupantCount)
	assert.True(t, statuses[2].Available)
}

func TestResolveAvailabilityIgnoresCancelled(t *testing.T) {
	appointments := []models.Appointment{
		{ProfessionalID: "pro-1", Date: monday, Time: "09:00", Status: models.StatusCancelled},
	}
	statuses := ResolveAvailability(monday, "pro-1", []string{"09:00"}, appointments)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Available)
	assert.Zero(t, statuses[0].OccupantCount)
}

func TestResolveAvailabilityIgnoresOtherProfessionalsAndDates(t *testing.T) {
	appointments := []models.Appointment{
		{ProfessionalID: "pro-2", Date: monday, Time: "09:00", Status: models.StatusApproved},
		{ProfessionalID: "pro-1", Date: "2026-09-08", Time: "09:00", Status: models.StatusApproved},
	}
	statuses := ResolveAvailability(monday, "pro-1", []string{"09:00"}, appointments)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Available)
}

func TestResolveAvailabilityReportsExactOccupantCount(t *testing.T) {
	// A race can leave more than one active appointment on a slot; the
	// count is reported as found rather than clamped to one.
	appointments := []models.Appointment{
		{ProfessionalID: "pro-1", Date: monday, Time: "09:00", Status: models.StatusApproved},
		{ProfessionalID: "pro-1", Date: monday, Time: "09:00", Status: models.StatusPending},
	}
	statuses := ResolveAvailability(monday, "pro-1", []string{"09:00"}, appointments)
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Available)
	assert.Equal(t, 2, statuses[0].OccupantCount)
}

func TestResolveAvailabilityDoesNotMutateInput(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "a1", ProfessionalID: "pro-1", Date: monday, Time: "09:00", Status: models.StatusApproved},
	}
	ResolveAvailability(monday, "pro-1", []string{"09:00", "10:00"}, appointments)
	assert.Equal(t, "a1", appointments[0].ID)
	assert.Equal(t, models.StatusApproved, appointments[0].Status)
}

func TestResolveAvailabilityEmptySlots(t *testing.T) {
	statuses := ResolveAvailability(monday, "pro-1", nil, nil)
	assert.NotNil(t, statuses)
	assert.Empty(t, statuses)
}
