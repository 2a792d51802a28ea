package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, raw := range []string{"pending", "approved", "cancelled"} {
		status, ok := ParseAppointmentStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, AppointmentStatus(raw), status)
	}

	_, ok := ParseAppointmentStatus("confirmed")
	assert.False(t, ok)
	_, ok = ParseAppointmentStatus("")
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		allowed  bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusCancelled, true},
		{StatusApproved, StatusCancelled, true},
		{StatusApproved, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusApproved, false},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusApproved, false},
		{StatusCancelled, StatusCancelled, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: StatusApproved}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}
