package appointmentRepo

import (
	"context"
	"errors"

	"agendly/models"
)

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// ErrDuplicateSlot is returned when a write collides with the unique index on
// active (professional, date, time) triples. It is the store-level backstop
// behind the conflict guard: even if two writers both pass the guard, the
// index lets only one of them through.
var ErrDuplicateSlot = errors.New("an active appointment already occupies this slot")

// AppointmentRepository is the persistence contract for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, apt *models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	Update(ctx context.Context, apt *models.Appointment) error
	Delete(ctx context.Context, id string) error

	// ListActiveForDay returns all non-cancelled appointments for a
	// professional on a date, for availability resolution.
	ListActiveForDay(ctx context.Context, professionalID, date string) ([]models.Appointment, error)

	// FindActiveAt returns the non-cancelled appointments occupying the exact
	// (professional, date, time) triple, excluding excludeID when non-empty.
	// It always hits the store; callers rely on it for the authoritative
	// pre-write conflict check.
	FindActiveAt(ctx context.Context, professionalID, date, timeSlot, excludeID string) ([]models.Appointment, error)
}
