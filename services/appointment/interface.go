package appointment

import (
	"context"

	"agendly/models"
)

// BookingRequest carries a customer's final submission from the booking flow.
type BookingRequest struct {
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerPhone  string `json:"customerPhone"`
	ServiceID      string `json:"serviceId"`
	ProfessionalID string `json:"professionalId"`
	Date           string `json:"date"` // "YYYY-MM-DD"
	Time           string `json:"time"` // "HH:MM"
	Notes          string `json:"notes,omitempty"`
}

// AppointmentUpdate carries partial changes to an existing appointment.
// Empty fields are left unchanged.
type AppointmentUpdate struct {
	CustomerName   string `json:"customerName,omitempty"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
	CustomerPhone  string `json:"customerPhone,omitempty"`
	ServiceID      string `json:"serviceId,omitempty"`
	ProfessionalID string `json:"professionalId,omitempty"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ReminderScheduler enqueues a reminder for an upcoming appointment. A nil
// scheduler disables reminders.
type ReminderScheduler interface {
	Schedule(apt *models.Appointment) error
}

// AppointmentService owns the appointment lifecycle: creation with the
// auto-approve policy, availability resolution, conflict-guarded reschedules,
// and the status transition table.
type AppointmentService interface {
	// GetAvailability returns the slot statuses for a professional on a
	// date, computed from freshly read settings. Returns a ClosedDay
	// scheduling error when no slots may be offered.
	GetAvailability(ctx context.Context, professionalID, date string) ([]models.SlotStatus, error)

	// Book validates, conflict-checks and persists a new appointment, then
	// dispatches a best-effort notification.
	Book(ctx context.Context, req BookingRequest) (*models.Appointment, error)

	Get(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)

	// CustomerReschedule applies a customer-initiated edit, subject to the
	// same-day edit window and the conflict guard.
	CustomerReschedule(ctx context.Context, id string, upd AppointmentUpdate) (*models.Appointment, error)

	// AdminUpdate applies an administrative edit. Not subject to the edit
	// window, but slot changes still route through the conflict guard.
	AdminUpdate(ctx context.Context, id string, upd AppointmentUpdate) (*models.Appointment, error)

	// UpdateStatus applies a lifecycle transition after consulting the
	// transition table, then dispatches a best-effort notification.
	UpdateStatus(ctx context.Context, id string, to models.AppointmentStatus) (*models.Appointment, error)

	// Delete removes an appointment record entirely (admin surface only).
	Delete(ctx context.Context, id string) error
}
