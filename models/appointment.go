package models

import "time"

// AppointmentStatus is the closed set of lifecycle states for an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus maps a raw status string to its enum value.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusApproved, StatusCancelled:
		return AppointmentStatus(s), true
	}
	return "", false
}

// CanTransition reports whether moving from one status to another is legal.
// Cancelled is terminal; approved never reverts to pending.
func CanTransition(from, to AppointmentStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusCancelled
	case StatusApproved:
		return to == StatusCancelled
	default:
		return false
	}
}

// Appointment represents a confirmed customer booking.
type Appointment struct {
	ID             string            `bson:"id" json:"id"`                          // Unique appointment identifier (UUID)
	CustomerName   string            `bson:"customer_name" json:"customerName"`     // Customer display name
	CustomerEmail  string            `bson:"customer_email" json:"customerEmail"`   // Notification target
	CustomerPhone  string            `bson:"customer_phone" json:"customerPhone"`   // Contact phone
	ServiceID      string            `bson:"service_id" json:"serviceId"`           // Booked service
	ProfessionalID string            `bson:"professional_id" json:"professionalId"` // Assigned professional
	Date           string            `bson:"date" json:"date"`                      // Appointment date in "YYYY-MM-DD" format
	Time           string            `bson:"time" json:"time"`                      // Slot time in "HH:MM" format
	Status         AppointmentStatus `bson:"status" json:"status"`
	Active         bool              `bson:"active" json:"-"` // status != cancelled; drives the unique-slot index
	Notes          string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updated_at" json:"updatedAt"`
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	ProfessionalID string
	Date           string
	Status         AppointmentStatus
}
