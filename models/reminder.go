package models

// ReminderPayload is the queued task body for an appointment reminder. Date
// and Time are snapshotted at enqueue so the handler can detect that the
// appointment moved after the reminder was scheduled.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Time          string `json:"time"` // "HH:MM"
}
