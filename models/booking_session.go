package models

// Booking-session step markers, in flow order.
const (
	StepService      = "service"
	StepProfessional = "professional"
	StepDate         = "date"
	StepTime         = "time"
	StepContact      = "contact"
	StepReady        = "ready"
)

// BookingSession holds the state of an in-progress booking conversation.
// Nothing is persisted until the session is confirmed; abandoning a session
// leaves no trace beyond its cache entry expiring.
type BookingSession struct {
	SessionID      string `json:"sessionId"`
	Step           string `json:"step"`
	ServiceID      string `json:"serviceId,omitempty"`
	ProfessionalID string `json:"professionalId,omitempty"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	CustomerName   string `json:"customerName,omitempty"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
	CustomerPhone  string `json:"customerPhone,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// BookingSessionUpdate carries one step's worth of customer input.
type BookingSessionUpdate struct {
	ServiceID      string `json:"serviceId,omitempty"`
	ProfessionalID string `json:"professionalId,omitempty"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	CustomerName   string `json:"customerName,omitempty"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
	CustomerPhone  string `json:"customerPhone,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// BookingSessionResponse is returned after every session mutation so the
// client can render the next step without a follow-up fetch.
type BookingSessionResponse struct {
	Session      *BookingSession `json:"session"`
	Slots        []SlotStatus    `json:"slots,omitempty"`
	ClosedReason string          `json:"closedReason,omitempty"`
}
