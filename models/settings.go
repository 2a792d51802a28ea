package models

import "time"

// DayHours configures a single weekday's opening window.
type DayHours struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	Open    string `bson:"open" json:"open"`   // "HH:MM"
	Close   string `bson:"close" json:"close"` // "HH:MM"
}

// BlockedDate marks a full calendar date as unavailable (holiday, maintenance).
type BlockedDate struct {
	Date   string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason string `bson:"reason" json:"reason"`
}

// Weekday keys for the BusinessHours map, indexed by time.Weekday.
var DayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// BusinessSettings is the account-wide scheduling configuration. A single
// document exists per deployment; it is created lazily with defaults on
// first read and merge-updated by administrators.
type BusinessSettings struct {
	BusinessHours       map[string]DayHours `bson:"business_hours" json:"businessHours"`
	BlockedDates        []BlockedDate       `bson:"blocked_dates" json:"blockedDates"`
	AutoApprove         bool                `bson:"auto_approve" json:"autoApprove"`
	ConfirmationMessage string              `bson:"confirmation_message" json:"confirmationMessage"`
	UpdatedAt           time.Time           `bson:"updated_at" json:"updatedAt"`
}

// BusinessSettingsUpdate carries partial settings changes; nil fields are
// left untouched (merge semantics).
type BusinessSettingsUpdate struct {
	BusinessHours       map[string]DayHours `json:"businessHours,omitempty"`
	BlockedDates        *[]BlockedDate      `json:"blockedDates,omitempty"`
	AutoApprove         *bool               `json:"autoApprove,omitempty"`
	ConfirmationMessage *string             `json:"confirmationMessage,omitempty"`
}

// DefaultBusinessSettings returns the configuration seeded on first read:
// weekdays 09:00-18:00, Saturday mornings, closed Sundays, manual approval.
func DefaultBusinessSettings() *BusinessSettings {
	hours := map[string]DayHours{
		"sun": {Enabled: false, Open: "09:00", Close: "18:00"},
		"mon": {Enabled: true, Open: "09:00", Close: "18:00"},
		"tue": {Enabled: true, Open: "09:00", Close: "18:00"},
		"wed": {Enabled: true, Open: "09:00", Close: "18:00"},
		"thu": {Enabled: true, Open: "09:00", Close: "18:00"},
		"fri": {Enabled: true, Open: "09:00", Close: "18:00"},
		"sat": {Enabled: true, Open: "09:00", Close: "13:00"},
	}
	return &BusinessSettings{
		BusinessHours:       hours,
		BlockedDates:        []BlockedDate{},
		AutoApprove:         false,
		ConfirmationMessage: "Your appointment for {{service}} on {{date}} at {{time}} is confirmed. See you soon, {{name}}!",
		UpdatedAt:           time.Now(),
	}
}
