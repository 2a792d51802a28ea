package models

// SlotStatus reports the bookability of a single generated time slot.
// OccupantCount is the true number of active appointments at the slot; it is
// normally 0 or 1 but a lost race can leave more, and the count is reported
// as-is rather than clamped.
type SlotStatus struct {
	Time          string `json:"time"` // "HH:MM"
	Available     bool   `json:"available"`
	OccupantCount int    `json:"occupantCount"`
}
