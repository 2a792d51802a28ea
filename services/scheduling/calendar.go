package scheduling

import (
	"time"

	"agendly/models"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// BusinessCalendar answers whether the business is open on a date and with
// what hours, from a snapshot of the business settings. Callers that need an
// authoritative answer must build it from freshly read settings.
type BusinessCalendar struct {
	settings *models.BusinessSettings
}

// NewBusinessCalendar builds a calendar over the given settings snapshot.
func NewBusinessCalendar(settings *models.BusinessSettings) *BusinessCalendar {
	return &BusinessCalendar{settings: settings}
}

// IsOpen reports whether any slots may be offered on the given date.
func (c *BusinessCalendar) IsOpen(date string) bool {
	_, open := c.HoursFor(date)
	return open
}

// HoursFor returns the opening window for a date. The second return value is
// false when the business is closed that day: the date is blocked, the
// weekday is disabled, the weekday has no configuration at all, or the date
// does not parse. Unconfigured days are closed, never implicitly open.
func (c *BusinessCalendar) HoursFor(date string) (models.DayHours, bool) {
	if c.settings == nil {
		return models.DayHours{}, false
	}
	if c.blockedReason(date) != "" {
		return models.DayHours{}, false
	}

	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return models.DayHours{}, false
	}

	key := models.DayKeys[day.Weekday()]
	hours, ok := c.settings.BusinessHours[key]
	if !ok || !hours.Enabled {
		return models.DayHours{}, false
	}
	return hours, true
}

// ClosedReason returns a customer-facing reason when the date is closed, or
// an empty string when it is open.
func (c *BusinessCalendar) ClosedReason(date string) string {
	if reason := c.blockedReason(date); reason != "" {
		return reason
	}
	if c.IsOpen(date) {
		return ""
	}
	return "the business is closed on this date"
}

func (c *BusinessCalendar) blockedReason(date string) string {
	if c.settings == nil {
		return ""
	}
	for _, blocked := range c.settings.BlockedDates {
		if blocked.Date == date {
			if blocked.Reason != "" {
				return blocked.Reason
			}
			return "this date is unavailable"
		}
	}
	return ""
}
