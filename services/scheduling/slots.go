package scheduling

import "time"

// TimeLayout is the wire format for slot times.
const TimeLayout = "15:04"

// SlotInterval is the fixed spacing between bookable slots. Service duration
// does not influence it: a longer service still occupies a single slot.
const SlotInterval = time.Hour

// GenerateSlots produces the ordered bookable time points from open up to,
// but not including, close. An inverted or empty window yields no slots, as
// does a malformed bound. Deterministic and side-effect free.
func GenerateSlots(open, close string) []string {
	openAt, err := time.Parse(TimeLayout, open)
	if err != nil {
		return nil
	}
	closeAt, err := time.Parse(TimeLayout, close)
	if err != nil {
		return nil
	}

	var slots []string
	for t := openAt; t.Before(closeAt); t = t.Add(SlotInterval) {
		slots = append(slots, t.Format(TimeLayout))
	}
	return slots
}
