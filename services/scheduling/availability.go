package scheduling

import "agendly/models"

// ResolveAvailability marks each generated slot available or taken by
// cross-referencing the existing appointments for a (professional, date)
// pair. A slot is available when no non-cancelled appointment occupies it;
// the occupant count is reported exactly even if a race left more than one.
// Pure function: the appointment slice is never mutated.
func ResolveAvailability(date, professionalID string, slots []string, appointments []models.Appointment) []models.SlotStatus {
	statuses := make([]models.SlotStatus, 0, len(slots))
	for _, slot := range slots {
		count := 0
		for _, apt := range appointments {
			if apt.Date == date &&
				apt.ProfessionalID == professionalID &&
				apt.Time == slot &&
				apt.IsActive() {
				count++
			}
		}
		statuses = append(statuses, models.SlotStatus{
			Time:          slot,
			Available:     count == 0,
			OccupantCount: count,
		})
	}
	return statuses
}
