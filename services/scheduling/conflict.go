package scheduling

import (
	"context"

	appointmentRepo "agendly/database/repository/appointment"
)

// ConflictGuard is the authoritative double-booking check, invoked
// synchronously between the customer's final confirmation and the write that
// would occupy the slot. It always re-fetches appointment state from the
// store; availability computed earlier in the session is never trusted here.
//
// The guard narrows the check-then-write race but cannot eliminate it on its
// own; the partial unique index maintained by the appointment repository is
// the backstop for the residual window.
type ConflictGuard struct {
	Repo appointmentRepo.AppointmentRepository
}

// NewConflictGuard constructs a guard over the given repository.
func NewConflictGuard(repo appointmentRepo.AppointmentRepository) *ConflictGuard {
	return &ConflictGuard{Repo: repo}
}

// HasConflict reports whether an active appointment other than excludeID
// already occupies (professionalID, date, timeSlot). Pass excludeID when
// re-saving an existing appointment so it may keep its own slot.
func (g *ConflictGuard) HasConflict(ctx context.Context, professionalID, date, timeSlot, excludeID string) (bool, error) {
	occupants, err := g.Repo.FindActiveAt(ctx, professionalID, date, timeSlot, excludeID)
	if err != nil {
		return false, NewStoreError("conflict check", err)
	}
	return len(occupants) > 0, nil
}
