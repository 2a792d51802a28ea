package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "agendly/database/repository/appointment"
	servicecatRepo "agendly/database/repository/servicecat"
	settingsRepo "agendly/database/repository/settings"
	"agendly/models"
	"agendly/services/notification"
	"agendly/services/scheduling"
	"agendly/utils"

	"go.uber.org/zap"
)

// DefaultAppointmentService is the production AppointmentService.
type DefaultAppointmentService struct {
	Repo         appointmentRepo.AppointmentRepository
	SettingsRepo settingsRepo.SettingsRepository
	ServiceRepo  servicecatRepo.ServiceRepository
	Guard        *scheduling.ConflictGuard
	Notifier     notification.Notifier
	Reminders    ReminderScheduler
}

// GetAvailability computes slot statuses for a professional on a date.
// Settings are read fresh on every call; nothing is cached across requests.
func (s *DefaultAppointmentService) GetAvailability(ctx context.Context, professionalID, date string) ([]models.SlotStatus, error) {
	if professionalID == "" || date == "" {
		return nil, scheduling.NewValidationError("professional and date are required")
	}

	settings, err := s.SettingsRepo.Read(ctx)
	if err != nil {
		return nil, scheduling.NewStoreError("settings read", err)
	}

	calendar := scheduling.NewBusinessCalendar(settings)
	hours, open := calendar.HoursFor(date)
	if !open {
		return nil, scheduling.NewClosedDayError(calendar.ClosedReason(date))
	}

	slots := scheduling.GenerateSlots(hours.Open, hours.Close)
	existing, err := s.Repo.ListActiveForDay(ctx, professionalID, date)
	if err != nil {
		return nil, scheduling.NewStoreError("availability read", err)
	}

	return scheduling.ResolveAvailability(date, professionalID, slots, existing), nil
}

// Book runs the full confirmation path: validation, a fresh settings read,
// calendar and slot-membership checks, the authoritative conflict guard, and
// the write. The initial status follows the auto-approve policy as persisted
// at this moment, not any value read earlier in the session.
func (s *DefaultAppointmentService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}
	if req.Date < time.Now().Format(scheduling.DateLayout) {
		return nil, scheduling.NewValidationError("cannot book a date in the past")
	}

	settings, err := s.SettingsRepo.Read(ctx)
	if err != nil {
		return nil, scheduling.NewStoreError("settings read", err)
	}

	calendar := scheduling.NewBusinessCalendar(settings)
	hours, open := calendar.HoursFor(req.Date)
	if !open {
		return nil, scheduling.NewClosedDayError(calendar.ClosedReason(req.Date))
	}
	if !slotOffered(hours, req.Time) {
		return nil, scheduling.NewValidationError(fmt.Sprintf("%s is not a bookable time on %s", req.Time, req.Date))
	}

	conflict, err := s.Guard.HasConflict(ctx, req.ProfessionalID, req.Date, req.Time, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, scheduling.NewSlotConflictError()
	}

	status := models.StatusPending
	if settings.AutoApprove {
		status = models.StatusApproved
	}

	apt := &models.Appointment{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
		Status:         status,
		Notes:          req.Notes,
	}
	if _, err := s.Repo.Create(ctx, apt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, scheduling.NewSlotConflictError()
		}
		return nil, scheduling.NewStoreError("appointment create", err)
	}

	s.notifyCreated(apt)
	s.scheduleReminder(apt)
	return apt, nil
}

func (s *DefaultAppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	apt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, err
		}
		return nil, scheduling.NewStoreError("appointment read", err)
	}
	return apt, nil
}

func (s *DefaultAppointmentService) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	appointments, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, scheduling.NewStoreError("appointment list", err)
	}
	return appointments, nil
}

// CustomerReschedule enforces the same-day edit window before anything else:
// an appointment may only be edited by its customer on the calendar day it
// was created. The conflict guard is not consulted for rejected edits.
func (s *DefaultAppointmentService) CustomerReschedule(ctx context.Context, id string, upd AppointmentUpdate) (*models.Appointment, error) {
	apt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !createdToday(apt.CreatedAt) {
		return nil, scheduling.NewEditWindowExpiredError()
	}
	return s.applyUpdate(ctx, apt, upd, false)
}

// AdminUpdate applies an administrative edit with no edit-window restriction.
func (s *DefaultAppointmentService) AdminUpdate(ctx context.Context, id string, upd AppointmentUpdate) (*models.Appointment, error) {
	apt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, apt, upd, true)
}

func (s *DefaultAppointmentService) applyUpdate(ctx context.Context, apt *models.Appointment, upd AppointmentUpdate, admin bool) (*models.Appointment, error) {
	next := *apt
	mergeUpdate(&next, upd)

	if err := validateContact(next.CustomerName, next.CustomerEmail, next.CustomerPhone); err != nil {
		return nil, err
	}

	slotChanged := next.Date != apt.Date || next.Time != apt.Time || next.ProfessionalID != apt.ProfessionalID
	if slotChanged {
		settings, err := s.SettingsRepo.Read(ctx)
		if err != nil {
			return nil, scheduling.NewStoreError("settings read", err)
		}
		calendar := scheduling.NewBusinessCalendar(settings)
		hours, open := calendar.HoursFor(next.Date)
		if !open {
			return nil, scheduling.NewClosedDayError(calendar.ClosedReason(next.Date))
		}
		if !slotOffered(hours, next.Time) {
			return nil, scheduling.NewValidationError(fmt.Sprintf("%s is not a bookable time on %s", next.Time, next.Date))
		}
		if !admin && next.Date < time.Now().Format(scheduling.DateLayout) {
			return nil, scheduling.NewValidationError("cannot move an appointment to a past date")
		}

		conflict, err := s.Guard.HasConflict(ctx, next.ProfessionalID, next.Date, next.Time, apt.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, scheduling.NewSlotConflictError()
		}
	}

	if err := s.Repo.Update(ctx, &next); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, scheduling.NewSlotConflictError()
		}
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, err
		}
		return nil, scheduling.NewStoreError("appointment update", err)
	}
	if slotChanged {
		// The reminder for the old slot detects the move and stays silent.
		s.scheduleReminder(&next)
	}
	return &next, nil
}

// UpdateStatus applies a lifecycle transition. Status-only changes never
// consult the conflict guard; the transition table is the single authority
// on legality.
func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, id string, to models.AppointmentStatus) (*models.Appointment, error) {
	if _, ok := models.ParseAppointmentStatus(string(to)); !ok {
		return nil, scheduling.NewValidationError(fmt.Sprintf("unknown status %q", to))
	}

	apt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(apt.Status, to) {
		return nil, scheduling.NewValidationError(fmt.Sprintf("cannot change status from %s to %s", apt.Status, to))
	}

	apt.Status = to
	if err := s.Repo.Update(ctx, apt); err != nil {
		return nil, scheduling.NewStoreError("status update", err)
	}

	s.notifyStatusChanged(apt)
	return apt, nil
}

func (s *DefaultAppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return err
		}
		return scheduling.NewStoreError("appointment delete", err)
	}
	return nil
}

// notifyCreated dispatches the creation email without blocking the caller.
// Notification failures are logged and never surfaced.
func (s *DefaultAppointmentService) notifyCreated(apt *models.Appointment) {
	if s.Notifier == nil {
		return
	}
	snapshot := *apt
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Notifier.SendCreated(ctx, &snapshot, s.serviceName(ctx, snapshot.ServiceID)); err != nil {
			utils.GetLogger().Warn("failed to send creation notification",
				zap.String("appointmentID", snapshot.ID), zap.Error(err))
		}
	}()
}

func (s *DefaultAppointmentService) notifyStatusChanged(apt *models.Appointment) {
	if s.Notifier == nil {
		return
	}
	snapshot := *apt
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		template := ""
		if settings, err := s.SettingsRepo.Read(ctx); err == nil {
			template = settings.ConfirmationMessage
		}
		if err := s.Notifier.SendStatusChanged(ctx, &snapshot, s.serviceName(ctx, snapshot.ServiceID), template); err != nil {
			utils.GetLogger().Warn("failed to send status notification",
				zap.String("appointmentID", snapshot.ID),
				zap.String("status", string(snapshot.Status)), zap.Error(err))
		}
	}()
}

// scheduleReminder enqueues a reminder best-effort; a queue failure never
// fails the booking.
func (s *DefaultAppointmentService) scheduleReminder(apt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.Schedule(apt); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.String("appointmentID", apt.ID), zap.Error(err))
	}
}

// serviceName resolves a display name, tolerating deleted services.
func (s *DefaultAppointmentService) serviceName(ctx context.Context, serviceID string) string {
	if s.ServiceRepo == nil {
		return "your appointment"
	}
	svc, err := s.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return "your appointment"
	}
	return svc.Name
}

func validateBookingRequest(req BookingRequest) error {
	if err := validateContact(req.CustomerName, req.CustomerEmail, req.CustomerPhone); err != nil {
		return err
	}
	if req.ServiceID == "" {
		return scheduling.NewValidationError("a service must be selected")
	}
	if req.ProfessionalID == "" {
		return scheduling.NewValidationError("a professional must be selected")
	}
	if _, err := time.Parse(scheduling.DateLayout, req.Date); err != nil {
		return scheduling.NewValidationError("date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(scheduling.TimeLayout, req.Time); err != nil {
		return scheduling.NewValidationError("time must be in HH:MM format")
	}
	return nil
}

func validateContact(name, email, phone string) error {
	if name == "" {
		return scheduling.NewValidationError("name is required")
	}
	if !utils.ValidateEmail(email) {
		return scheduling.NewValidationError("a valid email address is required")
	}
	if !utils.ValidatePhone(phone) {
		return scheduling.NewValidationError("a valid phone number is required")
	}
	return nil
}

// slotOffered reports whether t is one of the generated slots for the day.
func slotOffered(hours models.DayHours, t string) bool {
	for _, slot := range scheduling.GenerateSlots(hours.Open, hours.Close) {
		if slot == t {
			return true
		}
	}
	return false
}

// createdToday compares calendar days in local business time.
func createdToday(createdAt time.Time) bool {
	now := time.Now()
	y1, m1, d1 := createdAt.Local().Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func mergeUpdate(apt *models.Appointment, upd AppointmentUpdate) {
	if upd.CustomerName != "" {
		apt.CustomerName = upd.CustomerName
	}
	if upd.CustomerEmail != "" {
		apt.CustomerEmail = upd.CustomerEmail
	}
	if upd.CustomerPhone != "" {
		apt.CustomerPhone = upd.CustomerPhone
	}
	if upd.ServiceID != "" {
		apt.ServiceID = upd.ServiceID
	}
	if upd.ProfessionalID != "" {
		apt.ProfessionalID = upd.ProfessionalID
	}
	if upd.Date != "" {
		apt.Date = upd.Date
	}
	if upd.Time != "" {
		apt.Time = upd.Time
	}
	if upd.Notes != "" {
		apt.Notes = upd.Notes
	}
}
