package booking

import (
	"context"
	"errors"

	"agendly/models"
	"agendly/services/appointment"
	"agendly/services/scheduling"

	"github.com/google/uuid"
)

// BookingSessionService drives the step-by-step ("chat-style") booking flow.
// A session accumulates the customer's choices; nothing touches the
// appointment store until ConfirmSession, so abandoning at any step has no
// persisted side effects.
type BookingSessionService interface {
	InitiateSession(ctx context.Context) (*models.BookingSessionResponse, error)
	UpdateSession(ctx context.Context, sessionID string, upd models.BookingSessionUpdate) (*models.BookingSessionResponse, error)
	ConfirmSession(ctx context.Context, sessionID string) (*models.Appointment, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store          SessionStore
	AppointmentSvc appointment.AppointmentService
}

// InitiateSession creates an empty session at the first step.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context) (*models.BookingSessionResponse, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepService,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return &models.BookingSessionResponse{Session: session}, nil
}

// UpdateSession merges one step's worth of input into the session, advances
// the step marker, and — once a professional and date are both known —
// attaches the current slot availability so the client can offer times.
// Availability shown here is advisory; the authoritative check happens at
// confirmation.
func (s *DefaultBookingSessionService) UpdateSession(ctx context.Context, sessionID string, upd models.BookingSessionUpdate) (*models.BookingSessionResponse, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	applySessionUpdate(session, upd)
	session.Step = nextStep(session)

	resp := &models.BookingSessionResponse{Session: session}
	if session.ProfessionalID != "" && session.Date != "" && session.Time == "" {
		slots, err := s.AppointmentSvc.GetAvailability(ctx, session.ProfessionalID, session.Date)
		switch {
		case scheduling.IsCode(err, scheduling.CodeClosedDay):
			// Closed days surface as an empty slot list with a reason so the
			// customer can pick a different date within the same session.
			var schedErr *scheduling.Error
			errors.As(err, &schedErr)
			resp.ClosedReason = schedErr.Message
			session.Date = ""
			session.Step = models.StepDate
		case err != nil:
			return nil, err
		default:
			resp.Slots = slots
		}
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return resp, nil
}

// ConfirmSession submits the completed session to the appointment service.
// The session is only discarded after a successful booking; on a recoverable
// scheduling outcome (slot conflict, validation) it survives so the customer
// can adjust and resubmit.
func (s *DefaultBookingSessionService) ConfirmSession(ctx context.Context, sessionID string) (*models.Appointment, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	apt, err := s.AppointmentSvc.Book(ctx, appointment.BookingRequest{
		CustomerName:   session.CustomerName,
		CustomerEmail:  session.CustomerEmail,
		CustomerPhone:  session.CustomerPhone,
		ServiceID:      session.ServiceID,
		ProfessionalID: session.ProfessionalID,
		Date:           session.Date,
		Time:           session.Time,
		Notes:          session.Notes,
	})
	if err != nil {
		if scheduling.IsCode(err, scheduling.CodeSlotConflict) {
			// The slot was taken between display and submission; clear the
			// stale choice so the next update re-renders availability.
			session.Time = ""
			session.Step = models.StepTime
			_ = s.Store.Save(ctx, session)
		}
		return nil, err
	}

	_ = s.Store.Delete(ctx, sessionID)
	return apt, nil
}

// CancelSession abandons the flow with no persisted side effects.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func applySessionUpdate(session *models.BookingSession, upd models.BookingSessionUpdate) {
	if upd.ServiceID != "" {
		session.ServiceID = upd.ServiceID
	}
	if upd.ProfessionalID != "" {
		session.ProfessionalID = upd.ProfessionalID
	}
	if upd.Date != "" {
		session.Date = upd.Date
		// A new date invalidates a previously picked time.
		if upd.Time == "" {
			session.Time = ""
		}
	}
	if upd.Time != "" {
		session.Time = upd.Time
	}
	if upd.CustomerName != "" {
		session.CustomerName = upd.CustomerName
	}
	if upd.CustomerEmail != "" {
		session.CustomerEmail = upd.CustomerEmail
	}
	if upd.CustomerPhone != "" {
		session.CustomerPhone = upd.CustomerPhone
	}
	if upd.Notes != "" {
		session.Notes = upd.Notes
	}
}

// nextStep derives the first incomplete step of the flow.
func nextStep(session *models.BookingSession) string {
	switch {
	case session.ServiceID == "":
		return models.StepService
	case session.ProfessionalID == "":
		return models.StepProfessional
	case session.Date == "":
		return models.StepDate
	case session.Time == "":
		return models.StepTime
	case session.CustomerName == "" || session.CustomerEmail == "" || session.CustomerPhone == "":
		return models.StepContact
	default:
		return models.StepReady
	}
}
