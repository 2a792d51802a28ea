package booking

import (
	"context"
	"sync"
	"testing"

	"agendly/models"
	"agendly/services/appointment"
	"agendly/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore is an in-memory SessionStore for flow tests.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]models.BookingSession{}}
}

func (s *memSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// stubAppointmentService scripts GetAvailability and Book outcomes.
type stubAppointmentService struct {
	slots        []models.SlotStatus
	availability error
	bookErr      error
	booked       []appointment.BookingRequest
}

func (s *stubAppointmentService) GetAvailability(ctx context.Context, professionalID, date string) ([]models.SlotStatus, error) {
	if s.availability != nil {
		return nil, s.availability
	}
	return s.slots, nil
}

func (s *stubAppointmentService) Book(ctx context.Context, req appointment.BookingRequest) (*models.Appointment, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	s.booked = append(s.booked, req)
	return &models.Appointment{
		ID:             "apt-1",
		CustomerName:   req.CustomerName,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
		Status:         models.StatusPending,
	}, nil
}

func (s *stubAppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) CustomerReschedule(ctx context.Context, id string, upd appointment.AppointmentUpdate) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) AdminUpdate(ctx context.Context, id string, upd appointment.AppointmentUpdate) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) UpdateStatus(ctx context.Context, id string, to models.AppointmentStatus) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) Delete(ctx context.Context, id string) error { return nil }

func newSessionFixture() (*DefaultBookingSessionService, *memSessionStore, *stubAppointmentService) {
	store := newMemSessionStore()
	stub := &stubAppointmentService{slots: []models.SlotStatus{
		{Time: "09:00", Available: true},
		{Time: "10:00", Available: false, OccupantCount: 1},
	}}
	svc := &DefaultBookingSessionService{Store: store, AppointmentSvc: stub}
	return svc, store, stub
}

func TestInitiateSessionStartsAtServiceStep(t *testing.T) {
	svc, store, _ := newSessionFixture()

	resp, err := svc.InitiateSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Session.SessionID)
	assert.Equal(t, models.StepService, resp.Session.Step)

	saved, err := store.Get(context.Background(), resp.Session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, saved.Step)
}

func TestUpdateSessionAdvancesSteps(t *testing.T) {
	svc, _, _ := newSessionFixture()
	ctx := context.Background()

	resp, err := svc.InitiateSession(ctx)
	require.NoError(t, err)
	id := resp.Session.SessionID

	resp, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{ServiceID: "svc-1"})
	require.NoError(t, err)
	assert.Equal(t, models.StepProfessional, resp.Session.Step)

	resp, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{ProfessionalID: "pro-1"})
	require.NoError(t, err)
	assert.Equal(t, models.StepDate, resp.Session.Step)

	resp, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{Date: "2026-09-07"})
	require.NoError(t, err)
	assert.Equal(t, models.StepTime, resp.Session.Step)
	require.Len(t, resp.Slots, 2, "availability is attached once professional and date are known")
	assert.True(t, resp.Slots[0].Available)

	resp, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{Time: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, models.StepContact, resp.Session.Step)
	assert.Empty(t, resp.Slots, "no availability once a time is picked")

	resp, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+14155550100",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StepReady, resp.Session.Step)
}

func TestUpdateSessionClosedDayResetsDate(t *testing.T) {
	svc, store, stub := newSessionFixture()
	stub.availability = scheduling.NewClosedDayError("public holiday")
	ctx := context.Background()

	resp, err := svc.InitiateSession(ctx)
	require.NoError(t, err)
	id := resp.Session.SessionID

	_, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{ServiceID: "svc-1", ProfessionalID: "pro-1"})
	require.NoError(t, err)

	resp, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{Date: "2026-09-13"})
	require.NoError(t, err, "a closed day is a re-prompt, not a failure")
	assert.Equal(t, "public holiday", resp.ClosedReason)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, models.StepDate, resp.Session.Step)
	assert.Empty(t, resp.Session.Date)

	saved, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, saved.Date)
}

func TestUpdateSessionNewDateClearsTime(t *testing.T) {
	svc, _, _ := newSessionFixture()
	ctx := context.Background()

	resp, err := svc.InitiateSession(ctx)
	require.NoError(t, err)
	id := resp.Session.SessionID

	_, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{
		ServiceID: "svc-1", ProfessionalID: "pro-1", Date: "2026-09-07",
	})
	require.NoError(t, err)
	_, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{Time: "09:00"})
	require.NoError(t, err)

	resp, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{Date: "2026-09-08"})
	require.NoError(t, err)
	assert.Empty(t, resp.Session.Time, "a new date invalidates the picked time")
	assert.Equal(t, models.StepTime, resp.Session.Step)
}

func TestUpdateSessionUnknownID(t *testing.T) {
	svc, _, _ := newSessionFixture()

	_, err := svc.UpdateSession(context.Background(), "nope", models.BookingSessionUpdate{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func completedSession(t *testing.T, svc *DefaultBookingSessionService) string {
	t.Helper()
	ctx := context.Background()
	resp, err := svc.InitiateSession(ctx)
	require.NoError(t, err)
	id := resp.Session.SessionID
	_, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{
		ServiceID: "svc-1", ProfessionalID: "pro-1", Date: "2026-09-07",
	})
	require.NoError(t, err)
	_, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{Time: "09:00"})
	require.NoError(t, err)
	_, err = svc.UpdateSession(ctx, id, models.BookingSessionUpdate{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+14155550100",
	})
	require.NoError(t, err)
	return id
}

func TestConfirmSessionBooksAndDiscards(t *testing.T) {
	svc, store, stub := newSessionFixture()
	id := completedSession(t, svc)
	ctx := context.Background()

	apt, err := svc.ConfirmSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "apt-1", apt.ID)

	require.Len(t, stub.booked, 1)
	assert.Equal(t, "pro-1", stub.booked[0].ProfessionalID)
	assert.Equal(t, "09:00", stub.booked[0].Time)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound, "successful confirmation discards the session")
}

func TestConfirmSessionConflictResetsTime(t *testing.T) {
	svc, store, stub := newSessionFixture()
	id := completedSession(t, svc)
	stub.bookErr = scheduling.NewSlotConflictError()
	ctx := context.Background()

	_, err := svc.ConfirmSession(ctx, id)
	require.True(t, scheduling.IsCode(err, scheduling.CodeSlotConflict))

	saved, err := store.Get(ctx, id)
	require.NoError(t, err, "the session survives a slot conflict")
	assert.Empty(t, saved.Time)
	assert.Equal(t, models.StepTime, saved.Step)
}

func TestConfirmSessionValidationKeepsSession(t *testing.T) {
	svc, store, stub := newSessionFixture()
	id := completedSession(t, svc)
	stub.bookErr = scheduling.NewValidationError("a valid email address is required")
	ctx := context.Background()

	_, err := svc.ConfirmSession(ctx, id)
	require.True(t, scheduling.IsCode(err, scheduling.CodeValidation))

	saved, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "09:00", saved.Time, "only conflicts clear the picked time")
}

func TestCancelSessionLeavesNoTrace(t *testing.T) {
	svc, store, stub := newSessionFixture()
	id := completedSession(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.CancelSession(ctx, id))

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, stub.booked, "abandonment persists nothing")
}
