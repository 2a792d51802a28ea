package cron

import (
	"context"
	"encoding/json"
	"testing"

	appointmentRepo "agendly/database/repository/appointment"
	"agendly/models"
	"agendly/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	apt *models.Appointment
}

func (r *fakeRepo) Create(ctx context.Context, apt *models.Appointment) (string, error) {
	return "", nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if r.apt == nil || r.apt.ID != id {
		return nil, appointmentRepo.ErrNotFound
	}
	snapshot := *r.apt
	return &snapshot, nil
}

func (r *fakeRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeRepo) Update(ctx context.Context, apt *models.Appointment) error { return nil }
func (r *fakeRepo) Delete(ctx context.Context, id string) error              { return nil }

func (r *fakeRepo) ListActiveForDay(ctx context.Context, professionalID, date string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeRepo) FindActiveAt(ctx context.Context, professionalID, date, timeSlot, excludeID string) ([]models.Appointment, error) {
	return nil, nil
}

type fakeNotifier struct {
	reminders int
}

func (n *fakeNotifier) SendCreated(ctx context.Context, apt *models.Appointment, serviceName string) error {
	return nil
}

func (n *fakeNotifier) SendStatusChanged(ctx context.Context, apt *models.Appointment, serviceName, confirmationTemplate string) error {
	return nil
}

func (n *fakeNotifier) SendReminder(ctx context.Context, apt *models.Appointment, serviceName string) error {
	n.reminders++
	return nil
}

func reminderTask(t *testing.T, p models.ReminderPayload) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return asynq.NewTask(tasks.TypeSendReminder, b)
}

func TestReminderSentForActiveAppointment(t *testing.T) {
	apt := &models.Appointment{
		ID:     "apt-1",
		Date:   "2026-09-07",
		Time:   "10:00",
		Status: models.StatusApproved,
	}
	notifier := &fakeNotifier{}
	handler := handleReminderTask(&fakeRepo{apt: apt}, nil, notifier)

	task := reminderTask(t, models.ReminderPayload{AppointmentID: "apt-1", Date: "2026-09-07", Time: "10:00"})
	require.NoError(t, handler(context.Background(), task))
	assert.Equal(t, 1, notifier.reminders)
}

func TestReminderSkippedWhenCancelled(t *testing.T) {
	apt := &models.Appointment{
		ID:     "apt-1",
		Date:   "2026-09-07",
		Time:   "10:00",
		Status: models.StatusCancelled,
	}
	notifier := &fakeNotifier{}
	handler := handleReminderTask(&fakeRepo{apt: apt}, nil, notifier)

	task := reminderTask(t, models.ReminderPayload{AppointmentID: "apt-1", Date: "2026-09-07", Time: "10:00"})
	require.NoError(t, handler(context.Background(), task))
	assert.Zero(t, notifier.reminders)
}

func TestReminderSkippedWhenRescheduled(t *testing.T) {
	apt := &models.Appointment{
		ID:     "apt-1",
		Date:   "2026-09-07",
		Time:   "15:00", // moved after the reminder was enqueued
		Status: models.StatusApproved,
	}
	notifier := &fakeNotifier{}
	handler := handleReminderTask(&fakeRepo{apt: apt}, nil, notifier)

	task := reminderTask(t, models.ReminderPayload{AppointmentID: "apt-1", Date: "2026-09-07", Time: "10:00"})
	require.NoError(t, handler(context.Background(), task))
	assert.Zero(t, notifier.reminders)
}

func TestReminderSkippedWhenDeleted(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := handleReminderTask(&fakeRepo{}, nil, notifier)

	task := reminderTask(t, models.ReminderPayload{AppointmentID: "apt-1", Date: "2026-09-07", Time: "10:00"})
	require.NoError(t, handler(context.Background(), task), "a vanished appointment is not a task failure")
	assert.Zero(t, notifier.reminders)
}
