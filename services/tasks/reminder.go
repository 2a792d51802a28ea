package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"agendly/config"
	"agendly/models"
	"agendly/services/scheduling"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues reminder tasks on the asynq queue shared with
// the worker in the cron package.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler builds a scheduler from the application configuration.
func NewReminderScheduler() *ReminderScheduler {
	cfg := config.AppConfig
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisReminderQueueDB,
	})
	lead := time.Duration(cfg.ReminderLeadHours) * time.Hour
	if lead <= 0 {
		lead = 24 * time.Hour
	}
	return &ReminderScheduler{client: client, lead: lead}
}

// Schedule enqueues a reminder to fire ahead of the appointment slot. An
// appointment too close for the configured lead time gets no reminder; that
// is not an error.
func (s *ReminderScheduler) Schedule(apt *models.Appointment) error {
	slotAt, err := time.ParseInLocation(
		scheduling.DateLayout+" "+scheduling.TimeLayout,
		apt.Date+" "+apt.Time,
		time.Local,
	)
	if err != nil {
		return fmt.Errorf("failed to parse appointment slot: %w", err)
	}

	fireAt := slotAt.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		AppointmentID: apt.ID,
		Date:          apt.Date,
		Time:          apt.Time,
	}, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
