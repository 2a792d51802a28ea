package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"agendly/config"
	appointmentRepo "agendly/database/repository/appointment"
	servicecatRepo "agendly/database/repository/servicecat"
	"agendly/models"
	"agendly/services/notification"
	"agendly/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(repo appointmentRepo.AppointmentRepository, services servicecatRepo.ServiceRepository, notifier notification.Notifier) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(repo, services, notifier))

	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask re-reads the appointment before sending: a reminder is
// skipped when the appointment was cancelled, deleted, or moved to a
// different slot after it was enqueued.
func handleReminderTask(repo appointmentRepo.AppointmentRepository, services servicecatRepo.ServiceRepository, notifier notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		apt, err := repo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] appointment %s gone, skipping reminder: %v", p.AppointmentID, err)
			return nil
		}
		if !apt.IsActive() {
			return nil
		}
		if apt.Date != p.Date || apt.Time != p.Time {
			// The appointment was rescheduled; the new slot enqueued its own
			// reminder when it was saved.
			return nil
		}

		serviceName := "your appointment"
		if services != nil {
			if svc, err := services.GetByID(ctx, apt.ServiceID); err == nil {
				serviceName = svc.Name
			}
		}

		if err := notifier.SendReminder(ctx, apt, serviceName); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", apt.ID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
