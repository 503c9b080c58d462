package reminders

import (
	"context"
	"fmt"
	"time"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Worker sweeps for appointments whose start time falls inside the reminder
// window and emails the patient once per appointment. The sweep lock keeps
// multiple instances from mailing the same window; send-then-mark order means
// a crash re-sends rather than silently drops.
type Worker struct {
	AppointmentRepository contracts.AppointmentRepository
	MailerService         contracts.MailerService
	LockerService         contracts.LockerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger

	limiter *rate.Limiter
	stop    chan struct{}
	done    chan struct{}
}

func NewWorker(
	appointmentMongoRepository contracts.AppointmentRepository,
	mailerService contracts.MailerService,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		AppointmentRepository: appointmentMongoRepository,
		MailerService:         mailerService,
		LockerService:         lockerService,
		InternalConfig:        internalConfig,
		Log:                   logger,
		limiter:               rate.NewLimiter(rate.Limit(internalConfig.Reminder.SendRatePerSecond), 1),
		stop:                  make(chan struct{}),
		done:                  make(chan struct{}),
	}
}

func (w *Worker) Start() {
	interval := time.Duration(w.InternalConfig.Reminder.SweepIntervalInMinutes) * time.Minute
	go func() {
		defer close(w.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				w.Sweep(context.Background())
			}
		}
	}()
}

func (w *Worker) Stop() {
	close(w.stop)
	<-w.done
}

func (w *Worker) Sweep(ctx context.Context) {
	interval := time.Duration(w.InternalConfig.Reminder.SweepIntervalInMinutes) * time.Minute
	acquired, lockValue, err := w.LockerService.TryLock(ctx, constvars.ReminderSweepLockKey, interval)
	if err != nil {
		w.Log.Error("reminders.Worker failed to acquire sweep lock", zap.Error(err))
		return
	}
	if !acquired {
		return
	}
	defer w.LockerService.Unlock(ctx, constvars.ReminderSweepLockKey, lockValue)

	now := time.Now()
	from := now.Add(-time.Duration(w.InternalConfig.Reminder.LookBehindInMinutes) * time.Minute)
	to := now.Add(time.Duration(w.InternalConfig.Reminder.LookAheadInMinutes) * time.Minute)

	dueAppointments, err := w.AppointmentRepository.FindDueReminders(ctx, from, to)
	if err != nil {
		w.Log.Error("reminders.Worker failed to load due appointments", zap.Error(err))
		return
	}

	for _, appointment := range dueAppointments {
		if err := w.limiter.Wait(ctx); err != nil {
			return
		}

		body := fmt.Sprintf(constvars.EmailReminderBody,
			appointment.UserData.Name,
			appointment.DocData.Name,
			appointment.SlotTime,
			appointment.SlotDate,
		)
		if err := w.MailerService.SendEmail(ctx, appointment.UserData.Email, constvars.EmailReminderSubject, body); err != nil {
			w.Log.Error("reminders.Worker failed to send reminder",
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.String(constvars.LoggingEmailKey, appointment.UserData.Email),
				zap.Error(err),
			)
			continue
		}

		if err := w.AppointmentRepository.MarkReminderSent(ctx, appointment.ID, time.Now()); err != nil {
			w.Log.Error("reminders.Worker failed to mark reminder sent",
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.Error(err),
			)
		}
	}

	if len(dueAppointments) > 0 {
		w.Log.Info("reminders.Worker sweep finished",
			zap.Int("due", len(dueAppointments)),
		)
	}
}
