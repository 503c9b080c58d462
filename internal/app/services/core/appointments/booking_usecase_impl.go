package appointments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/app/services/core/slots"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	LockerService         contracts.LockerService
	Notifier              contracts.Notifier
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewBookingUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	doctorMongoRepository contracts.DoctorRepository,
	userMongoRepository contracts.UserRepository,
	lockerService contracts.LockerService,
	notifier contracts.Notifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			AppointmentRepository: appointmentMongoRepository,
			DoctorRepository:      doctorMongoRepository,
			UserRepository:        userMongoRepository,
			LockerService:         lockerService,
			Notifier:              notifier,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return bookingUsecaseInstance
}

// BookAppointment normalizes the requested slot, takes a short redis lock as
// a fast path, then inserts the appointment and mirrors the slot into the
// doctor document inside one transaction. The partial unique index on
// (docId, slotDate, slotTime) is the authority: if two requests slip past the
// lock, the second insert fails with a duplicate key and surfaces as a slot
// conflict.
func (uc *bookingUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	dayKey, timeLabel, scheduledAt, err := utils.CanonicalSlot(request.SlotDate, request.SlotTime)
	if err != nil {
		return nil, err
	}
	if !slots.WithinServiceWindow(scheduledAt) || scheduledAt.Before(time.Now()) {
		return nil, exceptions.ErrSlotNotBookable(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DocID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.Available {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, request.DocID, dayKey, timeLabel)
	lockTTL := time.Duration(uc.InternalConfig.Booking.SlotLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotConflict(errors.New(constvars.ErrDevSlotLockContended))
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	if !slots.IsFree(doctor.SlotsBooked, dayKey, timeLabel) {
		return nil, exceptions.ErrSlotConflict(nil)
	}

	appointment := &models.Appointment{
		UserID:      user.ID,
		DocID:       doctor.ID,
		SlotDate:    dayKey,
		SlotTime:    timeLabel,
		UserData:    user.Snapshot(),
		DocData:     doctor.Snapshot(),
		Amount:      doctor.Fees,
		Date:        time.Now().UnixMilli(),
		ScheduledAt: scheduledAt,
	}

	client, ok := uc.AppointmentRepository.GetClient(ctx).(*mongo.Client)
	if !ok {
		return nil, exceptions.ErrServerProcess(fmt.Errorf("unexpected database client type"))
	}

	mongoSession, err := client.StartSession()
	if err != nil {
		return nil, exceptions.ErrMongoDBTransaction(err)
	}
	defer mongoSession.EndSession(ctx)

	result, err := mongoSession.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		appointmentID, err := uc.AppointmentRepository.CreateAppointment(sessCtx, appointment)
		if err != nil {
			return nil, err
		}
		if err := uc.DoctorRepository.AddBookedSlot(sessCtx, doctor.ID, dayKey, timeLabel); err != nil {
			return nil, err
		}
		return appointmentID, nil
	})
	if err != nil {
		return nil, err
	}
	appointment.ID = result.(string)

	uc.Log.Info("bookingUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		zap.String(constvars.LoggingSlotDateKey, dayKey),
		zap.String(constvars.LoggingSlotTimeKey, timeLabel),
	)

	uc.notifyDoctor(appointment)
	return appointment, nil
}

// CancelAppointment flips the cancelled flag and pulls the slot from the
// doctor's booked set in one transaction. Cancelling twice is a no-op.
func (uc *bookingUsecase) CancelAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.Cancelled {
		return appointment, nil
	}

	client, ok := uc.AppointmentRepository.GetClient(ctx).(*mongo.Client)
	if !ok {
		return nil, exceptions.ErrServerProcess(fmt.Errorf("unexpected database client type"))
	}

	mongoSession, err := client.StartSession()
	if err != nil {
		return nil, exceptions.ErrMongoDBTransaction(err)
	}
	defer mongoSession.EndSession(ctx)

	_, err = mongoSession.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if err := uc.AppointmentRepository.MarkCancelled(sessCtx, appointment.ID); err != nil {
			return nil, err
		}
		if err := uc.DoctorRepository.RemoveBookedSlot(sessCtx, appointment.DocID, appointment.SlotDate, appointment.SlotTime); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	appointment.Cancelled = true
	uc.Log.Info("bookingUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingDoctorIDKey, appointment.DocID),
	)
	return appointment, nil
}

func (uc *bookingUsecase) notifyDoctor(appointment *models.Appointment) {
	delivered := uc.Notifier.Notify(appointment.DocID, responses.NotificationEvent{
		Event:       constvars.NotificationNewAppointmentEvent,
		Appointment: appointment,
	})
	if !delivered {
		uc.Log.Info("bookingUsecase.notifyDoctor doctor offline, event dropped",
			zap.String(constvars.LoggingDoctorIDKey, appointment.DocID),
			zap.String(constvars.LoggingEventKey, constvars.NotificationNewAppointmentEvent),
		)
	}
}
