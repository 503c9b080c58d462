package doctors

import (
	"context"
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

	"go.uber.org/zap"
)

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

type doctorUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewDoctorUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	appointmentMongoRepository contracts.AppointmentRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository:      doctorMongoRepository,
			AppointmentRepository: appointmentMongoRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) LoginDoctor(ctx context.Context, request *requests.DoctorLogin) (*responses.Login, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	if !utils.CheckPasswordHash(request.Password, doctor.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GenerateIDToken(doctor.ID, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.LoginDoctor succeeded",
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	return &responses.Login{Token: token}, nil
}

// ListDoctors is the public catalog; credentials and contact email stay out
// of the payload.
func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		doctors[i].Email = ""
		doctors[i].Password = ""
	}
	return doctors, nil
}

func (uc *doctorUsecase) GetAvailableSlots(ctx context.Context, doctorID string) (*responses.AvailableSlots, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.Available {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	days, slotsByDay := slots.Calculate(time.Now(), doctor.SlotsBooked)
	return &responses.AvailableSlots{
		DocID: doctor.ID,
		Days:  days,
		Slots: slotsByDay,
	}, nil
}

func (uc *doctorUsecase) GetDoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return uc.AppointmentRepository.FindByDocID(ctx, doctorID)
}

// GetDoctorDashboard aggregates over the doctor's own appointments. Earnings
// count an appointment once it is completed or paid for.
func (uc *doctorUsecase) GetDoctorDashboard(ctx context.Context, doctorID string) (*responses.DoctorDashboard, error) {
	appointments, err := uc.GetDoctorAppointments(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	earnings := 0
	patients := make(map[string]struct{})
	for _, appointment := range appointments {
		if appointment.IsCompleted || appointment.Payment {
			earnings += appointment.Amount
		}
		patients[appointment.UserID] = struct{}{}
	}

	latest := appointments
	if len(latest) > 5 {
		latest = latest[:5]
	}

	return &responses.DoctorDashboard{
		Earnings:           earnings,
		Appointments:       len(appointments),
		Patients:           len(patients),
		LatestAppointments: latest,
	}, nil
}
