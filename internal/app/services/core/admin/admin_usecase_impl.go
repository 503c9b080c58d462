package admin

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"context"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

type adminUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	MinioStorage          contracts.Storage
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAdminUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	appointmentMongoRepository contracts.AppointmentRepository,
	userMongoRepository contracts.UserRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		adminUsecaseInstance = &adminUsecase{
			DoctorRepository:      doctorMongoRepository,
			AppointmentRepository: appointmentMongoRepository,
			UserRepository:        userMongoRepository,
			MinioStorage:          minioStorage,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return adminUsecaseInstance
}

// LoginAdmin checks the configured panel credential pair. The token signs the
// concatenated credential string, so a config rotation invalidates every
// outstanding admin session.
func (uc *adminUsecase) LoginAdmin(ctx context.Context, request *requests.AdminLogin) (*responses.Login, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if request.Email != uc.InternalConfig.Admin.Email || request.Password != uc.InternalConfig.Admin.Password {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	credential := request.Email + request.Password
	token, err := utils.GenerateCredentialToken(credential, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return &responses.Login{Token: token}, nil
}

func (uc *adminUsecase) AddDoctor(ctx context.Context, request *requests.AddDoctor) (*models.Doctor, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if len(request.Password) < 8 {
		return nil, exceptions.ErrWeakPassword(nil)
	}

	existingDoctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingDoctor != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	imageURL, err := uc.uploadDoctorImage(ctx, request)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	doctorModel := &models.Doctor{
		Name:        request.Name,
		Email:       request.Email,
		Password:    hashedPassword,
		Image:       imageURL,
		Speciality:  request.Speciality,
		Degree:      request.Degree,
		Experience:  request.Experience,
		About:       request.About,
		Available:   true,
		Fees:        request.Fees,
		Address:     models.Address{Line1: request.AddressLine1, Line2: request.AddressLine2},
		SlotsBooked: map[string][]string{},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctorModel)
	if err != nil {
		return nil, err
	}
	doctorModel.ID = doctorID
	doctorModel.Password = ""

	uc.Log.Info("adminUsecase.AddDoctor succeeded",
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return doctorModel, nil
}

func (uc *adminUsecase) uploadDoctorImage(ctx context.Context, request *requests.AddDoctor) (string, error) {
	if len(request.ImageContent) == 0 {
		return "", exceptions.ErrMissingFields(nil)
	}

	maxSize := uc.InternalConfig.Minio.DoctorImageMaxUploadSizeInMB * 1024 * 1024
	if len(request.ImageContent) > maxSize {
		return "", exceptions.ErrInputValidation(fmt.Errorf("image larger than %d MB", uc.InternalConfig.Minio.DoctorImageMaxUploadSizeInMB))
	}

	objectName := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(request.ImageFilename))
	bucketName := uc.InternalConfig.Minio.BucketName

	_, err := uc.MinioStorage.UploadObject(
		ctx,
		bytes.NewReader(request.ImageContent),
		int64(len(request.ImageContent)),
		bucketName,
		objectName,
		request.ImageContentType,
	)
	if err != nil {
		return "", err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	return uc.MinioStorage.GetObjectURLWithExpiryTime(ctx, bucketName, objectName, expiry)
}

// ChangeAvailability toggles the doctor's booking flag.
func (uc *adminUsecase) ChangeAvailability(ctx context.Context, request *requests.ChangeAvailability) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DocID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	return uc.DoctorRepository.SetAvailability(ctx, doctor.ID, !doctor.Available)
}

func (uc *adminUsecase) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		doctors[i].Password = ""
	}
	return doctors, nil
}

func (uc *adminUsecase) GetAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindAll(ctx)
}

func (uc *adminUsecase) GetDashboard(ctx context.Context) (*responses.Dashboard, error) {
	doctorCount, err := uc.DoctorRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	appointmentCount, err := uc.AppointmentRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	patientCount, err := uc.UserRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	latestAppointments, err := uc.AppointmentRepository.FindLatest(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &responses.Dashboard{
		Doctors:            int(doctorCount),
		Appointments:       int(appointmentCount),
		Patients:           int(patientCount),
		LatestAppointments: latestAppointments,
	}, nil
}
