package users

import (
	"context"
	"sync"
	"time"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserRepository        contracts.UserRepository
	AppointmentRepository contracts.AppointmentRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	appointmentMongoRepository contracts.AppointmentRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository:        userMongoRepository,
			AppointmentRepository: appointmentMongoRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Login, error) {
	if request.Name == "" || request.Email == "" || request.Password == "" {
		return nil, exceptions.ErrMissingFields(nil)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if len(request.Password) < 8 {
		return nil, exceptions.ErrWeakPassword(nil)
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	userModel := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateIDToken(userID, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.Login{Token: token}, nil
}

func (uc *userUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GenerateIDToken(user.ID, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return &responses.Login{Token: token}, nil
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return user, nil
}

func (uc *userUsecase) GetUserAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return uc.AppointmentRepository.FindByUserID(ctx, userID)
}
