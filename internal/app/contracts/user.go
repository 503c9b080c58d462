package contracts

import (
	"context"

	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Login, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	GetUserAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
}

type UserRepository interface {
	GetClient(ctx context.Context) (databaseClient interface{})
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}
