package contracts

import (
	"context"

	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	LoginDoctor(ctx context.Context, request *requests.DoctorLogin) (*responses.Login, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	GetAvailableSlots(ctx context.Context, doctorID string) (*responses.AvailableSlots, error)
	GetDoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error)
	GetDoctorDashboard(ctx context.Context, doctorID string) (*responses.DoctorDashboard, error)
}

type DoctorRepository interface {
	GetClient(ctx context.Context) (databaseClient interface{})
	CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (doctorID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindAvailable(ctx context.Context) ([]models.Doctor, error)
	FindAvailableBySpeciality(ctx context.Context, speciality string) ([]models.Doctor, error)
	SetAvailability(ctx context.Context, doctorID string, available bool) error
	AddBookedSlot(ctx context.Context, doctorID, dayKey, timeLabel string) error
	RemoveBookedSlot(ctx context.Context, doctorID, dayKey, timeLabel string) error
	Count(ctx context.Context) (int64, error)
}
