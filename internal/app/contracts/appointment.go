package contracts

import (
	"context"
	"time"

	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
}

type AdminUsecase interface {
	LoginAdmin(ctx context.Context, request *requests.AdminLogin) (*responses.Login, error)
	AddDoctor(ctx context.Context, request *requests.AddDoctor) (*models.Doctor, error)
	ChangeAvailability(ctx context.Context, request *requests.ChangeAvailability) error
	GetAllDoctors(ctx context.Context) ([]models.Doctor, error)
	GetAllAppointments(ctx context.Context) ([]models.Appointment, error)
	GetDashboard(ctx context.Context) (*responses.Dashboard, error)
}

type IntentUsecase interface {
	BookWithAI(ctx context.Context, request *requests.AIBooking) (*responses.AIBooking, error)
	ConfirmAppointment(ctx context.Context, request *requests.ConfirmAppointment) (*responses.AIBooking, error)
}

type AppointmentRepository interface {
	GetClient(ctx context.Context) (databaseClient interface{})
	EnsureIndexes(ctx context.Context) error
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	FindByDocID(ctx context.Context, docID string) ([]models.Appointment, error)
	FindActiveBySlot(ctx context.Context, docID, slotDate, slotTime string) (*models.Appointment, error)
	MarkCancelled(ctx context.Context, appointmentID string) error
	FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	MarkReminderSent(ctx context.Context, appointmentID string, sentAt time.Time) error
	Count(ctx context.Context) (int64, error)
	FindLatest(ctx context.Context, limit int64) ([]models.Appointment, error)
}
