package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) GetClient(ctx context.Context) interface{} {
	args := m.Called(ctx)
	return args.Get(0)
}

func (m *MockAppointmentRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	args := m.Called(ctx, appointmentModel)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDocID(ctx context.Context, docID string) ([]models.Appointment, error) {
	args := m.Called(ctx, docID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveBySlot(ctx context.Context, docID, slotDate, slotTime string) (*models.Appointment, error) {
	args := m.Called(ctx, docID, slotDate, slotTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) MarkCancelled(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) MarkReminderSent(ctx context.Context, appointmentID string, sentAt time.Time) error {
	args := m.Called(ctx, appointmentID, sentAt)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) FindLatest(ctx context.Context, limit int64) ([]models.Appointment, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) GetClient(ctx context.Context) interface{} {
	args := m.Called(ctx)
	return args.Get(0)
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	args := m.Called(ctx, doctorModel)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAvailable(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAvailableBySpeciality(ctx context.Context, speciality string) ([]models.Doctor, error) {
	args := m.Called(ctx, speciality)
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) SetAvailability(ctx context.Context, doctorID string, available bool) error {
	args := m.Called(ctx, doctorID, available)
	return args.Error(0)
}

func (m *MockDoctorRepository) AddBookedSlot(ctx context.Context, doctorID, dayKey, timeLabel string) error {
	args := m.Called(ctx, doctorID, dayKey, timeLabel)
	return args.Error(0)
}

func (m *MockDoctorRepository) RemoveBookedSlot(ctx context.Context, doctorID, dayKey, timeLabel string) error {
	args := m.Called(ctx, doctorID, dayKey, timeLabel)
	return args.Error(0)
}

func (m *MockDoctorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetClient(ctx context.Context) interface{} {
	args := m.Called(ctx)
	return args.Get(0)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(doctorID string, payload interface{}) bool {
	args := m.Called(doctorID, payload)
	return args.Bool(0)
}

func newBookingTestFixture() (*bookingUsecase, *MockAppointmentRepository, *MockDoctorRepository, *MockUserRepository, *MockLockerService, *MockNotifier) {
	appointmentRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	userRepo := new(MockUserRepository)
	lockerService := new(MockLockerService)
	notifier := new(MockNotifier)

	uc := &bookingUsecase{
		AppointmentRepository: appointmentRepo,
		DoctorRepository:      doctorRepo,
		UserRepository:        userRepo,
		LockerService:         lockerService,
		Notifier:              notifier,
		InternalConfig: &config.InternalConfig{
			Booking: config.AppBooking{SlotLockTTLInSeconds: 10},
		},
		Log: zap.NewNop(),
	}
	return uc, appointmentRepo, doctorRepo, userRepo, lockerService, notifier
}

// nextBookableSlot returns tomorrow at 16:00 in the two input forms plus the
// canonical pair, far enough ahead to never trip the past-slot guard.
func nextBookableSlot() (slotDate, slotTime, dayKey, timeLabel string) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	at := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 16, 0, 0, 0, time.Local)
	return at.Format("2006-01-02"), "16:00", utils.SlotDayKey(at), utils.SlotTimeLabel(at)
}

func TestBookAppointment(t *testing.T) {
	t.Run("Missing Fields Fail Validation", func(t *testing.T) {
		uc, _, _, _, _, _ := newBookingTestFixture()

		_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Unparseable Slot Date", func(t *testing.T) {
		uc, _, _, _, _, _ := newBookingTestFixture()

		_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{
			DocID:    "doc1",
			SlotDate: "next tuesday",
			SlotTime: "16:00",
			UserID:   "user1",
		})

		assert.Error(t, err)
	})

	t.Run("Slot Outside Service Window", func(t *testing.T) {
		uc, _, _, _, _, _ := newBookingTestFixture()
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

		_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{
			DocID:    "doc1",
			SlotDate: tomorrow,
			SlotTime: "08:00",
			UserID:   "user1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Slot In The Past", func(t *testing.T) {
		uc, _, _, _, _, _ := newBookingTestFixture()
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{
			DocID:    "doc1",
			SlotDate: yesterday,
			SlotTime: "16:00",
			UserID:   "user1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		uc, _, doctorRepo, _, _, _ := newBookingTestFixture()
		slotDate, slotTime, _, _ := nextBookableSlot()

		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(nil, nil)

		_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{
			DocID:    "doc1",
			SlotDate: slotDate,
			SlotTime: slotTime,
			UserID:   "user1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Unavailable Doctor", func(t *testing.T) {
		uc, _, doctorRepo, _, _, _ := newBookingTestFixture()
		slotDate, slotTime, _, _ := nextBookableSlot()

		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(&models.Doctor{
			ID:        "doc1",
			Available: false,
		}, nil)

		_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{
			DocID:    "doc1",
			SlotDate: slotDate,
			SlotTime: slotTime,
			UserID:   "user1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Unknown Patient", func(t *testing.T) {
		uc, _, doctorRepo, userRepo, _, _ := newBookingTestFixture()
		slotDate, slotTime, _, _ := nextBookableSlot()

		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(&models.Doctor{
			ID:        "doc1",
			Available: true,
		}, nil)
		userRepo.On("FindByID", mock.Anything, "user1").Return(nil, nil)

		_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{
			DocID:    "doc1",
			SlotDate: slotDate,
			SlotTime: slotTime,
			UserID:   "user1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Lock Contention Surfaces As Conflict", func(t *testing.T) {
		uc, _, doctorRepo, userRepo, lockerService, _ := newBookingTestFixture()
		slotDate, slotTime, _, _ := nextBookableSlot()

		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(&models.Doctor{
			ID:        "doc1",
			Available: true,
		}, nil)
		userRepo.On("FindByID", mock.Anything, "user1").Return(&models.User{ID: "user1"}, nil)
		lockerService.On("TryLock", mock.Anything, mock.AnythingOfType("string"), 10*time.Second).Return(false, "", nil)

		_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{
			DocID:    "doc1",
			SlotDate: slotDate,
			SlotTime: slotTime,
			UserID:   "user1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Already Booked Slot Conflicts And Releases Lock", func(t *testing.T) {
		uc, _, doctorRepo, userRepo, lockerService, _ := newBookingTestFixture()
		slotDate, slotTime, dayKey, timeLabel := nextBookableSlot()

		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(&models.Doctor{
			ID:        "doc1",
			Available: true,
			SlotsBooked: map[string][]string{
				dayKey: {timeLabel},
			},
		}, nil)
		userRepo.On("FindByID", mock.Anything, "user1").Return(&models.User{ID: "user1"}, nil)
		lockerService.On("TryLock", mock.Anything, mock.AnythingOfType("string"), 10*time.Second).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value").Return(nil)

		_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{
			DocID:    "doc1",
			SlotDate: slotDate,
			SlotTime: slotTime,
			UserID:   "user1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
		lockerService.AssertCalled(t, "Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value")
	})
}

// firstWinsLocker grants each key to its first caller and turns everyone
// else away for the rest of the test, standing in for the redis SetNX lock
// under contention.
type firstWinsLocker struct {
	mu    sync.Mutex
	taken map[string]bool
}

func (l *firstWinsLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.taken[key] {
		return false, "", nil
	}
	l.taken[key] = true
	return true, "owner", nil
}

func (l *firstWinsLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return nil
}

// Two attempts race for the same slot; the slot lock must admit exactly one
// of them to the insert stage. The insert itself needs a live topology, so
// the admitted attempt stops at the session handshake against a disconnected
// client; the other must be turned away with a slot conflict.
func TestBookAppointmentConcurrentSameSlot(t *testing.T) {
	uc, appointmentRepo, doctorRepo, userRepo, _, _ := newBookingTestFixture()
	uc.LockerService = &firstWinsLocker{taken: make(map[string]bool)}
	slotDate, slotTime, _, _ := nextBookableSlot()

	doctorRepo.On("FindByID", mock.Anything, "doc1").Return(&models.Doctor{
		ID:        "doc1",
		Available: true,
	}, nil)
	userRepo.On("FindByID", mock.Anything, "user1").Return(&models.User{ID: "user1"}, nil)
	userRepo.On("FindByID", mock.Anything, "user2").Return(&models.User{ID: "user2"}, nil)
	appointmentRepo.On("GetClient", mock.Anything).Return(new(mongo.Client))

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, userID := range []string{"user1", "user2"} {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, err := uc.BookAppointment(context.Background(), &requests.BookAppointment{
				DocID:    "doc1",
				SlotDate: slotDate,
				SlotTime: slotTime,
				UserID:   userID,
			})
			errs <- err
		}(userID)
	}
	wg.Wait()
	close(errs)

	conflicts := 0
	for err := range errs {
		if customErr, ok := err.(*exceptions.CustomError); ok && customErr.StatusCode == 409 {
			conflicts++
		}
	}
	assert.Equal(t, 1, conflicts)
	appointmentRepo.AssertNumberOfCalls(t, "GetClient", 1)
}

func TestCancelAppointment(t *testing.T) {
	t.Run("Unknown Appointment", func(t *testing.T) {
		uc, appointmentRepo, _, _, _, _ := newBookingTestFixture()

		appointmentRepo.On("FindByID", mock.Anything, "appt1").Return(nil, nil)

		_, err := uc.CancelAppointment(context.Background(), "appt1")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Cancelling Twice Is A No Op", func(t *testing.T) {
		uc, appointmentRepo, _, _, _, _ := newBookingTestFixture()

		cancelled := &models.Appointment{
			ID:        "appt1",
			DocID:     "doc1",
			Cancelled: true,
		}
		appointmentRepo.On("FindByID", mock.Anything, "appt1").Return(cancelled, nil)

		appointment, err := uc.CancelAppointment(context.Background(), "appt1")

		assert.NoError(t, err)
		assert.True(t, appointment.Cancelled)
		appointmentRepo.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
	})
}
