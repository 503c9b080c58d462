package intent

import (
	"context"
	"testing"
	"time"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
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

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockBookingUsecase) CancelAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func newIntentTestFixture() (*intentUsecase, *MockLLMClient, *MockDoctorRepository, *MockBookingUsecase) {
	llmClient := new(MockLLMClient)
	doctorRepo := new(MockDoctorRepository)
	bookingUsecase := new(MockBookingUsecase)

	uc := &intentUsecase{
		LLMClient:        llmClient,
		DoctorRepository: doctorRepo,
		BookingUsecase:   bookingUsecase,
		InternalConfig: &config.InternalConfig{
			LLM: config.AppLLM{TimeoutInSeconds: 5},
		},
		Log: zap.NewNop(),
	}
	return uc, llmClient, doctorRepo, bookingUsecase
}

// tomorrowSlot is tomorrow at 16:00: the ISO date the model would return,
// plus the canonical day key and 12-hour label for booked-slot checks.
func tomorrowSlot() (date, dayKey, timeLabel string) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	at := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 16, 0, 0, 0, time.Local)
	return at.Format("2006-01-02"), utils.SlotDayKey(at), utils.SlotTimeLabel(at)
}

func intentJSON(symptom, specialties, doctorName, date string) string {
	return `{"symptom": "` + symptom + `", "recommendedSpecialties": [` + specialties + `], "doctorName": "` + doctorName + `", "date": "` + date + `", "time": "16:00"}`
}

func TestBookWithAI(t *testing.T) {
	t.Run("Named Doctor Books Directly", func(t *testing.T) {
		uc, llmClient, doctorRepo, bookingUsecase := newIntentTestFixture()
		date, _, _ := tomorrowSlot()

		llmClient.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
			Return(intentJSON("", "", "Dr. Richard Smith", date), nil)
		doctorRepo.On("FindAvailable", mock.Anything).Return([]models.Doctor{
			{ID: "doc1", Name: "Richard Smith", Speciality: "Cardiologist", Available: true},
		}, nil)

		var gotBooking *requests.BookAppointment
		bookingUsecase.On("BookAppointment", mock.Anything, mock.AnythingOfType("*requests.BookAppointment")).
			Run(func(args mock.Arguments) { gotBooking = args.Get(1).(*requests.BookAppointment) }).
			Return(&models.Appointment{ID: "appt1", DocID: "doc1"}, nil)

		response, err := uc.BookWithAI(context.Background(), &requests.AIBooking{
			Message: "book me with Dr. Richard Smith tomorrow at 4pm",
			UserID:  "user1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, response.Appointment)
		assert.Equal(t, "doc1", gotBooking.DocID)
		assert.Equal(t, "user1", gotBooking.UserID)
		assert.Contains(t, response.Message, "Richard Smith")
		assert.Contains(t, response.Message, date)
		assert.Contains(t, response.Message, "16:00")
	})

	t.Run("Name Match Is Exact Not Substring", func(t *testing.T) {
		uc, llmClient, doctorRepo, bookingUsecase := newIntentTestFixture()
		date, _, _ := tomorrowSlot()

		llmClient.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
			Return(intentJSON("", "", "Dr. Smith", date), nil)
		doctorRepo.On("FindAvailable", mock.Anything).Return([]models.Doctor{
			{ID: "doc1", Name: "Richard Smith", Speciality: "Cardiologist", Available: true},
		}, nil)

		_, err := uc.BookWithAI(context.Background(), &requests.AIBooking{
			Message: "book me with Dr. Smith tomorrow at 4pm",
			UserID:  "user1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
		bookingUsecase.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Missing Named Doctor Falls Through To Specialties", func(t *testing.T) {
		uc, llmClient, doctorRepo, bookingUsecase := newIntentTestFixture()
		date, _, _ := tomorrowSlot()

		llmClient.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
			Return(intentJSON("back pain", `"Orthopedic", "Physiotherapist"`, "Dr. Nobody", date), nil)
		doctorRepo.On("FindAvailable", mock.Anything).Return([]models.Doctor{
			{ID: "doc1", Name: "Richard Smith", Speciality: "Cardiologist", Available: true},
		}, nil)
		doctorRepo.On("FindAvailableBySpeciality", mock.Anything, "Orthopedic").Return([]models.Doctor{
			{ID: "doc2", Name: "Bone Doctor", Speciality: "Orthopedic", Available: true},
		}, nil)

		bookingUsecase.On("BookAppointment", mock.Anything, mock.AnythingOfType("*requests.BookAppointment")).
			Return(&models.Appointment{ID: "appt1", DocID: "doc2"}, nil)

		response, err := uc.BookWithAI(context.Background(), &requests.AIBooking{
			Message: "my back pain is unbearable, book Dr. Nobody tomorrow at 4pm",
			UserID:  "user1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, response.Appointment)
		doctorRepo.AssertCalled(t, "FindAvailableBySpeciality", mock.Anything, "Orthopedic")
	})

	t.Run("Single Specialty Candidate Books Directly", func(t *testing.T) {
		uc, llmClient, doctorRepo, bookingUsecase := newIntentTestFixture()
		date, _, _ := tomorrowSlot()

		llmClient.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
			Return(intentJSON("chest pain", `"Cardiologist"`, "", date), nil)
		doctorRepo.On("FindAvailableBySpeciality", mock.Anything, "Cardiologist").Return([]models.Doctor{
			{ID: "doc1", Name: "Dr. Smith", Speciality: "Cardiologist", Available: true},
		}, nil)

		var gotBooking *requests.BookAppointment
		bookingUsecase.On("BookAppointment", mock.Anything, mock.AnythingOfType("*requests.BookAppointment")).
			Run(func(args mock.Arguments) { gotBooking = args.Get(1).(*requests.BookAppointment) }).
			Return(&models.Appointment{ID: "appt1", DocID: "doc1"}, nil)

		response, err := uc.BookWithAI(context.Background(), &requests.AIBooking{
			Message: "chest pain, I need a cardiologist tomorrow at 4pm",
			UserID:  "user1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, response.Appointment)
		assert.Empty(t, response.Suggestions)
		assert.Equal(t, "doc1", gotBooking.DocID)
		assert.Contains(t, response.Message, "Dr. Smith")
		assert.Contains(t, response.Message, date)
	})

	t.Run("Specialties Are Tried In Order", func(t *testing.T) {
		uc, llmClient, doctorRepo, _ := newIntentTestFixture()
		date, dayKey, timeLabel := tomorrowSlot()

		llmClient.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
			Return(intentJSON("back pain", `"Orthopedic", "Physiotherapist"`, "", date), nil)
		doctorRepo.On("FindAvailableBySpeciality", mock.Anything, "Orthopedic").Return([]models.Doctor{
			{ID: "doc1", Name: "Booked Doctor", Speciality: "Orthopedic", SlotsBooked: map[string][]string{
				dayKey: {timeLabel},
			}},
		}, nil)
		doctorRepo.On("FindAvailableBySpeciality", mock.Anything, "Physiotherapist").Return([]models.Doctor{
			{ID: "doc2", Name: "First Free", Speciality: "Physiotherapist"},
			{ID: "doc3", Name: "Second Free", Speciality: "Physiotherapist"},
		}, nil)

		response, err := uc.BookWithAI(context.Background(), &requests.AIBooking{
			Message: "my back pain needs attention tomorrow at 4pm",
			UserID:  "user1",
		})

		assert.NoError(t, err)
		assert.Len(t, response.Suggestions, 2)
		doctorRepo.AssertCalled(t, "FindAvailableBySpeciality", mock.Anything, "Orthopedic")
	})

	t.Run("Suggestions Carry Experience Image And Slot Label", func(t *testing.T) {
		uc, llmClient, doctorRepo, _ := newIntentTestFixture()
		date, _, timeLabel := tomorrowSlot()

		llmClient.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
			Return(intentJSON("chest pain", `"Cardiologist"`, "", date), nil)
		doctorRepo.On("FindAvailableBySpeciality", mock.Anything, "Cardiologist").Return([]models.Doctor{
			{ID: "doc1", Name: "Dr. Smith", Speciality: "Cardiologist", Experience: "4 Years", Fees: 60, Image: "https://cdn.example.com/doc1.png"},
			{ID: "doc2", Name: "Dr. Jones", Speciality: "Cardiologist", Experience: "2 Years", Fees: 40, Image: "https://cdn.example.com/doc2.png"},
		}, nil)

		response, err := uc.BookWithAI(context.Background(), &requests.AIBooking{
			Message: "any cardiologist tomorrow at 4pm",
			UserID:  "user1",
		})

		assert.NoError(t, err)
		assert.Len(t, response.Suggestions, 2)
		first := response.Suggestions[0]
		assert.Equal(t, "4 Years", first.Experience)
		assert.Equal(t, "https://cdn.example.com/doc1.png", first.Image)
		assert.Equal(t, date, first.Date)
		assert.Equal(t, timeLabel, first.Time)
	})

	t.Run("Symptom Fallback When Specialties Are All Conflicted", func(t *testing.T) {
		uc, llmClient, doctorRepo, _ := newIntentTestFixture()
		date, dayKey, timeLabel := tomorrowSlot()

		llmClient.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
			Return(intentJSON("skin", `"Cosmetologist"`, "", date), nil)
		doctorRepo.On("FindAvailableBySpeciality", mock.Anything, "Cosmetologist").Return([]models.Doctor{
			{ID: "doc1", Name: "Booked Doctor", Speciality: "Cosmetologist", SlotsBooked: map[string][]string{
				dayKey: {timeLabel},
			}},
		}, nil)
		doctorRepo.On("FindAvailableBySpeciality", mock.Anything, "Dermatologist").Return([]models.Doctor{
			{ID: "doc2", Name: "Skin Doctor", Speciality: "Dermatologist"},
			{ID: "doc3", Name: "Other Skin Doctor", Speciality: "Dermatologist"},
		}, nil)

		response, err := uc.BookWithAI(context.Background(), &requests.AIBooking{
			Message: "my skin is flaring up, tomorrow at 4pm please",
			UserID:  "user1",
		})

		assert.NoError(t, err)
		assert.Len(t, response.Suggestions, 2)
		doctorRepo.AssertCalled(t, "FindAvailableBySpeciality", mock.Anything, "Dermatologist")
	})

	t.Run("Nothing Resolves", func(t *testing.T) {
		uc, llmClient, _, _ := newIntentTestFixture()
		date, _, _ := tomorrowSlot()

		llmClient.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
			Return(intentJSON("blurry vision", "", "", date), nil)

		_, err := uc.BookWithAI(context.Background(), &requests.AIBooking{
			Message: "I want an appointment tomorrow at 4pm",
			UserID:  "user1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestConfirmAppointment(t *testing.T) {
	t.Run("Books The Picked Suggestion", func(t *testing.T) {
		uc, _, _, bookingUsecase := newIntentTestFixture()
		date, _, timeLabel := tomorrowSlot()

		var gotBooking *requests.BookAppointment
		bookingUsecase.On("BookAppointment", mock.Anything, mock.AnythingOfType("*requests.BookAppointment")).
			Run(func(args mock.Arguments) { gotBooking = args.Get(1).(*requests.BookAppointment) }).
			Return(&models.Appointment{
				ID:       "appt1",
				SlotTime: timeLabel,
				DocData:  models.DoctorSnapshot{Name: "Richard Smith"},
			}, nil)

		response, err := uc.ConfirmAppointment(context.Background(), &requests.ConfirmAppointment{
			DocID:    "doc1",
			SlotDate: date,
			SlotTime: "16:00",
			UserID:   "user1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "doc1", gotBooking.DocID)
		assert.Equal(t, "user1", gotBooking.UserID)
		assert.Contains(t, response.Message, "Richard Smith")
		assert.Contains(t, response.Message, timeLabel)
	})

	t.Run("Missing Fields Fail Validation", func(t *testing.T) {
		uc, _, _, _ := newIntentTestFixture()

		_, err := uc.ConfirmAppointment(context.Background(), &requests.ConfirmAppointment{
			DocID: "doc1",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}
