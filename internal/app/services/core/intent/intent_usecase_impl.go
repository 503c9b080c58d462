package intent

import (
	"context"
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

	"go.uber.org/zap"
)

var (
	intentUsecaseInstance contracts.IntentUsecase
	onceIntentUsecase     sync.Once
)

type intentUsecase struct {
	LLMClient        contracts.LLMClient
	DoctorRepository contracts.DoctorRepository
	BookingUsecase   contracts.BookingUsecase
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewIntentUsecase(
	llmClient contracts.LLMClient,
	doctorMongoRepository contracts.DoctorRepository,
	bookingUsecase contracts.BookingUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.IntentUsecase {
	onceIntentUsecase.Do(func() {
		intentUsecaseInstance = &intentUsecase{
			LLMClient:        llmClient,
			DoctorRepository: doctorMongoRepository,
			BookingUsecase:   bookingUsecase,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return intentUsecaseInstance
}

// BookWithAI runs the natural-language pipeline: extract a structured intent
// from the message, then resolve candidate doctors in three rounds, stopping
// at the first that yields anyone conflict-free: exact name match, each
// recommended specialty in order, then the symptom keyword table. A single
// candidate is booked on the spot; several come back as suggestions for
// confirm-appointment.
func (uc *intentUsecase) BookWithAI(ctx context.Context, request *requests.AIBooking) (*responses.AIBooking, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	deadline := time.Duration(uc.InternalConfig.LLM.TimeoutInSeconds) * time.Second
	llmCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	raw, err := uc.LLMClient.GenerateText(llmCtx, buildPrompt(request.Message, time.Now()))
	if err != nil {
		return nil, err
	}

	bookingIntent, err := parseIntent(raw)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("intentUsecase.BookWithAI extracted intent",
		zap.String("symptom", bookingIntent.Symptom),
		zap.Strings("recommendedSpecialties", bookingIntent.RecommendedSpecialties),
		zap.String("doctorName", bookingIntent.DoctorName),
		zap.String(constvars.LoggingSlotDateKey, bookingIntent.Date),
		zap.String(constvars.LoggingSlotTimeKey, bookingIntent.Time),
	)

	dayKey, timeLabel, _, err := utils.CanonicalSlot(bookingIntent.Date, bookingIntent.Time)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.resolveCandidates(ctx, bookingIntent, dayKey, timeLabel)
	if err != nil {
		return nil, err
	}

	switch len(candidates) {
	case 0:
		return nil, exceptions.ErrNoAvailableDoctor(nil)
	case 1:
		return uc.bookCandidate(ctx, request.UserID, &candidates[0], bookingIntent)
	}

	suggestions := make([]responses.DoctorSuggestion, 0, len(candidates))
	for _, doctor := range candidates {
		suggestions = append(suggestions, responses.DoctorSuggestion{
			DocID:      doctor.ID,
			Name:       doctor.Name,
			Speciality: doctor.Speciality,
			Experience: doctor.Experience,
			Fees:       doctor.Fees,
			Image:      doctor.Image,
			Date:       bookingIntent.Date,
			Time:       timeLabel,
		})
	}
	return &responses.AIBooking{
		Message:     fmt.Sprintf(constvars.AISuggestionsMessageFormat, len(suggestions)),
		Suggestions: suggestions,
	}, nil
}

// resolveCandidates walks the strategies in order and returns the first
// non-empty set of conflict-free available doctors. A named doctor that is
// missing or already booked does not fail the request; the later rounds
// still get their chance.
func (uc *intentUsecase) resolveCandidates(ctx context.Context, bookingIntent *BookingIntent, dayKey, timeLabel string) ([]models.Doctor, error) {
	if bookingIntent.DoctorName != "" {
		doctor, err := uc.findDoctorByName(ctx, bookingIntent.DoctorName)
		if err != nil {
			return nil, err
		}
		if doctor != nil && slots.IsFree(doctor.SlotsBooked, dayKey, timeLabel) {
			return []models.Doctor{*doctor}, nil
		}
	}

	for _, speciality := range bookingIntent.RecommendedSpecialties {
		candidates, err := uc.freeDoctorsBySpeciality(ctx, speciality, dayKey, timeLabel)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}

	if fallback := specialtyForSymptom(bookingIntent.Symptom); fallback != "" {
		return uc.freeDoctorsBySpeciality(ctx, fallback, dayKey, timeLabel)
	}
	return nil, nil
}

func (uc *intentUsecase) freeDoctorsBySpeciality(ctx context.Context, speciality, dayKey, timeLabel string) ([]models.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindAvailableBySpeciality(ctx, speciality)
	if err != nil {
		return nil, err
	}

	free := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if slots.IsFree(doctor.SlotsBooked, dayKey, timeLabel) {
			free = append(free, doctor)
		}
	}
	return free, nil
}

func (uc *intentUsecase) bookCandidate(ctx context.Context, userID string, doctor *models.Doctor, bookingIntent *BookingIntent) (*responses.AIBooking, error) {
	appointment, err := uc.BookingUsecase.BookAppointment(ctx, &requests.BookAppointment{
		DocID:    doctor.ID,
		SlotDate: bookingIntent.Date,
		SlotTime: bookingIntent.Time,
		UserID:   userID,
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf(constvars.AIBookedMessageFormat,
		doctor.Name, doctor.Speciality, bookingIntent.Date, bookingIntent.Time)
	return &responses.AIBooking{
		Message:     message,
		Appointment: appointment,
	}, nil
}

// ConfirmAppointment closes the loop on a suggestion the patient picked. The
// message echoes the stored 12-hour slot label rather than the raw input.
func (uc *intentUsecase) ConfirmAppointment(ctx context.Context, request *requests.ConfirmAppointment) (*responses.AIBooking, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.BookingUsecase.BookAppointment(ctx, &requests.BookAppointment{
		DocID:    request.DocID,
		SlotDate: request.SlotDate,
		SlotTime: request.SlotTime,
		UserID:   request.UserID,
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf(constvars.AIConfirmedMessageFormat,
		appointment.DocData.Name, request.SlotDate, appointment.SlotTime)
	return &responses.AIBooking{
		Message:     message,
		Appointment: appointment,
	}, nil
}

// findDoctorByName wants an exact full-name match, case-insensitive, with
// the honorific stripped from the requested name.
func (uc *intentUsecase) findDoctorByName(ctx context.Context, requestedName string) (*models.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}

	wanted := normalizeDoctorName(requestedName)
	for i := range doctors {
		if normalizeDoctorName(doctors[i].Name) == wanted {
			return &doctors[i], nil
		}
	}
	return nil, nil
}
