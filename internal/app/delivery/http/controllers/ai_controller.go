package controllers

import (
	"context"
	"net/http"
	"time"

	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AIController struct {
	Log           *zap.Logger
	IntentUsecase contracts.IntentUsecase
}

func NewAIController(logger *zap.Logger, intentUsecase contracts.IntentUsecase) *AIController {
	return &AIController{
		Log:           logger,
		IntentUsecase: intentUsecase,
	}
}

func (ctrl *AIController) AIBooking(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AIBooking)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID, _ = r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)

	// Inference plus booking can legitimately take a while.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.IntentUsecase.BookWithAI(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response.Message, response)
}

func (ctrl *AIController) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ConfirmAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID, _ = r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.IntentUsecase.ConfirmAppointment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, response.Message, response)
}
