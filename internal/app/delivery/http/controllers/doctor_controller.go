package controllers

import (
	"context"
	"net/http"
	"time"

	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/services/shared/notifier"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
	Registry      *notifier.Registry
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, registry *notifier.Registry) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
		Registry:      registry,
	}
}

func (ctrl *DoctorController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.DoctorLogin)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.LoginDoctor(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *DoctorController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.ListDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, doctors)
}

func (ctrl *DoctorController) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctorID := r.URL.Query().Get("docId")
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingFields(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	availableSlots, err := ctrl.DoctorUsecase.GetAvailableSlots(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailableSlotsGetSuccess, availableSlots)
}

// Notifications upgrades to a websocket and keeps the doctor registered for
// live booking events. Auth happens inside the registry because browsers
// cannot attach headers to an upgrade request.
func (ctrl *DoctorController) Notifications(w http.ResponseWriter, r *http.Request) {
	ctrl.Registry.HandleWebSocket(w, r)
}
