package controllers

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdminController struct {
	Log            *zap.Logger
	AdminUsecase   contracts.AdminUsecase
	DoctorUsecase  contracts.DoctorUsecase
	BookingUsecase contracts.BookingUsecase
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase, doctorUsecase contracts.DoctorUsecase, bookingUsecase contracts.BookingUsecase) *AdminController {
	return &AdminController{
		Log:            logger,
		AdminUsecase:   adminUsecase,
		DoctorUsecase:  doctorUsecase,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AdminLogin)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AdminUsecase.LoginAdmin(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AdminController) AddDoctor(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.parseAddDoctorForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	doctor, err := ctrl.AdminUsecase.AddDoctor(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorAddedSuccess, doctor)
}

// parseAddDoctorForm flattens the multipart submission; the address travels
// as a JSON-encoded string field next to the scalar ones.
func (ctrl *AdminController) parseAddDoctorForm(r *http.Request) (*requests.AddDoctor, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	fees, err := strconv.Atoi(r.FormValue("fees"))
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	request := &requests.AddDoctor{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		Speciality: r.FormValue("speciality"),
		Degree:     r.FormValue("degree"),
		Experience: r.FormValue("experience"),
		About:      r.FormValue("about"),
		Fees:       fees,
	}

	if rawAddress := r.FormValue("address"); rawAddress != "" {
		var address struct {
			Line1 string `json:"line1"`
			Line2 string `json:"line2"`
		}
		if err := json.Unmarshal([]byte(rawAddress), &address); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		request.AddressLine1 = address.Line1
		request.AddressLine2 = address.Line2
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		return nil, exceptions.ErrMissingFields(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	request.ImageContent = content
	request.ImageContentType = fileHeader.Header.Get(constvars.HeaderContentType)
	request.ImageFilename = fileHeader.Filename

	return request, nil
}

func (ctrl *AdminController) AllDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.AdminUsecase.GetAllDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, doctors)
}

func (ctrl *AdminController) ChangeAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChangeAvailability)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AdminUsecase.ChangeAvailability(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityChangedSuccess, nil)
}

// Appointments is role-filtered: an admin token sees every appointment, a
// doctor token only its own.
func (ctrl *AdminController) Appointments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var appointments interface{}
	var err error
	if doctorID, _ := r.Context().Value(constvars.CONTEXT_DOCTOR_ID_KEY).(string); doctorID != "" {
		appointments, err = ctrl.DoctorUsecase.GetDoctorAppointments(ctx, doctorID)
	} else {
		appointments, err = ctrl.AdminUsecase.GetAllAppointments(ctx)
	}
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentsFetchedSuccess, appointments)
}

func (ctrl *AdminController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CancelAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.BookingUsecase.CancelAppointment(ctx, request.AppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, appointment)
}

func (ctrl *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var dashboard interface{}
	var err error
	if doctorID, _ := r.Context().Value(constvars.CONTEXT_DOCTOR_ID_KEY).(string); doctorID != "" {
		dashboard, err = ctrl.DoctorUsecase.GetDoctorDashboard(ctx, doctorID)
	} else {
		dashboard, err = ctrl.AdminUsecase.GetDashboard(ctx)
	}
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardFetchedSuccess, dashboard)
}
