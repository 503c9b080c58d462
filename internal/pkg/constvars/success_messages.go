package constvars

const (
	// Auth messages
	LoginSuccess = "successfully login"

	// Admin messages
	DoctorAddedSuccess          = "Doctor Added"
	DoctorListSuccess           = "doctors fetched successfully"
	AvailabilityChangedSuccess  = "Availability Changed"
	AppointmentsFetchedSuccess  = "appointments fetched successfully"
	AppointmentCancelledSuccess = "Appointment Cancelled"
	DashboardFetchedSuccess     = "dashboard data fetched successfully"

	// User messages
	UserRegisteredSuccess     = "user registered successfully"
	ProfileGetSuccess         = "get profile successfully"
	AppointmentBookedSuccess  = "Appointment Booked"
	AvailableSlotsGetSuccess  = "available slots fetched successfully"

	// AI booking messages
	AIBookedMessageFormat       = "Appointment booked with %s (%s) on %s at %s"
	AIConfirmedMessageFormat    = "Appointment confirmed with %s on %s at %s"
	AISuggestionsMessageFormat  = "We found %d available doctors. Please select one to confirm booking."
)
