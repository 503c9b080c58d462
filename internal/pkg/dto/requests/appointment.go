package requests

// BookAppointment takes the slot exactly as the availability calculator hands
// it out: day key date (25_7_2025) and 12-hour label (04:00 PM). UserID comes
// from the session token, never the body.
type BookAppointment struct {
	DocID    string `json:"docId" validate:"required"`
	SlotDate string `json:"slotDate" validate:"required"`
	SlotTime string `json:"slotTime" validate:"required"`
	UserID   string `json:"-"`
}

type CancelAppointment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

// AIBooking is the natural-language entry point.
type AIBooking struct {
	Message string `json:"message" validate:"required"`
	UserID  string `json:"-"`
}

// ConfirmAppointment closes the loop on an AI suggestion list. Date and time
// arrive in the normalized form the suggestions were rendered with (ISO date,
// 24-hour time).
type ConfirmAppointment struct {
	DocID    string `json:"docId" validate:"required"`
	SlotDate string `json:"date" validate:"required"`
	SlotTime string `json:"time" validate:"required"`
	UserID   string `json:"-"`
}
