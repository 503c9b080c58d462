package responses

import "docpoint-service/internal/app/models"

type Dashboard struct {
	Doctors            int                  `json:"doctors"`
	Appointments       int                  `json:"appointments"`
	Patients           int                  `json:"patients"`
	LatestAppointments []models.Appointment `json:"latestAppointments"`
}

// DoctorDashboard is the role-filtered dashboard a doctor sees: only its own
// appointments, with earnings summed over completed or paid ones.
type DoctorDashboard struct {
	Earnings           int                  `json:"earnings"`
	Appointments       int                  `json:"appointments"`
	Patients           int                  `json:"patients"`
	LatestAppointments []models.Appointment `json:"latestAppointments"`
}

// AvailableSlots groups the free slots for one doctor by day. Days keeps the
// key order the calculator produced, since JSON maps lose it.
type AvailableSlots struct {
	DocID string            `json:"docId"`
	Days  []AvailableDay    `json:"days"`
	Slots map[string][]Slot `json:"slots"`
}

type AvailableDay struct {
	DayKey string `json:"dayKey"`
	Date   string `json:"date"`
}

type Slot struct {
	DateTime  string `json:"datetime"`
	TimeLabel string `json:"time"`
}

// AIBooking is the ai-booking reply. Exactly one of Appointment or
// Suggestions is set; Message always narrates the outcome.
type AIBooking struct {
	Message     string              `json:"message"`
	Appointment *models.Appointment `json:"appointment,omitempty"`
	Suggestions []DoctorSuggestion  `json:"suggestions,omitempty"`
}

// DoctorSuggestion carries everything the picker UI renders; Time is the
// 12-hour slot label, Date stays ISO.
type DoctorSuggestion struct {
	DocID      string `json:"docId"`
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
	Experience string `json:"experience"`
	Fees       int    `json:"fees"`
	Image      string `json:"image"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}
