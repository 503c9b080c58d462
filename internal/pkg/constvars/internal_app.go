package constvars

type ContextKey string

const (
	CONTEXT_ROLE_KEY      ContextKey = "role"
	CONTEXT_DOCTOR_ID_KEY ContextKey = "doctorID"
	CONTEXT_USER_ID_KEY   ContextKey = "userID"
)

const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
	MongoCollectionUsers        = "users"
)

// Canonical slot encoding. Every booking path normalizes to these before
// touching the booked-slots map, so membership checks compare like with like.
const (
	SlotDayKeyFormat    = "%d_%d_%d"
	SlotTimeLabelFormat = "03:04 PM"
	SlotTimeInputFormat = "15:04"
	SlotDateInputFormat = "2006-01-02"
)

const (
	SlotServiceStartHour  = 10
	SlotServiceEndHour    = 21
	SlotStepMinutes       = 30
	SlotWindowDays        = 7
)

const (
	BookingLockKeyFormat   = "booking:%s:%s:%s"
	ReminderSweepLockKey   = "reminder:sweep"
	AdminTokenCredentialKey = "credential"
	TokenIDClaimKey         = "id"
)

const (
	NotificationNewAppointmentEvent = "newAppointment"
)
