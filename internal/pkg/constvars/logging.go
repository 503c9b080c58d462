package constvars

const (
	LoggingDoctorIDKey      = "doctor_id"
	LoggingUserIDKey        = "user_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingSlotDateKey      = "slot_date"
	LoggingSlotTimeKey      = "slot_time"
	LoggingRedisKey         = "redis_key"
	LoggingLockValueKey     = "lock_value"
	LoggingEmailKey         = "email"
	LoggingProviderKey      = "provider"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingEventKey          = "event"
)
