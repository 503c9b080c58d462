package constvars

// Validation messages mapper, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"datetime": "must match the format %s",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "Not Authorized Login Again"
	ErrClientAdminAccessRequired           = "Admin access required"
	ErrClientDoctorAccessRequired          = "Doctor access required"
	ErrClientInvalidCredentials            = "Invalid credentials"
	ErrClientDoctorNotFound                = "Doctor not found or unavailable"
	ErrClientPatientNotFound               = "User not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientSlotAlreadyBooked             = "Time slot already booked"
	ErrClientSlotNotBookable               = "Selected slot is not available"
	ErrClientMissingDetails                = "Missing Details"
	ErrClientInvalidEmail                  = "Please enter a valid email"
	ErrClientWeakPassword                  = "Please enter a strong password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientAIEmptyResponse               = "Empty response from AI"
	ErrClientAIInvalidJSON                 = "Invalid JSON format from AI"
	ErrClientAIDateOrTimeMissing           = "Date or time missing"
	ErrClientAITimedOut                    = "The booking assistant took too long to respond"
	ErrClientNoAvailableDoctor             = "No available doctor found for the given condition and time"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevCannotParseTime          = "cannot parse time value"
	ErrDevValidationFailed         = "validation failed"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevFailedToHashPassword     = "failed to hash password"

	// Authentication messages
	ErrDevAuthSigningMethod = "unexpected signing method"
	ErrDevAuthTokenInvalid  = "invalid token"
	ErrDevAuthTokenMissing  = "token missing"
	ErrDevAuthGenerateToken = "failed to generate token"
	ErrDevAuthWrongRole     = "token does not carry the required role"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document from database"
	ErrDevDBFailedToIterateDocs    = "failed to iterate documents from database"
	ErrDevDBFailedToRunTransaction = "failed to run database transaction"
	ErrDevDBStringNotObjectID      = "given ID is not valid object ID"
	ErrDevDBDuplicateSlot          = "unique slot index rejected the booking"

	// Domain messages
	ErrDevDoctorNotExists      = "doctor does not exist"
	ErrDevDoctorNotAvailable   = "doctor is not accepting bookings"
	ErrDevPatientNotExists     = "patient does not exist"
	ErrDevAppointmentNotExists = "appointment does not exist"
	ErrDevSlotTaken            = "slot already present in booked-slots set"
	ErrDevSlotNotBookable      = "slot is outside the bookable window"
	ErrDevSlotLockContended    = "another booking holds the slot lock"

	// LLM messages
	ErrDevLLMEmptyResponse  = "LLM returned no generated text"
	ErrDevLLMMalformedJSON  = "no parseable JSON object in LLM response"
	ErrDevLLMMissingFields  = "LLM intent is missing date or time"
	ErrDevLLMRequestTimeout = "LLM inference call exceeded deadline"
	ErrDevLLMRequestFailed  = "LLM inference call failed"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetNX      = "failed to run SETNX on redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// SMTP messages
	ErrDevSMTPSendEmail = "failed to send email through SMTP host %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "server failed to process the request"
)

const (
	ResponseUnknown = "unknown"
)
