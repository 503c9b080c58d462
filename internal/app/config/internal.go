package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Admin    AppAdmin
	LLM      AppLLM
	Minio    AppMinio
	Booking  AppBooking
	Reminder AppReminder
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeout            int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
}

type AppJWT struct {
	Secret string
}

// AppAdmin is the single panel credential pair. There is no admin document in
// the database; the login token signs the concatenated credential string.
type AppAdmin struct {
	Email    string
	Password string
}

type AppLLM struct {
	// Provider selects the inference backend: "deepinfra" or "gemini".
	Provider         string
	BaseUrl          string
	ApiKey           string
	Model            string
	GeminiApiKey     string
	GeminiModel      string
	TimeoutInSeconds int
}

type AppMinio struct {
	BucketName                               string
	DoctorImageMaxUploadSizeInMB             int
	MinioPreSignedUrlObjectExpiryTimeInHours int
}

type AppBooking struct {
	SlotLockTTLInSeconds int
}

type AppReminder struct {
	SweepIntervalInMinutes int
	LookBehindInMinutes    int
	LookAheadInMinutes     int
	SendRatePerSecond      int
}
