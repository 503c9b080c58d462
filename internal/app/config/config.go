package config

import (
	"docpoint-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "docpoint"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Admin: AppAdmin{
			Email:    utils.GetEnvString("ADMIN_EMAIL", "admin@docpoint.local"),
			Password: utils.GetEnvString("ADMIN_PASSWORD", "admin1234"),
		},
		LLM: AppLLM{
			Provider:         utils.GetEnvString("LLM_PROVIDER", "deepinfra"),
			BaseUrl:          utils.GetEnvString("LLM_BASE_URL", "https://api.deepinfra.com/v1/openai/chat/completions"),
			ApiKey:           utils.GetEnvString("LLM_API_KEY", ""),
			Model:            utils.GetEnvString("LLM_MODEL", "meta-llama/Meta-Llama-3-8B-Instruct"),
			GeminiApiKey:     utils.GetEnvString("GEMINI_API_KEY", ""),
			GeminiModel:      utils.GetEnvString("GEMINI_MODEL", "gemini-1.5-flash"),
			TimeoutInSeconds: utils.GetEnvInt("LLM_TIMEOUT_IN_SECONDS", 15),
		},
		Minio: AppMinio{
			BucketName:                               utils.GetEnvString("MINIO_BUCKET_NAME", "doctor-images"),
			DoctorImageMaxUploadSizeInMB:             utils.GetEnvInt("MINIO_DOCTOR_IMAGE_UPLOAD_MAX_SIZE_IN_MB", 2),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
		},
		Booking: AppBooking{
			SlotLockTTLInSeconds: utils.GetEnvInt("BOOKING_SLOT_LOCK_TTL_IN_SECONDS", 10),
		},
		Reminder: AppReminder{
			SweepIntervalInMinutes: utils.GetEnvInt("REMINDER_SWEEP_INTERVAL_IN_MINUTES", 15),
			LookBehindInMinutes:    utils.GetEnvInt("REMINDER_LOOK_BEHIND_IN_MINUTES", 15),
			LookAheadInMinutes:     utils.GetEnvInt("REMINDER_LOOK_AHEAD_IN_MINUTES", 60),
			SendRatePerSecond:      utils.GetEnvInt("REMINDER_SEND_RATE_PER_SECOND", 5),
		},
	}
}
