package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/delivery/http/controllers"
	"docpoint-service/internal/app/delivery/http/middlewares"
	"docpoint-service/internal/app/delivery/http/routers"
	"docpoint-service/internal/app/drivers/database"
	"docpoint-service/internal/app/drivers/logger"
	"docpoint-service/internal/app/drivers/mailer"
	minioDriver "docpoint-service/internal/app/drivers/storage"
	"docpoint-service/internal/app/services/core/admin"
	"docpoint-service/internal/app/services/core/appointments"
	"docpoint-service/internal/app/services/core/doctors"
	"docpoint-service/internal/app/services/core/intent"
	"docpoint-service/internal/app/services/core/reminders"
	"docpoint-service/internal/app/services/core/users"
	"docpoint-service/internal/app/services/shared/llm"
	"docpoint-service/internal/app/services/shared/locker"
	mailerService "docpoint-service/internal/app/services/shared/mailer"
	"docpoint-service/internal/app/services/shared/notifier"
	redisRepo "docpoint-service/internal/app/services/shared/redis"
	"docpoint-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(&bootstrap, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, log *logrus.Logger) {
	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shared infrastructure
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	mailer := mailerService.NewMailerService(smtpClient)

	minioClient := minioDriver.NewMinio(bootstrap.DriverConfig)
	if err := storage.EnsureBucket(startupCtx, minioClient, bootstrap.InternalConfig.Minio.BucketName); err != nil {
		log.Fatalf("Error ensuring minio bucket: %v", err)
	}
	minioStorage := storage.NewMinioStorage(minioClient)

	llmClient, err := llm.NewClient(startupCtx, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Error creating LLM client: %v", err)
	}

	registry := notifier.NewRegistry(bootstrap.InternalConfig, bootstrap.Logger)

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, dbName)
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	if err := appointmentMongoRepository.EnsureIndexes(startupCtx); err != nil {
		log.Fatalf("Error ensuring appointment indexes: %v", err)
	}

	// Usecases
	bookingUsecase := appointments.NewBookingUsecase(
		appointmentMongoRepository,
		doctorMongoRepository,
		userMongoRepository,
		lockerService,
		registry,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		appointmentMongoRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	userUsecase := users.NewUserUsecase(
		userMongoRepository,
		appointmentMongoRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	adminUsecase := admin.NewAdminUsecase(
		doctorMongoRepository,
		appointmentMongoRepository,
		userMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	intentUsecase := intent.NewIntentUsecase(
		llmClient,
		doctorMongoRepository,
		bookingUsecase,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Controllers
	adminController := controllers.NewAdminController(bootstrap.Logger, adminUsecase, doctorUsecase, bookingUsecase)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, registry)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, bookingUsecase)
	aiController := controllers.NewAIController(bootstrap.Logger, intentUsecase)

	// Middlewares and routes
	middlewares := middlewares.NewMiddlewares(bootstrap.InternalConfig, bootstrap.Logger)
	bootstrap.Router.Use(middlewares.RequestLogger(bootstrap.InternalConfig.App, log))
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		adminController,
		doctorController,
		userController,
		aiController,
	)

	// Reminder sweep worker
	reminderWorker := reminders.NewWorker(
		appointmentMongoRepository,
		mailer,
		lockerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reminderWorker.Start()
	bootstrap.ReminderStop = reminderWorker.Stop
}
