package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"openwindows-service/internal/app/config"
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/delivery/http/routers"
	"openwindows-service/internal/app/drivers/database"
	"openwindows-service/internal/app/drivers/logger"
	"openwindows-service/internal/app/drivers/messaging"
	"openwindows-service/internal/app/drivers/storage"
	"openwindows-service/internal/app/services/appointments"
	"openwindows-service/internal/app/services/articles"
	"openwindows-service/internal/app/services/auth"
	"openwindows-service/internal/app/services/careplans"
	"openwindows-service/internal/app/services/carestore"
	"openwindows-service/internal/app/services/careteams"
	"openwindows-service/internal/app/services/dashboards"
	"openwindows-service/internal/app/services/medications"
	"openwindows-service/internal/app/services/messages"
	"openwindows-service/internal/app/services/patients"
	"openwindows-service/internal/app/services/preferences"
	"openwindows-service/internal/app/services/shared/messagequeue"
	redisrepo "openwindows-service/internal/app/services/shared/redis"
	sharedstorage "openwindows-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(internalConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConn,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(redisClient)
	minioStorage := sharedstorage.NewMinioStorage(minioClient)
	queuePublisher, err := messagequeue.NewRabbitMQPublisher(rabbitMQConn, zapLogger)
	if err != nil {
		log.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}

	// Care store clients
	restClient := carestore.NewRestClient(
		internalConfig.CareStore.BaseUrl,
		internalConfig.CareStore.AnonKey,
		internalConfig.CareStore.RequestTimeoutInSeconds,
		zapLogger,
	)
	authClient := carestore.NewAuthClient(
		internalConfig.CareStore.BaseUrl,
		internalConfig.CareStore.AnonKey,
		internalConfig.CareStore.RequestTimeoutInSeconds,
		zapLogger,
	)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(zapLogger, redisRepository, internalConfig)

	// Auth
	patientStoreClient := patients.NewPatientStoreClient(restClient, zapLogger)
	authUsecase := auth.NewAuthUsecase(authClient, patientStoreClient, redisRepository, internalConfig, zapLogger)
	authController := auth.NewAuthController(zapLogger, authUsecase, internalConfig.JWT.Secret)

	// Medications
	medicationStoreClient := medications.NewMedicationStoreClient(restClient, zapLogger)
	medicationUsecase := medications.NewMedicationUsecase(medicationStoreClient, zapLogger)
	medicationController := medications.NewMedicationController(zapLogger, medicationUsecase)

	// Care plan
	carePlanStoreClient := careplans.NewCarePlanStoreClient(restClient, zapLogger)
	carePlanUsecase := careplans.NewCarePlanUsecase(carePlanStoreClient, zapLogger)
	carePlanController := careplans.NewCarePlanController(zapLogger, carePlanUsecase)

	// Care team
	careTeamStoreClient := careteams.NewCareTeamStoreClient(restClient, zapLogger)
	careTeamUsecase := careteams.NewCareTeamUsecase(careTeamStoreClient, minioStorage, internalConfig, zapLogger)
	careTeamController := careteams.NewCareTeamController(zapLogger, careTeamUsecase)

	// Appointments
	appointmentStoreClient := appointments.NewAppointmentStoreClient(restClient, zapLogger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentStoreClient, zapLogger)
	appointmentController := appointments.NewAppointmentController(zapLogger, appointmentUsecase)

	// Messages
	messageStoreClient := messages.NewMessageStoreClient(restClient, zapLogger)
	messageUsecase := messages.NewMessageUsecase(messageStoreClient, redisRepository, queuePublisher, internalConfig, zapLogger)
	messageController := messages.NewMessageController(zapLogger, messageUsecase)

	// Preferences
	preferenceRepository := preferences.NewPreferenceMongoRepository(mongoDB)
	preferenceUsecase := preferences.NewPreferenceUsecase(preferenceRepository, zapLogger)
	preferenceController := preferences.NewPreferenceController(zapLogger, preferenceUsecase)

	// Articles
	articleStoreClient := articles.NewArticleStoreClient(restClient, zapLogger)
	articleUsecase := articles.NewArticleUsecase(articleStoreClient, preferenceUsecase, zapLogger)
	articleController := articles.NewArticleController(zapLogger, articleUsecase)

	// Dashboard
	dashboardUsecase := dashboards.NewDashboardUsecase(appointmentUsecase, medicationUsecase, messageUsecase, carePlanUsecase, internalConfig, zapLogger)
	dashboardController := dashboards.NewDashboardController(zapLogger, dashboardUsecase)

	chiRouter.Use(appMiddlewares.RequestIDMiddleware)
	chiRouter.Use(appMiddlewares.Logging(zapLogger))
	chiRouter.Use(appMiddlewares.RequestLogger(internalConfig.App, logrusLogger))

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		appMiddlewares,
		authController,
		dashboardController,
		medicationController,
		carePlanController,
		careTeamController,
		appointmentController,
		messageController,
		articleController,
		preferenceController,
	)

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

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to close drivers cleanly: %v", err)
	}

	log.Println("Server exiting")
}
