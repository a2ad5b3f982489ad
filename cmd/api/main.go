package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"github.com/NandhanR354/lifeline/internal/adapter/api"
	"github.com/NandhanR354/lifeline/internal/adapter/api/handler"
	apimiddleware "github.com/NandhanR354/lifeline/internal/adapter/api/middleware"
	"github.com/NandhanR354/lifeline/internal/adapter/api/router"
	"github.com/NandhanR354/lifeline/internal/adapter/repository"
	"github.com/NandhanR354/lifeline/internal/infrastructure/firebase"
	"github.com/NandhanR354/lifeline/internal/infrastructure/seed"
	"github.com/NandhanR354/lifeline/internal/usecase"
	"github.com/NandhanR354/lifeline/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account comes from the environment in production and from a
	// key file in local development.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	patientRepo := repository.NewFirestorePatientRepository(firestoreClient)
	staffRepo := repository.NewFirestoreStaffRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	moodRepo := repository.NewFirestoreMoodRepository(firestoreClient)
	helpRequestRepo := repository.NewFirestoreHelpRequestRepository(firestoreClient)
	taskRepo := repository.NewFirestoreTreatmentTaskRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	if cfg.SeedDemoData {
		seeder := seed.NewSeeder(firebaseAuthClient, patientRepo, staffRepo, conversationRepo, messageRepo, moodRepo, taskRepo)
		if err := seeder.Run(ctx); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	roster := usecase.NewRoster(patientRepo, staffRepo)

	authUseCase := usecase.NewAuthUseCase(patientRepo, firebaseAuthClient)
	messagingUseCase := usecase.NewMessagingUseCase(conversationRepo, messageRepo, roster, cfg.MaxMessageLength)
	moodUseCase := usecase.NewMoodUseCase(moodRepo)
	helpRequestUseCase := usecase.NewHelpRequestUseCase(helpRequestRepo)
	treatmentUseCase := usecase.NewTreatmentUseCase(taskRepo)

	handler.Setup(authUseCase, messagingUseCase, moodUseCase, helpRequestUseCase, treatmentUseCase)
	handler.SetupHealthHandler(firestoreClient, firebaseAuthClient)
	handler.SetupDevTokenHandler(firebaseAuthClient, patientRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apimiddleware.GeneralRateLimit())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
