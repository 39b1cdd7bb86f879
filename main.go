package main

import (
	"context"
	"log"
	"os"
	"time"

	"aibuddy/cmd"
	"aibuddy/internal/apiusage"
	"aibuddy/internal/chat"
	"aibuddy/internal/coaching"
	"aibuddy/internal/database"
	"aibuddy/internal/driving"
	"aibuddy/internal/fasting"
	"aibuddy/internal/integrations/places"
	"aibuddy/internal/integrations/ring"
	"aibuddy/internal/integrations/sheets"
	"aibuddy/internal/journal"
	"aibuddy/internal/meditation"
	"aibuddy/internal/middleware"
	"aibuddy/internal/repository"
	"aibuddy/internal/stress"
	"aibuddy/internal/telemetry"
	"aibuddy/internal/tracker"
	"aibuddy/internal/users"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	// Execute migration CMD
	cmd.Execute(ctx)
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer db.Close()

	log.Println("Connected to the database successfully!")

	repo := repository.NewRepository(db)

	usageRepo := apiusage.NewRepository(repo)
	usageTracker := apiusage.NewTracker(usageRepo)

	userRepo := users.NewRepository(repo)
	trackerRepo := tracker.NewRepository(repo)
	journalRepo := journal.NewRepository(repo)
	stressRepo := stress.NewStressRepository(repo)
	coachingRepo := coaching.NewRepository(repo)
	chatRepo := chat.NewChatRepository(repo)
	biomarkerRepo := telemetry.NewBiomarkerRepository(repo)
	fastingRepo := fasting.NewFastingRepository(repo)
	sessionRepo := meditation.NewSessionRepository(repo)
	challengeRepo := meditation.NewChallengeRepository(repo)

	fastingService := fasting.NewFastingService(fastingRepo)
	meditationService := meditation.NewSessionService(repo, sessionRepo)

	chatService, err := chat.NewChatService(os.Getenv("GEMINI_API_KEY"), chatRepo, usageTracker)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if !chatService.Configured() {
		log.Println("Warning: GEMINI_API_KEY not set, chat companion runs in degraded mode.")
	}

	placesClient := places.NewClient(os.Getenv("GOOGLE_MAPS_API_KEY"), usageTracker)
	if !placesClient.Configured() {
		log.Println("Warning: GOOGLE_MAPS_API_KEY not set, proximity alerts disabled.")
	}

	ouraClient := ring.NewOuraClient(os.Getenv("OURA_API_KEY"), usageTracker)
	ultrahumanClient := ring.NewUltrahumanClient(os.Getenv("ULTRAHUMAN_API_KEY"), usageTracker)

	var dispatcher *driving.AlertDispatcher
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		conn, err := amqp.Dial(amqpURL)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		defer conn.Close()

		dispatcher, err = driving.NewAlertDispatcher(conn)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
	} else {
		log.Println("Warning: AMQP_URL not set, driving alert events are not published.")
	}

	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		mqttClient, err := telemetry.NewMQTTClient(broker, "aibuddy-backend")
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		subscriber := telemetry.NewRingSubscriber(mqttClient, biomarkerRepo)
		if err := subscriber.Start(); err != nil {
			log.Fatalf("Error: %v", err)
		}
		log.Println("Ring telemetry subscriber started.")
	} else {
		log.Println("Warning: MQTT_BROKER not set, ring telemetry ingest disabled.")
	}

	registry := driving.NewRegistry(driving.DefaultConfig())

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.TimeoutMiddleware(30 * time.Second))

	usersHandler := users.NewHandler(userRepo)
	usersHandler.RegisterPublicRoutes(router)
	security.NewLoginHandler(repo).RegisterRoutes(router)

	protected := router.Group("/", security.JWTMiddleware())
	usersHandler.RegisterRoutes(protected)
	tracker.NewHandler(trackerRepo).RegisterRoutes(protected)
	journal.NewHandler(journalRepo).RegisterRoutes(protected)
	meditation.NewHandler(meditationService, sessionRepo, challengeRepo).RegisterRoutes(protected)
	fasting.NewHandler(fastingService, fastingRepo).RegisterRoutes(protected)
	stress.NewHandler(stressRepo).RegisterRoutes(protected)
	coaching.NewHandler(coachingRepo).RegisterRoutes(protected)
	chat.NewHandler(chatService, chatRepo).RegisterRoutes(protected)
	telemetry.NewHandler(biomarkerRepo).RegisterRoutes(protected)
	places.NewHandler(placesClient).RegisterRoutes(protected)
	ring.NewHandler(ouraClient, ultrahumanClient, userRepo, os.Getenv("RING_AUTHORIZED_EMAIL")).RegisterRoutes(protected)
	driving.NewHandler(registry, placesClient, dispatcher).RegisterRoutes(protected)
	apiusage.NewHandler(usageRepo).RegisterRoutes(protected)

	if exportService, err := sheets.NewExportService(trackerRepo); err == nil {
		sheets.NewHandler(exportService).RegisterRoutes(protected)
	} else {
		log.Printf("Warning: Google Sheets export disabled: %v", err)
	}

	router.GET("/health", middleware.HealthCheckMiddleware())

	middleware.SetVersion(version)
	middleware.UpdateHealthStatus("ok")

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		panic(err)
	}
}
