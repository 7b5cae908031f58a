package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"insurance-service/internal/auth"
	"insurance-service/internal/config"
	"insurance-service/internal/event"
	"insurance-service/internal/google"
	"insurance-service/internal/handlers"
	"insurance-service/internal/repository"
	"insurance-service/internal/services"
	"insurance-service/internal/store"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
)

func setupLogging() (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	logDir := filepath.Join("/agrisa", "log", "insurance_service")
	fmt.Println("Log directory:", logDir)
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	slog.SetDefault(slog.New(slog.NewTextHandler(file, nil)))

	return file, nil
}

func connectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()
	ctx := context.Background()

	recordStore, err := store.NewFirebaseStore(ctx, &store.FirebaseConfig{
		CredentialsPath: cfg.FirebaseCfg.CredentialsPath,
		ProjectID:       cfg.FirebaseCfg.ProjectID,
		DatabaseURL:     cfg.FirebaseCfg.DatabaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Firebase store: %v", err)
	}

	identityService, err := auth.NewIdentityService(ctx, recordStore.App(), cfg.FirebaseCfg.WebAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize identity service: %v", err)
	}

	// Redis is a cache, not a dependency. The policy repository runs without
	// it when the connection fails.
	redisClient, err := connectRedis(cfg.RedisCfg)
	if err != nil {
		slog.Warn("Redis unavailable, policy caching disabled", "error", err)
		redisClient = nil
	}

	farmerRepo := repository.NewFarmerRepository(recordStore)
	inspectorRepo := repository.NewInspectorRepository(recordStore)
	landRepo := repository.NewLandRepository(recordStore)
	policyRepo := repository.NewPolicyRepository(recordStore, redisClient)
	claimRepo := repository.NewClaimRepository(recordStore)
	applicationRepo := repository.NewApplicationRepository(recordStore)
	notificationRepo := repository.NewNotificationRepository(recordStore)
	alertRepo := repository.NewRiskAlertRepository(recordStore)
	supportRepo := repository.NewSupportRepository(recordStore)

	var publisher services.PushPublisher
	var consumer *event.PushConsumer
	if cfg.PushEnabled {
		rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitConn.Close()

		pushPublisher := event.NewPushPublisher(rabbitConn)
		publisher = pushPublisher

		fcmService, err := google.NewFCMService(ctx, recordStore.App())
		if err != nil {
			log.Fatalf("Failed to initialize FCM: %v", err)
		}
		emailService := google.NewEmailService(cfg.MailCfg.Username, cfg.MailCfg.Password)

		lookup := func(ctx context.Context, userID string) (string, error) {
			farmer, err := farmerRepo.GetByID(ctx, userID)
			if err != nil {
				return "", err
			}
			return farmer.Email, nil
		}
		consumer = event.NewPushConsumer(rabbitConn, fcmService, emailService, lookup, cfg.PushPrefetchCount)

		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				slog.Error("Push consumer stopped", "error", err)
			}
		}()
	}

	notificationService := services.NewNotificationService(notificationRepo, publisher)
	farmerService := services.NewFarmerService(farmerRepo)
	inspectorService := services.NewInspectorService(inspectorRepo)
	landService := services.NewLandService(landRepo, farmerRepo)
	policyService := services.NewPolicyService(policyRepo)
	claimService := services.NewClaimService(claimRepo, policyRepo, landRepo, farmerRepo, notificationService, cfg.AdminUserID)
	applicationService := services.NewApplicationService(applicationRepo, policyRepo, farmerRepo, notificationService, cfg.NotifyApplicationTransitions)
	alertService := services.NewRiskAlertService(alertRepo)
	supportService := services.NewSupportService(supportRepo, notificationService)

	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Insurance service is healthy")
	})
	if pushPublisher, ok := publisher.(*event.PushPublisher); ok {
		app.Get("/checkhealth/push", func(c fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(pushPublisher.HealthCheck())
		})
	}

	middleware := handlers.NewMiddleware(identityService)
	public := app.Group("/api/v1")
	protected := app.Group("/api/v1", middleware.RequireAuth())

	handlers.NewAuthHandler(identityService).Register(public, protected)
	handlers.NewFarmerHandler(farmerService).Register(protected)
	handlers.NewInspectorHandler(inspectorService).Register(protected)
	handlers.NewLandHandler(landService).Register(protected)
	handlers.NewPolicyHandler(policyService).Register(protected)
	handlers.NewClaimHandler(claimService).Register(protected)
	handlers.NewApplicationHandler(applicationService).Register(protected)
	handlers.NewNotificationHandler(notificationService).Register(protected)
	handlers.NewRiskAlertHandler(alertService).Register(protected)
	handlers.NewSupportHandler(supportService).Register(protected)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", cfg.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
