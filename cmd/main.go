package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/field_ops_dashboard/internal/assignment"
	"github.com/shenikar/field_ops_dashboard/internal/availability"
	"github.com/shenikar/field_ops_dashboard/internal/config"
	v1 "github.com/shenikar/field_ops_dashboard/internal/handler/http/v1"
	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/realtime"
	"github.com/shenikar/field_ops_dashboard/internal/repository"
	"github.com/shenikar/field_ops_dashboard/internal/service"
	"github.com/shenikar/field_ops_dashboard/internal/settings"
	"github.com/shenikar/field_ops_dashboard/internal/storage"
	"github.com/shenikar/field_ops_dashboard/internal/webhook"
	"github.com/shenikar/field_ops_dashboard/pkg/logger"
	"github.com/shenikar/field_ops_dashboard/pkg/maps"
	"github.com/shenikar/field_ops_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/field_ops_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/field_ops_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Field Operations Dashboard API
// @version 1.0
// @description Case tracking, SLA monitoring, availability and assignment alerts for field teams.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Хранилища пользователя
	kv := storage.NewRedisStore(redisClient, cfg.KVPrefix)
	notesStore := storage.NewNotesStore(redisClient, cfg.KVPrefix)

	settingsStore := settings.NewStore(kv, log, cfg.GoogleMapsAPIKey)
	settingsStore.Load(ctx)

	// Поток событий для дашбордов
	hub := realtime.NewHub(log)
	go hub.Run(ctx)

	// Доступность: одно значение на весь процесс
	availabilityState := availability.NewState(ctx, kv, log)
	availabilityState.Subscribe(func(available bool) {
		settingsStore.UpdateAvailability(available)
		if err := hub.Publish(realtime.EventAvailabilityChanged, map[string]bool{"available": available}); err != nil {
			log.WithError(err).Warn("Failed to broadcast availability change")
		}
	})

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Наблюдатель назначений
	feed := assignment.NewRedisFeed(redisClient, cfg.KVPrefix, cfg.AssignmentUserID)
	notifier := assignment.NewPermissionNotifier(kv, settingsStore, webhookPublisher, hub, cfg.AssignmentUserID, log)
	watcher := assignment.NewWatcher(
		feed,
		assignment.NewHubSoundPlayer(hub),
		notifier,
		availabilityState,
		log,
		cfg.AssignmentPollInterval,
	)
	watcher.OnNewAssignment(func(a models.Assignment) {
		if err := hub.Publish(realtime.EventNewAssignment, a); err != nil {
			log.WithError(err).Warn("Failed to broadcast new assignment")
		}
	})
	watcher.OnChange(func(snap assignment.Snapshot) {
		if err := hub.Publish(realtime.EventAssignmentPopup, snap); err != nil {
			log.WithError(err).Warn("Failed to broadcast assignment state")
		}
	})
	go watcher.Run(ctx)

	// Инициализация репозиториев
	caseRepo := repository.NewCaseRepository(dbpool, redisClient, cfg.CaseCacheTTL)

	// Инициализация сервисов
	geocoder := maps.NewGoogleGeocoder(settingsStore)
	caseService := service.NewCaseService(caseRepo, notesStore, geocoder, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Dependencies{
		Cases:        caseService,
		Availability: availabilityState,
		Watcher:      watcher,
		Dispatcher:   feed,
		Settings:     settingsStore,
		Events:       hub,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем наблюдатель, хаб и воркер вебхуков
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
