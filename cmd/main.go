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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/travel_tracking_system/internal/config"
	"github.com/shenikar/travel_tracking_system/internal/geocoding"
	v1 "github.com/shenikar/travel_tracking_system/internal/handler/http/v1"
	"github.com/shenikar/travel_tracking_system/internal/jobs"
	"github.com/shenikar/travel_tracking_system/internal/repository"
	"github.com/shenikar/travel_tracking_system/internal/service"
	"github.com/shenikar/travel_tracking_system/pkg/logger"
	"github.com/shenikar/travel_tracking_system/pkg/postgres"
	redisclient "github.com/shenikar/travel_tracking_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/travel_tracking_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Travel Tracking System API
// @version 1.0
// @description Consent-aware location and motion tracking for travel surveys.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	// Геокодер: ошибка конфигурации провайдера не мешает старту,
	// точки сохраняются с пометкой о неудачном геокодировании
	geocoder := geocoding.NewClient(geocoding.Config{
		Provider:     cfg.GeocodingProvider,
		GoogleAPIKey: cfg.GoogleMapsAPIKey,
		MapboxAPIKey: cfg.MapboxAPIKey,
		UserAgent:    cfg.GeocodingUserAgent,
		Email:        cfg.GeocodingEmail,
		Timeout:      cfg.GeocodingTimeout,
		MinInterval:  cfg.GeocodingMinInterval,
		CacheSize:    cfg.GeocodingCacheSize,
		CacheEvict:   cfg.GeocodingCacheEvict,
	}, log)
	if err := geocoder.Err(); err != nil {
		log.WithError(err).Warn("Geocoding provider is not usable, addresses will not be resolved")
	} else {
		log.Infof("Geocoding provider: %s", geocoder.ProviderName())
	}

	// Инициализация репозиториев
	consentRepo := repository.NewCachedConsentRepository(repository.NewConsentRepository(dbpool), redisClient, log)
	trackingRepo := repository.NewTrackingRepository(dbpool)
	tripRepo := repository.NewTripRepository(dbpool)
	adminRepo := repository.NewAdminRepository(dbpool)

	// Очередь задач обслуживания
	jobPublisher := jobs.NewRedisPublisher(redisClient)

	// Инициализация сервисов
	consentService := service.NewConsentService(consentRepo, log)
	trackingService := service.NewTrackingService(trackingRepo, consentService, geocoder, log)
	tripService := service.NewTripService(tripRepo, log)
	adminService := service.NewAdminService(adminRepo, jobPublisher, consentRepo, log)

	// Воркер выполняет повторное геокодирование и очистку вне запросов
	worker := jobs.NewWorker(redisClient, trackingService, log, cfg.JobPollTimeout)
	worker.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(consentService, trackingService, tripService, adminService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
