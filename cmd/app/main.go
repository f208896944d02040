package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcelroute/cmd"
	adapterhttp "parcelroute/internal/adapters/in/http"
	"parcelroute/internal/adapters/out/postgres/parcelrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, relying on process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:           requireEnv("HTTP_PORT"),
		DBHost:             requireEnv("DB_HOST"),
		DBPort:             requireEnv("DB_PORT"),
		DBUser:             requireEnv("DB_USER"),
		DBPassword:         requireEnv("DB_PASSWORD"),
		DBName:             requireEnv("DB_NAME"),
		DBSslMode:          requireEnv("DB_SSLMODE"),
		OracleHost:         requireEnv("ORACLE_HOST"),
		OracleServiceToken: os.Getenv("ORACLE_SERVICE_TOKEN"),
	}

	if raw := os.Getenv("ORACLE_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid ORACLE_TIMEOUT %q: %v", raw, err)
		}
		config.OracleTimeout = timeout
	}

	return config
}

func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&parcelrepo.ParcelDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateSyncNextTargetCommandHandler(),
		app.CreateCompletePickupGroupCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateGetPickupListQueryHandler(),
		app.CreateGetDeliveryListQueryHandler(),
		app.Oracle(),
		logger,
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			logger.Info("Web server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Web server shutdown failed: %v", err)
	}
}
