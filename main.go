package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	api "github.com/rpupo63/news-board-backend/api"
	"github.com/rpupo63/news-board-backend/config"
	"github.com/rpupo63/news-board-backend/database"
	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/seed"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setupLogging(c)
	log.Info().Msg("Initializing app...")

	db, err := openDatabase(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	currentDB := database.New(db)
	defer func() {
		if err := currentDB.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx := context.Background()

	if config.GetBool(c, "AUTO_MIGRATE", false) {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("Error applying schema")
		}
		log.Info().Msg("Schema applied")
	}

	// If seeding, reset the tables with the fixture data and exit
	if config.GetBool(c, "SEED_DATABASE", false) {
		if err := seed.Run(ctx, db, seed.TestData()); err != nil {
			log.Fatal().Err(err).Msg("Error seeding database")
		}
		return
	}

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, config.GetString(c, "GENERATE_MODELS_OUT", "")); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		models.GenerateColumnMismatchReport(db, os.Stdout)
		return
	}

	// buffered so Start can still report ErrServerClosed after shutdown
	errChannel := make(chan error, 2)

	server, err := api.NewServer(currentDB, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(config.GetSeconds(c, "SHUTDOWN_TIMEOUT_SECONDS", 30))
}

func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, "LOG_FORMAT", "json") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func openDatabase(c map[string]string) (*gorm.DB, error) {
	dsn, err := config.DatabaseDSN(c)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Duration(config.GetInt(c, "DB_SLOW_QUERY_MS", 500)) * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  config.GetString(c, "LOG_FORMAT", "json") == "console",
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:    false,
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.GetInt(c, "DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(config.GetInt(c, "DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(config.GetSeconds(c, "DB_CONN_MAX_LIFETIME_SECONDS", 300))

	if replicas := config.GetStrings(c, "DB_REPLICA_URLS", nil); len(replicas) > 0 {
		dialectors := make([]gorm.Dialector, 0, len(replicas))
		for _, r := range replicas {
			dialectors = append(dialectors, postgres.New(postgres.Config{DSN: r, PreferSimpleProtocol: true}))
		}
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: dialectors,
			Policy:   dbresolver.RandomPolicy{},
		}).
			SetMaxOpenConns(config.GetInt(c, "DB_MAX_OPEN_CONNS", 25)).
			SetMaxIdleConns(config.GetInt(c, "DB_MAX_IDLE_CONNS", 5)).
			SetConnMaxLifetime(config.GetSeconds(c, "DB_CONN_MAX_LIFETIME_SECONDS", 300))
		if err := db.Use(resolver); err != nil {
			return nil, fmt.Errorf("register read replicas: %w", err)
		}
		log.Info().Int("replicas", len(replicas)).Msg("Read replicas registered")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test database connection: %w", err)
	}

	return db, nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
