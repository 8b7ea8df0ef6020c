package main

import (
	"context"
	"log"
	"os"
	"time"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/telemetry"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	// `go run . db_create` creates the tables and exits
	if len(os.Args) > 1 && os.Args[1] == "db_create" {
		createSchema(config, logger)
		return
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	shutdownTracing, err := telemetry.InitTracing(context.Background(), config.App.Name, config.Tracing, logger)
	if err != nil {
		logger.Fatal("Failed to init tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("Failed to flush traces", zap.Error(err))
		}
	}()

	var repos *repository.Repository
	switch config.Database.Driver {
	case utils.DriverMemory:
		logger.Warn("Using in-memory store, data is lost on exit")
		repos = repository.NewMemoryRepository(logger)
	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	}

	tokens := utils.NewTokenIssuer(config.JWT)
	app := wire.Wiring(repos, tokens, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}

func createSchema(config *utils.Config, logger *zap.Logger) {
	if config.Database.Driver != utils.DriverPostgres {
		logger.Fatal("db_create needs DB_DRIVER=postgres", zap.String("db_driver", config.Database.Driver))
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.CreateSchema(ctx, db); err != nil {
		logger.Fatal("Failed to create schema", zap.Error(err))
	}

	logger.Info("Database tables created")
}
