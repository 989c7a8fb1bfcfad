// main.go
package main

import (
	"fmt"
	"log"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	repos, closeDB, err := openRepository(config.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer closeDB()

	app := wire.Wiring(repos, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}

// openRepository picks the storage backend named by DB_DRIVER
func openRepository(config utils.DatabaseConfig, logger *zap.Logger) (*repository.Repository, func(), error) {
	switch config.Driver {
	case utils.DriverPgx, "":
		db, err := database.InitDB(config)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connected successfully")
		return repository.NewRepository(db, logger), db.Close, nil

	case utils.DriverGorm:
		db, err := database.InitGorm(config)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connected successfully via gorm")
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return repository.NewGormRepository(db, logger), closeFn, nil

	case utils.DriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		return repository.NewMemoryRepository(logger), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", config.Driver)
	}
}
