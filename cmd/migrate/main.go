package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/hackflow/hackflow-api/config"
	"github.com/hackflow/hackflow-api/pkg/db"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	migrationsPath := flag.String("path", "file://migrations", "migrations source URL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: "hackflow-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Database.WorkOffline {
		logger.Info("DB_WORK_OFFLINE is set, nothing to migrate")
		return
	}

	logger.Info("Starting database migrations",
		zap.String("database", maskDatabaseURL(cfg.Database.URL)),
		zap.String("source", *migrationsPath))

	if err := db.RunMigrations(cfg.Database.URL, *migrationsPath); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database migrations completed successfully")
}

// maskDatabaseURL hides the password in a database URL
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "***"
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
