package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"propman/server/config"
	"propman/server/internal/api"
	"propman/server/internal/database"
	"propman/server/internal/mailer"
	"propman/server/internal/scheduler"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// A missing .env is fine, the environment wins either way
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	dbPath := cfg.DatabasePath
	if !filepath.IsAbs(dbPath) {
		currentDir, err := os.Getwd()
		if err != nil {
			logger.WithError(err).Fatal("Failed to get current directory")
		}
		dbPath = filepath.Join(currentDir, dbPath)
	}
	logger.Infof("Using database at: %s", dbPath)

	db, err := database.New(dbPath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	mail := mailer.NewService(logger, mailer.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		FromAddress: cfg.SMTP.FromAddress,
		FromName:    cfg.SMTP.FromName,
	})

	handler := api.NewHandler(db, logger, mail)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	api.SetupRoutes(router, handler)

	if cfg.SalesTaxRefresh.Interval > 0 {
		sched := scheduler.New(handler.Reports(), logger, cfg.SalesTaxRefresh.Interval)
		sched.Start()
		defer sched.Stop()
		logger.WithField("interval", cfg.SalesTaxRefresh.Interval.String()).
			Info("Sales tax refresh scheduler started")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Infof("Starting server on port %d", cfg.Port)
	if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
