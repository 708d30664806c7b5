package main

import (
	"flag"

	"go-sqid/config"
	"go-sqid/server"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic("Failed to initialize zap logger: " + err.Error())
	}
}

func main() {
	defer logger.Sync()

	disableRateLimit := flag.Bool("disable-rate-limit", false, "Disable rate limiting for performance testing")
	flag.Parse()

	// A missing .env file is fine; the environment wins either way.
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded configuration from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	cfg.DisableRateLimit = *disableRateLimit

	logger.Info("Starting ID codec service...",
		zap.String("port", cfg.ServerPort),
		zap.Int("min_length", cfg.MinLength))
	if err := server.Run(logger, cfg); err != nil {
		logger.Fatal("Application error", zap.Error(err))
	}
	logger.Info("ID codec service stopped.")
}
