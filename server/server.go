package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go-sqid/config"
	"go-sqid/handlers"
	"go-sqid/services"
	"go-sqid/sqid"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Run builds the codec instance from configuration, wires it through the
// service and handlers, and serves until interrupted.
func Run(logger *zap.Logger, cfg *config.Config) error {
	codec, err := setupCodec(cfg)
	if err != nil {
		logger.Error("Failed to build codec instance", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	idHandler, err := setupIDHandler(ctx, cfg, codec, logger)
	if err != nil {
		return err
	}

	router := setupRouter(idHandler, cfg)
	srv := setupServer(cfg, router)

	go startServer(srv, logger)

	return waitForShutdown(ctx, srv, logger)
}

// setupCodec turns config codec settings into an immutable instance. Extra
// blocklist words extend the default list rather than replacing it.
func setupCodec(cfg *config.Config) (*sqid.Sqids, error) {
	opts := sqid.Options{
		Alphabet:  cfg.Alphabet,
		MinLength: cfg.MinLength,
	}
	if len(cfg.ExtraBlocklist) > 0 {
		opts.Blocklist = append(sqid.DefaultBlocklist(), cfg.ExtraBlocklist...)
	}
	return sqid.New(opts)
}

func setupIDHandler(ctx context.Context, cfg *config.Config, codec *sqid.Sqids, logger *zap.Logger) (handlers.IDHandlerInterface, error) {
	handlerCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	codecService := services.NewCodecService(codec, logger)

	handler, err := handlers.NewIDHandler(handlerCtx, codecService, cfg, logger)
	if err != nil {
		logger.Error("Failed to create ID handler", zap.Error(err))
		return nil, err
	}

	logger.Debug("ID handler created successfully")
	return handler, nil
}

func setupRouter(idHandler handlers.IDHandlerInterface, cfg *config.Config) *gin.Engine {
	router := gin.Default()
	handlers.RegisterRoutes(router, idHandler, cfg)
	return router
}

func setupServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}
}

func startServer(srv *http.Server, logger *zap.Logger) {
	logger.Debug("Starting server", zap.String("address", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", zap.Error(err))
	}
	logger.Debug("Server stopped")
}

func waitForShutdown(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("Received interrupt signal. Initiating server shutdown...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server gracefully stopped")
	return nil
}
