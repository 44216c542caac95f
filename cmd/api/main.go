package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"projectmgmt/internal/config"
	"projectmgmt/internal/server"
	"projectmgmt/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet: the environment is what failed to load.
		panic(err)
	}

	logger := utils.NewLogger(cfg.Env)
	defer logger.Sync()

	srv, closeStore, err := server.NewServer(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	defer closeStore()

	go func() {
		logger.Info("Server listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.StoreDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown", zap.Error(err))
	}
	logger.Info("Server exiting")
}
