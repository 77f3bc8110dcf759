package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TudorHulban/meetings/internal/config"
	"github.com/TudorHulban/meetings/internal/logger"
	"github.com/TudorHulban/meetings/internal/server"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, errConfig := config.Load()
	if errConfig != nil {
		log.Fatalf("main: %v", errConfig)
	}

	l, errLogger := logger.NewLogger(
		&logger.ParamsNewLogger{
			Level:        cfg.LogLevel,
			IsProduction: cfg.IsProduction(),
		},
	)
	if errLogger != nil {
		log.Fatalf("main: %v", errLogger)
	}
	defer l.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, errRouter := server.NewRouter(
		&server.ParamsNewRouter{
			Config: cfg,
			Logger: l,
		},
	)
	if errRouter != nil {
		l.Fatal("router", zap.Error(errRouter))
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		l.Info("starting server", zap.String("address", srv.Addr))

		if errServe := srv.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			l.Fatal("server failed", zap.Error(errServe))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if errShutdown := srv.Shutdown(ctx); errShutdown != nil {
		l.Error("server forced to shutdown", zap.Error(errShutdown))

		return
	}

	l.Info("server stopped gracefully")
}
