package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Sameer-09816/api/internal/config"
	"github.com/Sameer-09816/api/internal/delivery"
	"github.com/Sameer-09816/api/internal/domain"
	"github.com/Sameer-09816/api/internal/infra"
	"github.com/Sameer-09816/api/internal/logger"
)

func main() {

	// CONFIG
	cfg, err := config.Load()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	// LOGGER
	log, err := logger.New(cfg.Debug)
	if err != nil {
		panic("cannot build logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// OUTBOUND CLIENT
	fetcher := infra.NewThreadsterClient(infra.ThreadsterOptions{
		Timeout: cfg.RequestTimeout,
	}, log)

	// SERVICE
	threadService := domain.NewThreadService(fetcher)

	// HANDLERS
	hDownload := delivery.NewDownloadHandler(threadService, log)
	hHealth := delivery.NewHealthHandler()

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, hDownload, hHealth)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	log.Info("server started",
		zap.String("port", cfg.Port),
		zap.String("version", delivery.Version),
		zap.Bool("debug", cfg.Debug),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server crashed", zap.Error(err))
		}
	}
}
