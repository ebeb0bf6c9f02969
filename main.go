package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/zmtwc/planner/internal/client"
	"github.com/zmtwc/planner/internal/config"
	"github.com/zmtwc/planner/internal/db"
	"github.com/zmtwc/planner/internal/handler"
	"github.com/zmtwc/planner/internal/service"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		slog.Error("postgres init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}
	if err := store.EnsureSchema(ctx); err != nil {
		slog.Error("schema init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Missing or broken auth config aborts startup; per-request errors
	// never do.
	authService, err := service.NewAuthService(store, cfg.Auth)
	if err != nil {
		slog.Error("auth init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authorizer := service.NewAuthorizer(store)

	// 10 credential attempts per minute per client ip.
	loginLimiter := handler.NewRateLimiter(rate.Limit(10.0/60.0), 10)
	defer loginLimiter.Stop()

	router := handler.NewRouter(handler.Services{
		Auth:         authService,
		Users:        service.NewUserService(store),
		Events:       service.NewEventService(store, authorizer),
		Requirements: service.NewRequirementService(store, authorizer),
		Participants: service.NewParticipantService(store),
		Fulfillments: service.NewFulfillmentService(store),
		Captcha:      client.NewCaptchaClient(cfg.Captcha),
		Metrics:      handler.NewMetrics(),
		LoginLimiter: loginLimiter,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		slog.Info("listening", slog.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("signal received, starting graceful shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", slog.String("error", err.Error()))
	}
}
