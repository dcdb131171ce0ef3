package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	httpapi "restoran/analytics-svc/internal/api/http"
	"restoran/analytics-svc/internal/service"
	"restoran/config"
	"restoran/logging"
)

func main() {
	var cfg config.AnalyticsService
	config.MustLoad(&cfg)

	logger := logging.New("analytics-svc", cfg.LogLevel)

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	handler := httpapi.NewHandler(service.NewAnalyticsService(db, rdb, logger), logger)
	if err := httpapi.StartServer(ctx, cfg.Addr, httpapi.NewRouter(handler, logger), logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server stopped")
	}
	logger.Info().Msg("analytics service stopped")
}
