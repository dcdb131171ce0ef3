package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"restoran/config"
	httpapi "restoran/feedback-svc/internal/api/http"
	"restoran/feedback-svc/internal/service"
	"restoran/feedback-svc/internal/storage"
	"restoran/logging"
)

func main() {
	var cfg config.FeedbackService
	config.MustLoad(&cfg)

	logger := logging.New("feedback-svc", cfg.LogLevel)

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg.Kafka)
	defer writer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to create tables")
	}

	feedbackService := service.NewFeedbackService(
		repo,
		storage.NewRedisCache(rdb, cfg.DuplicateTTL),
		storage.NewKafkaPublisher(writer),
		logger,
	)

	router := httpapi.NewRouter(httpapi.NewHandler(feedbackService, logger), logger)
	if err := httpapi.StartServer(ctx, cfg.Addr, router, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server stopped")
	}
	logger.Info().Msg("feedback service stopped")
}
