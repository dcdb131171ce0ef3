package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"restoran/config"
	"restoran/logging"
	httpapi "restoran/menu-svc/internal/api/http"
	"restoran/menu-svc/internal/service"
	"restoran/menu-svc/internal/storage"
)

func main() {
	var cfg config.MenuService
	config.MustLoad(&cfg)

	logger := logging.New("menu-svc", cfg.LogLevel)

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to create tables")
	}

	writer := config.NewKafkaWriter(cfg.Kafka)
	defer writer.Close()

	handler := httpapi.NewHandler(httpapi.Services{
		Categories: service.NewCategoryService(repo),
		MenuItems:  service.NewMenuItemService(repo),
		Promotions: service.NewPromotionService(repo),
		Contents:   service.NewContentService(repo),
		Orders: service.NewOrderService(repo, repo, repo,
			service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
			storage.NewKafkaPublisher(writer), logger),
	}, httpapi.Uploader{Dir: cfg.UploadDir}, logger)

	if err := httpapi.StartServer(ctx, cfg.Addr, httpapi.NewRouter(handler, logger), logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server stopped")
	}
	logger.Info().Msg("menu service stopped")
}
