package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restoran/apiclient"
	httpapi "restoran/cart-svc/internal/api/http"
	"restoran/cart-svc/internal/cart"
	"restoran/cart-svc/internal/service"
	"restoran/cart-svc/internal/storage"
	"restoran/catalog"
	"restoran/config"
	"restoran/logging"
)

const (
	sweepInterval = 5 * time.Minute
	idleAfter     = 30 * time.Minute
)

func main() {
	var cfg config.CartService
	config.MustLoad(&cfg)

	logger := logging.New("cart-svc", cfg.LogLevel)

	var kv cart.KV
	switch cfg.Storage {
	case "memory":
		kv = cart.NewMemoryKV()
	case "redis":
		kv = storage.NewRedisKV(config.MustInitRedis(cfg.Redis), cfg.CartTTL)
	default:
		logger.Fatal().Str("storage", cfg.Storage).Msg("unknown cart storage")
	}

	api, err := apiclient.New(cfg.CatalogURL, apiclient.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid catalog url")
	}

	registry := cart.NewRegistry(kv, logger)
	languages := service.NewLanguageService(kv, logger)
	cartService := service.NewCartService(registry, catalog.New(api), languages)

	handler := httpapi.NewHandler(cartService, languages, logger, cfg.SecureCookies)
	router := httpapi.NewRouter(handler, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := registry.Sweep(idleAfter); n > 0 {
					logger.Debug().Int("carts", n).Msg("released idle carts")
				}
			}
		}
	}()

	if err := httpapi.StartServer(ctx, cfg.Addr, router, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server stopped")
	}

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer flushCancel()
	if err := registry.Close(flushCtx); err != nil {
		logger.Error().Err(err).Msg("failed to flush carts")
	}
	logger.Info().Msg("cart service stopped")
}
