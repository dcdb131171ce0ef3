package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restoran/api-gateway/internal/gateway"
	"restoran/config"
	"restoran/logging"
)

func main() {
	var cfg config.Gateway
	config.MustLoad(&cfg)

	logger := logging.New("api-gateway", cfg.LogLevel)

	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:      cfg.MenuSvcURL,
		FeedbackSvcURL:  cfg.FeedbackSvcURL,
		AnalyticsSvcURL: cfg.AnalyticsSvcURL,
		CartSvcURL:      cfg.CartSvcURL,
		FrontendDir:     cfg.FrontendDir,
		SecureCookies:   cfg.SecureCookies,
		AllowedOrigins:  cfg.AllowedOrigins,
	}, &http.Client{
		Timeout: 30 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := gateway.StartServer(ctx, cfg.Addr, gw.SetupRoutes(), logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server stopped")
	}
	logger.Info().Msg("api gateway stopped")
}
