package main

import (
	"context"
	"os/signal"
	"syscall"

	"restoran/agg-svc/internal/service"
	"restoran/agg-svc/internal/storage"
	"restoran/config"
	"restoran/logging"
)

func main() {
	var cfg config.AggService
	config.MustLoad(&cfg)

	logger := logging.New("agg-svc", cfg.LogLevel)

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka, cfg.GroupID)
	defer reader.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), logger)
	consumer.Start(ctx)
}
