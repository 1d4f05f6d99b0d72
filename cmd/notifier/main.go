package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"luxestay/internal/notifications"
	"luxestay/pkg/config"
	"luxestay/pkg/kafka"
	kafka_config "luxestay/pkg/kafka/config"
	kafka_middleware "luxestay/pkg/kafka/middleware"
)

const ServiceName = "luxestay-notifier"

func main() {
	cfg := config.Load(ServiceName)

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	if !kafkaCfg.Enabled {
		cfg.Log.Fatal("Kafka is disabled, the notifier has nothing to consume")
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	handler := notifications.BookingCreatedHandler(notifications.NewLogSender(cfg.Log), cfg.Log)
	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.Log, kafkaCfg.BookingTopic, kafkaCfg.NotifierGroupID, kafkaCfg.BookingDLQTopic, handler)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Starting booking notifier", "topic", kafkaCfg.BookingTopic, "group_id", kafkaCfg.NotifierGroupID)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close Kafka consumer", "error", err)
	}
	cfg.Log.Info("Booking notifier stopped")
}
