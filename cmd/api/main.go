package main

import (
	"context"

	accountshandler "luxestay/internal/accounts/handler"
	accountsrepo "luxestay/internal/accounts/repository"
	accountsservice "luxestay/internal/accounts/service"
	accountsvalidator "luxestay/internal/accounts/validator"
	bookingsevents "luxestay/internal/bookings/events"
	bookingshandler "luxestay/internal/bookings/handler"
	bookingsrepo "luxestay/internal/bookings/repository"
	bookingsservice "luxestay/internal/bookings/service"
	bookingsvalidator "luxestay/internal/bookings/validator"
	"luxestay/internal/chat/completion"
	chathandler "luxestay/internal/chat/handler"
	chatservice "luxestay/internal/chat/service"
	conciergehandler "luxestay/internal/concierge/handler"
	conciergeservice "luxestay/internal/concierge/service"
	"luxestay/internal/concierge/session"
	"luxestay/internal/hotels/gateway"
	hotelshandler "luxestay/internal/hotels/handler"
	hotelsservice "luxestay/internal/hotels/service"
	"luxestay/pkg/app"
	"luxestay/pkg/auth"
	"luxestay/pkg/config"
	"luxestay/pkg/kafka"
	kafka_config "luxestay/pkg/kafka/config"
	kafka_middleware "luxestay/pkg/kafka/middleware"
)

const ServiceName = "luxestay-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting LuxeStay API")
	serverApp := app.NewApplication()

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	accountRepo := accountsrepo.NewMongoAccountRepository(cfg)
	accountService := accountsservice.NewAccountService(
		accountRepo,
		accountsvalidator.NewAccountValidator(cfg.Log),
		tokens,
		cfg,
	)
	if cfg.DemoUserEnabled {
		if err := accountService.EnsureDemoUser(context.Background()); err != nil {
			cfg.Log.Error("Failed to ensure demo user", "error", err)
		}
	}

	publisher, closePublisher := initPublisher(cfg)
	serverApp.OnShutdown(closePublisher)
	bookingService := bookingsservice.NewBookingService(
		bookingsrepo.NewMongoBookingRepository(cfg),
		accountRepo,
		bookingsvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	hotelService := hotelsservice.NewHotelService(gateway.NewSerpApiGateway(cfg), cfg)

	completer, closeCompleter, err := completion.New(context.Background(), cfg)
	if err != nil {
		cfg.Log.Error("Chat completer unavailable", "provider", cfg.ChatProvider, "error", err)
	}
	serverApp.OnShutdown(closeCompleter)
	chatService := chatservice.NewChatService(completer, cfg)

	conciergeService := conciergeservice.NewConciergeService(
		initSessionStore(cfg, serverApp),
		hotelService,
		chatService,
		cfg,
	)

	serverApp.SetApp(cfg,
		accountshandler.NewAccountHandler(accountService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		hotelshandler.NewHotelHandler(hotelService, cfg.Log),
		chathandler.NewChatHandler(chatService, cfg.Log),
		conciergehandler.NewConciergeHandler(conciergeService, tokens, cfg.Log),
	)
	serverApp.Run()
}

// initPublisher falls back to logging booking events when Kafka is disabled
// or misconfigured.
func initPublisher(cfg *config.Config) (bookingsevents.Publisher, func()) {
	noop := func() {}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Error("Invalid Kafka configuration, booking events will only be logged", "error", err)
		return bookingsevents.NewLogPublisher(cfg.Log), noop
	}
	if !kafkaCfg.Enabled {
		cfg.Log.Info("Kafka disabled, booking events will only be logged")
		return bookingsevents.NewLogPublisher(cfg.Log), noop
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.Log, kafkaCfg.BookingTopic, kafkaCfg.BookingDLQTopic)
	if err != nil {
		cfg.Log.Error("Failed to create Kafka producer, booking events will only be logged", "error", err)
		return bookingsevents.NewLogPublisher(cfg.Log), noop
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))

	return bookingsevents.NewKafkaPublisher(producer), func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
}

func initSessionStore(cfg *config.Config, serverApp *app.Application) session.Store {
	if cfg.Client.Redis != nil {
		cfg.Log.Info("Concierge sessions stored in Redis", "ttl", cfg.ConciergeSessionTTL)
		return session.NewRedisStore(cfg.Client.Redis, cfg.ConciergeSessionTTL)
	}

	store := session.NewMemoryStore(cfg.ConciergeSessionTTL)
	serverApp.OnShutdown(store.Stop)
	cfg.Log.Info("Concierge sessions stored in memory", "ttl", cfg.ConciergeSessionTTL)
	return store
}
