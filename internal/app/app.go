// Package app wires the storefront service together and owns its lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/ElisioMassango/chelevi-sub001/internal/commerce"
	"github.com/ElisioMassango/chelevi-sub001/internal/config"
	"github.com/ElisioMassango/chelevi-sub001/internal/event"
	"github.com/ElisioMassango/chelevi-sub001/internal/gateway"
	storehttp "github.com/ElisioMassango/chelevi-sub001/internal/handler/http"
	"github.com/ElisioMassango/chelevi-sub001/internal/notify"
	pgrepo "github.com/ElisioMassango/chelevi-sub001/internal/repository/postgres"
	redisrepo "github.com/ElisioMassango/chelevi-sub001/internal/repository/redis"
	"github.com/ElisioMassango/chelevi-sub001/internal/service"
	"github.com/ElisioMassango/chelevi-sub001/pkg/database"
	"github.com/ElisioMassango/chelevi-sub001/pkg/health"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httpclient"
	"github.com/ElisioMassango/chelevi-sub001/pkg/kafka"
	"github.com/ElisioMassango/chelevi-sub001/pkg/logger"
	"github.com/ElisioMassango/chelevi-sub001/pkg/middleware"
	"github.com/ElisioMassango/chelevi-sub001/pkg/tracing"
)

const cartTTL = 30 * 24 * time.Hour

// App is the assembled storefront service.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	server         *http.Server
	redis          *redis.Client
	pool           *pgxpool.Pool
	producer       *kafka.Producer
	tracerShutdown func(context.Context) error
}

// New builds the application from configuration: stores, clients, services,
// handlers, and the HTTP server.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(cfg.ServiceName, cfg.LogLevel)

	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:  cfg.ServiceName,
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		Enabled:      cfg.Tracing.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	redisClient, err := database.NewRedisClient(ctx, database.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	pool, err := database.NewPostgresPool(ctx, cfg.DatabaseConfig(), log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	producer := kafka.NewProducer(kafka.DefaultProducerConfig(cfg.Kafka.Brokers), log)
	events := event.NewProducer(producer, cfg.Kafka.Topic)

	// One breaker per upstream so a dead gateway cannot trip the others.
	commerceHTTP := breakerClient("commerce", cfg.Commerce.Timeout, log)
	emailHTTP := breakerClient("email", cfg.Gateways.Timeout, log)
	whatsappHTTP := breakerClient("whatsapp", cfg.Gateways.Timeout, log)
	mpesaHTTP := breakerClient("mpesa", cfg.Gateways.Timeout, log)

	commerceClient := commerce.New(commerceHTTP, cfg.Commerce.BaseURL, log)
	emailGateway := gateway.NewEmailClient(emailHTTP, cfg.Gateways.EmailBaseURL, log)
	whatsappGateway := gateway.NewWhatsAppClient(whatsappHTTP, cfg.Gateways.WhatsAppBaseURL, log)
	mpesaGateway := gateway.NewMpesaClient(mpesaHTTP, cfg.Gateways.MpesaBaseURL, log)

	renderer, err := notify.NewRenderer(cfg.Store.Name)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}
	dispatcher := notify.NewDispatcher(log)

	carts := redisrepo.NewCartRepository(redisClient, cartTTL)
	prefs := redisrepo.NewPreferenceRepository(redisClient)
	reservations := pgrepo.NewReservationRepository(pool)
	orders := pgrepo.NewOrderRepository(pool)

	owner := service.OwnerContacts{Email: cfg.Owner.Email, WhatsApp: cfg.Owner.WhatsApp}

	cartSvc := service.NewCartService(carts, prefs, commerceClient, events, log)
	checkoutSvc := service.NewCheckoutService(cartSvc, orders, commerceClient, mpesaGateway,
		emailGateway, whatsappGateway, dispatcher, renderer, events, owner, log)
	reservationSvc := service.NewReservationService(reservations, emailGateway, whatsappGateway,
		dispatcher, renderer, events, owner, log)
	newsletterSvc := service.NewNewsletterService(prefs, commerceClient, emailGateway,
		whatsappGateway, dispatcher, renderer, events, owner, log)
	contactSvc := service.NewContactService(emailGateway, whatsappGateway, dispatcher, renderer, owner)
	prefSvc := service.NewPreferenceService(prefs)

	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthHandler.Register("kafka", producer.Ping)

	router := storehttp.NewRouter(storehttp.RouterConfig{
		Logger:         log,
		ServiceName:    cfg.ServiceName,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.HTTP.CORSOrigins,
			Environment:    cfg.Environment,
		},
		TracingEnabled: cfg.Tracing.Enabled,
		Cart:           storehttp.NewCartHandler(cartSvc, log),
		Checkout:       storehttp.NewCheckoutHandler(checkoutSvc, log),
		Reservations:   storehttp.NewReservationHandler(reservationSvc, log),
		Contact:        storehttp.NewContactHandler(contactSvc, log),
		Newsletter:     storehttp.NewNewsletterHandler(newsletterSvc, log),
		Preferences:    storehttp.NewPreferencesHandler(prefSvc, log),
		Health:         healthHandler,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return &App{
		cfg:            cfg,
		logger:         log,
		server:         server,
		redis:          redisClient,
		pool:           pool,
		producer:       producer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run serves HTTP until the context is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka close", slog.String("error", err.Error()))
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Error("redis close", slog.String("error", err.Error()))
	}
	a.pool.Close()
	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown", slog.String("error", err.Error()))
	}

	return nil
}

func breakerClient(name string, timeout time.Duration, log *slog.Logger) *httpclient.CircuitBreakerClient {
	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = timeout
	return httpclient.NewCircuitBreakerClient(
		httpclient.New(clientCfg),
		httpclient.DefaultCircuitBreakerConfig(name),
		log,
	)
}
