package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/greenkartlabs/greenkart-backend/api/routes"
	"github.com/greenkartlabs/greenkart-backend/internal/bookings"
	"github.com/greenkartlabs/greenkart-backend/internal/cart"
	"github.com/greenkartlabs/greenkart-backend/internal/catalog"
	"github.com/greenkartlabs/greenkart-backend/internal/orders"
	"github.com/greenkartlabs/greenkart-backend/internal/payments"
	"github.com/greenkartlabs/greenkart-backend/internal/store"
	"github.com/greenkartlabs/greenkart-backend/pkg/config"
	"github.com/greenkartlabs/greenkart-backend/pkg/logger"
	"github.com/greenkartlabs/greenkart-backend/pkg/metrics"
	stripeclient "github.com/greenkartlabs/greenkart-backend/pkg/stripe"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	st := store.New()
	st.Seed()

	catalogService, err := catalog.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	bookingService, err := bookings.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create booking service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(st)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(st, cfg.Checkout)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	var intentCreator payments.IntentCreator
	if cfg.Stripe.Configured() {
		stripeClient, err := stripeclient.NewClient(context.Background(), cfg.Stripe, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create stripe client", err)
			os.Exit(1)
		}
		intentCreator = stripeClient
	} else {
		logg.Warn(context.Background(), "stripe not configured, payment intents disabled")
	}

	paymentService, err := payments.NewService(st, intentCreator, cfg.Checkout)
	if err != nil {
		logg.Error(context.Background(), "failed to create payment service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			registry,
			httpMetrics,
			catalogService,
			bookingService,
			cartService,
			orderService,
			paymentService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
