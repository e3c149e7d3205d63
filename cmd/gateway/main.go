package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ZOMBIEx-z/ClothingStore/api/routes"
	"github.com/ZOMBIEx-z/ClothingStore/internal/cart"
	"github.com/ZOMBIEx-z/ClothingStore/internal/catalog"
	"github.com/ZOMBIEx-z/ClothingStore/internal/checkout"
	"github.com/ZOMBIEx-z/ClothingStore/internal/orders"
	"github.com/ZOMBIEx-z/ClothingStore/internal/upstream"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/config"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/kv"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "gateway"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "gateway",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := newKVStore(context.Background(), cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap kv store", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing kv store", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	upstreamMetrics := metrics.NewUpstreamMetrics(registry)

	client, err := upstream.New(cfg.Upstream, upstreamMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create upstream client", err)
		os.Exit(1)
	}

	cartService := cart.NewService(store, logg)
	catalogService := catalog.NewService(client)
	checkoutService := checkout.NewService(cartService, client, logg)
	ordersService := orders.NewService(client, logg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":       cfg.App.Env,
		"addr":      addr,
		"kv_driver": cfg.KV.Driver,
		"upstream":  cfg.Upstream.BaseURL,
	})
	logg.Info(ctx, "starting gateway server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			store,
			registry,
			catalogService,
			cartService,
			checkoutService,
			ordersService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "gateway server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func newKVStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	if cfg.KV.IsRedis() {
		return kv.NewRedis(ctx, cfg.Redis)
	}
	return kv.NewSQLite(cfg.KV.SQLitePath)
}
