package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	shopserver "github.com/dmartlabs/shopping-api/go"

	catalogcache "github.com/dmartlabs/shopping-api/internal/domains/catalog/adapters/cache"
	catalogmemory "github.com/dmartlabs/shopping-api/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/dmartlabs/shopping-api/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/dmartlabs/shopping-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/dmartlabs/shopping-api/internal/domains/catalog/application"
	catalogports "github.com/dmartlabs/shopping-api/internal/domains/catalog/ports"

	checkoutcatalog "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/catalog"
	checkoutmemory "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/memory"
	checkoutobs "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/observability"
	checkoutpostgres "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/persistence/postgres"
	checkoutworkflows "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/workflows"
	checkoutapp "github.com/dmartlabs/shopping-api/internal/domains/checkout/application"
	checkoutports "github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"

	platformmigrations "github.com/dmartlabs/shopping-api/internal/platform/migrations"
	platformobservability "github.com/dmartlabs/shopping-api/internal/platform/observability"
	platformpostgres "github.com/dmartlabs/shopping-api/internal/platform/postgres"
)

// Run boots the Shopping HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "shopping-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, closeDB := buildDatabase(ctx, cfg, logger)
	defer closeDB()

	catalogRepo, closeCatalogRepo := buildCatalogRepository(ctx, cfg, db, logger)
	defer closeCatalogRepo()
	catalogService := catalogobs.New(
		catalogapp.NewService(catalogRepo),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)

	checkoutCore := checkoutapp.NewService(
		checkoutcatalog.NewFinder(catalogService),
		buildOrderRepository(db, logger),
		checkoutapp.WithTaxRate(decimal.NewFromFloat(cfg.TaxRate)),
	)
	checkoutService := checkoutobs.New(
		checkoutCore,
		checkoutobs.WithLogger(logger),
		checkoutobs.WithTracer(instruments.Tracer("internal.checkout.application")),
		checkoutobs.WithMeter(instruments.Meter("internal.checkout.application")),
	)

	var orchestrator checkoutports.WorkflowOrchestrator = checkoutworkflows.NewInlineCheckoutWorkflows(checkoutService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orchestrator = checkoutworkflows.NewTemporalCheckoutWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := shopserver.ApiHandleFunctions{
		CatalogAPI:  shopserver.NewCatalogAPI(catalogService),
		CheckoutAPI: shopserver.NewCheckoutAPI(checkoutService, orchestrator),
		SystemAPI:   shopserver.NewSystemAPI(db),
	}
	router := shopserver.NewRouter(handlers, otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           cors.AllowAll().Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("Shopping API listening", slog.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Shopping API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, repositories will run in memory")
		return nil, func() {}
	}
	db, cleanup := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return nil, cleanup
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, repositories will run in memory", slog.String("error", err.Error()))
		cleanup()
		return nil, func() {}
	}
	return db, cleanup
}

func buildCatalogRepository(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) (catalogports.Repository, func()) {
	var repo catalogports.Repository = catalogmemory.NewRepository()
	if db != nil {
		repo = catalogpostgres.NewRepository(db)
		logger.Info("catalog repository configured with postgres")
	}
	if cfg.RedisAddr == "" {
		return repo, func() {}
	}
	cached := catalogcache.NewRepository(repo, cfg.RedisAddr, catalogcache.DefaultTTL)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cached.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, catalog cache disabled", slog.String("error", err.Error()))
		_ = cached.Close()
		return repo, func() {}
	}
	logger.Info("catalog cache enabled", slog.String("addr", cfg.RedisAddr))
	return cached, func() { _ = cached.Close() }
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) checkoutports.Repository {
	if db == nil {
		return checkoutmemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return checkoutpostgres.NewRepository(db)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
