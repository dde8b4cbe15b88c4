package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"gorm.io/gorm"

	appapi "github.com/dmartlabs/shopping-api/internal/app/api"
	catalogmemory "github.com/dmartlabs/shopping-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/dmartlabs/shopping-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/dmartlabs/shopping-api/internal/domains/catalog/application"
	catalogports "github.com/dmartlabs/shopping-api/internal/domains/catalog/ports"
	checkoutcatalog "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/catalog"
	checkoutmemory "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/memory"
	checkoutobs "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/observability"
	checkoutpostgres "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/persistence/postgres"
	checkoutapp "github.com/dmartlabs/shopping-api/internal/domains/checkout/application"
	checkoutports "github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"
	platformmigrations "github.com/dmartlabs/shopping-api/internal/platform/migrations"
	platformobservability "github.com/dmartlabs/shopping-api/internal/platform/observability"
	checkoutactivities "github.com/dmartlabs/shopping-api/internal/platform/temporal/activities/checkout"
	checkoutworkflow "github.com/dmartlabs/shopping-api/internal/platform/temporal/workflows/checkout"
	platformpostgres "github.com/dmartlabs/shopping-api/internal/platform/postgres"
)

func main() {
	ctx := context.Background()
	const serviceName = "shopping-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := appapi.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, closeDB := openDatabase(ctx, cfg.PostgresDSN, logger)
	defer closeDB()

	checkoutService := checkoutobs.New(
		checkoutapp.NewService(
			checkoutcatalog.NewFinder(catalogapp.NewService(buildCatalogRepository(db, logger))),
			buildOrderRepository(db, logger),
			checkoutapp.WithTaxRate(decimal.NewFromFloat(cfg.TaxRate)),
		),
		checkoutobs.WithLogger(logger),
		checkoutobs.WithTracer(instruments.Tracer("internal.checkout.application")),
		checkoutobs.WithMeter(instruments.Meter("internal.checkout.application")),
	)
	activities := checkoutactivities.NewActivities(checkoutService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, checkoutworkflow.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(checkoutworkflow.OrderPlacementWorkflow, workflow.RegisterOptions{Name: checkoutworkflow.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(activities.PlaceOrder, activity.RegisterOptions{Name: checkoutactivities.PlaceOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", checkoutworkflow.OrderPlacementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func openDatabase(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, func()) {
	db, cleanup := platformpostgres.Open(ctx, dsn, logger)
	if db == nil {
		return nil, cleanup
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		cleanup()
		return nil, func() {}
	}
	return db, cleanup
}

func buildCatalogRepository(db *gorm.DB, logger *slog.Logger) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	logger.Info("worker catalog repository configured with postgres")
	return catalogpostgres.NewRepository(db)
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) checkoutports.Repository {
	if db == nil {
		return checkoutmemory.NewRepository()
	}
	logger.Info("worker order repository configured with postgres")
	return checkoutpostgres.NewRepository(db)
}
