package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	checkouttypes "github.com/dmartlabs/shopping-api/internal/domains/checkout/application/types"
	checkoutports "github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"
)

const tracerName = "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/observability/service"

// Service decorates the checkout service with tracing, logging, and metrics.
// The core service stays silent; every operational signal lives here.
type Service struct {
	inner   checkoutports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core checkout service.
func New(inner checkoutports.Service, opts ...Option) checkoutports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Checkout(ctx context.Context, input checkouttypes.CheckoutInput) (*checkouttypes.CheckoutResult, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.Checkout",
		trace.WithAttributes(attribute.Int("cart.items", len(input.Items))))
	defer span.End()

	s.logInfo(ctx, "checkout started", slog.Int("cart.items", len(input.Items)))
	result, err := s.inner.Checkout(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "checkout failed", slog.Int("cart.items", len(input.Items)))
	}
	total := result.Total.InexactFloat64()
	s.metrics.recordPlaced(ctx, total)
	span.SetAttributes(
		attribute.String("order.id", result.OrderID),
		attribute.Float64("order.total", total),
	)
	s.logInfo(ctx, "order placed",
		slog.String("order.id", result.OrderID),
		slog.String("order.invoice", result.InvoiceNumber),
		slog.Float64("order.total", total),
	)
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersPlaced metric.Int64Counter
	orderTotals  metric.Float64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	placed, err := m.Int64Counter("checkout.orders.placed")
	if err != nil {
		return serviceMetrics{}
	}
	totals, err := m.Float64Histogram("checkout.order.total")
	if err != nil {
		return serviceMetrics{ordersPlaced: placed}
	}
	return serviceMetrics{ordersPlaced: placed, orderTotals: totals}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, total float64) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
	if m.orderTotals != nil {
		m.orderTotals.Record(ctx, total)
	}
}

var _ checkoutports.Service = (*Service)(nil)
