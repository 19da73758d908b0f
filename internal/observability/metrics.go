package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sandeepkv93/notes-ai-backend/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/exemplar"
)

const meterName = "notes-ai-backend"

type AppMetrics struct {
	signupCodeCounter        metric.Int64Counter
	signupCounter            metric.Int64Counter
	loginCounter             metric.Int64Counter
	authReqDuration          metric.Float64Histogram
	tokenValidationCounter   metric.Int64Counter
	mailDispatchCounter      metric.Int64Counter
	codePurgedRows           metric.Float64Histogram
	noteOperationCounter     metric.Int64Counter
	noteOperationDuration    metric.Float64Histogram
	aiRequestCounter         metric.Int64Counter
	aiRequestDuration        metric.Float64Histogram
	repositoryOpsCounter     metric.Int64Counter
	healthCheckResultCounter metric.Int64Counter
	healthCheckDuration      metric.Float64Histogram
	databaseStartupCounter   metric.Int64Counter
	toolCommandRuns          metric.Int64Counter
	middlewareEventCounter   metric.Int64Counter
}

var (
	metricsMu  sync.RWMutex
	appMetrics *AppMetrics
)

func InitMetrics(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sdkmetric.MeterProvider, error) {
	if !cfg.OTELMetricsEnabled {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		logger.Info("otel metrics disabled")
		return mp, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp metric exporter: %w", err)
	}
	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create metric resource: %w", err)
	}

	latencyBuckets := sdkmetric.Stream{
		Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
			Boundaries: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	}
	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.OTELMetricsExportInterval))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
		sdkmetric.WithExemplarFilter(exemplar.TraceBasedFilter),
		sdkmetric.WithView(sdkmetric.NewView(sdkmetric.Instrument{Name: "auth.request.duration"}, latencyBuckets)),
		sdkmetric.WithView(sdkmetric.NewView(sdkmetric.Instrument{Name: "ai.request.duration"}, latencyBuckets)),
	)
	otel.SetMeterProvider(mp)

	m, err := newAppMetrics(mp.Meter(meterName))
	if err != nil {
		return nil, err
	}
	metricsMu.Lock()
	appMetrics = m
	metricsMu.Unlock()

	logger.Info("otel metrics initialized", "endpoint", cfg.OTELExporterOTLPEndpoint)
	return mp, nil
}

func newAppMetrics(meter metric.Meter) (*AppMetrics, error) {
	var (
		m    AppMetrics
		err  error
		errs []error
	)
	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			errs = append(errs, fmt.Errorf("counter %s: %w", name, err))
		}
		return c
	}
	seconds := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithUnit("s"), metric.WithDescription(desc))
		if err != nil {
			errs = append(errs, fmt.Errorf("histogram %s: %w", name, err))
		}
		return h
	}

	m.signupCodeCounter = counter("auth.signup.code.events", "Verification code issue and check outcomes")
	m.signupCounter = counter("auth.signup.attempts", "Signup completion attempts")
	m.loginCounter = counter("auth.login.attempts", "Login attempts")
	m.authReqDuration = seconds("auth.request.duration", "Duration of auth endpoint requests in seconds")
	m.tokenValidationCounter = counter("auth.token.validation.events", "Session token validation outcomes")
	m.mailDispatchCounter = counter("mail.dispatch.events", "Verification mail dispatch outcomes")
	m.codePurgedRows, err = meter.Float64Histogram("verification_code.purged", metric.WithDescription("Expired verification codes removed per sweep"))
	if err != nil {
		errs = append(errs, fmt.Errorf("histogram verification_code.purged: %w", err))
	}
	m.noteOperationCounter = counter("notes.operation.events", "Note operation outcomes")
	m.noteOperationDuration = seconds("notes.operation.duration", "Duration of note operations in seconds")
	m.aiRequestCounter = counter("ai.request.events", "LLM passthrough request outcomes")
	m.aiRequestDuration = seconds("ai.request.duration", "Duration of LLM passthrough requests in seconds")
	m.repositoryOpsCounter = counter("repository.operations", "Repository operation outcomes")
	m.healthCheckResultCounter = counter("health.check.results", "Readiness dependency check outcomes")
	m.healthCheckDuration = seconds("health.check.duration", "Duration of health dependency checks in seconds")
	m.databaseStartupCounter = counter("database.startup.events", "Database connect and migrate outcomes")
	m.toolCommandRuns = counter("tool.command.runs", "Operator tool command runs")
	m.middlewareEventCounter = counter("http.middleware.validation.events", "Request rejections and decisions made by middleware")

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return &m, nil
}

func current() *AppMetrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return appMetrics
}

func RecordVerificationCodeEvent(ctx context.Context, action, outcome string) {
	m := current()
	if m == nil {
		return
	}
	m.signupCodeCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("outcome", outcome),
	))
}

func RecordSignup(ctx context.Context, status string) {
	m := current()
	if m == nil {
		return
	}
	m.signupCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func RecordAuthLogin(ctx context.Context, status string) {
	m := current()
	if m == nil {
		return
	}
	m.loginCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func RecordAuthRequestDuration(ctx context.Context, endpoint, status string, duration time.Duration) {
	m := current()
	if m == nil {
		return
	}
	m.authReqDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("status", status),
	))
}

func RecordTokenValidation(ctx context.Context, outcome, source string) {
	m := current()
	if m == nil {
		return
	}
	m.tokenValidationCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("source", source),
	))
}

func RecordMailDispatch(ctx context.Context, mode, outcome string) {
	m := current()
	if m == nil {
		return
	}
	m.mailDispatchCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("outcome", outcome),
	))
}

func RecordVerificationCodesPurged(ctx context.Context, rows int64) {
	m := current()
	if m == nil {
		return
	}
	m.codePurgedRows.Record(ctx, float64(rows))
}

func RecordNoteOperation(ctx context.Context, operation, status string, duration time.Duration) {
	m := current()
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.noteOperationCounter.Add(ctx, 1, attrs)
	m.noteOperationDuration.Record(ctx, duration.Seconds(), attrs)
}

func RecordAIRequest(ctx context.Context, operation, status string, duration time.Duration) {
	m := current()
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.aiRequestCounter.Add(ctx, 1, attrs)
	m.aiRequestDuration.Record(ctx, duration.Seconds(), attrs)
}

func RecordRepositoryOperation(ctx context.Context, entity, operation, outcome string) {
	m := current()
	if m == nil {
		return
	}
	m.repositoryOpsCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

func RecordHealthCheckResult(ctx context.Context, check, outcome string) {
	m := current()
	if m == nil {
		return
	}
	m.healthCheckResultCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("check", check),
		attribute.String("outcome", outcome),
	))
}

func RecordHealthCheckDuration(ctx context.Context, check string, duration time.Duration) {
	m := current()
	if m == nil {
		return
	}
	m.healthCheckDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("check", check),
	))
}

func RecordDatabaseStartupEvent(ctx context.Context, phase, outcome string) {
	m := current()
	if m == nil {
		return
	}
	m.databaseStartupCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("phase", phase),
		attribute.String("outcome", outcome),
	))
}

func RecordToolCommandRun(ctx context.Context, tool, command, outcome string) {
	m := current()
	if m == nil {
		return
	}
	m.toolCommandRuns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("command", command),
		attribute.String("outcome", outcome),
	))
}

func RecordMiddlewareValidationEvent(ctx context.Context, middleware, outcome string) {
	m := current()
	if m == nil {
		return
	}
	m.middlewareEventCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("middleware", middleware),
		attribute.String("outcome", outcome),
	))
}
