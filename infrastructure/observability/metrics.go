package observability

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"stumped/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// MetricsProvider manages OpenTelemetry metrics for the service
type MetricsProvider struct {
	config        *config.Config
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	mu            sync.RWMutex

	// Metric instruments
	guessesScoredCounter         metric.Int64Counter
	gamesCompletedCounter        metric.Int64Counter
	submissionsCounter           metric.Int64Counter
	natsMessagesPublishedCounter metric.Int64Counter
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(cfg *config.Config) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
	}
}

// Initialize sets up the OpenTelemetry metrics provider
func (mp *MetricsProvider) Initialize(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		log.Println("Metrics provider already initialized")
		return nil
	}

	if !mp.config.OTelEnabled {
		log.Println("OpenTelemetry metrics disabled")
		mp.initialized = true
		return nil
	}

	// Create resource with service information
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(mp.config.OTelServiceName),
			attribute.String("environment", mp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	// Create appropriate exporter based on config
	var exporter sdkmetric.Exporter
	switch mp.config.OTelExporterType {
	case "console":
		exporter, err = stdoutmetric.New()
		if err != nil {
			return fmt.Errorf("failed to create console exporter: %w", err)
		}
		log.Println("Using console metric exporter")

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTelOTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		log.Printf("Using OTLP metric exporter: %s", mp.config.OTelOTLPEndpoint)

	case "none":
		log.Println("Metrics export disabled (exporter_type='none')")
		mp.initialized = true
		return nil

	default:
		return fmt.Errorf("unknown exporter type: %s", mp.config.OTelExporterType)
	}

	// Create meter provider with periodic reader
	mp.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(time.Duration(mp.config.OTelExportIntervalMillis)*time.Millisecond),
			),
		),
	)

	// Set as global meter provider
	otel.SetMeterProvider(mp.meterProvider)

	// Get meter for creating instruments
	mp.meter = mp.meterProvider.Meter("stumped")

	// Create metric instruments
	if err := mp.createInstruments(); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	log.Println("Metrics provider initialized successfully")
	return nil
}

// createInstruments creates all metric instruments
func (mp *MetricsProvider) createInstruments() error {
	var err error

	mp.guessesScoredCounter, err = mp.meter.Int64Counter(
		GuessesScoredTotal,
		metric.WithDescription("Total guesses scored, by validation tier"),
	)
	if err != nil {
		return fmt.Errorf("failed to create guesses scored counter: %w", err)
	}

	mp.gamesCompletedCounter, err = mp.meter.Int64Counter(
		GamesCompletedTotal,
		metric.WithDescription("Total games reaching a terminal state"),
	)
	if err != nil {
		return fmt.Errorf("failed to create games completed counter: %w", err)
	}

	mp.submissionsCounter, err = mp.meter.Int64Counter(
		SubmissionsTotal,
		metric.WithDescription("Total leaderboard submissions"),
	)
	if err != nil {
		return fmt.Errorf("failed to create submissions counter: %w", err)
	}

	mp.natsMessagesPublishedCounter, err = mp.meter.Int64Counter(
		NATSMessagesPublishedTotal,
		metric.WithDescription("Total NATS messages published"),
	)
	if err != nil {
		return fmt.Errorf("failed to create NATS published counter: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}

// RecordGuess records a guess being scored
func (mp *MetricsProvider) RecordGuess(ctx context.Context, source string) {
	if !mp.isEnabled() {
		return
	}

	mp.guessesScoredCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String(LabelSource, source),
		),
	)
}

// RecordCompletion records a game reaching a terminal state
func (mp *MetricsProvider) RecordCompletion(ctx context.Context, won bool, guessesUsed int) {
	if !mp.isEnabled() {
		return
	}

	outcome := OutcomeLost
	if won {
		outcome = OutcomeWon
	}
	mp.gamesCompletedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String(LabelOutcome, outcome),
			attribute.Int(LabelGuesses, guessesUsed),
		),
	)
}

// RecordSubmission records a leaderboard submission
func (mp *MetricsProvider) RecordSubmission(ctx context.Context) {
	if !mp.isEnabled() {
		return
	}

	mp.submissionsCounter.Add(ctx, 1)
}

// RecordNATSMessagePublished records a NATS message being published
func (mp *MetricsProvider) RecordNATSMessagePublished(eventType string) {
	if !mp.isEnabled() {
		return
	}

	mp.natsMessagesPublishedCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelEventType, eventType),
		),
	)
}

// isEnabled checks if metrics are enabled and initialized
func (mp *MetricsProvider) isEnabled() bool {
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.config.OTelEnabled
}

// NoopMetrics satisfies the gameplay metrics interface without recording
// anything
type NoopMetrics struct{}

// NewNoopMetrics creates a metrics recorder that discards everything
func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (NoopMetrics) RecordGuess(ctx context.Context, source string)                 {}
func (NoopMetrics) RecordCompletion(ctx context.Context, won bool, guessesUsed int) {}
func (NoopMetrics) RecordSubmission(ctx context.Context)                            {}
