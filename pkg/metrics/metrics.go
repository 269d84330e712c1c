// Package metrics defines the application meters. Pipeline instruments are
// registered on the global OpenTelemetry meter provider, which the API server
// bridges into the Prometheus registry.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Pipeline groups the instruments recorded by the background pipeline worker.
type Pipeline struct {
	stageDuration metric.Float64Histogram
	stageOutcomes metric.Int64Counter
	modelCalls    metric.Int64Counter
}

// NewPipeline creates the pipeline instruments on the named meter. Instrument
// creation errors are returned so callers can fail fast during startup.
func NewPipeline() (*Pipeline, error) {
	meter := otel.GetMeterProvider().Meter("gemflush/pipeline")

	stageDuration, err := meter.Float64Histogram("pipeline_stage_duration_seconds",
		metric.WithDescription("Duration of pipeline stages"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	stageOutcomes, err := meter.Int64Counter("pipeline_stage_total",
		metric.WithDescription("Pipeline stage executions by outcome"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	modelCalls, err := meter.Int64Counter("pipeline_model_calls_total",
		metric.WithDescription("LLM gateway calls by model and outcome"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &Pipeline{
		stageDuration: stageDuration,
		stageOutcomes: stageOutcomes,
		modelCalls:    modelCalls,
	}, nil
}

// ObserveStage records a finished stage with its duration and outcome.
func (p *Pipeline) ObserveStage(ctx context.Context, stage string, d time.Duration, err error) {
	if p == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("outcome", outcome),
	)
	p.stageDuration.Record(ctx, d.Seconds(), attrs)
	p.stageOutcomes.Add(ctx, 1, attrs)
}

// ObserveModelCall records a single LLM call for the given model.
func (p *Pipeline) ObserveModelCall(ctx context.Context, model string, err error) {
	if p == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	p.modelCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("outcome", outcome),
	))
}
