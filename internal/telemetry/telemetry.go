// Package telemetry wires OpenTelemetry metrics and tracing around the
// pipeline/mirror comparison, grounded in the teacher's pervasive OTel
// instrumentation. The pure core never imports this package; a caller
// wraps pipeline.Run and pkg/mirror's re-derivation with it from the
// outside.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/northwood-systems/govkernel"

// Comparator instruments a side-by-side run of the primary pipeline and
// the mirror re-evaluator: a span per run and a counter for every
// divergence caught.
type Comparator struct {
	tracer     trace.Tracer
	divergence metric.Int64Counter
	runs       metric.Int64Counter
}

// NewComparator builds a Comparator from the process's global OTel
// providers.
func NewComparator() (*Comparator, error) {
	meter := otel.Meter(instrumentationName)

	divergence, err := meter.Int64Counter(
		"govkernel.mirror.divergence",
		metric.WithDescription("count of primary/mirror verdict mismatches"),
	)
	if err != nil {
		return nil, err
	}

	runs, err := meter.Int64Counter(
		"govkernel.pipeline.runs",
		metric.WithDescription("count of pipeline runs compared against the mirror"),
	)
	if err != nil {
		return nil, err
	}

	return &Comparator{
		tracer:     otel.Tracer(instrumentationName),
		divergence: divergence,
		runs:       runs,
	}, nil
}

// RecordRun opens a span for one pipeline/mirror comparison and, if
// primary and mirror disagreed, increments the divergence counter and
// marks the span.
func (c *Comparator) RecordRun(ctx context.Context, sessionID, primaryVerdict, mirrorVerdict string) {
	_, span := c.tracer.Start(ctx, "pipeline.compare",
		trace.WithAttributes(
			attribute.String("session_id", sessionID),
			attribute.String("primary_verdict", primaryVerdict),
			attribute.String("mirror_verdict", mirrorVerdict),
		),
	)
	defer span.End()

	c.runs.Add(ctx, 1)
	if primaryVerdict != mirrorVerdict {
		c.divergence.Add(ctx, 1, metric.WithAttributes(
			attribute.String("session_id", sessionID),
			attribute.String("primary_verdict", primaryVerdict),
			attribute.String("mirror_verdict", mirrorVerdict),
		))
		span.AddEvent("verdict divergence")
	}
}
