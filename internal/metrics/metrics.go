// Package metrics counts combat outcomes through OpenTelemetry.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-lane-defense/internal/metrics"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder owns the combat counters. A nil *Recorder is a valid no-op.
type Recorder struct {
	kills       metric.Int64Counter
	hits        metric.Int64Counter
	explosions  metric.Int64Counter
	conversions metric.Int64Counter
}

// NewRecorder creates counters on the global meter provider.
func NewRecorder() (*Recorder, error) {
	return NewRecorderWithMeter(meter())
}

// NewRecorderWithMeter creates counters on the given meter.
func NewRecorderWithMeter(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.kills, err = m.Int64Counter(
		"lanesim.kills",
		metric.WithDescription("Units that entered the dying state"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}

	r.hits, err = m.Int64Counter(
		"lanesim.projectile.hits",
		metric.WithDescription("Resolved projectile hits by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}

	r.explosions, err = m.Int64Counter(
		"lanesim.explosions",
		metric.WithDescription("Resolved explosions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating explosions counter: %w", err)
	}

	r.conversions, err = m.Int64Counter(
		"lanesim.conversions",
		metric.WithDescription("Committed faction conversions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating conversions counter: %w", err)
	}

	return r, nil
}

func (r *Recorder) Kill(cause string) {
	if r == nil {
		return
	}
	r.kills.Add(context.Background(), 1, metric.WithAttributes(attribute.String("cause", cause)))
}

func (r *Recorder) Hit(outcome string) {
	if r == nil {
		return
	}
	r.hits.Add(context.Background(), 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (r *Recorder) Explosion() {
	if r == nil {
		return
	}
	r.explosions.Add(context.Background(), 1)
}

func (r *Recorder) Conversion() {
	if r == nil {
		return
	}
	r.conversions.Add(context.Background(), 1)
}
