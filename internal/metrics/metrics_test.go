package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestRecorder_NoopMeter(t *testing.T) {
	r, err := NewRecorderWithMeter(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		r.Kill("explosion")
		r.Hit("immune")
		r.Explosion()
		r.Conversion()
	})
}

func TestRecorder_GlobalProvider(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Kill("melee")
		r.Hit("miss")
		r.Explosion()
		r.Conversion()
	})
}
