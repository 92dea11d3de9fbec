package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatencyStats_Empty(t *testing.T) {
	stats := ComputeLatencyStats(nil)

	assert.True(t, stats.IsZero())
	assert.Zero(t, stats.Mean)
	assert.NotNil(t, stats.Percentiles)
}

func TestComputeLatencyStats_SingleValue(t *testing.T) {
	stats := ComputeLatencyStats([]time.Duration{10 * time.Millisecond})

	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 10*time.Millisecond, stats.Max)
	assert.Equal(t, 10*time.Millisecond, stats.P50())
	assert.Equal(t, 10*time.Millisecond, stats.P99())
	assert.Zero(t, stats.Stddev)
	assert.False(t, stats.IsZero())
}

func TestComputeLatencyStats_MultipleValues(t *testing.T) {
	samples := []time.Duration{
		50 * time.Millisecond,
		10 * time.Millisecond,
		30 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
	}

	stats := ComputeLatencyStats(samples)

	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 50*time.Millisecond, stats.Max)
	assert.Equal(t, 30*time.Millisecond, stats.Mean)
	assert.Equal(t, 30*time.Millisecond, stats.P50())
	assert.Equal(t, 46*time.Millisecond, stats.P90())
	assert.Equal(t, 5, stats.SampleCount)
	assert.Equal(t, 50*time.Millisecond, samples[0], "input must not be reordered")
}

func TestMerge(t *testing.T) {
	a := ComputeLatencyStats([]time.Duration{10 * time.Millisecond})
	b := ComputeLatencyStats([]time.Duration{20 * time.Millisecond, 30 * time.Millisecond})

	merged := Merge(a, b)

	assert.Equal(t, 3, merged.SampleCount)
	assert.Equal(t, 10*time.Millisecond, merged.Min)
	assert.Equal(t, 30*time.Millisecond, merged.Max)
	assert.Equal(t, 20*time.Millisecond, merged.Mean)
}
