package bench

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/framearena"
)

func smallConfig() Config {
	return Config{
		Frames:      20,
		MinEntities: 10,
		MaxEntities: 200,
		Runs:        3,
		Capacity:    16 << 10,
		Seed:        42,
	}
}

func TestRunnerRun(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r, err := NewRunner(smallConfig(), nil, reg)
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(42), report.Seed)
	assert.Equal(t, 40, report.EntitySize)
	require.Len(t, report.Runs, 3)
	for _, res := range report.Runs {
		assert.GreaterOrEqual(t, res.Entities, 10)
		assert.Less(t, res.Entities, 200)
		assert.True(t, res.Arena > 0, "arena time %v", res.Arena)
		assert.True(t, res.Heap > 0, "heap time %v", res.Heap)
	}

	// Every frame ends with a reset, so the last arena is empty again.
	m := r.Metrics()
	assert.Equal(t, 0, m.SizeInUse)
	assert.Equal(t, uint64(20), m.Resets)
	assert.Equal(t, (report.Runs[2].Entities+1)*40, m.Peak)

	expected := `
# HELP framearena_bench_frames_total Total number of benchmark frames completed, by allocator.
# TYPE framearena_bench_frames_total counter
framearena_bench_frames_total{allocator="arena"} 60
framearena_bench_frames_total{allocator="heap"} 60
`
	require.NoError(t, testutil.CollectAndCompare(reg, strings.NewReader(expected), "framearena_bench_frames_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "framearena_bench_run_duration_seconds"))
}

func TestRunnerSeedIsReproducible(t *testing.T) {
	entities := func() []int {
		r, err := NewRunner(smallConfig(), nil, nil)
		require.NoError(t, err)
		report, err := r.Run(context.Background())
		require.NoError(t, err)
		var out []int
		for _, res := range report.Runs {
			out = append(out, res.Entities)
		}
		return out
	}
	assert.Equal(t, entities(), entities())
}

func TestRunnerOutOfSpace(t *testing.T) {
	cfg := smallConfig()
	cfg.MinEntities = 13107
	cfg.MaxEntities = 20000
	cfg.Capacity = 524288

	reg := prometheus.NewPedanticRegistry()
	r, err := NewRunner(cfg, nil, reg)
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.ErrorIs(t, err, framearena.ErrOutOfSpace)
	assert.Contains(t, err.Error(), "run 1")
	assert.Empty(t, report.Runs)

	// The player of the failed frame was counted before the enemies missed.
	assert.Equal(t, uint64(1), r.Metrics().Failures)
	assert.Equal(t, 40, r.Metrics().Peak)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.metrics.outOfSpaceTotal))
}

func TestRunnerInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Runs = 0
	_, err := NewRunner(cfg, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid benchmark config")
}

func TestRunnerCancelled(t *testing.T) {
	r, err := NewRunner(smallConfig(), nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunnerMetricsBeforeRun(t *testing.T) {
	r, err := NewRunner(smallConfig(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, framearena.ArenaMetrics{}, r.Metrics())
}
