package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/framearena/bench"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(flags{})
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultConfig(), cfg)
}

func TestLoadConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frames: 10\nruns: 2\ncapacity: 65536\n"), 0o644))

	f := flags{configFile: path, runs: 4, seed: 3}
	f.set.runs, f.set.seed = true, true
	cfg, err := loadConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Frames)
	assert.Equal(t, 4, cfg.Runs)
	assert.Equal(t, 65536, cfg.Capacity)
	assert.Equal(t, uint64(3), cfg.Seed)
}

func TestLoadConfigInvalid(t *testing.T) {
	f := flags{minEntities: 500, maxEntities: 400}
	f.set.minEntities, f.set.maxEntities = true, true
	_, err := loadConfig(f)
	require.Error(t, err)
}

func TestLoadConfigUnsetFlagsKeepFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs: 2\n"), 0o644))

	// Values without the set marks are kingpin's zero defaults.
	cfg, err := loadConfig(flags{configFile: path, runs: 7})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Runs)
}

func TestLoadConfigZeroFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_entities: 50\nseed: 42\n"), 0o644))

	f := flags{configFile: path}
	f.set.minEntities, f.set.seed = true, true
	cfg, err := loadConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MinEntities)
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestDumpMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "frames_total", Help: "h"}, []string{"allocator"})
	reg.MustRegister(c)
	c.WithLabelValues("arena").Add(3)

	var out bytes.Buffer
	require.NoError(t, dumpMetrics(&out, reg))
	assert.Equal(t, "\nMetrics:\n  frames_total{allocator=\"arena\"} 3\n", out.String())
}
