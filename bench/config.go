// Package bench compares frame workloads served by an arena against the same
// workloads on the Go heap.
package bench

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/framearena/entity"
)

// Config controls a benchmark. Zero values are not meaningful; start from
// DefaultConfig.
type Config struct {
	Frames      int    `yaml:"frames"`
	MinEntities int    `yaml:"min_entities"`
	MaxEntities int    `yaml:"max_entities"`
	Runs        int    `yaml:"runs"`
	Capacity    int    `yaml:"capacity"`
	Seed        uint64 `yaml:"seed"`
}

// DefaultConfig returns 5 runs of 10000 frames with 100 to 10000 enemies per
// frame, served from a 512 KiB arena.
func DefaultConfig() Config {
	return Config{
		Frames:      10000,
		MinEntities: 100,
		MaxEntities: 10000,
		Runs:        5,
		Capacity:    512 << 10,
	}
}

// Validate reports the first problem with cfg.
func (cfg Config) Validate() error {
	switch {
	case cfg.Frames <= 0:
		return errors.Errorf("frames must be positive, got %d", cfg.Frames)
	case cfg.Runs <= 0:
		return errors.Errorf("runs must be positive, got %d", cfg.Runs)
	case cfg.MinEntities < 0:
		return errors.Errorf("min_entities must not be negative, got %d", cfg.MinEntities)
	case cfg.MaxEntities <= cfg.MinEntities:
		return errors.Errorf("max_entities (%d) must be greater than min_entities (%d)", cfg.MaxEntities, cfg.MinEntities)
	case cfg.Capacity <= 0:
		return errors.Errorf("capacity must be positive, got %d", cfg.Capacity)
	}
	return nil
}

// FitsCapacity reports whether the largest possible frame fits the arena.
// A run whose entity count does not fit fails with an out-of-space error.
func (cfg Config) FitsCapacity() bool {
	return cfg.MaxEntities*entity.Size <= cfg.Capacity
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}
