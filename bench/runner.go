package bench

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/framearena"
	"github.com/pavanmanishd/framearena/entity"
	"github.com/pavanmanishd/framearena/frame"
)

// sink keeps heap waves reachable so the baseline cannot be optimized away.
var sink entity.Wave

// Runner executes the runs described by a Config.
type Runner struct {
	cfg     Config
	seed    uint64
	rng     *rand.Rand
	logger  log.Logger
	metrics *metrics

	// arena serving the current or last run, exported through Metrics.
	arena *framearena.Arena
}

// NewRunner validates cfg and prepares a Runner. A zero cfg.Seed picks a
// seed from the clock; Report.Seed records it either way. reg may be nil.
func NewRunner(cfg Config, logger log.Logger, reg prometheus.Registerer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid benchmark config")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Runner{
		cfg:     cfg,
		seed:    seed,
		rng:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		logger:  logger,
		metrics: newMetrics(reg),
	}, nil
}

// Run executes every configured run and returns the collected timings.
// An arena run that does not fit aborts the benchmark with an error matching
// framearena.ErrOutOfSpace; results gathered so far are returned with it.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	report := Report{
		Config:     r.cfg,
		Seed:       r.seed,
		EntitySize: entity.Size,
	}
	if !r.cfg.FitsCapacity() {
		level.Warn(r.logger).Log("msg", "largest frame exceeds arena capacity", "max_entities", r.cfg.MaxEntities, "capacity", r.cfg.Capacity)
	}

	for i := 0; i < r.cfg.Runs; i++ {
		n := r.cfg.MinEntities + r.rng.IntN(r.cfg.MaxEntities-r.cfg.MinEntities)
		level.Info(r.logger).Log("msg", "starting run", "run", i+1, "frames", r.cfg.Frames, "entities", n)

		arenaTime, err := r.runArena(ctx, n)
		if err != nil {
			if errors.Is(err, framearena.ErrOutOfSpace) {
				r.metrics.outOfSpaceTotal.Inc()
			}
			return report, errors.Wrapf(err, "run %d (%d entities)", i+1, n)
		}
		heapTime, err := r.runHeap(ctx, n)
		if err != nil {
			return report, errors.Wrapf(err, "run %d (%d entities)", i+1, n)
		}

		res := RunResult{Entities: n, Arena: arenaTime, Heap: heapTime}
		report.Runs = append(report.Runs, res)
		level.Info(r.logger).Log("msg", "run complete", "run", i+1, "arena", res.Arena, "heap", res.Heap)
	}
	return report, nil
}

// runArena times cfg.Frames waves of n enemies served by a fresh arena.
func (r *Runner) runArena(ctx context.Context, n int) (time.Duration, error) {
	start := time.Now()
	a, err := framearena.NewArena(r.cfg.Capacity)
	if err != nil {
		return 0, err
	}
	r.arena = a

	// The timed loop does not log.
	loop := frame.NewLoop(a, nil)
	stats, err := loop.Run(ctx, r.cfg.Frames, func(_ context.Context, f frame.Frame) error {
		_, err := entity.SpawnWave(f.Arena, n)
		return err
	})
	elapsed := time.Since(start)
	r.metrics.framesTotal.WithLabelValues(allocatorArena).Add(float64(stats.Frames))
	if err != nil {
		return 0, err
	}
	r.metrics.runDuration.WithLabelValues(allocatorArena).Observe(elapsed.Seconds())
	return elapsed, nil
}

// runHeap times the same workload allocating every wave on the Go heap.
func (r *Runner) runHeap(ctx context.Context, n int) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < r.cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		sink = entity.SpawnWaveHeap(n)
	}
	elapsed := time.Since(start)
	r.metrics.framesTotal.WithLabelValues(allocatorHeap).Add(float64(r.cfg.Frames))
	r.metrics.runDuration.WithLabelValues(allocatorHeap).Observe(elapsed.Seconds())
	return elapsed, nil
}

// Metrics returns the statistics of the arena used by the current or last
// run, or a zero snapshot before the first run. It must not be called while
// Run is in progress on another goroutine.
func (r *Runner) Metrics() framearena.ArenaMetrics {
	if r.arena == nil {
		return framearena.ArenaMetrics{}
	}
	return r.arena.Metrics()
}
