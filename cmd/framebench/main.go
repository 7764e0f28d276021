// Command framebench times a frame workload served by a frame arena against
// the same workload allocated on the Go heap.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/pavanmanishd/framearena/bench"
	"github.com/pavanmanishd/framearena/internal/logging"
	"github.com/pavanmanishd/framearena/promarena"
)

type flags struct {
	configFile  string
	frames      int
	runs        int
	minEntities int
	maxEntities int
	capacity    int
	seed        uint64
	logLevel    string
	dumpMetrics bool

	// set records which overriding flags appeared on the command line.
	set struct {
		frames, runs, minEntities, maxEntities, capacity, seed bool
	}
}

func main() {
	app := kingpin.New("framebench", "Compare frame arena allocation with Go heap allocation.")
	app.HelpFlag.Short('h')

	var f flags
	app.Flag("config.file", "YAML file with benchmark settings. Flags override it.").ExistingFileVar(&f.configFile)
	app.Flag("frames", "Frames per run.").IsSetByUser(&f.set.frames).IntVar(&f.frames)
	app.Flag("runs", "Number of runs.").IsSetByUser(&f.set.runs).IntVar(&f.runs)
	app.Flag("min-entities", "Smallest enemy count per frame.").IsSetByUser(&f.set.minEntities).IntVar(&f.minEntities)
	app.Flag("max-entities", "Enemy count upper bound (exclusive).").IsSetByUser(&f.set.maxEntities).IntVar(&f.maxEntities)
	app.Flag("capacity", "Arena capacity in bytes.").IsSetByUser(&f.set.capacity).IntVar(&f.capacity)
	app.Flag("seed", "Seed for entity counts. 0 picks one from the clock.").IsSetByUser(&f.set.seed).Uint64Var(&f.seed)
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").EnumVar(&f.logLevel, logging.Levels...)
	app.Flag("metrics.dump", "Print the collected Prometheus metrics after the report.").BoolVar(&f.dumpMetrics)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New(os.Stderr, f.logLevel)
	if err != nil {
		app.Fatalf("%v", err)
	}

	cfg, err := loadConfig(f)
	if err != nil {
		app.Fatalf("%v", err)
	}

	reg := prometheus.NewRegistry()
	runner, err := bench.NewRunner(cfg, logger, reg)
	if err != nil {
		app.Fatalf("%v", err)
	}
	reg.MustRegister(promarena.NewCollector(runner, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintln(os.Stdout, "Running benchmarks...")
	report, err := runner.Run(ctx)
	if _, werr := report.WriteTo(os.Stdout); werr != nil {
		level.Error(logger).Log("msg", "writing report", "err", werr)
	}
	if f.dumpMetrics {
		if derr := dumpMetrics(os.Stdout, reg); derr != nil {
			level.Error(logger).Log("msg", "gathering metrics", "err", derr)
		}
	}
	if err != nil {
		level.Error(logger).Log("msg", "benchmark failed", "err", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig layers flags given on the command line over the config file
// over defaults. A flag set to 0 still overrides.
func loadConfig(f flags) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if f.configFile != "" {
		var err error
		if cfg, err = bench.LoadConfig(f.configFile); err != nil {
			return cfg, err
		}
	}
	override := func(dst *int, v int, set bool) {
		if set {
			*dst = v
		}
	}
	override(&cfg.Frames, f.frames, f.set.frames)
	override(&cfg.Runs, f.runs, f.set.runs)
	override(&cfg.MinEntities, f.minEntities, f.set.minEntities)
	override(&cfg.MaxEntities, f.maxEntities, f.set.maxEntities)
	override(&cfg.Capacity, f.capacity, f.set.capacity)
	if f.set.seed {
		cfg.Seed = f.seed
	}
	return cfg, cfg.Validate()
}

// dumpMetrics writes every gathered sample as "name{labels} value".
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nMetrics:")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "  %s%s %g\n", mf.GetName(), formatLabels(m.GetLabel()), sampleValue(mf.GetType(), m))
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}

// sampleValue picks the headline number of a metric; histograms report
// their sample count.
func sampleValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return m.GetUntyped().GetValue()
	}
}
