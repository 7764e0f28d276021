package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	allocatorArena = "arena"
	allocatorHeap  = "heap"
)

type metrics struct {
	framesTotal     *prometheus.CounterVec
	runDuration     *prometheus.HistogramVec
	outOfSpaceTotal prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		framesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "framearena",
			Subsystem: "bench",
			Name:      "frames_total",
			Help:      "Total number of benchmark frames completed, by allocator.",
		}, []string{"allocator"}),
		runDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "framearena",
			Subsystem: "bench",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one benchmark run, by allocator.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"allocator"}),
		outOfSpaceTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "framearena",
			Subsystem: "bench",
			Name:      "out_of_space_total",
			Help:      "Total number of runs aborted because a frame did not fit the arena.",
		}),
	}
}
