// Package promarena exports arena statistics as Prometheus metrics.
package promarena

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/framearena"
)

const namespace = "framearena"

// Source provides the statistics to export. *framearena.SafeArena is the
// usual source; a plain *framearena.Arena only works when scrapes cannot run
// concurrently with its owner.
type Source interface {
	Metrics() framearena.ArenaMetrics
}

// Collector implements prometheus.Collector for one arena.
type Collector struct {
	src Source

	bytesInUse  *prometheus.Desc
	capacity    *prometheus.Desc
	peak        *prometheus.Desc
	utilization *prometheus.Desc
	resets      *prometheus.Desc
	allocations *prometheus.Desc
	failures    *prometheus.Desc
}

// NewCollector returns a Collector reading from src. constLabels tell
// several arenas apart in one registry.
func NewCollector(src Source, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, constLabels)
	}
	return &Collector{
		src:         src,
		bytesInUse:  desc("bytes_in_use", "Bytes currently reserved in the arena, alignment padding included."),
		capacity:    desc("capacity_bytes", "Size of the arena region in bytes."),
		peak:        desc("peak_bytes", "Highest number of bytes reserved at once since the arena was created."),
		utilization: desc("utilization_ratio", "Ratio of reserved bytes to capacity."),
		resets:      desc("resets_total", "Number of times the arena was reset."),
		allocations: desc("allocations_total", "Number of successful allocations."),
		failures:    desc("allocation_failures_total", "Number of allocations rejected because the arena was out of space."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytesInUse
	ch <- c.capacity
	ch <- c.peak
	ch <- c.utilization
	ch <- c.resets
	ch <- c.allocations
	ch <- c.failures
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	ch <- prometheus.MustNewConstMetric(c.bytesInUse, prometheus.GaugeValue, float64(m.SizeInUse))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity))
	ch <- prometheus.MustNewConstMetric(c.peak, prometheus.GaugeValue, float64(m.Peak))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization)
	ch <- prometheus.MustNewConstMetric(c.resets, prometheus.CounterValue, float64(m.Resets))
	ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue, float64(m.Allocations))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(m.Failures))
}
