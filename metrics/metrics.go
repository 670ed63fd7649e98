// Package metrics counts the work done by radix sorts with Prometheus metrics.
//
// A Collector is a radixsort.Observer:
//
//	c := metrics.New()
//	list := radixsort.New(radixsort.WithObserver(c))
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	radixsort "github.com/NarmeenMousa31/Radix-Sort"
)

const namespace = "radixsort"

// Collector holds the sort metrics on its own registry.
type Collector struct {
	registry    *prometheus.Registry
	passes      prometheus.Counter
	distributed prometheus.Counter
	sorts       prometheus.Counter
	duration    prometheus.Histogram
	buckets     prometheus.Gauge
}

var _ radixsort.Observer = (*Collector)(nil)

// New creates a collector and registers its metrics.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_total",
			Help:      "Distribution passes run.",
		}),
		distributed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_distributed_total",
			Help:      "Records moved into buckets, summed over all passes.",
		}),
		sorts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sorts_total",
			Help:      "Completed sorts.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sort_duration_seconds",
			Help:      "Wall time of one sort.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		buckets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "buckets_used",
			Help:      "Non-empty buckets in the last pass.",
		}),
	}
	c.registry.MustRegister(c.passes, c.distributed, c.sorts, c.duration, c.buckets)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObservePass implements radixsort.Observer.
func (c *Collector) ObservePass(position, records, buckets int) {
	c.passes.Inc()
	c.distributed.Add(float64(records))
	c.buckets.Set(float64(buckets))
}

// ObserveSort implements radixsort.Observer.
func (c *Collector) ObserveSort(passes int, elapsed time.Duration) {
	c.sorts.Inc()
	c.duration.Observe(elapsed.Seconds())
}

// Snapshot is a plain copy of the current metric values.
type Snapshot struct {
	Passes      float64
	Distributed float64
	Sorts       float64
	LastBuckets float64
	SortSeconds float64 // sum over all sorts
}

// Snapshot gathers the registry.
func (c *Collector) Snapshot() (Snapshot, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return Snapshot{}, fmt.Errorf("gathering sort metrics: %w", err)
	}
	var s Snapshot
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case namespace + "_passes_total":
				s.Passes = m.GetCounter().GetValue()
			case namespace + "_records_distributed_total":
				s.Distributed = m.GetCounter().GetValue()
			case namespace + "_sorts_total":
				s.Sorts = m.GetCounter().GetValue()
			case namespace + "_buckets_used":
				s.LastBuckets = m.GetGauge().GetValue()
			case namespace + "_sort_duration_seconds":
				s.SortSeconds = m.GetHistogram().GetSampleSum()
			}
		}
	}
	return s, nil
}

func (s Snapshot) String() string {
	return fmt.Sprintf("sorts=%.0f passes=%.0f distributed=%.0f last_buckets=%.0f sort_seconds=%.6f",
		s.Sorts, s.Passes, s.Distributed, s.LastBuckets, s.SortSeconds)
}
