// Package metrics exposes engine activity as Prometheus metrics.
//
// Metrics include:
//   - cache lookups by result (hit, miss)
//   - evaluations by verdict, plus overrides
//   - confidence score distribution
//   - investigation duration and outcome
package metrics

import (
	"sleuth/internal/engine"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sleuth"

// Collector implements engine.Observer on top of Prometheus metrics.
// All operations are thread-safe.
type Collector struct {
	// CacheLookups counts query cache lookups. Labels: result (hit, miss)
	CacheLookups *prometheus.CounterVec

	// Evaluations counts freshly evaluated pairs. Labels: verdict (guilty, not_guilty)
	Evaluations *prometheus.CounterVec

	// Overrides counts guilty verdicts granted despite incomplete conditions.
	Overrides prometheus.Counter

	// Confidence records the confidence score of every evaluation.
	Confidence prometheus.Histogram

	// InvestigationDuration measures InvestigateAll latency.
	InvestigationDuration prometheus.Histogram

	// InvestigationGuilty holds the guilty count of the latest investigation.
	InvestigationGuilty prometheus.Gauge
}

// NewCollector creates the engine metrics and registers them with reg.
// Panics if a metric with the same name is already registered.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Query cache lookups by result",
		}, []string{"result"}),
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Evaluated suspect and crime pairs by verdict",
		}, []string{"verdict"}),
		Overrides: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overrides_total",
			Help:      "Guilty verdicts granted by the substantial evidence override",
		}),
		Confidence: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "confidence",
			Help:      "Confidence score of evaluated pairs",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		InvestigationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "investigation",
			Name:      "duration_seconds",
			Help:      "Duration of full investigations in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		InvestigationGuilty: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "investigation",
			Name:      "guilty",
			Help:      "Guilty pairs found by the latest investigation",
		}),
	}
}

func (c *Collector) CacheHit() {
	c.CacheLookups.WithLabelValues("hit").Inc()
}

func (c *Collector) CacheMiss() {
	c.CacheLookups.WithLabelValues("miss").Inc()
}

func (c *Collector) Evaluated(result engine.QueryResult) {
	verdict := "not_guilty"
	if result.Guilty {
		verdict = "guilty"
	}
	c.Evaluations.WithLabelValues(verdict).Inc()
	if result.Overridden {
		c.Overrides.Inc()
	}
	c.Confidence.Observe(result.Confidence)
}

func (c *Collector) Investigated(elapsed time.Duration, statistics engine.Statistics) {
	c.InvestigationDuration.Observe(elapsed.Seconds())
	c.InvestigationGuilty.Set(float64(statistics.Guilty))
}
