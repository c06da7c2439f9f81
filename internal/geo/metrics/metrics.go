package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for seed loading. Methods are nil-safe so
// callers that do not care about metrics can pass a nil instance.
type Metrics struct {
	EntitiesLoaded *prometheus.CounterVec
	LoadFailures   prometheus.Counter
	LoadDuration   prometheus.Histogram
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return &Metrics{
		EntitiesLoaded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "georef_seed_entities_loaded_total",
			Help: "Total number of seed entities loaded into the target store",
		}, []string{"family"}),
		LoadFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "georef_seed_load_failures_total",
			Help: "Total number of failed seed load runs",
		}),
		LoadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "georef_seed_load_duration_seconds",
			Help:    "Duration of complete seed load runs",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementLoaded records n loaded entities for one family.
func (m *Metrics) IncrementLoaded(family string, n int) {
	if m == nil {
		return
	}
	m.EntitiesLoaded.WithLabelValues(family).Add(float64(n))
}

// IncrementFailures records a failed load run.
func (m *Metrics) IncrementFailures() {
	if m == nil {
		return
	}
	m.LoadFailures.Inc()
}

// ObserveLoad records the duration of a load run. Call with time.Now() taken
// at the start of the run.
func (m *Metrics) ObserveLoad(start time.Time) {
	if m == nil {
		return
	}
	m.LoadDuration.Observe(time.Since(start).Seconds())
}
