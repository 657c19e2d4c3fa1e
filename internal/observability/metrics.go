package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the inventory
// registry and template expansion.
type Metrics struct {
	TablesLoaded         prometheus.Counter
	TemplatesLoaded      prometheus.Counter
	RegistryLoadDuration prometheus.Histogram

	// Expansion metrics.
	ConfigsBuilt       *prometheus.CounterVec // labels: region, product
	ExpansionsComputed prometheus.Counter
	ExpansionErrors    prometheus.Counter
}

// NewMetrics creates and registers all inventory metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		TablesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hrrr_inventory",
			Name:      "tables_loaded_total",
			Help:      "Packaged layer tables loaded into the registry.",
		}),
		TemplatesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hrrr_inventory",
			Name:      "templates_loaded_total",
			Help:      "Template entries loaded across all tables.",
		}),
		RegistryLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hrrr_inventory",
			Name:      "registry_load_duration_seconds",
			Help:      "Duration of the one-time registry load.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		ConfigsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hrrr_inventory",
			Name:      "cycle_run_configs_built_total",
			Help:      "Cycle run configs built, by region and product.",
		}, []string{"region", "product"}),
		ExpansionsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hrrr_inventory",
			Name:      "expansions_computed_total",
			Help:      "Template entries expanded into concrete variables.",
		}),
		ExpansionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hrrr_inventory",
			Name:      "expansion_errors_total",
			Help:      "Template expansion failures.",
		}),
	}

	prometheus.MustRegister(
		m.TablesLoaded,
		m.TemplatesLoaded,
		m.RegistryLoadDuration,
		m.ConfigsBuilt,
		m.ExpansionsComputed,
		m.ExpansionErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		TablesLoaded:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hrrr_inventory", Name: "tables_loaded_total"}),
		TemplatesLoaded:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hrrr_inventory", Name: "templates_loaded_total"}),
		RegistryLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "hrrr_inventory", Name: "registry_load_duration_seconds"}),
		ConfigsBuilt:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hrrr_inventory", Name: "cycle_run_configs_built_total"}, []string{"region", "product"}),
		ExpansionsComputed:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hrrr_inventory", Name: "expansions_computed_total"}),
		ExpansionErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hrrr_inventory", Name: "expansion_errors_total"}),
	}
}
