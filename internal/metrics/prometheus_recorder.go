package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	localeBuild   *prom.HistogramVec
	buildDuration prom.Histogram
	pagesRendered *prom.CounterVec
	buildOutcome  *prom.CounterVec
	searchRemoved prom.Counter
}

// NewPrometheusRecorder constructs and registers the build metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		localeBuild: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "i18ndocs",
			Name:      "locale_build_duration_seconds",
			Help:      "Duration of individual locale builds",
			Buckets:   prom.DefBuckets,
		}, []string{"locale"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "i18ndocs",
			Name:      "build_duration_seconds",
			Help:      "Total build duration across all locales",
			Buckets:   prom.DefBuckets,
		}),
		pagesRendered: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "i18ndocs",
			Name:      "pages_rendered_total",
			Help:      "Rendered page counts per locale",
		}, []string{"locale"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "i18ndocs",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		searchRemoved: prom.NewCounter(prom.CounterOpts{
			Namespace: "i18ndocs",
			Name:      "search_entries_removed_total",
			Help:      "Search entries removed by cross-locale deduplication",
		}),
	}
	reg.MustRegister(pr.localeBuild, pr.buildDuration, pr.pagesRendered, pr.buildOutcome, pr.searchRemoved)
	return pr
}

func (p *PrometheusRecorder) ObserveLocaleBuild(locale string, d time.Duration) {
	p.localeBuild.WithLabelValues(locale).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) AddPagesRendered(locale string, n int) {
	p.pagesRendered.WithLabelValues(locale).Add(float64(n))
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome string) {
	p.buildOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) AddSearchEntriesRemoved(n int) {
	p.searchRemoved.Add(float64(n))
}
