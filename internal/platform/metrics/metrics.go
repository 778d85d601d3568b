package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the extraction pipeline collectors. A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	registry   *prometheus.Registry
	strategies *prometheus.CounterVec
	stages     *prometheus.CounterVec
	llmLatency prometheus.Histogram
	jobs       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		strategies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "extractor",
			Name:      "fetch_strategy_total",
			Help:      "Fetch strategy attempts by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "extractor",
			Name:      "pipeline_stage_total",
			Help:      "Pipeline stage completions by stage and outcome.",
		}, []string{"stage", "outcome"}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "extractor",
			Name:      "llm_request_seconds",
			Help:      "Latency of language model calls.",
			Buckets:   []float64{0.5, 1, 2, 4, 8, 15, 30, 60},
		}),
		jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "extractor",
			Name:      "jobs_total",
			Help:      "Asynchronous extraction jobs by final status.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(
		m.strategies,
		m.stages,
		m.llmLatency,
		m.jobs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) StrategyResult(strategy, outcome string) {
	if m == nil {
		return
	}
	m.strategies.WithLabelValues(strategy, outcome).Inc()
}

func (m *Metrics) StageResult(stage, outcome string) {
	if m == nil {
		return
	}
	m.stages.WithLabelValues(stage, outcome).Inc()
}

func (m *Metrics) ObserveLLM(d time.Duration) {
	if m == nil {
		return
	}
	m.llmLatency.Observe(d.Seconds())
}

func (m *Metrics) JobFinished(status string) {
	if m == nil {
		return
	}
	m.jobs.WithLabelValues(status).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
