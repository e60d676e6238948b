package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	reportsTotal      *prometheus.CounterVec
	degradationsTotal *prometheus.CounterVec
	riskScore         *prometheus.GaugeVec
	latency           *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		reportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskscope_reports_total",
				Help: "Total number of analysis reports produced",
			},
			[]string{"kind", "ticker"},
		),
		degradationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskscope_degradations_total",
				Help: "Total number of analysis components that degraded",
			},
			[]string{"component"},
		),
		riskScore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "riskscope_overall_risk_score",
				Help: "Last computed overall risk score for a ticker",
			},
			[]string{"ticker"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "riskscope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordReport records a produced report by kind and ticker.
func (r *Recorder) RecordReport(kind, ticker string) {
	r.reportsTotal.WithLabelValues(kind, ticker).Inc()
}

// RecordDegradation records a degraded analysis component.
func (r *Recorder) RecordDegradation(component string) {
	r.degradationsTotal.WithLabelValues(component).Inc()
}

// RecordRiskScore records the overall risk score for a ticker.
func (r *Recorder) RecordRiskScore(ticker string, score float64) {
	r.riskScore.WithLabelValues(ticker).Set(score)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
