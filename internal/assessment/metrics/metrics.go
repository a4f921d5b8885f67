package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the assessment module.
type Metrics struct {
	// Latency of individual judge calls
	JudgeLatency prometheus.Histogram

	// Verdict outcomes by status
	VerdictOutcomes *prometheus.CounterVec

	// Control-level rollup outcomes by status
	ControlOutcomes *prometheus.CounterVec

	// Overall per-document assessment latency
	AssessLatency prometheus.Histogram
}

// New creates a Metrics instance with all assessment metrics registered.
func New() *Metrics {
	return &Metrics{
		JudgeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "attest_judge_call_duration_seconds",
			Help:    "Duration of individual judge completions",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),

		VerdictOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attest_verdict_outcomes_total",
			Help: "Total sub-requirement verdicts by status",
		}, []string{"status"}),

		ControlOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attest_control_outcomes_total",
			Help: "Total control-level rollup outcomes by status",
		}, []string{"status"}),

		AssessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "attest_assessment_duration_seconds",
			Help:    "Duration of a full document assessment including all judge calls",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
	}
}

// ObserveJudgeLatency records the duration of one judge call.
func (m *Metrics) ObserveJudgeLatency(d time.Duration) {
	if m != nil {
		m.JudgeLatency.Observe(d.Seconds())
	}
}

// IncrementVerdict records a sub-requirement verdict outcome.
func (m *Metrics) IncrementVerdict(status string) {
	if m != nil {
		m.VerdictOutcomes.WithLabelValues(status).Inc()
	}
}

// IncrementControlOutcome records a control rollup outcome.
func (m *Metrics) IncrementControlOutcome(status string) {
	if m != nil {
		m.ControlOutcomes.WithLabelValues(status).Inc()
	}
}

// ObserveAssessLatency records the total assessment duration.
func (m *Metrics) ObserveAssessLatency(d time.Duration) {
	if m != nil {
		m.AssessLatency.Observe(d.Seconds())
	}
}
