package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "frauddesk",
		Name:      "analyses_total",
		Help:      "Completed risk analyses by scoring path.",
	}, []string{"path"}) // "remote", "fallback"

	ScoringFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "frauddesk",
		Name:      "scoring_failures_total",
		Help:      "Remote scoring failures by reason.",
	}, []string{"reason"}) // "connect", "status", "decode"

	AnalysisLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "frauddesk",
		Name:      "analysis_latency_seconds",
		Help:      "End-to-end analysis latency, fallback delay included.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 1.5, 2.5, 5, 10},
	})

	WSClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "frauddesk",
		Name:      "ws_clients",
		Help:      "Connected dashboard WebSocket clients.",
	})
)

func init() {
	prometheus.MustRegister(
		AnalysesTotal,
		ScoringFailures,
		AnalysisLatency,
		WSClients,
	)
}
