package metrics

import (
	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusEmitter 行为事件的进程内计数，挂在 /metrics 暴露。
type PrometheusEmitter struct {
	events *prometheus.CounterVec
	scores prometheus.Histogram
}

func NewPrometheusEmitter() *PrometheusEmitter {
	return &PrometheusEmitter{
		events: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "engagement_events_total",
			Help: "Number of engagement events recorded, by action.",
		}, []string{"action"}),
		scores: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "engagement_event_score",
			Help:    "Distribution of engagement event scores.",
			Buckets: prometheus.LinearBuckets(0, 0.1, 6),
		}),
	}
}

func (e *PrometheusEmitter) ObserveEngagement(action domain.EngagementAction, score float64) {
	e.events.WithLabelValues(string(action)).Inc()
	e.scores.Observe(score)
}
