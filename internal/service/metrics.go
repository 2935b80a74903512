package service

import (
	"glassjoke/internal/models"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "glassjoke"

// Metrics counts simulated days. A nil *Metrics records nothing.
type Metrics struct {
	days     *prometheus.CounterVec
	ticks    prometheus.Counter
	consumed prometheus.Counter
	refills  prometheus.Counter
	perDay   prometheus.Histogram
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		days: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "days_total",
			Help:      "Simulated days by final status.",
		}, []string{"status"}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ticks_total",
			Help:      "Ticks simulated across all days.",
		}),
		consumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "consumed_units_total",
			Help:      "Liquid units drunk across all days.",
		}),
		refills: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "refills_total",
			Help:      "Container refills across all days.",
		}),
		perDay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "day_consumed_units",
			Help:      "Liquid units drunk per simulated day.",
			Buckets:   prometheus.LinearBuckets(0, 250, 8),
		}),
	}
	reg.MustRegister(m.days, m.ticks, m.consumed, m.refills, m.perDay)
	return m
}

// Observe records a finished run.
func (m *Metrics) Observe(run models.DayRun) {
	if m == nil {
		return
	}
	m.days.WithLabelValues(run.Status).Inc()
	m.ticks.Add(float64(len(run.Ticks)))
	m.consumed.Add(float64(run.ConsumedML))
	m.refills.Add(float64(run.Refills))
	m.perDay.Observe(float64(run.ConsumedML))
}
