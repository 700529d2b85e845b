package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulerMetrics exposes counters/histograms for the scheduling flow.
type SchedulerMetrics struct {
	submissions    *prometheus.CounterVec
	navigations    *prometheus.CounterVec
	bookingLatency *prometheus.HistogramVec
}

func NewSchedulerMetrics(reg prometheus.Registerer) *SchedulerMetrics {
	m := &SchedulerMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sorriso",
			Subsystem: "scheduler",
			Name:      "submissions_total",
			Help:      "Appointment submissions by result",
		}, []string{"result"}),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sorriso",
			Subsystem: "scheduler",
			Name:      "navigations_total",
			Help:      "Month navigations by direction",
		}, []string{"direction"}),
		bookingLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sorriso",
			Subsystem: "scheduler",
			Name:      "booking_latency_seconds",
			Help:      "Latency of booking calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.navigations, m.bookingLatency)
	return m
}

// ObserveSubmission counts one submit; result is "success", "invalid" or "error".
func (m *SchedulerMetrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result).Inc()
}

func (m *SchedulerMetrics) ObserveNavigation(direction string) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(direction).Inc()
}

func (m *SchedulerMetrics) ObserveBookingLatency(result string, seconds float64) {
	if m == nil {
		return
	}
	m.bookingLatency.WithLabelValues(result).Observe(seconds)
}
