package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics exposes counters/histograms for the patient flows.
type BookingMetrics struct {
	bookedTotal     *prometheus.CounterVec
	cancelledTotal  prometheus.Counter
	emergencyTotal  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctalk",
			Name:      "appointments_booked_total",
			Help:      "Total appointments booked, by consultation type",
		}, []string{"type"}),
		cancelledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "doctalk",
			Name:      "appointments_cancelled_total",
			Help:      "Total appointments cancelled by their owner",
		}),
		emergencyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctalk",
			Name:      "emergency_alerts_total",
			Help:      "Total emergency alerts raised, by category",
		}, []string{"category"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "doctalk",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookedTotal, m.cancelledTotal, m.emergencyTotal, m.requestDuration)
	return m
}

func (m *BookingMetrics) ObserveBooked(consultationType string) {
	if m == nil {
		return
	}
	m.bookedTotal.WithLabelValues(consultationType).Inc()
}

func (m *BookingMetrics) ObserveCancelled() {
	if m == nil {
		return
	}
	m.cancelledTotal.Inc()
}

// ObserveEmergency counts an alert. An alert raised without picking a
// category is recorded as "unspecified".
func (m *BookingMetrics) ObserveEmergency(category string) {
	if m == nil {
		return
	}
	if category == "" {
		category = "unspecified"
	}
	m.emergencyTotal.WithLabelValues(category).Inc()
}

func (m *BookingMetrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, method, statusLabel(status)).Observe(elapsed.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
