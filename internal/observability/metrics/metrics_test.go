package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := true
			for _, pair := range metric.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					matched = false
				}
			}
			if matched {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveBooked("video")
	m.ObserveBooked("video")
	m.ObserveBooked("chat")
	m.ObserveCancelled()
	m.ObserveEmergency("")
	m.ObserveRequest("/api/v1/doctors", http.MethodGet, http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 2.0, counterValue(t, reg, "doctalk_appointments_booked_total", map[string]string{"type": "video"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "doctalk_appointments_booked_total", map[string]string{"type": "chat"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "doctalk_appointments_cancelled_total", nil))
	assert.Equal(t, 1.0, counterValue(t, reg, "doctalk_emergency_alerts_total", map[string]string{"category": "unspecified"}))
}

func TestBookingMetricsDefaultRegistry(t *testing.T) {
	m := NewBookingMetrics(nil)
	m.ObserveEmergency("medical")
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveBooked("video")
	m.ObserveCancelled()
	m.ObserveEmergency("safety")
	m.ObserveRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "2xx", statusLabel(http.StatusCreated))
	assert.Equal(t, "3xx", statusLabel(http.StatusSeeOther))
	assert.Equal(t, "4xx", statusLabel(http.StatusConflict))
	assert.Equal(t, "5xx", statusLabel(http.StatusNotImplemented))
}
