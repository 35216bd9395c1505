package middleware

import (
	"net/http"
	"time"

	"github.com/janhvi13092005/doc-talk-connect/internal/observability/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// AccessLogMiddleware logs one line per request and records its latency.
type AccessLogMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.BookingMetrics
}

func NewAccessLogMiddleware(log *logrus.Logger, bookingMetrics *metrics.BookingMetrics) *AccessLogMiddleware {
	return &AccessLogMiddleware{
		log:     log,
		metrics: bookingMetrics,
	}
}

func (m *AccessLogMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		route := routeTemplate(r)
		m.metrics.ObserveRequest(route, r.Method, rec.status, elapsed)

		entry := m.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"route":       route,
			"status":      rec.status,
			"duration_ms": elapsed.Milliseconds(),
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request handled")
	})
}

// routeTemplate keeps metric labels bounded: ids in the path are not used.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
