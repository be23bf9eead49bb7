package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request-ID assignment, structured
// request logging, and Prometheus instrumentation.
func (c *Component) instrument(name string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		handler(recorder, r)

		elapsed := time.Since(start)
		c.metrics.requestsTotal.WithLabelValues(name, r.Method, strconv.Itoa(recorder.status)).Inc()
		c.metrics.requestDuration.WithLabelValues(name).Observe(elapsed.Seconds())

		c.logger.Info("Request handled",
			"handler", name,
			"method", r.Method,
			"status", recorder.status,
			"duration_ms", elapsed.Milliseconds(),
			"request_id", requestID,
		)
	}
}
