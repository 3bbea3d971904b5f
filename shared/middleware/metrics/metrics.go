// Package metrics holds the Prometheus collectors of the forum api.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	contentCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_content_created_total",
			Help: "Threads, comments and replies created",
		},
		[]string{"kind"},
	)

	contentDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_content_deleted_total",
			Help: "Comments and replies soft deleted",
		},
		[]string{"kind"},
	)

	likesToggled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_likes_toggled_total",
			Help: "Like toggles by resulting state",
		},
		[]string{"state"},
	)
)

// Content kinds used as label values.
const (
	KindThread  = "thread"
	KindComment = "comment"
	KindReply   = "reply"
)

func ContentCreated(kind string) { contentCreated.WithLabelValues(kind).Inc() }

func ContentDeleted(kind string) { contentDeleted.WithLabelValues(kind).Inc() }

// LikeToggled records whether the toggle ended liked or unliked.
func LikeToggled(liked bool) {
	state := "unliked"
	if liked {
		state = "liked"
	}
	likesToggled.WithLabelValues(state).Inc()
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns HTTP middleware that records Prometheus metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		// Use chi's route pattern if available to avoid high cardinality
		path := r.URL.Path
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}
