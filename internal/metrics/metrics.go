// Package metrics holds the Prometheus collectors of the court finder.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors groups every metric so tests can use a private registry.
type Collectors struct {
	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	searchesTotal       *prometheus.CounterVec
	searchResults       prometheus.Histogram
	reviewsSubmitted    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "courtfinder",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "path", "status"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtfinder",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		searchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtfinder",
			Name:      "searches_total",
			Help:      "Court searches by whether the free-text query was empty",
		}, []string{"query"}), // "empty" / "text"
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "courtfinder",
			Name:      "search_results",
			Help:      "Number of courts returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		reviewsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtfinder",
			Name:      "reviews_submitted_total",
			Help:      "Review submissions by outcome",
		}, []string{"outcome"}), // "accepted" / "rejected"
	}

	reg.MustRegister(
		c.httpRequestDuration,
		c.httpRequestsTotal,
		c.searchesTotal,
		c.searchResults,
		c.reviewsSubmitted,
	)
	return c
}

// ObserveSearch records one search and its result count.
func (c *Collectors) ObserveSearch(query string, results int) {
	label := "text"
	if query == "" {
		label = "empty"
	}
	c.searchesTotal.WithLabelValues(label).Inc()
	c.searchResults.Observe(float64(results))
}

// ObserveReview records a review submission outcome.
func (c *Collectors) ObserveReview(accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	c.reviewsSubmitted.WithLabelValues(outcome).Inc()
}

// Middleware records HTTP request duration and count.
func (c *Collectors) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		// Use the route pattern, not the raw path, to bound label cardinality
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		method := ctx.Request.Method

		c.httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		c.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	}
}
