// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers application metrics into a dedicated registry.
type Collector struct {
	reg *prometheus.Registry

	httpStatus      *prometheus.CounterVec
	signups         prometheus.Counter
	sessionsStarted prometheus.Counter
	activeSessions  prometheus.GaugeFunc
	postOps         *prometheus.CounterVec
}

// NewCollector registers the blog metrics on reg. activeSessions reports the
// current number of live sessions when scraped.
func NewCollector(reg *prometheus.Registry, activeSessions func() float64) *Collector {
	c := &Collector{
		reg: reg,
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_http_status_total",
			Help: "Responses by HTTP status code.",
		}, []string{"status_code"}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blog_signups_total",
			Help: "Accounts created.",
		}),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blog_sessions_started_total",
			Help: "Sessions started by successful sign-ins.",
		}),
		activeSessions: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "blog_active_sessions",
			Help: "Sessions currently live in the session store.",
		}, activeSessions),
		postOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_post_operations_total",
			Help: "Post mutations by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.signups,
		c.sessionsStarted,
		c.activeSessions,
		c.postOps,
	)

	return c
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordSignup() {
	c.signups.Inc()
}

func (c *Collector) RecordSessionStart() {
	c.sessionsStarted.Inc()
}

// RecordPostOp records a post mutation; op is one of "created", "updated",
// "deleted".
func (c *Collector) RecordPostOp(op string) {
	c.postOps.WithLabelValues(op).Inc()
}

// Handler returns the Prometheus scrape handler for this collector's
// registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
