// Package metrics exposes Prometheus instrumentation for the HTTP surface,
// the order ledger and the price cache.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "krishiseva"

// Registry holds every collector the service exports. Each app instance gets
// its own so tests can build several apps in one process.
type Registry struct {
	reg *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	inFlight        prometheus.Gauge

	ordersCreated   prometheus.Counter
	ordersCancelled prometheus.Counter
	statusChanges   *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
}

// New creates a registry with runtime collectors and the service metrics.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders placed through checkout.",
		}),
		ordersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_cancelled_total",
			Help:      "Orders cancelled by their buyer.",
		}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_changes_total",
			Help:      "Order status updates by target status.",
		}, []string{"status"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_cache_lookups_total",
			Help:      "Crop price cache lookups by result.",
		}, []string{"driver", "result"}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requestDuration,
		r.requestTotal,
		r.inFlight,
		r.ordersCreated,
		r.ordersCancelled,
		r.statusChanges,
		r.cacheLookups,
	)
	return r
}

// Middleware records duration, count and in-flight requests. Routes are
// labelled by their pattern, not the raw path, to keep cardinality bounded.
func (r *Registry) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		r.inFlight.Inc()
		defer r.inFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		labels := []string{c.Method(), route, strconv.Itoa(status)}
		r.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		r.requestTotal.WithLabelValues(labels...).Inc()
		return err
	}
}

// Handler serves the Prometheus exposition format.
func (r *Registry) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
}

// OrderCreated counts a successful checkout.
func (r *Registry) OrderCreated() { r.ordersCreated.Inc() }

// OrderCancelled counts a buyer cancellation.
func (r *Registry) OrderCancelled() { r.ordersCancelled.Inc() }

// OrderStatusChanged counts a status update to the given status.
func (r *Registry) OrderStatusChanged(status string) {
	r.statusChanges.WithLabelValues(status).Inc()
}

// CacheLookup counts a price cache hit or miss.
func (r *Registry) CacheLookup(driver string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(driver, result).Inc()
}
