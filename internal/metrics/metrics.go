// Package metrics holds the Prometheus collectors for HTTP traffic, upstream calls,
// payload cache lookups and record operations.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weatherhistory"

// Collector implements ports.MetricsCollector on a private Prometheus registry
type Collector struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	upstreamCalls  *prometheus.CounterVec
	upstreamTiming *prometheus.HistogramVec
	cacheLookups   *prometheus.CounterVec
	cacheHitRatio  *prometheus.GaugeVec
	recordOps      *prometheus.CounterVec

	mu     sync.Mutex
	hits   map[string]int64
	misses map[string]int64
}

// NewCollector registers every collector plus the Go and process collectors
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "The total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		upstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "The total number of weather provider requests",
			},
			[]string{"operation", "outcome"},
		),
		upstreamTiming: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Weather provider request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "The total number of payload cache lookups",
			},
			[]string{"cache_type", "result"},
		),
		cacheHitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cache_hit_ratio",
				Help:      "Cache hit ratio (hits/total lookups)",
			},
			[]string{"cache_type"},
		),
		recordOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "record_operations_total",
				Help:      "The total number of record operations",
			},
			[]string{"operation", "outcome"},
		),
		hits:   make(map[string]int64),
		misses: make(map[string]int64),
	}
}

// Registry returns the registry backing the collector
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Middleware counts requests by route template so ids do not explode label cardinality
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.httpRequests.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func (c *Collector) RecordCacheHit(ctx context.Context, cacheType string) {
	c.cacheLookups.WithLabelValues(cacheType, "hit").Inc()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits[cacheType]++
	c.updateHitRatio(cacheType)
}

func (c *Collector) RecordCacheMiss(ctx context.Context, cacheType string) {
	c.cacheLookups.WithLabelValues(cacheType, "miss").Inc()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses[cacheType]++
	c.updateHitRatio(cacheType)
}

func (c *Collector) RecordWeatherAPICall(ctx context.Context, operation string, success bool, duration time.Duration) {
	c.upstreamCalls.WithLabelValues(operation, outcome(success)).Inc()
	c.upstreamTiming.WithLabelValues(operation).Observe(duration.Seconds())
}

func (c *Collector) RecordRecordOperation(ctx context.Context, operation string, success bool) {
	c.recordOps.WithLabelValues(operation, outcome(success)).Inc()
}

// updateHitRatio must be called while holding the mutex
func (c *Collector) updateHitRatio(cacheType string) {
	total := c.hits[cacheType] + c.misses[cacheType]
	if total > 0 {
		c.cacheHitRatio.WithLabelValues(cacheType).Set(float64(c.hits[cacheType]) / float64(total))
	}
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
