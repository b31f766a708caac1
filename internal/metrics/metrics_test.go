package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CacheLookups(t *testing.T) {
	c := NewCollector()
	ctx := context.Background()

	c.RecordCacheMiss(ctx, "memory")
	c.RecordCacheHit(ctx, "memory")
	c.RecordCacheHit(ctx, "memory")
	c.RecordCacheHit(ctx, "memory")

	assert.Equal(t, 3.0, testutil.ToFloat64(c.cacheLookups.WithLabelValues("memory", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheLookups.WithLabelValues("memory", "miss")))
	assert.Equal(t, 0.75, testutil.ToFloat64(c.cacheHitRatio.WithLabelValues("memory")))
}

func TestCollector_UpstreamAndRecordOperations(t *testing.T) {
	c := NewCollector()
	ctx := context.Background()

	c.RecordWeatherAPICall(ctx, "forecast", true, 120*time.Millisecond)
	c.RecordWeatherAPICall(ctx, "forecast", false, 2*time.Second)
	c.RecordRecordOperation(ctx, "create", true)
	c.RecordRecordOperation(ctx, "create", false)
	c.RecordRecordOperation(ctx, "create", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.upstreamCalls.WithLabelValues("forecast", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.upstreamCalls.WithLabelValues("forecast", "failure")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.recordOps.WithLabelValues("create", "failure")))
}

func TestCollector_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := NewCollector()

	router := gin.New()
	router.Use(c.Middleware())
	router.GET("/api/weather/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusNotFound)
	})
	router.GET("/metrics", gin.WrapH(c.Handler()))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather/"+id, nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/api/weather/:id", "404")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `weatherhistory_http_requests_total{method="GET",route="/api/weather/:id",status="404"} 2`))
	assert.Contains(t, body, "go_goroutines")
}

func TestNewCollector_IndependentRegistries(t *testing.T) {
	first := NewCollector()
	second := NewCollector()

	first.RecordRecordOperation(context.Background(), "delete", true)

	assert.Equal(t, 0.0, testutil.ToFloat64(second.recordOps.WithLabelValues("delete", "success")))
	assert.NotSame(t, first.Registry(), second.Registry())
}
