package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application-level counters. HTTP request metrics come from fiberprometheus;
// these cover the Redis/cache layer which it cannot see.
var (
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mingle_cache_hits_total",
		Help: "Number of cache-aside reads served from Redis.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mingle_cache_misses_total",
		Help: "Number of cache-aside reads that fell through to the database.",
	})
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mingle_redis_errors_total",
		Help: "Number of Redis command errors by command name.",
	}, []string{"command"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-level metrics handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
