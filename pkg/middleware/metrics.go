package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wayfind-dev/wayfind"
)

// MetricsConfig configures the Prometheus navigation middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wayfind").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for navigation duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to register with.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus navigation middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "wayfind",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics creates navigation middleware that records Prometheus metrics.
//
// Metrics collected:
//   - wayfind_navigations_total: counter by method and result, where result
//     is "ok", "rejected" (resolution failure), or "error"
//   - wayfind_navigation_duration_seconds: histogram by method
func Metrics(opts ...MetricsOption) wayfind.Middleware {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	navigations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "navigations_total",
		Help:        "Total number of navigations by method and result",
		ConstLabels: cfg.ConstLabels,
	}, []string{"method", "result"})

	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "navigation_duration_seconds",
		Help:        "Navigation duration in seconds",
		ConstLabels: cfg.ConstLabels,
		Buckets:     cfg.Buckets,
	}, []string{"method"})

	return func(next wayfind.NavigateFunc) wayfind.NavigateFunc {
		return func(ctx context.Context, nav wayfind.Navigation) error {
			start := time.Now()
			err := next(ctx, nav)

			method := methodLabel(nav.Method)
			duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
			navigations.WithLabelValues(method, resultLabel(err)).Inc()

			return err
		}
	}
}

func methodLabel(m wayfind.Method) string {
	if m == "" {
		return string(wayfind.MethodPush)
	}
	return string(m)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isRejection(err):
		return "rejected"
	default:
		return "error"
	}
}

func isRejection(err error) bool {
	var navErr *wayfind.NavigationError
	return errors.As(err, &navErr)
}
