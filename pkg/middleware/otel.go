package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wayfind-dev/wayfind"
)

// Default tracer name for wayfind routers.
const defaultTracerName = "wayfind"

// OTelConfig configures the OpenTelemetry navigation middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "wayfind").
	TracerName string

	// AttributeExtractor extracts custom attributes from the navigation.
	// Called for each traced navigation.
	AttributeExtractor func(nav wayfind.Navigation) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry navigation middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) { c.TracerName = name }
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(fn func(nav wayfind.Navigation) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) { c.AttributeExtractor = fn }
}

// OTel creates navigation middleware that traces Navigate calls. Each
// navigation becomes a span carrying the target key, language, and method;
// failures are recorded on the span and propagated unchanged.
func OTel(opts ...OTelOption) wayfind.Middleware {
	cfg := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)

	return func(next wayfind.NavigateFunc) wayfind.NavigateFunc {
		return func(ctx context.Context, nav wayfind.Navigation) error {
			ctx, span := cfg.tracer.Start(ctx, "wayfind.navigate",
				trace.WithAttributes(
					attribute.String("route.key", nav.To.Key),
					attribute.String("route.language", nav.To.Language),
					attribute.String("navigation.method", methodLabel(nav.Method)),
				))
			defer span.End()

			if cfg.AttributeExtractor != nil {
				span.SetAttributes(cfg.AttributeExtractor(nav)...)
			}

			err := next(ctx, nav)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			return err
		}
	}
}
