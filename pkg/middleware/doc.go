// Package middleware provides navigation middleware for wayfind routers:
// Prometheus metrics and OpenTelemetry tracing around Navigate calls.
//
// Middleware is installed through Config.Middleware and observes every
// Navigate call, including ones rejected during resolution:
//
//	router, err := wayfind.New(wayfind.Config{
//	    // ...
//	    Middleware: []wayfind.Middleware{
//	        middleware.Metrics(),
//	        middleware.OTel(),
//	    },
//	})
package middleware
