package middleware

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/wayfind-dev/wayfind"
)

func TestOTelPropagatesResult(t *testing.T) {
	mw := OTel()
	ctx := context.Background()
	nav := wayfind.Navigation{To: wayfind.Target{Key: "home", Language: "en"}}

	next := mw(func(context.Context, wayfind.Navigation) error { return nil })
	if err := next(ctx, nav); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantErr := errors.New("boom")
	next = mw(func(context.Context, wayfind.Navigation) error { return wantErr })
	if err := next(ctx, nav); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestOTelAttributeExtractor(t *testing.T) {
	var seen wayfind.Navigation
	mw := OTel(
		WithTracerName("test"),
		WithAttributeExtractor(func(nav wayfind.Navigation) []attribute.KeyValue {
			seen = nav
			return []attribute.KeyValue{attribute.String("custom", "value")}
		}),
	)

	nav := wayfind.Navigation{To: wayfind.Target{Key: "about", Language: "be"}}
	next := mw(func(context.Context, wayfind.Navigation) error { return nil })
	if err := next(context.Background(), nav); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seen.To.Key != "about" || seen.To.Language != "be" {
		t.Errorf("extractor saw %+v", seen.To)
	}
}
