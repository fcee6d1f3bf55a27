package logging

import (
	"context"
	"testing"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")
	if got := TraceIDFromContext(ctx); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty trace id, got %q", got)
	}
}

func TestNewTraceIDsAreDistinct(t *testing.T) {
	if NewTraceID() == NewTraceID() {
		t.Fatalf("trace ids should be unique")
	}
}

func TestNewFallsBackToInfoLevel(t *testing.T) {
	log := New("test", "nonsense", "json")
	if log == nil || log.Entry == nil {
		t.Fatalf("expected usable logger")
	}
	if log.Logger.GetLevel().String() != "info" {
		t.Fatalf("expected info fallback, got %s", log.Logger.GetLevel())
	}
}
