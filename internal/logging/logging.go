// Package logging provides structured logging with trace ID support.
package logging

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus entry carrying the component field.
type Logger struct {
	*logrus.Entry
}

// New constructs a logger for the named component. Level is one of
// debug/info/warn/error (defaults to info); format is "json" or "text".
func New(component, level, format string) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{Entry: l.WithField("component", component)}
}

// NewDefault returns an info-level text logger for the named component.
func NewDefault(component string) *Logger {
	return New(component, "info", "text")
}

// WithField returns a logger with the field attached.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithError returns a logger with the error attached.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}

type contextKey struct{}

// NewTraceID generates a fresh trace identifier.
func NewTraceID() string {
	return uuid.NewString()
}

// WithTraceID stores the trace ID on the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, contextKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored on the context, if any.
func TraceIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok {
		return v
	}
	return ""
}
