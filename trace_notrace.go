//go:build notrace

package tagsoup

import (
	"context"
	"log/slog"
	"time"
)

// TracingEnabled is false when tracing is compiled out.
var TracingEnabled = false

type Span interface {
	End()
}

type nopSpan struct{}

func (nopSpan) End() {}

type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
	Tags     map[string]string
}

func WithTraceLogger(ctx context.Context, _ *slog.Logger) context.Context {
	return ctx
}

func WithSpan(ctx context.Context, _ string) (context.Context, *SpanInfo) {
	return ctx, nil
}

func StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, nopSpan{}
}

func TraceEvent(context.Context, string, ...slog.Attr) {}

func TraceError(context.Context, error, string, ...slog.Attr) {}

func SetTracingEnabled(bool) {}
