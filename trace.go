//go:build !notrace

package tagsoup

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync/atomic"
	"time"
)

type traceLoggerKey struct{}
type spanIDKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// TracingEnabled reports whether trace events are emitted at all. Build
// with -tags notrace to compile tracing out entirely.
var TracingEnabled = true

var tracingOff atomic.Bool

// Span is a unit of traced work. End must be called exactly once.
type Span interface {
	End()
}

// SpanInfo holds information about a tracing span
type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
	Tags     map[string]string
}

type logSpan struct {
	ctx  context.Context
	info *SpanInfo
}

func (s *logSpan) End() {
	if tracingOff.Load() {
		return
	}
	tlog := loggerFor(s.ctx)
	tlog.LogAttrs(s.ctx, slog.LevelDebug, "END",
		slog.String("span_id", s.info.ID),
		slog.String("span_name", s.info.Name),
		slog.Duration("duration", time.Since(s.info.Start)),
	)
}

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// keep the logger that is already installed
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

func loggerFor(ctx context.Context) *slog.Logger {
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return tlog
	}
	return nullLogger
}

// WithSpan creates a span nested under the span carried by ctx, if any.
func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	info := &SpanInfo{
		ID:    generateSpanID(),
		Name:  name,
		Start: time.Now(),
	}
	if parent, ok := ctx.Value(spanIDKey{}).(*SpanInfo); ok {
		info.ParentID = parent.ID
	}
	return context.WithValue(ctx, spanIDKey{}, info), info
}

// StartSpan creates a span and logs its start. The returned Span logs
// the elapsed time when ended.
func StartSpan(ctx context.Context, spanName string) (context.Context, Span) {
	ctx, info := WithSpan(ctx, spanName)
	if !tracingOff.Load() {
		attrs := []slog.Attr{
			slog.String("span_id", info.ID),
			slog.String("span_name", info.Name),
		}
		if info.ParentID != "" {
			attrs = append(attrs, slog.String("parent_id", info.ParentID))
		}
		loggerFor(ctx).LogAttrs(ctx, slog.LevelDebug, "START", attrs...)
	}
	return ctx, &logSpan{ctx: ctx, info: info}
}

func spanAttrs(ctx context.Context, attrs []slog.Attr) []slog.Attr {
	if info, ok := ctx.Value(spanIDKey{}).(*SpanInfo); ok {
		attrs = append(attrs,
			slog.String("span_id", info.ID),
			slog.String("span_name", info.Name),
		)
	}
	return attrs
}

// TraceEvent logs a structured event under the current span.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	if tracingOff.Load() {
		return
	}
	loggerFor(ctx).LogAttrs(ctx, slog.LevelDebug, msg, spanAttrs(ctx, attrs)...)
}

// TraceError logs an error under the current span.
func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	if tracingOff.Load() {
		return
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	loggerFor(ctx).LogAttrs(ctx, slog.LevelError, msg, spanAttrs(ctx, attrs)...)
}

// SetTracingEnabled turns trace output on or off at runtime.
func SetTracingEnabled(enabled bool) {
	tracingOff.Store(!enabled)
}

func generateSpanID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "0000000000000000"
	}
	return hex.EncodeToString(b[:])
}
