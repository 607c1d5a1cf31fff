package tagsoup

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type traceRecord map[string]any

// newTraceContext returns a context carrying a JSON trace logger, and a
// function that decodes what was logged so far.
func newTraceContext(t *testing.T) (context.Context, func() []traceRecord) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithTraceLogger(context.Background(), logger)
	return ctx, func() []traceRecord {
		var records []traceRecord
		dec := json.NewDecoder(&buf)
		for dec.More() {
			var r traceRecord
			require.NoError(t, dec.Decode(&r), "trace output should be JSON lines")
			records = append(records, r)
		}
		return records
	}
}

func findRecords(records []traceRecord, msg string) []traceRecord {
	var found []traceRecord
	for _, r := range records {
		if r["msg"] == msg {
			found = append(found, r)
		}
	}
	return found
}

func TestParseTrace(t *testing.T) {
	if !TracingEnabled {
		t.Skip("tracing is compiled out")
	}

	ctx, records := newTraceContext(t)
	st, err := Parse(ctx, []byte("<meta charset=\"iso-8859-1\"><p>caf\xe9"), nil)
	require.NoError(t, err, "Parse should succeed")
	require.Equal(t, StatusRecoverableErrors, st)

	got := records()
	require.NotEmpty(t, got)
	first, last := got[0], got[len(got)-1]
	require.Equal(t, "START", first["msg"])
	require.Equal(t, "tagsoup.Parse", first["span_name"])
	require.Equal(t, "END", last["msg"])
	require.Equal(t, first["span_id"], last["span_id"], "the span is closed when Parse returns")
	require.Contains(t, last, "duration")

	declared := findRecords(got, "encoding declared")
	require.Len(t, declared, 1)
	require.Equal(t, "iso-8859-1", declared[0]["encoding"])

	switched := findRecords(got, "input encoding switched")
	require.Len(t, switched, 1)
	require.Equal(t, "ISO-8859-1", switched[0]["encoding"])
	require.Equal(t, "tagsoup.Parse", switched[0]["span_name"], "parser events are logged under the parse span")
	require.Equal(t, first["span_id"], switched[0]["span_id"])

	var premature bool
	for _, r := range findRecords(got, "parse error") {
		require.Equal(t, "ERROR", r["level"])
		if msg, _ := r["error"].(string); strings.Contains(msg, ErrPrematureEnd.Error()) {
			premature = true
			require.Equal(t, KindMarkup.String(), r["kind"])
		}
	}
	require.True(t, premature, "the unclosed p is traced")
}

func TestParseReaderTrace(t *testing.T) {
	if !TracingEnabled {
		t.Skip("tracing is compiled out")
	}

	ctx, records := newTraceContext(t)
	_, err := NewParser().ParseReader(ctx, strings.NewReader("<p>x</p>"))
	require.NoError(t, err, "ParseReader should succeed")

	got := records()
	require.NotEmpty(t, got)
	require.Equal(t, "START", got[0]["msg"])
	require.Equal(t, "tagsoup.ParseReader", got[0]["span_name"])
	require.Equal(t, "END", got[len(got)-1]["msg"])
}

func TestTraceSpans(t *testing.T) {
	if !TracingEnabled {
		t.Skip("tracing is compiled out")
	}

	ctx, records := newTraceContext(t)
	ctx, outer := WithSpan(ctx, "lint")
	require.NotEmpty(t, outer.ID)
	require.Empty(t, outer.ParentID)

	_, err := Parse(ctx, []byte("<p>x</p>"), nil)
	require.NoError(t, err, "Parse should succeed")

	got := records()
	require.NotEmpty(t, got)
	require.Equal(t, "tagsoup.Parse", got[0]["span_name"])
	require.Equal(t, outer.ID, got[0]["parent_id"], "the parse span nests under the caller's span")
	require.NotEqual(t, outer.ID, got[0]["span_id"])
}

func TestTraceLoggerKept(t *testing.T) {
	if !TracingEnabled {
		t.Skip("tracing is compiled out")
	}

	ctx, records := newTraceContext(t)
	var other bytes.Buffer
	ctx = WithTraceLogger(ctx, slog.New(slog.NewJSONHandler(&other, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := Parse(ctx, []byte("<p>x</p>"), nil)
	require.NoError(t, err, "Parse should succeed")
	require.NotEmpty(t, records(), "the logger installed first receives the trace")
	require.Zero(t, other.Len())
}

func TestTracingDisabled(t *testing.T) {
	ctx, records := newTraceContext(t)
	SetTracingEnabled(false)
	defer SetTracingEnabled(true)

	_, err := Parse(ctx, []byte("<p>x"), nil)
	require.NoError(t, err, "Parse should succeed")
	require.Empty(t, records(), "nothing is logged while tracing is off")
}
