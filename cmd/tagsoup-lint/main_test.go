package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLintGolden compares the output of tagsoup-lint against the golden
// files under testdata. Whole and push mode must agree.
func TestLintGolden(t *testing.T) {
	testcases := []struct {
		input  string
		args   []string
		golden string
	}{
		{input: "basic.html", args: []string{"--sax"}, golden: "basic.sax"},
		{input: "basic.html", args: []string{"--sax", "--push", "3"}, golden: "basic.sax"},
		{input: "basic.html", golden: "basic.out"},
		{input: "latin1.html", args: []string{"--encode", "HTML"}, golden: "latin1.out"},
		{input: "latin1.html", args: []string{"--encode", "HTML", "--push", "1"}, golden: "latin1.out"},
	}

	for _, tc := range testcases {
		name := strings.Join(append([]string{tc.input}, tc.args...), " ")
		t.Run(name, func(t *testing.T) {
			golden, err := os.ReadFile(filepath.Join("testdata", tc.golden))
			require.NoError(t, err, "os.ReadFile should succeed for golden file")

			var stdout, stderr bytes.Buffer
			args := append(append([]string{}, tc.args...), filepath.Join("testdata", tc.input))
			code := run(context.Background(), args, nil, &stdout, &stderr)
			require.Equal(t, 0, code, "stderr: %s", stderr.String())
			require.Empty(t, stderr.String())
			require.Equal(t, string(golden), stdout.String(), "output should match golden file %s", tc.golden)
		})
	}
}

func TestLintStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--noout"}, strings.NewReader("<p>unclosed"), &stdout, &stderr)
	require.Equal(t, 1, code, "a document with errors exits non-zero")
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "error: ")
}

func TestLintMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{filepath.Join("testdata", "no-such-file.html")}, nil, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "no-such-file.html")
}

func TestLintUnknownEncoding(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--encode", "x-no-such-encoding", filepath.Join("testdata", "basic.html")}, nil, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
}

func TestLintVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"--version"}, nil, &stdout, &stderr))
	require.True(t, strings.HasPrefix(stdout.String(), "tagsoup-lint: using tagsoup version "))
}

func TestLintCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, args := range [][]string{nil, {"--push", "3"}} {
		t.Run(strings.Join(append([]string{"args"}, args...), " "), func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(ctx, append(args, filepath.Join("testdata", "basic.html")), nil, &stdout, &stderr)
			require.Equal(t, 2, code, "cancellation aborts the parse")
			require.Contains(t, stderr.String(), context.Canceled.Error())
		})
	}
}
