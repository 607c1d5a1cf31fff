package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/tagsoup"
	"github.com/lestrrat-go/tagsoup/s11n"
)

const usage = `tagsoup-flamegraph - profile the parser and view the result

Usage:
  tagsoup-flamegraph [options] <html-file>

Options:
  --iterations N    Number of parsing iterations (default: 2000)
  --push N          Feed the document N bytes at a time instead of whole
  --port N          pprof HTTP server port (default: 8080)
  --profile TYPE    Profile type: cpu, mem (default: cpu)
  --no-serve        Only write the profile
  --help            Show this help message

This command will:
1. Generate a profile by parsing and re-serializing the document
2. Start the pprof web interface on the profile and open your browser
3. Keep the server running until you press Ctrl+C
`

type cmdopts struct {
	Iterations int    `long:"iterations" default:"2000"`
	Push       int    `long:"push"`
	Port       int    `long:"port" default:"8080"`
	Profile    string `long:"profile" default:"cpu" choice:"cpu" choice:"mem"`
	NoServe    bool   `long:"no-serve"`
	Help       bool   `long:"help"`
}

func main() {
	os.Exit(_main())
}

func _main() int {
	var opts cmdopts
	p := flags.NewParser(&opts, flags.PassDoubleDash)
	args, err := p.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		fmt.Print(usage)
		return 1
	}

	if opts.Help {
		fmt.Print(usage)
		return 0
	}

	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: HTML file argument required\n\n")
		fmt.Print(usage)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := generateAndViewProfile(ctx, args[0], &opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func generateAndViewProfile(ctx context.Context, htmlFile string, opts *cmdopts) error {
	fmt.Printf("HTML file: %s\n", htmlFile)
	fmt.Printf("Profile type: %s\n", opts.Profile)
	fmt.Printf("Iterations: %d\n\n", opts.Iterations)

	data, err := os.ReadFile(htmlFile)
	if err != nil {
		return fmt.Errorf("failed to read HTML file: %w", err)
	}

	profileFile := fmt.Sprintf("tagsoup_%s.prof", opts.Profile)
	fmt.Printf("Generating %s profile...\n", opts.Profile)
	if err := generateProfile(ctx, data, opts, profileFile); err != nil {
		return fmt.Errorf("failed to generate profile: %w", err)
	}
	fmt.Printf("Profile generated: %s\n\n", profileFile)

	if opts.NoServe {
		return nil
	}
	return startPprofServer(ctx, profileFile, opts.Port)
}

// parseOnce parses data and writes it back out, which is the work the
// profile is meant to cover.
func parseOnce(ctx context.Context, p *tagsoup.Parser, data []byte, push int) error {
	p.SetSAXHandler(s11n.NewWriter(io.Discard))
	if push <= 0 {
		_, err := p.Parse(ctx, data)
		return err
	}

	pp, err := p.NewPushParser(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = pp.Close() }()
	for len(data) > push {
		if _, err := pp.Feed(data[:push], false); err != nil {
			return err
		}
		data = data[push:]
	}
	_, err = pp.Feed(data, true)
	return err
}

func generateProfile(ctx context.Context, data []byte, opts *cmdopts, profileFile string) error {
	// tracing is off unless a trace logger is in the context
	parser := tagsoup.NewParser()

	switch opts.Profile {
	case "cpu":
		return generateCPUProfile(ctx, parser, data, opts, profileFile)
	case "mem":
		return generateMemProfile(ctx, parser, data, opts, profileFile)
	default:
		return fmt.Errorf("unsupported profile type: %s", opts.Profile)
	}
}

func generateCPUProfile(ctx context.Context, parser *tagsoup.Parser, data []byte, opts *cmdopts, profileFile string) error {
	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()

	for i := range opts.Iterations {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := parseOnce(ctx, parser, data, opts.Push); err != nil {
			return fmt.Errorf("parse failed at iteration %d: %w", i, err)
		}
	}
	return nil
}

func generateMemProfile(ctx context.Context, parser *tagsoup.Parser, data []byte, opts *cmdopts, profileFile string) error {
	for i := range opts.Iterations {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := parseOnce(ctx, parser, data, opts.Push); err != nil {
			return fmt.Errorf("parse failed at iteration %d: %w", i, err)
		}
	}

	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return pprof.Lookup("allocs").WriteTo(f, 0)
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch {
	case commandExists("xdg-open"): // Linux
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"): // macOS
		cmd = exec.Command("open", url)
	case commandExists("cmd"): // Windows
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return errors.New("no suitable browser opener found")
	}
	return cmd.Start()
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

func startPprofServer(ctx context.Context, profileFile string, port int) error {
	fmt.Printf("Starting pprof server on port %d...\n", port)

	url := fmt.Sprintf("http://localhost:%d/ui/flamegraph", port)
	cmd := exec.CommandContext(ctx, "go", "tool", "pprof", "-no_browser", "-http", fmt.Sprintf(":%d", port), profileFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start pprof server: %w", err)
	}

	// give the server a moment to listen
	time.Sleep(2 * time.Second)

	if err := openBrowser(url); err != nil {
		fmt.Printf("Could not open browser automatically. Please open: %s\n", url)
	}
	fmt.Printf("Press Ctrl+C to stop the server\n")

	if err := cmd.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
