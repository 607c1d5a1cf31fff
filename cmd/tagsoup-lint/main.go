package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/tagsoup"
	"github.com/lestrrat-go/tagsoup/internal/cliutil"
	"github.com/lestrrat-go/tagsoup/s11n"
	"github.com/lestrrat-go/tagsoup/sax"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cmdopts struct {
	Events        bool   `long:"sax" description:"print the parse events instead of the document"`
	NoOut         bool   `long:"noout" description:"only report errors"`
	Push          int    `long:"push" description:"feed the input to the parser in chunks of this many bytes"`
	Encode        string `long:"encode" description:"output the document in this encoding"`
	Encoding      string `long:"encoding" description:"read the input in this encoding, ignoring any declaration"`
	NoBlanks      bool   `long:"noblanks" description:"drop blank text"`
	NoImplied     bool   `long:"noimplied" description:"do not add missing html, head and body elements"`
	DefaultDTD    bool   `long:"defdtd" description:"report a default doctype when the document has none"`
	HTML5Entities bool   `long:"html5-entities" description:"resolve HTML5 named character references"`
	Pedantic      bool   `long:"pedantic" description:"warn about deprecated and misplaced markup"`
	Strict        bool   `long:"strict" description:"stop at the first markup error"`
	Verbose       bool   `short:"v" long:"verbose" description:"log what the tool is doing"`
	Version       bool   `long:"version" description:"display the version of the parser"`
}

type input struct {
	name string
	r    io.Reader
}

func main() {
	os.Exit(_main())
}

func _main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func showVersion(out io.Writer) {
	fmt.Fprintf(out, "tagsoup-lint: using tagsoup version %s\n", tagsoup.Version)
}

func showUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage : tagsoup-lint [options] HTMLfiles ...
	Parse the HTML files and output the result of the parsing.
	Without files, the document is read from standard input.
	--sax : print the parse events instead of the document
	--push N : feed the parser N bytes at a time
	--encode NAME : output the document in the given encoding
	--version : display the version of the parser
`)
}

func newLogger(verbose bool, out io.Writer) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(out),
		zap.DebugLevel,
	)
	return zap.New(core).Sugar()
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, args)
	if err != nil {
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		showVersion(stdout)
		return 0
	}

	log := newLogger(opts.Verbose, stderr)
	defer func() { _ = log.Sync() }()

	var inputs []input
	switch {
	case len(args) > 0:
		for _, f := range args {
			inputs = append(inputs, input{name: f})
		}
	case !cliutil.IsInteractive(stdin):
		inputs = append(inputs, input{name: "-", r: stdin})
	default:
		showUsage(stderr)
		return 1
	}

	exit := 0
	for _, in := range inputs {
		if code := lint(ctx, &opts, log, in, stdout, stderr); code > exit {
			exit = code
		}
	}
	return exit
}

func parseOptions(opts *cmdopts, filename string) []tagsoup.ParseOption {
	options := []tagsoup.ParseOption{
		tagsoup.WithKeepBlanks(!opts.NoBlanks),
		tagsoup.WithNoImpliedTags(opts.NoImplied),
		tagsoup.WithDefaultDTD(opts.DefaultDTD),
		tagsoup.WithHTML5Entities(opts.HTML5Entities),
		tagsoup.WithPedantic(opts.Pedantic),
		tagsoup.WithRecover(!opts.Strict),
	}
	if filename != "-" {
		options = append(options, tagsoup.WithFilename(filename))
	}
	if opts.Encoding != "" {
		options = append(options, tagsoup.WithEncoding(opts.Encoding))
	}
	return options
}

// reporter prints the errors the parser reports before passing them on.
type reporter struct {
	sax.Handler
	out    io.Writer
	errors int
}

func (r *reporter) Warning(ctx sax.Context, err error) error {
	fmt.Fprintf(r.out, "warning: %s\n", err)
	return r.Handler.Warning(ctx, err)
}

func (r *reporter) Error(ctx sax.Context, err error) error {
	r.errors++
	fmt.Fprintf(r.out, "error: %s\n", err)
	return r.Handler.Error(ctx, err)
}

func (r *reporter) FatalError(ctx sax.Context, err error) error {
	r.errors++
	fmt.Fprintf(r.out, "fatal: %s\n", err)
	return r.Handler.FatalError(ctx, err)
}

func lint(ctx context.Context, opts *cmdopts, log *zap.SugaredLogger, in input, stdout, stderr io.Writer) int {
	r := in.r
	if r == nil {
		f, err := os.Open(in.name)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var h sax.Handler
	switch {
	case opts.Events:
		h = newEventEmitter(stdout)
	case opts.NoOut:
		h = sax.New()
	default:
		w := s11n.NewWriter(stdout)
		if opts.Encode != "" {
			if err := w.SetEncoding(opts.Encode); err != nil {
				fmt.Fprintf(stderr, "%s\n", err)
				return 1
			}
		}
		defer func() { _ = w.Close() }()
		h = w
	}
	rep := &reporter{Handler: h, out: stderr}

	p := tagsoup.NewParser(parseOptions(opts, in.name)...)
	p.SetSAXHandler(rep)

	log.Debugw("parsing", "file", in.name, "push", opts.Push)
	var st tagsoup.Status
	var err error
	if opts.Push > 0 {
		st, err = pushParse(ctx, p, r, opts.Push)
	} else {
		st, err = p.ParseReader(ctx, r)
	}
	log.Debugw("parsed", "file", in.name, "status", st.String(), "errors", rep.errors)

	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", in.name, err)
		if st.Fatal() {
			return 2
		}
		return 1
	}
	if st != tagsoup.StatusOK {
		return 1
	}
	return 0
}

func pushParse(ctx context.Context, p *tagsoup.Parser, r io.Reader, chunk int) (tagsoup.Status, error) {
	pp, err := p.NewPushParser(ctx, nil)
	if err != nil {
		return tagsoup.StatusUnsupportedEncoding, err
	}
	defer func() { _ = pp.Close() }()

	buf := make([]byte, chunk)
	for {
		if err := ctx.Err(); err != nil {
			return tagsoup.StatusAborted, err
		}
		n, rerr := io.ReadFull(r, buf)
		if rerr != nil && !errors.Is(rerr, io.EOF) && !errors.Is(rerr, io.ErrUnexpectedEOF) {
			return tagsoup.StatusInternalError, rerr
		}
		done := rerr != nil
		st, err := pp.Feed(buf[:n], done)
		if err != nil || done {
			return st, err
		}
	}
}
