package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/extrasharp/orth/internal/fileinput"
	"github.com/extrasharp/orth/internal/logio"
)

func main() {
	var (
		timeout  time.Duration
		trace    bool
		strict   bool
		maxDepth int
		code     string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for each evaluation")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&strict, "strict", false, "abort on unresolved words and operand type mismatches")
	flag.IntVar(&maxDepth, "max-depth", defaultMaxDepth, "limit quotation call depth (0 for no limit)")
	flag.StringVar(&code, "e", "", "evaluate the given code and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] [file ...]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "       %v [flags] -e code\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := checkArgs(code, flag.Args()); err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), err)
		flag.Usage()
		os.Exit(2)
	}

	log := logio.NewLogger(os.Stderr)
	diag := &logio.Writer{Logf: log.Leveledf("WARN")}

	var opts = []Option{
		WithOutput(os.Stdout),
		WithDiagnostics(diag),
		WithMaxDepth(maxDepth),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if strict {
		opts = append(opts, WithPolicy(Strict))
	}
	h := host{
		Context: New(opts...),
		log:     log,
		timeout: timeout,
	}

	switch args := flag.Args(); {
	case code != "":
		h.run("-e", code)
	case len(args) > 0:
		h.runFiles(args...)
	case isTerminal(os.Stdin):
		h.repl()
	default:
		h.runFiles("-")
	}
	diag.Flush()
	os.Exit(log.ExitCode())
}

var errCodeWithFiles = errors.New("-e may not be combined with file arguments")

// checkArgs rejects flag and argument combinations that would leave some
// input unevaluated.
func checkArgs(code string, files []string) error {
	if code != "" && len(files) > 0 {
		return errCodeWithFiles
	}
	return nil
}

// host drives source text through a single session Context.
type host struct {
	*Context
	log     *logio.Logger
	timeout time.Duration
}

func (h host) run(name, src string) bool {
	ctx := context.Background()
	if h.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := h.Run(ctx, name, src); err != nil {
		h.log.Errorf("%+v", err)
		return false
	}
	return true
}

func (h host) runFiles(names ...string) {
	in, err := fileinput.Open(names...)
	if err != nil {
		h.log.Errorf("%v", err)
		return
	}
	defer in.Close()
	for {
		src, err := in.Next()
		if errors.Is(err, io.EOF) {
			return
		} else if err != nil {
			h.log.Errorf("%v", err)
			return
		}
		if !h.run(src.Name, src.Text) {
			return
		}
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
