package main

import (
	"context"
	"errors"
	"io"

	"github.com/extrasharp/orth/internal/panicerr"
)

// New creates a Context with an empty stack and environment. Unless
// WithRegistry is given, the standard builtins are available.
func New(opts ...Option) *Context {
	var c Context
	c.apply(opts...)
	return &c
}

// Run tokenizes, parses and evaluates src. Lexical errors are returned
// before anything is evaluated; name labels them. Output is flushed before
// Run returns.
func (c *Context) Run(ctx context.Context, name, src string) error {
	toks, err := Tokenize(src)
	if err != nil {
		var lexErr LexError
		if errors.As(err, &lexErr) {
			lexErr.Name = name
			err = lexErr
		}
		return err
	}
	vals := Parse(toks, c.registry)
	c.logf(">", "run %v: %v values", name, len(vals))
	return c.Exec(ctx, vals)
}

// Exec evaluates already parsed values, converting any panic raised by a
// builtin into an error, and flushes output.
func (c *Context) Exec(ctx context.Context, vals []Value) (rerr error) {
	defer func() {
		if ferr := c.Flush(); rerr == nil {
			rerr = ferr
		}
	}()
	return panicerr.Recover("orth", func() error {
		return c.Eval(ctx, vals)
	})
}

func WithRegistry(reg *Registry) Option  { return withRegistry(reg) }
func WithOutput(w io.Writer) Option      { return withOutput(w) }
func WithTee(w io.Writer) Option         { return withTee(w) }
func WithDiagnostics(w io.Writer) Option { return withDiagnostics(w) }
func WithPolicy(pol FaultPolicy) Option  { return withPolicy(pol) }
func WithMaxDepth(depth int) Option      { return withMaxDepth(depth) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
