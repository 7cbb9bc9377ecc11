package main

import (
	"io"

	"github.com/extrasharp/orth/internal/flushio"
)

// Option configures a Context.
type Option interface{ apply(c *Context) }

// Options combines any number of options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type options []Option

func (opts options) apply(c *Context) {
	for _, opt := range opts {
		opt.apply(c)
	}
}

const defaultMaxDepth = 10000

var defaults = []Option{
	withRegistry(nil),
	withOutput(io.Discard),
	withDiagnostics(discardDiagnostics),
	withMaxDepth(defaultMaxDepth),
}

func (c *Context) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(c)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(c)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(c *Context) {
	c.logfn = logfn
}

type registryOption struct{ *Registry }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type diagnosticsOption struct{ io.Writer }
type policyOption FaultPolicy
type maxDepthOption int

func withRegistry(reg *Registry) registryOption     { return registryOption{reg} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }
func withDiagnostics(w io.Writer) diagnosticsOption { return diagnosticsOption{w} }
func withPolicy(pol FaultPolicy) policyOption       { return policyOption(pol) }
func withMaxDepth(depth int) maxDepthOption         { return maxDepthOption(depth) }

func (o registryOption) apply(c *Context) {
	if o.Registry == nil {
		o.Registry = StandardRegistry()
	}
	c.registry = o.Registry
}

func (o outputOption) apply(c *Context) {
	if c.out != nil {
		c.out.Flush()
	}
	c.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(c *Context) {
	c.out = flushio.NewTee(c.out, flushio.NewWriteFlusher(o.Writer))
}

func (o diagnosticsOption) apply(c *Context) {
	c.diag = o.Writer
}

func (pol policyOption) apply(c *Context) {
	c.policy = FaultPolicy(pol)
}

func (depth maxDepthOption) apply(c *Context) {
	c.maxDepth = int(depth)
}
