package main

import (
	"context"
	"fmt"
)

// Eval executes vals against c. Quotation markers are captured rather than
// executed: the outermost '{' starts buffering, nested markers are kept
// verbatim, and the matching '}' pushes the buffered values as one Quotation.
//
// Fatal faults, and soft faults under the Strict policy, abort evaluation
// and are returned; values already executed keep their effects.
func (c *Context) Eval(ctx context.Context, vals []Value) error {
	if c.logfn != nil {
		defer c.withLogPrefix("\t")()
	}

	var (
		level int
		buf   []Value
	)
	for _, val := range vals {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch val.(type) {
		case QuoteOpen:
			level++
			if level == 1 {
				buf = nil
				continue
			}
		case QuoteClose:
			if level == 0 {
				if err := c.fault(quoteError("}")); err != nil {
					return err
				}
				continue
			}
			level--
			if level == 0 {
				quot := Quotation(buf)
				if quot == nil {
					quot = Quotation{}
				}
				c.logf("{}", "capture %v", quot)
				c.Push(quot)
				buf = nil
				continue
			}
		}

		if level > 0 {
			buf = append(buf, Clone(val))
			continue
		}

		if err := c.step(ctx, val); err != nil {
			if err = c.fault(err); err != nil {
				return err
			}
		}
	}

	if level > 0 {
		c.logf("{}", "discard unclosed %v", Quotation(buf))
		return c.fault(quoteError("{"))
	}
	return nil
}

func (c *Context) step(ctx context.Context, val Value) error {
	if c.logfn != nil {
		c.logf("eval", "%v -- s:%v", val, c.Stack)
	}
	switch v := val.(type) {
	case Builtin:
		return c.call(v)
	case Word:
		return c.invoke(ctx, v)
	default:
		c.Push(Clone(val))
		return nil
	}
}

func (c *Context) invoke(ctx context.Context, w Word) error {
	bound, ok := c.Env.Get(string(w))
	if !ok {
		return WordError(w)
	}
	switch v := bound.(type) {
	case Quotation:
		return c.callQuotation(ctx, string(w), v)
	case Builtin:
		return c.call(v)
	default:
		c.Push(Clone(bound))
		return nil
	}
}

// callQuotation runs a quotation's body against c itself; its stack and
// environment effects remain visible to the caller.
func (c *Context) callQuotation(ctx context.Context, name string, quot Quotation) error {
	if c.maxDepth > 0 && c.depth >= c.maxDepth {
		return fmt.Errorf("%v: %w (%v)", name, ErrDepthExceeded, c.maxDepth)
	}
	c.depth++
	defer func() { c.depth-- }()
	c.logf("call", "%v %v", name, quot)
	return c.Eval(ctx, quot)
}

func (c *Context) call(b Builtin) error {
	fn, err := c.registry.resolve(b)
	if err != nil {
		return err
	}
	return fn(c)
}
