package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/extrasharp/orth/internal/flushio"
)

// Stack is the LIFO store that builtins and words pass values through.
type Stack struct {
	vals []Value
}

// Push always succeeds.
func (stk *Stack) Push(val Value) { stk.vals = append(stk.vals, val) }

// Pop removes the top value; ok is false on underflow.
func (stk *Stack) Pop() (val Value, ok bool) {
	i := len(stk.vals) - 1
	if i < 0 {
		return nil, false
	}
	val, stk.vals = stk.vals[i], stk.vals[:i]
	return val, true
}

// Peek returns the top value without removing it.
func (stk *Stack) Peek() (Value, bool) {
	if i := len(stk.vals) - 1; i >= 0 {
		return stk.vals[i], true
	}
	return nil, false
}

// PopN removes the top n values, returned bottom first, or nothing at all if
// fewer than n are available.
func (stk *Stack) PopN(op string, n int) ([]Value, error) {
	i := len(stk.vals) - n
	if i < 0 {
		return nil, UnderflowError{Op: op, Need: n, Have: len(stk.vals)}
	}
	vals := make([]Value, n)
	copy(vals, stk.vals[i:])
	for j := i; j < len(stk.vals); j++ {
		stk.vals[j] = nil
	}
	stk.vals = stk.vals[:i]
	return vals, nil
}

// Len returns the stack depth.
func (stk *Stack) Len() int { return len(stk.vals) }

// Values returns the stack contents, bottom first.
func (stk *Stack) Values() []Value { return stk.vals }

func (stk Stack) String() string { return fmt.Sprint(stk.vals) }

// Env is the flat, session wide table of bindings.
type Env struct {
	table map[string]Value
}

// Insert binds name to val, replacing any prior binding.
func (env *Env) Insert(name string, val Value) {
	if env.table == nil {
		env.table = make(map[string]Value)
	}
	env.table[name] = val
}

// Get returns the binding for name.
func (env *Env) Get(name string) (Value, bool) {
	val, ok := env.table[name]
	return val, ok
}

// Len returns the number of bindings.
func (env *Env) Len() int { return len(env.table) }

// Names returns all bound names in sorted order.
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.table))
	for name := range env.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Context is the mutable execution state shared by evaluation and every
// builtin call. It is never copied: quotations run against the same Context
// that invoked them.
type Context struct {
	logging

	Env   Env
	Stack Stack

	registry *Registry
	out      flushio.WriteFlusher
	diag     io.Writer
	policy   FaultPolicy
	maxDepth int

	depth  int
	faults []error
}

// Registry returns the registry that builtin values are resolved against.
func (c *Context) Registry() *Registry { return c.registry }

// Output returns the writer that builtins print to.
func (c *Context) Output() io.Writer { return c.out }

// Faults returns the soft faults reported so far.
func (c *Context) Faults() []error { return c.faults }

// Pop removes the top value on behalf of op, failing on underflow.
func (c *Context) Pop(op string) (Value, error) {
	val, ok := c.Stack.Pop()
	if !ok {
		return nil, UnderflowError{Op: op, Need: 1}
	}
	return val, nil
}

// Push pushes val.
func (c *Context) Push(val Value) { c.Stack.Push(val) }

// Flush flushes any buffered output.
func (c *Context) Flush() error {
	if c.out == nil {
		return nil
	}
	return c.out.Flush()
}

// fault handles an evaluation error according to policy, returning nil if
// evaluation may continue.
func (c *Context) fault(err error) error {
	if c.policy == Strict || !isSoft(err) {
		return err
	}
	c.faults = append(c.faults, err)
	c.logf("!", "%v", err)
	if c.diag != nil {
		fmt.Fprintln(c.diag, err)
	}
	return nil
}

var discardDiagnostics io.Writer = io.Discard

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
