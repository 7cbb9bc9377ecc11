package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// BuiltinFunc implements a primitive. It manages its own stack arity,
// popping operands and pushing results on c.
type BuiltinFunc func(c *Context) error

// Registry maps builtin names to primitives. The parser and evaluator only
// read from it.
type Registry struct {
	names map[string]int
	funcs []registryEntry
}

type registryEntry struct {
	name string
	fn   BuiltinFunc
}

// Registration errors.
var (
	ErrInvalidBuiltinName = errors.New("invalid builtin name")
	ErrDuplicateBuiltin   = errors.New("duplicate builtin")
)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]int)}
}

// Register adds a primitive under name, returning its handle. Names that the
// parser would classify as a literal or that the tokenizer cannot produce as
// a single word are rejected.
func (reg *Registry) Register(name string, fn BuiltinFunc) (Builtin, error) {
	if name == "" || strings.ContainsAny(name, "\":{};") ||
		strings.IndexFunc(name, isDelimiter) >= 0 || isLiteralWord(name) {
		return Builtin{}, fmt.Errorf("%w %q", ErrInvalidBuiltinName, name)
	}
	if _, defined := reg.names[name]; defined {
		return Builtin{}, fmt.Errorf("%w %q", ErrDuplicateBuiltin, name)
	}
	if reg.names == nil {
		reg.names = make(map[string]int)
	}
	b := Builtin{Name: name, Index: len(reg.funcs)}
	reg.funcs = append(reg.funcs, registryEntry{name, fn})
	reg.names[name] = b.Index
	return b, nil
}

// MustRegister is like Register but panics on error.
func (reg *Registry) MustRegister(name string, fn BuiltinFunc) Builtin {
	b, err := reg.Register(name, fn)
	if err != nil {
		panic(err)
	}
	return b
}

// Lookup finds a builtin by exact name.
func (reg *Registry) Lookup(name string) (Builtin, bool) {
	if reg == nil {
		return Builtin{}, false
	}
	i, ok := reg.names[name]
	if !ok {
		return Builtin{}, false
	}
	return Builtin{Name: name, Index: i}, true
}

// Names returns all registered names in sorted order.
func (reg *Registry) Names() []string {
	if reg == nil {
		return nil
	}
	names := make([]string, 0, len(reg.funcs))
	for _, ent := range reg.funcs {
		names = append(names, ent.name)
	}
	sort.Strings(names)
	return names
}

func (reg *Registry) resolve(b Builtin) (BuiltinFunc, error) {
	if reg != nil && b.Index >= 0 && b.Index < len(reg.funcs) {
		if ent := reg.funcs[b.Index]; ent.name == b.Name {
			return ent.fn, nil
		}
	}
	return nil, builtinError(b.Name)
}

type builtinError string

func (name builtinError) Error() string { return fmt.Sprintf("unknown builtin %q", string(name)) }
