package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names a Value variant.
type Kind int

// Value kinds.
const (
	KindSymbol Kind = iota
	KindInt
	KindFloat
	KindBoolean
	KindMap
	KindVec
	KindString
	KindQuoteOpen
	KindQuoteClose
	KindQuotation
	KindBuiltin
	KindWord
)

var kindNames = [...]string{
	KindSymbol:     "symbol",
	KindInt:        "int",
	KindFloat:      "float",
	KindBoolean:    "boolean",
	KindMap:        "map",
	KindVec:        "vec",
	KindString:     "string",
	KindQuoteOpen:  "quote-open",
	KindQuoteClose: "quote-close",
	KindQuotation:  "quotation",
	KindBuiltin:    "builtin",
	KindWord:       "word",
}

func (kind Kind) String() string {
	if int(kind) < len(kindNames) {
		return kindNames[kind]
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

// Value is the closed set of runtime values; only the types in this file
// implement it.
type Value interface {
	Kind() Kind
	String() string
	value()
}

// Symbol is an interned identifier. Within one parse, equal symbol text
// yields equal IDs and a shared Name.
type Symbol struct {
	ID   uint
	Name string
}

type (
	Int     int64
	Float   float64
	Boolean bool
	String  string

	// Vec is an ordered, growable sequence.
	Vec []Value

	// Quotation is a deferred block of parsed code.
	Quotation []Value

	// Word is an identifier resolved against the environment when evaluated.
	Word string

	// QuoteOpen and QuoteClose delimit quotation capture during evaluation.
	QuoteOpen  struct{}
	QuoteClose struct{}
)

// Builtin is a handle into the Registry that defined it.
type Builtin struct {
	Name  string
	Index int
}

// Map associates unique keys, compared with Equal, to values. Iteration
// follows insertion order.
type Map struct {
	keys []Value
	vals []Value
}

func (Symbol) Kind() Kind     { return KindSymbol }
func (Int) Kind() Kind        { return KindInt }
func (Float) Kind() Kind      { return KindFloat }
func (Boolean) Kind() Kind    { return KindBoolean }
func (*Map) Kind() Kind       { return KindMap }
func (Vec) Kind() Kind        { return KindVec }
func (String) Kind() Kind     { return KindString }
func (QuoteOpen) Kind() Kind  { return KindQuoteOpen }
func (QuoteClose) Kind() Kind { return KindQuoteClose }
func (Quotation) Kind() Kind  { return KindQuotation }
func (Builtin) Kind() Kind    { return KindBuiltin }
func (Word) Kind() Kind       { return KindWord }

func (Symbol) value()     {}
func (Int) value()        {}
func (Float) value()      {}
func (Boolean) value()    {}
func (*Map) value()       {}
func (Vec) value()        {}
func (String) value()     {}
func (QuoteOpen) value()  {}
func (QuoteClose) value() {}
func (Quotation) value()  {}
func (Builtin) value()    {}
func (Word) value()       {}

func (sym Symbol) String() string { return ":" + sym.Name }
func (n Int) String() string      { return strconv.FormatInt(int64(n), 10) }
func (b Builtin) String() string  { return b.Name }
func (w Word) String() string     { return string(w) }
func (QuoteOpen) String() string  { return "{" }
func (QuoteClose) String() string { return "}" }
func (s String) String() string   { return `"` + string(s) + `"` }

func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

func (vec Vec) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range vec {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(val.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (quot Quotation) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for _, val := range quot {
		sb.WriteByte(' ')
		sb.WriteString(val.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteString("#{")
	for i, key := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(key.String())
		sb.WriteByte(' ')
		sb.WriteString(m.vals[i].String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Get returns the value bound to key.
func (m *Map) Get(key Value) (Value, bool) {
	if i := m.index(key); i >= 0 {
		return m.vals[i], true
	}
	return nil, false
}

// Set binds key to val, replacing any prior binding of an Equal key.
func (m *Map) Set(key, val Value) {
	if i := m.index(key); i >= 0 {
		m.vals[i] = val
		return
	}
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
}

// Range calls each for every entry in insertion order until it returns false.
func (m *Map) Range(each func(key, val Value) bool) {
	for i, key := range m.keys {
		if !each(key, m.vals[i]) {
			return
		}
	}
}

func (m *Map) index(key Value) int {
	for i, k := range m.keys {
		if Equal(k, key) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of val; scalars are returned as is.
func Clone(val Value) Value {
	switch v := val.(type) {
	case Vec:
		return Vec(cloneValues(v))
	case Quotation:
		return Quotation(cloneValues(v))
	case *Map:
		if v == nil {
			return v
		}
		m := &Map{
			keys: cloneValues(v.keys),
			vals: cloneValues(v.vals),
		}
		return m
	default:
		return val
	}
}

func cloneValues(vals []Value) []Value {
	if vals == nil {
		return nil
	}
	out := make([]Value, len(vals))
	for i, val := range vals {
		out[i] = Clone(val)
	}
	return out
}

// Equal reports structural equality; symbols compare by ID and name, never
// against words or strings of the same text.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Vec:
		return equalValues(av, b.(Vec))
	case Quotation:
		return equalValues(av, b.(Quotation))
	case *Map:
		bv := b.(*Map)
		if av.Len() != bv.Len() {
			return false
		}
		for i, key := range av.keys {
			if val, ok := bv.Get(key); !ok || !Equal(av.vals[i], val) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func equalValues(as, bs []Value) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}
