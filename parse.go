package main

import (
	"errors"
	"strconv"
	"strings"
)

// symbols interns symbol text for the duration of one parse.
type symbols struct {
	names   []string
	symbols map[string]Symbol
}

func (sym *symbols) symbolicate(text string) Symbol {
	s, defined := sym.symbols[text]
	if !defined {
		if sym.symbols == nil {
			sym.symbols = make(map[string]Symbol)
		}
		sym.names = append(sym.names, text)
		s = Symbol{ID: uint(len(sym.names)), Name: text}
		sym.symbols[text] = s
	}
	return s
}

// Parse resolves tokens into values. Words are classified, in order, as an
// integer, a float, a boolean, a quotation marker, a builtin from reg, or
// left as an unresolved Word. A nil reg resolves no builtins.
func Parse(toks []Token, reg *Registry) []Value {
	var sym symbols
	vals := make([]Value, 0, len(toks))
	for _, tok := range toks {
		switch tok.Kind {
		case SymbolToken:
			vals = append(vals, sym.symbolicate(tok.Text))
		case StringToken:
			vals = append(vals, String(tok.Text))
		default:
			vals = append(vals, parseWord(tok.Text, reg))
		}
	}
	return vals
}

func parseWord(text string, reg *Registry) Value {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(n)
	}
	if f, ok := parseFloat(text); ok {
		return Float(f)
	}
	switch text {
	case "#t":
		return Boolean(true)
	case "#f":
		return Boolean(false)
	case "{":
		return QuoteOpen{}
	case "}":
		return QuoteClose{}
	}
	if b, ok := reg.Lookup(text); ok {
		return b
	}
	return Word(text)
}

// parseFloat accepts decimal floats only; out of range values become
// infinities.
func parseFloat(text string) (float64, bool) {
	digits := strings.TrimLeft(text, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// isLiteralWord reports whether text would never reach builtin lookup.
func isLiteralWord(text string) bool {
	_, isBuiltin := parseWord(text, nil).(Word)
	return !isBuiltin
}
