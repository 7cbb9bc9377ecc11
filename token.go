package main

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// TokenKind distinguishes the three lexical token shapes.
type TokenKind int

// Token kinds.
const (
	SymbolToken TokenKind = iota
	StringToken
	WordToken
)

var tokenKindNames = [...]string{
	SymbolToken: "Symbol",
	StringToken: "String",
	WordToken:   "Word",
}

func (kind TokenKind) String() string {
	if int(kind) < len(tokenKindNames) {
		return tokenKindNames[kind]
	}
	return fmt.Sprintf("TokenKind(%d)", int(kind))
}

// Token is a lexical token. Text is a slice of the tokenized source: the
// leading ':' of a symbol and the quotes of a string are not included.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}

func (tok Token) String() string { return fmt.Sprintf("%v(%q)", tok.Kind, tok.Text) }

// Lexical errors, wrapped by LexError.
var (
	ErrUnfinishedString = errors.New("unfinished string")
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrInvalidWord      = errors.New("invalid word")
)

// LexError locates a lexical error at a 1-based line number, within the
// source called Name if known.
type LexError struct {
	Name string
	Line int
	Err  error
}

func (err LexError) Error() string {
	if err.Name != "" {
		return fmt.Sprintf("%v:%v: %v", err.Name, err.Line, err.Err)
	}
	return fmt.Sprintf("line %v: %v", err.Line, err.Err)
}

func (err LexError) Unwrap() error { return err.Err }

func isDelimiter(r rune) bool { return unicode.IsSpace(r) || r == ';' }

func isWordRune(r rune) bool { return r != '"' && r != ':' && r != '{' && r != '}' }

func isSymbolRune(r rune) bool { return r != '"' && r != ':' }

func isQuoteMarker(r rune) bool { return r == '{' || r == '}' }

type lexState int

const (
	lexEmpty lexState = iota
	lexWord
	lexSymbol
	lexComment
	lexString
)

// Tokenize splits source text into tokens, stopping at the first lexical error.
func Tokenize(src string) ([]Token, error) {
	var (
		toks  []Token
		state = lexEmpty
		start int
		line  = 1
	)

	emit := func(kind TokenKind, end int) {
		toks = append(toks, Token{Kind: kind, Text: src[start:end], Line: line})
	}
	fail := func(err error) ([]Token, error) {
		return nil, LexError{Line: line, Err: err}
	}

	for i, r := range src {
		switch state {
		case lexEmpty:
			switch {
			case unicode.IsSpace(r):
			case r == ';':
				state = lexComment
			case r == ':':
				state, start = lexSymbol, i+1
			case r == '"':
				state, start = lexString, i+1
			default:
				state, start = lexWord, i
			}

		case lexWord:
			if isDelimiter(r) {
				emit(WordToken, i)
				state = lexEmpty
				if r == ';' {
					state = lexComment
				}
			} else if !isWordRune(r) {
				return fail(ErrInvalidWord)
			} else if first, _ := utf8.DecodeRuneInString(src[start:]); isQuoteMarker(first) {
				// quotation markers must stand alone
				return fail(ErrInvalidWord)
			}

		case lexSymbol:
			if isDelimiter(r) {
				if i == start {
					return fail(ErrInvalidSymbol)
				}
				emit(SymbolToken, i)
				state = lexEmpty
				if r == ';' {
					state = lexComment
				}
			} else if !isSymbolRune(r) {
				return fail(ErrInvalidSymbol)
			}

		case lexComment:
			if r == '\n' {
				state = lexEmpty
			}

		case lexString:
			if r == '"' {
				emit(StringToken, i)
				state = lexEmpty
			} else if r == '\n' {
				return fail(ErrUnfinishedString)
			}
		}

		if r == '\n' {
			line++
		}
	}

	switch state {
	case lexWord:
		emit(WordToken, len(src))
	case lexSymbol:
		if start == len(src) {
			return fail(ErrInvalidSymbol)
		}
		emit(SymbolToken, len(src))
	case lexString:
		return fail(ErrUnfinishedString)
	}

	return toks, nil
}
