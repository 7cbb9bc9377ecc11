package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sy(text string, line int) Token { return Token{Kind: SymbolToken, Text: text, Line: line} }
func st(text string, line int) Token { return Token{Kind: StringToken, Text: text, Line: line} }
func wd(text string, line int) Token { return Token{Kind: WordToken, Text: text, Line: line} }

func TestTokenize(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		toks []Token
	}{
		{"empty", "", nil},
		{"blank", " \t\n ", nil},
		{"symbol and word", ":foo bar", []Token{sy("foo", 1), wd("bar", 1)}},
		{"trailing delimiter", ":foo bar\n", []Token{sy("foo", 1), wd("bar", 1)}},
		{"string", `"abc" "" "a b"`, []Token{st("abc", 1), st("", 1), st("a b", 1)}},
		{"string then word", `"abc"def`, []Token{st("abc", 1), wd("def", 1)}},
		{"string keeps semicolon", `"a;b"`, []Token{st("a;b", 1)}},
		{"comment", "1 ; two three\n4", []Token{wd("1", 1), wd("4", 2)}},
		{"comment at end", "1 ; the end", []Token{wd("1", 1)}},
		{"comment after word", "1;two\n3", []Token{wd("1", 1), wd("3", 2)}},
		{"comment after symbol", ":a;b\n", []Token{sy("a", 1)}},
		{"quote markers", "{ 1 }", []Token{wd("{", 1), wd("1", 1), wd("}", 1)}},
		{"symbol allows braces", ":{x}", []Token{sy("{x}", 1)}},
		{"lines", "a\n\nb\r\n  c", []Token{wd("a", 1), wd("b", 3), wd("c", 4)}},
		{"unicode", "λ :π \"ü\"", []Token{wd("λ", 1), sy("π", 1), st("ü", 1)}},
		{"punctuation words", "@ vpush! #t -1.5", []Token{wd("@", 1), wd("vpush!", 1), wd("#t", 1), wd("-1.5", 1)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.toks, toks)
		})
	}
}

func TestTokenize_errors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		err  error
		line int
	}{
		{"unfinished string at newline", "\"abc\n", ErrUnfinishedString, 1},
		{"unfinished string at end", `1 "abc`, ErrUnfinishedString, 1},
		{"unfinished string later line", "1\n2\n\"abc\ndef\"", ErrUnfinishedString, 3},
		{"empty symbol at newline", ":\n", ErrInvalidSymbol, 1},
		{"empty symbol at end", "1 :", ErrInvalidSymbol, 1},
		{"empty symbol before comment", "\n:;", ErrInvalidSymbol, 2},
		{"symbol with colon", ":a:b", ErrInvalidSymbol, 1},
		{"symbol with quote", "\n\n:a\"b", ErrInvalidSymbol, 3},
		{"word with colon", "a:b", ErrInvalidWord, 1},
		{"word with quote", "ab\"", ErrInvalidWord, 1},
		{"word with open brace", "\nfoo{", ErrInvalidWord, 2},
		{"word with close brace", "x}", ErrInvalidWord, 1},
		{"brace not alone", "{1 }", ErrInvalidWord, 1},
		{"close brace not alone", "{ 1 }}", ErrInvalidWord, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.src)
			assert.Nil(t, toks, "expected no partial tokens")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
			var lexErr LexError
			if assert.True(t, errors.As(err, &lexErr), "expected a LexError, got %T", err) {
				assert.Equal(t, tc.line, lexErr.Line, "expected error line")
			}
		})
	}
}

func TestTokenize_textSlices(t *testing.T) {
	src := ":name word"
	toks, err := Tokenize(src)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, src[1:5], toks[0].Text)
	assert.Equal(t, src[6:], toks[1].Text)
}

func TestLexError(t *testing.T) {
	err := LexError{Line: 3, Err: ErrInvalidWord}
	assert.EqualError(t, err, "line 3: invalid word")
	err.Name = "prog.orth"
	assert.EqualError(t, err, "prog.orth:3: invalid word")
}
