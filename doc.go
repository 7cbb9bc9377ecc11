/* Command orth: a small concatenative language.

Orth programs are sequences of values and words operating on one shared stack
and one flat environment. Source text is processed in three steps:

Tokenizing splits text into symbols, strings and words. Whitespace and ';'
delimit tokens, and ';' also starts a comment running to the end of the line.
A symbol is written ":name" and a string "like this"; strings have no escapes
and may not span lines. Every other run of characters is a word, except that
the quotation markers '{' and '}' must stand alone. The first lexical error
stops everything, reported with its line number.

Parsing classifies each word: integers (42), floats (3.14), booleans (#t #f),
the quotation markers, then any builtin registered under that exact name.
Anything else stays a word, looked up in the environment only when it is
evaluated. Equal symbol text within one parse yields the same symbol.

Evaluation pushes literals and runs builtins. Between '{' and its matching
'}' nothing runs: the values are collected, nested markers included, and
pushed as a single quotation. A word bound to a quotation runs the
quotation's values against the same stack and environment; there are no
local scopes, so a binding made inside a quotation is visible afterwards.

	{ swap } :flip @      ; bind a quotation to flip
	1 2 flip              ; stack: 2 1
	{ 1 :y @ } :set-y @
	set-y y               ; stack: 2 1 1

The standard builtins are:

	@           value sym --      bind the symbol's name to value
	swap        a b -- b a
	make-vec    -- vec
	vpush!      vec val -- vec    append val
	vget        vec i -- val      the i-th element
	show-top    print the top of the stack
	show-stack  print the stack, top first
	show-env    print the environment
	show-ctx    print the whole context

Values are copied whenever they are pushed or looked up, so changing a vector
on the stack never changes the one bound in the environment.

Stack underflow always stops evaluation. Unresolved words, operands of the
wrong kind, out of range indexes and unbalanced quotation markers are
reported and skipped, unless the -strict flag makes them stop evaluation too.

Usage:

	orth [-strict] [-trace] [-timeout d] [-max-depth n] [file ...]
	orth -e 'code'

With no files, orth reads standard input, or starts an interactive session
when standard input is a terminal.
*/
package main
