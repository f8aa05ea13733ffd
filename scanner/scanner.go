/*
Package scanner defines an interface for scanners to be used with grammar loaders
and recognizers.

Two scanner implementations are provided: (1) an adapter for lexmachine, used to
tokenize grammar text, and (2) a word tokenizer, splitting sentences at single
space characters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.scanner")
}

// Token types common to all scanners of this package. Scanners for grammar text
// define their own token types, which have to be different from these.
const (
	EOF  chomsky.TokType = -1
	Word chomsky.TokType = -2
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() chomsky.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the word tokenizer
// as well as the LexMachine scanner.
type DefaultToken struct {
	kind   chomsky.TokType
	lexeme string
	span   chomsky.Span
	line   int
}

var _ chomsky.Token = DefaultToken{}

// MakeDefaultToken creates a token, positioned on line 1.
func MakeDefaultToken(typ chomsky.TokType, lexeme string, span chomsky.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
		line:   1,
	}
}

// OnLine returns a copy of t, positioned on line n.
func (t DefaultToken) OnLine(n int) DefaultToken {
	t.line = n
	return t
}

func (t DefaultToken) TokType() chomsky.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() chomsky.Span {
	return t.span
}

// Line is the 1-based input line a token has been found on.
func (t DefaultToken) Line() int {
	return t.line
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q %v>", t.kind, t.lexeme, t.span)
}

// LineOf returns the input line of a token, if the token knows about it.
// Tokens from other scanners are reported to live on line 1.
func LineOf(token chomsky.Token) int {
	if t, ok := token.(DefaultToken); ok {
		return t.line
	}
	return 1
}
