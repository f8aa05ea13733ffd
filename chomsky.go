package chomsky

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Tokens represent input tokens. They are produced by a scanner, either from
// grammar text or from a sentence to recognize.
//
// An example would be a token for the word "elephant" within a sentence:
//
//    TokType = Word         // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "elephant"   // lexeme how it appeared in the input stream
//    Span    = 3…4          // fourth word of the sentence
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end. For sentences the
// positions are word indices, for grammar text they are columns.
//
// The CYK table talks about inclusive ranges [i,j] of words. These are
// spans (i…j+1).
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
