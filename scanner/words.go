package scanner

import (
	"strings"

	"github.com/npillmayer/chomsky"
)

// WordTokenizer splits a sentence into words. Words are separated by exactly
// one space character: two consecutive spaces enclose an empty word, as does a
// leading or trailing space. Spans are word positions, not byte offsets.
//
// Create one with NewWordTokenizer.
type WordTokenizer struct {
	rest  string
	pos   uint64
	done  bool
	Error func(error) // error handler; words cannot fail, kept for Tokenizer
}

var _ Tokenizer = (*WordTokenizer)(nil)

// NewWordTokenizer creates a tokenizer for a sentence. An empty sentence has no
// words at all.
func NewWordTokenizer(sentence string) *WordTokenizer {
	return &WordTokenizer{
		rest:  sentence,
		done:  sentence == "",
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (wt *WordTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		wt.Error = logError
		return
	}
	wt.Error = h
}

// NextToken is part of the Tokenizer interface.
func (wt *WordTokenizer) NextToken() chomsky.Token {
	if wt.done {
		return MakeDefaultToken(EOF, "", chomsky.Span{wt.pos, wt.pos})
	}
	var word string
	if i := strings.IndexByte(wt.rest, ' '); i >= 0 {
		word, wt.rest = wt.rest[:i], wt.rest[i+1:]
	} else {
		word, wt.rest, wt.done = wt.rest, "", true
	}
	token := MakeDefaultToken(Word, word, chomsky.Span{wt.pos, wt.pos + 1})
	wt.pos++
	return token
}

// Words is a helper to split a sentence into word tokens in one go.
func Words(sentence string) []chomsky.Token {
	wt := NewWordTokenizer(sentence)
	var words []chomsky.Token
	for token := wt.NextToken(); token.TokType() != EOF; token = wt.NextToken() {
		words = append(words, token)
	}
	tracer().Debugf("sentence %q has %d words", sentence, len(words))
	return words
}

// Lexeme is a helper function to receive a string from a token.
func Lexeme(token chomsky.Token) string {
	if token == nil {
		return ""
	}
	return token.Lexeme()
}
