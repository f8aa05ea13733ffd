package scanner

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chomsky"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ("->", …), a list of keywords and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// UnconsumedInputError is reported to the error handler whenever the scanner
// encounters input it has no pattern for. The scanner skips the offending
// input and continues.
type UnconsumedInputError struct {
	Line   int    // 1-based input line
	Column int    // 1-based column
	Text   string // the input which could not be matched
}

func (e *UnconsumedInputError) Error() string {
	return fmt.Sprintf("line %d, column %d: cannot scan %q", e.Line, e.Column, e.Text)
}

// NextToken is part of the Tokenizer interface.
//
// Tokens carry their 1-based start line; spans are columns of that line,
// half-open and starting at 0.
func (lms *LMScanner) NextToken() chomsky.Token {
	if lms.scanner == nil {
		return MakeDefaultToken(EOF, "", chomsky.Span{0, 0})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.Error(&UnconsumedInputError{
				Line:   ui.StartLine,
				Column: ui.StartColumn,
				Text:   unconsumedText(ui),
			})
			lms.scanner.TC = ui.FailTC
		} else {
			lms.Error(err)
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return MakeDefaultToken(EOF, "", chomsky.Span{0, 0})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %q", token.Type, token.Lexeme)
	return MakeDefaultToken(
		chomsky.TokType(token.Type),
		string(token.Lexeme),
		chomsky.Span{uint64(token.StartColumn - 1), uint64(token.EndColumn)},
	).OnLine(token.StartLine)
}

// unconsumedText isolates the rest of the offending input line.
func unconsumedText(ui *machines.UnconsumedInput) string {
	text := string(ui.Text[ui.StartTC:])
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return text
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
