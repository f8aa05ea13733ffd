package grammar

import (
	"fmt"
	"strings"
)

// ErrorCode classifies errors of the grammar loader.
// Error codes are errors themselves, therefore clients may check
//
//    if errors.Is(err, grammar.ErrEmptyRHS) { … }
//
type ErrorCode string

const (
	// ErrIO indicates the grammar text could not be read.
	ErrIO ErrorCode = "grammar-io"
	// ErrMissingArrow indicates a line without the ' -> ' separator.
	ErrMissingArrow ErrorCode = "grammar-missing-arrow"
	// ErrMalformedLHS indicates a left hand side which is not a single non-terminal.
	ErrMalformedLHS ErrorCode = "grammar-malformed-lhs"
	// ErrEmptyRHS indicates a rule without right hand side symbols (epsilon-rule).
	ErrEmptyRHS ErrorCode = "grammar-empty-rhs"
	// ErrUnterminatedTerminal indicates a terminal without closing quote.
	ErrUnterminatedTerminal ErrorCode = "grammar-unterminated-terminal"
	// ErrMalformedSymbol indicates a symbol which is neither a terminal nor a
	// non-terminal, e.g. 'a'b.
	ErrMalformedSymbol ErrorCode = "grammar-malformed-symbol"
)

func (c ErrorCode) Error() string {
	return string(c)
}

// LoadError is the error type of the grammar loader.
type LoadError struct {
	Code   ErrorCode
	Source string // name of the grammar source, e.g. a file path
	Line   int    // 1-based line number, 0 if not applicable
	Msg    string
	Err    error // underlying error, if any
}

func (e *LoadError) Error() string {
	if e == nil {
		return "load error <nil>"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Msg))
	if e.Source != "" {
		b.WriteString(fmt.Sprintf(" in %s", e.Source))
	}
	if e.Line > 0 {
		b.WriteString(fmt.Sprintf(" at line %d", e.Line))
	}
	if e.Err != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return b.String()
}

// Unwrap returns the underlying error, if any.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches load errors against error codes.
func (e *LoadError) Is(target error) bool {
	if code, ok := target.(ErrorCode); ok {
		return e.Code == code
	}
	return false
}

func loadError(code ErrorCode, source string, line int, format string, args ...interface{}) *LoadError {
	return &LoadError{
		Code:   code,
		Source: source,
		Line:   line,
		Msg:    fmt.Sprintf(format, args...),
	}
}
