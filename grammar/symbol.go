package grammar

import (
	"fmt"
	"strings"
)

// Names of start symbols.
const (
	Start          = "S"  // start symbol of raw grammars
	AugmentedStart = "S0" // start symbol introduced by normalization
)

// SymbolKind tells terminals from non-terminals.
type SymbolKind int8

// Kinds of grammar symbols. Generated symbols are non-terminals, synthesized
// during normalization.
const (
	Nonterminal SymbolKind = iota
	Terminal
	Generated
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Generated:
		return "generated"
	}
	return "non-terminal"
}

// Symbol is a grammar symbol. For terminals, Name holds the word to match,
// without quotes.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// T creates a terminal symbol for a word.
func T(word string) Symbol {
	return Symbol{Kind: Terminal, Name: word}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: Nonterminal, Name: name}
}

// G creates a generated non-terminal symbol.
func G(name string) Symbol {
	return Symbol{Kind: Generated, Name: name}
}

// IsTerminal is a predicate.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// Matches is a predicate: does terminal s match an input word?
func (s Symbol) Matches(word string) bool {
	return s.Kind == Terminal && s.Name == word
}

// String returns the text form of a symbol, i.e. terminals are quoted.
func (s Symbol) String() string {
	if s.Kind == Terminal {
		return "'" + s.Name + "'"
	}
	return s.Name
}

// Quote wraps a word into single quotes, the text form of terminals.
func Quote(word string) string {
	return "'" + word + "'"
}

// ParseSymbol converts the text form of a symbol into a Symbol. Text enclosed in
// single quotes denotes a terminal.
func ParseSymbol(text string) (Symbol, error) {
	if text == "" {
		return Symbol{}, fmt.Errorf("empty symbol")
	}
	if !strings.HasPrefix(text, "'") {
		if strings.ContainsRune(text, '\'') {
			return Symbol{}, fmt.Errorf("quote within non-terminal %s", text)
		}
		return N(text), nil
	}
	if len(text) < 2 || !strings.HasSuffix(text, "'") {
		return Symbol{}, fmt.Errorf("unterminated terminal %s", text)
	}
	word := text[1 : len(text)-1]
	if strings.ContainsRune(word, '\'') {
		return Symbol{}, fmt.Errorf("quote within terminal %s", text)
	}
	return T(word), nil
}
