package grammar

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/scanner"
	"github.com/timtadh/lexmachine"
)

// Token types of grammar text.
const (
	tokArrow    = 1
	tokTerminal = 2
	tokName     = 3
	tokNewline  = 4
)

var tokenIds = map[string]int{
	"->":       tokArrow,
	"TERMINAL": tokTerminal,
	"NAME":     tokName,
	"NL":       tokNewline,
}

var lexerOnce sync.Once
var grammarLM *scanner.LMAdapter
var grammarLMErr error

// grammarLexer creates the lexmachine lexer for grammar text, once.
func grammarLexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`'[^ \t\r\n']*'`), scanner.MakeToken("TERMINAL", tokTerminal))
			lexer.Add([]byte(`[^ \t\r\n']+`), scanner.MakeToken("NAME", tokName))
			lexer.Add([]byte(`\n`), scanner.MakeToken("NL", tokNewline))
			lexer.Add([]byte(`( |\t|\r)+`), scanner.Skip)
		}
		grammarLM, grammarLMErr = scanner.NewLMAdapter(init, []string{"->"}, nil, tokenIds)
	})
	return grammarLM, grammarLMErr
}

// LoadFile loads a grammar from a text file. See Load.
func LoadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrIO, Source: path, Msg: "cannot open grammar file", Err: err}
	}
	defer f.Close()
	return load(path, f)
}

// Load reads a grammar in text format, one rule per line:
//
//    NP -> Det N
//    Det -> 'the'
//
// Blank lines are malformed, except at the end of the text. Malformed lines
// are reported as *LoadError.
// The grammar's start symbol is S.
func Load(r io.Reader) (*Grammar, error) {
	return load("", r)
}

func load(source string, r io.Reader) (*Grammar, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Code: ErrIO, Source: source, Msg: "cannot read grammar", Err: err}
	}
	lm, err := grammarLexer()
	if err != nil {
		return nil, fmt.Errorf("grammar lexer: %w", err)
	}
	sc, err := lm.Scanner(string(text))
	if err != nil {
		return nil, fmt.Errorf("grammar lexer: %w", err)
	}
	var scanErr *scanner.UnconsumedInputError
	sc.SetErrorHandler(func(e error) {
		if ui, ok := e.(*scanner.UnconsumedInputError); ok && scanErr == nil {
			scanErr = ui
		}
	})
	name := source
	if name == "" {
		name = "G"
	}
	g := NewGrammar(name, Start)
	var line []chomsky.Token
	blank := 0 // first blank line not yet followed by a rule
	for {
		token := sc.NextToken()
		if scanErr != nil {
			return nil, unconsumedError(source, scanErr)
		}
		if token.TokType() == scanner.EOF || token.TokType() == tokNewline {
			if len(line) > 0 {
				rule, err := parseRule(source, line)
				if err != nil {
					return nil, err
				}
				g.Add(rule)
				line = line[:0]
			} else if token.TokType() == tokNewline && blank == 0 {
				blank = scanner.LineOf(token)
			}
			if token.TokType() == scanner.EOF {
				break
			}
			continue
		}
		if blank > 0 {
			return nil, loadError(ErrMissingArrow, source, blank, "blank line between rules")
		}
		line = append(line, token)
	}
	tracer().Debugf("loaded grammar %s with %d rules", name, g.Size())
	return g, nil
}

// parseRule parses the tokens of a single non-empty line.
func parseRule(source string, line []chomsky.Token) (*Rule, error) {
	lineno := scanner.LineOf(line[0])
	arrow := -1
	for i, token := range line {
		if token.TokType() == tokArrow {
			arrow = i
			break
		}
	}
	if arrow < 0 {
		return nil, loadError(ErrMissingArrow, source, lineno, "cannot find ' -> '")
	}
	if arrow != 1 || line[0].TokType() != tokName {
		return nil, loadError(ErrMalformedLHS, source, lineno,
			"left hand side must be a single non-terminal")
	}
	if arrow == len(line)-1 {
		return nil, loadError(ErrEmptyRHS, source, lineno, "cannot find right hand side symbols")
	}
	for i := 1; i < len(line); i++ {
		if line[i].Span().From() == line[i-1].Span().To() {
			return nil, loadError(ErrMalformedSymbol, source, lineno,
				"symbols %s and %s have to be separated by a space",
				line[i-1].Lexeme(), line[i].Lexeme())
		}
	}
	rhs := make([]Symbol, 0, len(line)-2)
	for _, token := range line[2:] {
		if token.TokType() == tokArrow {
			return nil, loadError(ErrMalformedSymbol, source, lineno, "unexpected second '->'")
		}
		sym, err := ParseSymbol(token.Lexeme())
		if err != nil {
			return nil, loadError(ErrMalformedSymbol, source, lineno, "%v", err)
		}
		rhs = append(rhs, sym)
	}
	return NewRule(line[0].Lexeme(), rhs...), nil
}

func unconsumedError(source string, ui *scanner.UnconsumedInputError) *LoadError {
	if strings.HasPrefix(ui.Text, "'") {
		return loadError(ErrUnterminatedTerminal, source, ui.Line, "invalid terminal string %s", ui.Text)
	}
	return loadError(ErrMalformedSymbol, source, ui.Line, "invalid symbol %s", ui.Text)
}
