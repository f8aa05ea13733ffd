package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSymbols(t *testing.T) {
	var tests = []struct {
		text     string
		terminal bool
		name     string
	}{
		{"S", false, "S"},
		{"NP", false, "NP"},
		{"'the'", true, "the"},
		{"''", true, ""},
		{"'#'", true, "#"},
	}
	for _, test := range tests {
		sym, err := ParseSymbol(test.text)
		if err != nil {
			t.Errorf("cannot parse symbol %s: %v", test.text, err)
			continue
		}
		if sym.IsTerminal() != test.terminal || sym.Name != test.name {
			t.Errorf("Expected %s to parse to (%v,%q), is %v", test.text, test.terminal, test.name, sym)
		}
		if sym.String() != test.text {
			t.Errorf("Expected symbol to print as %s, is %s", test.text, sym.String())
		}
	}
	for _, bad := range []string{"", "'", "'abc", "a'b", "'a'b'"} {
		if _, err := ParseSymbol(bad); err == nil {
			t.Errorf("Expected %q to be rejected as a symbol", bad)
		}
	}
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("NP").N("VP").End()
	b.LHS("NP").T("I").End()
	b.LHS("VP").T("shot").N("NP").End()
	b.LHS("NP").T("you").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 4 || g.Start != Start {
		t.Errorf("Expected grammar of 4 rules starting with S, have %d rules, start %s", g.Size(), g.Start)
	}
	if len(g.RulesFor("NP")) != 2 {
		t.Errorf("Expected 2 alternatives for NP, have %d", len(g.RulesFor("NP")))
	}
	if !g.HasRule("VP", T("shot"), N("NP")) {
		t.Errorf("Expected rule VP -> 'shot' NP to be present")
	}
	if g.HasRule("VP", N("shot"), N("NP")) {
		t.Errorf("Did not expect non-terminal 'shot' to match terminal")
	}
	nts := strings.Join(g.Nonterminals(), " ")
	if nts != "NP S VP" {
		t.Errorf("Expected non-terminals NP S VP, have %s", nts)
	}
	ts := strings.Join(g.Terminals(), " ")
	if ts != "I shot you" {
		t.Errorf("Expected terminals I shot you, have %s", ts)
	}
}

func TestBuilderEpsilon(t *testing.T) {
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").End()
	b.LHS("A").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected builder to reject epsilon rule")
	}
}

func TestDrainAndCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.grammar")
	defer teardown()
	//
	g := NewGrammar("G", Start)
	g.AddRule("S", N("A"), N("B"))
	g.AddRule("A", T("a"))
	g.AddRule("A", T("a")) // duplicates are kept
	c := g.Copy()
	c.Rule(0).RHS[0] = N("X")
	if g.Rule(0).RHS[0].Name != "A" {
		t.Errorf("Expected copy to be independent of original")
	}
	r, ok := c.Drain()
	if !ok || r.LHS != "S" {
		t.Errorf("Expected to drain S rule first, got %v", r)
	}
	c.Drain()
	if !c.HasLHS("A") {
		t.Errorf("Expected second A rule to be still present")
	}
	c.Drain()
	if c.HasLHS("A") || c.Size() != 0 {
		t.Errorf("Expected drained grammar to be empty, has %d rules", c.Size())
	}
	if _, ok := c.Drain(); ok {
		t.Errorf("Expected empty grammar to not drain anything")
	}
	if g.Size() != 3 {
		t.Errorf("Expected original grammar to keep 3 rules, has %d", g.Size())
	}
}

func TestIsCNF(t *testing.T) {
	g := NewGrammar("CNF", AugmentedStart)
	g.AddRule("S0", N("S"))
	g.AddRule("S", N("A"), N("B"))
	g.AddRule("A", T("a"))
	g.AddRule("B", T("b"))
	if ok, r := g.IsCNF(); !ok {
		t.Errorf("Expected grammar to be in CNF, offending rule is %v", r)
	}
	g.AddRule("B", N("A"))
	if ok, r := g.IsCNF(); ok || r.String() != "B -> A" {
		t.Errorf("Expected chain rule B -> A to violate CNF, got %v", r)
	}
	h := NewGrammar("nonCNF", Start)
	h.AddRule("S", N("A"), T("b"))
	if ok, _ := h.IsCNF(); ok {
		t.Errorf("Expected terminal in binary rule to violate CNF")
	}
}

func TestFingerprint(t *testing.T) {
	g1, _ := Load(strings.NewReader("S -> A B\nA -> 'a'\nB -> 'b'\n"))
	g2, _ := Load(strings.NewReader("S -> A B\nA -> 'a'\nB -> 'b'"))
	g3, _ := Load(strings.NewReader("S -> A B\nA -> 'a'\nB -> 'c'\n"))
	if g1.Fingerprint() == "" || g1.Fingerprint() != g2.Fingerprint() {
		t.Errorf("Expected equal grammars to have equal fingerprints")
	}
	if g1.Fingerprint() == g3.Fingerprint() {
		t.Errorf("Expected different grammars to have different fingerprints")
	}
}

// --- Loader ----------------------------------------------------------------

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.grammar")
	defer teardown()
	//
	text := "S -> NP VP\nNP -> Det N\nNP -> 'I'\r\nVP -> 'shot' NP\n\n"
	g, err := Load(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 4 {
		t.Fatalf("Expected 4 rules, have %d", g.Size())
	}
	if g.String() != "S -> NP VP\nNP -> Det N\nNP -> 'I'\nVP -> 'shot' NP\n" {
		t.Errorf("Unexpected grammar text:\n%s", g.String())
	}
	r := g.Rule(3)
	if !r.RHS[0].IsTerminal() || r.RHS[0].Name != "shot" || r.RHS[1].IsTerminal() {
		t.Errorf("Expected 'shot' NP, have %v", r)
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.grammar")
	defer teardown()
	//
	g, err := LoadFile("testdata/english.txt")
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 6 {
		t.Errorf("Expected 6 rules, have %d", g.Size())
	}
	g.Dump()
	_, err = LoadFile("testdata/no-such-file.txt")
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected I/O error for missing file, got %v", err)
	}
	_, err = LoadFile("testdata/epsilon.txt")
	var lerr *LoadError
	if !errors.As(err, &lerr) || lerr.Code != ErrEmptyRHS || lerr.Line != 3 {
		t.Errorf("Expected empty RHS error on line 3, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.grammar")
	defer teardown()
	//
	var tests = []struct {
		text string
		code ErrorCode
		line int
	}{
		{"S A B", ErrMissingArrow, 1},
		{"S -> A\nA->B", ErrMissingArrow, 2},
		{"S -> A\nA -> ", ErrEmptyRHS, 2},
		{"S ->", ErrEmptyRHS, 1},
		{"S -> 'a", ErrUnterminatedTerminal, 1},
		{"S -> A\nA -> 'b c'", ErrUnterminatedTerminal, 2},
		{"S -> A\n\nA -> B", ErrMissingArrow, 2},
		{"\nS -> A", ErrMissingArrow, 1},
		{"S -> A\n  \t\nA -> B\n", ErrMissingArrow, 2},
		{"S -> 'a'b", ErrMalformedSymbol, 1},
		{"S -> A -> B", ErrMalformedSymbol, 1},
		{"-> A", ErrMalformedLHS, 1},
		{"S T -> A", ErrMalformedLHS, 1},
		{"'S' -> A", ErrMalformedLHS, 1},
	}
	for _, test := range tests {
		_, err := Load(strings.NewReader(test.text))
		if err == nil {
			t.Errorf("Expected %q to fail loading", test.text)
			continue
		}
		t.Logf("error = %v", err)
		if !errors.Is(err, test.code) {
			t.Errorf("Expected %q to fail with %s, got %v", test.text, test.code, err)
		}
		var lerr *LoadError
		if errors.As(err, &lerr) && lerr.Line != test.line {
			t.Errorf("Expected %q to fail on line %d, reported line %d", test.text, test.line, lerr.Line)
		}
	}
}
