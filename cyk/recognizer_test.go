package cyk

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/chomsky/cnf"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func loadCNF(t *testing.T, no int) *grammar.Grammar {
	g, err := grammar.LoadFile(fmt.Sprintf("testdata/grammar%d.txt", no))
	if err != nil {
		t.Fatalf("cannot load grammar #%d: %v", no, err)
	}
	return cnf.Normalize(g)
}

func cnfFromText(t *testing.T, text string) *grammar.Grammar {
	g, err := grammar.Load(strings.NewReader(text))
	if err != nil {
		t.Fatalf("cannot load grammar: %v", err)
	}
	return cnf.Normalize(g)
}

var corpus = []struct {
	grammar  int
	sentence string
	accept   bool
}{
	{1, "I shot an elephant in my pajamas", true},
	{1, "I shot elephant an in my my", false},
	{2, "a very heavy orange book", true},
	{2, "a very tall extremely muscular man", true},
	{2, "a very book book book", false},
	{2, "book orange heavy very a", false},
	{3, "0 # 1", true},
	{3, "0 0 0 # 1 1", true},
	{3, " 0 0 # 1 1 0", false},
	{3, "# 0 0 # 1 1 1", false},
	{4, "x x o , o o x , x x x", true},
	{4, "x x o x , o x , x x x", false},
	{4, "x x o , o o x + , x x x", false},
	{4, "x x o , o o x , x x x badtoken", false},
	{5, ". . . . .", true},
	{5, ".", true},
}

func TestCorpus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	recognizers := make(map[int]*Recognizer)
	for _, test := range corpus {
		r, ok := recognizers[test.grammar]
		if !ok {
			r = NewRecognizer(loadCNF(t, test.grammar))
			recognizers[test.grammar] = r
		}
		if accept := r.Recognize(test.sentence); accept != test.accept {
			t.Errorf("grammar%d: expected %q to be accepted=%v, is %v",
				test.grammar, test.sentence, test.accept, accept)
		}
	}
}

func TestRecognizeShortcut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	g := loadCNF(t, 1)
	if !Recognize("I shot an elephant in my pajamas", g) {
		t.Errorf("Expected sentence to be accepted")
	}
	if Recognize("I shot my", g) {
		t.Errorf("Expected sentence to be rejected")
	}
}

func TestAcceptOnStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	for _, test := range corpus {
		g := loadCNF(t, test.grammar)
		r := NewRecognizer(g, AcceptOn(g.Start), WithChainClosure())
		if accept := r.Recognize(test.sentence); accept != test.accept {
			t.Errorf("grammar%d: accepting on %s, expected %q to be accepted=%v, is %v",
				test.grammar, g.Start, test.sentence, test.accept, accept)
		}
	}
}

func TestEmptySentence(t *testing.T) {
	r := NewRecognizer(loadCNF(t, 5))
	table, accept := r.Parse("")
	if accept {
		t.Errorf("Expected empty sentence to be rejected")
	}
	if table.Span().Len() != 0 || table.Cell(0, 0) != nil {
		t.Errorf("Expected empty table for empty sentence")
	}
}

func TestUnknownWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	r := NewRecognizer(loadCNF(t, 4))
	table, accept := r.Parse("x x o , o o x , x x x badtoken")
	if accept {
		t.Fatalf("Expected sentence with unknown word to be rejected")
	}
	if table.Span().Len() != 12 {
		t.Errorf("Expected table to span 12 words, spans %v", table.Span())
	}
	if len(table.Cell(0, 0)) == 0 {
		t.Errorf("Expected diagonal to be filled up to the unknown word")
	}
	if len(table.Cell(11, 11)) != 0 || len(table.Cell(0, 10)) != 0 {
		t.Errorf("Expected table to be left empty after the unknown word")
	}
}

func TestEmptyWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	r := NewRecognizer(cnfFromText(t, "S -> 'a' '' 'b'\n"))
	if !r.Recognize("a  b") {
		t.Errorf("Expected double space to enclose the empty word")
	}
	if r.Recognize("a b") {
		t.Errorf("Expected missing empty word to reject sentence")
	}
	if NewRecognizer(loadCNF(t, 3)).Recognize("0  # 1") {
		t.Errorf("Expected empty word to be unknown to grammar3")
	}
}

func TestChainRulesIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	r := NewRecognizer(cnfFromText(t, "S -> A\nA -> 'a' 'b'\n"))
	table, accept := r.Parse("a b")
	if accept {
		t.Errorf("Expected S to be unreachable without chain closure")
	}
	if top := strings.Join(table.Cell(0, 1), " "); top != "A" {
		t.Errorf("Expected top cell to be [A], is [%s]", top)
	}
	r = NewRecognizer(cnfFromText(t, "S -> X Y\nX -> 'x'\nY -> 'y'\n"))
	table, accept = r.Parse("x y")
	if !accept {
		t.Errorf("Expected \"x y\" to be accepted")
	}
	if top := strings.Join(table.Cell(0, 1), " "); top != "S" {
		t.Errorf("Expected top cell to be [S] without S0, is [%s]", top)
	}
	if NewRecognizer(cnfFromText(t, "S -> X Y\nX -> 'x'\nY -> 'y'\n"), AcceptOn("S0")).Recognize("x y") {
		t.Errorf("Expected S0 to be absent from top cell without chain closure")
	}
}

func TestChainClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	g := cnfFromText(t, "S -> A\nA -> B\nA -> 'a' 'b'\nB -> 'c'\n")
	r := NewRecognizer(g, WithChainClosure())
	for _, sentence := range []string{"a b", "c"} {
		if !r.Recognize(sentence) {
			t.Errorf("Expected %q to be accepted through chain rules", sentence)
		}
	}
	if r.Recognize("a") || r.Recognize("c c") {
		t.Errorf("Expected incomplete sentences to be rejected")
	}
	table, _ := r.Parse("c")
	if strings.Join(table.Cell(0, 0), " ") != "A B S S0" {
		t.Errorf("Expected cell to be closed under chain rules, is %v", table.Cell(0, 0))
	}
	if NewRecognizer(g).Recognize("c") {
		t.Errorf("Expected \"c\" to be rejected without chain closure")
	}
}

// Every non-terminal in a cell must be justified: by a unit rule for the word
// on the diagonal, by a binary rule over some split everywhere else.
func TestSpanDecomposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	for _, test := range corpus {
		g := loadCNF(t, test.grammar)
		table, accept := NewRecognizer(g).Parse(test.sentence)
		if accept != test.accept {
			t.Errorf("grammar%d: expected %q to be accepted=%v", test.grammar, test.sentence, test.accept)
		}
		n := int(table.Span().Len())
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				for _, A := range table.Cell(i, j) {
					if !justified(g, table, i, j, A) {
						t.Errorf("grammar%d, %q: %s in cell (%d,%d) is not derivable",
							test.grammar, test.sentence, A, i, j)
					}
				}
			}
		}
	}
}

func TestTableConsistency(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	g := loadCNF(t, 1)
	table, accept := NewRecognizer(g).Parse("I shot an elephant in my pajamas")
	if !accept {
		t.Fatalf("Expected sentence to be accepted")
	}
	table.Dump()
	n := int(table.Span().Len())
	if !table.Contains(0, n-1, "S") || table.Contains(0, n-1, "S0") {
		t.Errorf("Expected top cell to contain S but not S0, is %v", table.Cell(0, n-1))
	}
	if !table.Contains(0, 0, "NP") || !table.Contains(1, n-1, "VP") {
		t.Errorf("Expected NP (0,0) and VP (1,%d)", n-1)
	}
}

func justified(g *grammar.Grammar, table *Table, i, j int, A string) bool {
	for _, rule := range g.RulesFor(A) {
		switch {
		case rule.IsUnit():
			if i == j && rule.RHS[0].Matches(table.Word(i)) {
				return true
			}
		case rule.IsBinary():
			for k := i; k < j; k++ {
				if table.Contains(i, k, rule.RHS[0].Name) && table.Contains(k+1, j, rule.RHS[1].Name) {
					return true
				}
			}
		}
	}
	return false
}

func TestTableRows(t *testing.T) {
	r := NewRecognizer(loadCNF(t, 3))
	table, _ := r.Parse("0 # 1")
	rows := table.Rows()
	if len(rows) == 0 || !strings.HasPrefix(rows[0], `(0…1) "0": `) {
		t.Errorf("Unexpected table rows %v", rows)
	}
	if last := rows[len(rows)-1]; !strings.HasPrefix(last, `(0…3) "0 # 1": `) {
		t.Errorf("Expected last row to cover the sentence, is %s", last)
	}
}

func TestWords(t *testing.T) {
	r := NewRecognizer(loadCNF(t, 3))
	if words := strings.Join(r.Words(), " "); words != "# 0 1" {
		t.Errorf("Expected words # 0 1, have %s", words)
	}
}

func TestConcurrentRecognize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cyk")
	defer teardown()
	//
	recognizers := make(map[int]*Recognizer)
	for i := 1; i <= 5; i++ {
		recognizers[i] = NewRecognizer(loadCNF(t, i))
	}
	var wg sync.WaitGroup
	errs := make(chan string, 8*len(corpus))
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, test := range corpus {
				if recognizers[test.grammar].Recognize(test.sentence) != test.accept {
					errs <- test.sentence
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for sentence := range errs {
		t.Errorf("concurrent recognition of %q failed", sentence)
	}
}
