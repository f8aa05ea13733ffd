package cyk

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/chomsky/scanner"
)

// Recognizer decides membership of sentences in the language of a CNF grammar.
// It holds a reverse index of the grammar's rules, built once by
// NewRecognizer.
type Recognizer struct {
	name      string
	accept    string                  // symbol to look for in the top cell
	closure   bool                    // close cells under chain rules
	terminals map[string]*treeset.Set // word -> {A | A -> 'word'}
	pairs     map[pair]*treeset.Set   // (B,C) -> {A | A -> B C}
	parents   map[string][]string     // B -> [A | A -> B]
}

type pair [2]string

// Option configures a Recognizer.
type Option func(r *Recognizer)

// AcceptOn sets the symbol which has to derive a sentence for it to be
// accepted. Default is S. The start symbol S0 of a normalized grammar is
// found in the top cell only together with WithChainClosure.
func AcceptOn(A string) Option {
	return func(r *Recognizer) {
		r.accept = A
	}
}

// WithChainClosure makes the recognizer close every table cell under chain
// rules A -> B. Without it, chain rules are ignored and cells hold only
// symbols derived by unit rules (diagonal) or binary rules (all others).
func WithChainClosure() Option {
	return func(r *Recognizer) {
		r.closure = true
	}
}

// NewRecognizer creates a recognizer for a grammar, which should be in Chomsky
// Normal Form. Rules of other shapes are ignored. Chain rules are used only
// with option WithChainClosure.
// g is not referenced after construction.
func NewRecognizer(g *grammar.Grammar, opts ...Option) *Recognizer {
	r := &Recognizer{
		name:      g.Name,
		accept:    grammar.Start,
		terminals: make(map[string]*treeset.Set),
		pairs:     make(map[pair]*treeset.Set),
		parents:   make(map[string][]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	g.EachRule(func(rule *grammar.Rule) {
		switch {
		case rule.IsUnit():
			insert(r.terminals, rule.RHS[0].Name, rule.LHS)
		case rule.IsBinary():
			insert(r.pairs, pair{rule.RHS[0].Name, rule.RHS[1].Name}, rule.LHS)
		case rule.IsChain():
			B := rule.RHS[0].Name
			r.parents[B] = append(r.parents[B], rule.LHS)
		default:
			tracer().Errorf("rule not in CNF, ignored: %s", rule)
		}
	})
	tracer().Debugf("recognizer for %s: %d words, %d pairs, %d chain targets",
		g.Name, len(r.terminals), len(r.pairs), len(r.parents))
	return r
}

func insert[K comparable](index map[K]*treeset.Set, key K, A string) {
	set, ok := index[key]
	if !ok {
		set = treeset.NewWithStringComparator()
		index[key] = set
	}
	set.Add(A)
}

// Words returns the words known to the recognizer, sorted.
func (r *Recognizer) Words() []string {
	words := make([]interface{}, 0, len(r.terminals))
	for w := range r.terminals {
		words = append(words, w)
	}
	utils.Sort(words, utils.StringComparator)
	sorted := make([]string, len(words))
	for i, w := range words {
		sorted[i] = w.(string)
	}
	return sorted
}

// Recognize is a predicate: is sentence in the language of the grammar?
func (r *Recognizer) Recognize(sentence string) bool {
	_, accept := r.Parse(sentence)
	return accept
}

// Recognize is a shortcut for NewRecognizer(g).Recognize(sentence).
// Clients checking more than one sentence should create a Recognizer
// and re-use it.
func Recognize(sentence string, g *grammar.Grammar) bool {
	return NewRecognizer(g).Recognize(sentence)
}

// Parse fills the CYK table for a sentence and returns it, together with
// the verdict. Parsing stops at the first word unknown to the grammar,
// leaving the rest of the table empty.
func (r *Recognizer) Parse(sentence string) (*Table, bool) {
	tokens := scanner.Words(sentence)
	words := make([]string, len(tokens))
	for i, token := range tokens {
		words[i] = scanner.Lexeme(token)
	}
	t := newTable(words)
	n := len(words)
	if n == 0 {
		tracer().Debugf("empty sentence is not accepted")
		return t, false
	}
	for i, word := range words {
		producers, ok := r.terminals[word]
		if !ok {
			tracer().Infof("word #%d %s is unknown to grammar %s", i, grammar.Quote(word), r.name)
			return t, false
		}
		c := t.cell(i, i)
		c.Add(producers.Values()...)
		r.close(c)
	}
	for l := 2; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			j := i + l - 1
			c := t.cell(i, j)
			for k := i; k < j; k++ {
				r.combine(c, t.cell(i, k), t.cell(k+1, j))
			}
			r.close(c)
		}
	}
	accept := t.Contains(0, n-1, r.accept)
	tracer().Debugf("sentence %q accepted = %v", sentence, accept)
	return t, accept
}

// combine adds every A with A -> B C, B in left and C in right, to c.
func (r *Recognizer) combine(c, left, right *treeset.Set) {
	if left.Empty() || right.Empty() {
		return
	}
	lit := left.Iterator()
	for lit.Next() {
		B := lit.Value().(string)
		rit := right.Iterator()
		for rit.Next() {
			if producers, ok := r.pairs[pair{B, rit.Value().(string)}]; ok {
				c.Add(producers.Values()...)
			}
		}
	}
}

// close adds every A with A ⇒* B, B in c, to c.
func (r *Recognizer) close(c *treeset.Set) {
	if !r.closure || len(r.parents) == 0 {
		return
	}
	var worklist []string
	for _, v := range c.Values() {
		worklist = append(worklist, v.(string))
	}
	for len(worklist) > 0 {
		B := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, A := range r.parents[B] {
			if !c.Contains(A) {
				c.Add(A)
				worklist = append(worklist, A)
			}
		}
	}
}
