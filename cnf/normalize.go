package cnf

import (
	"fmt"

	"github.com/npillmayer/chomsky/grammar"
)

// Normalizer rewrites grammars into Chomsky Normal Form. It owns a counter
// for minting names of stand-in symbols. A Normalizer is not safe for
// concurrent use, but may be re-used for normalizing further grammars.
type Normalizer struct {
	start     string           // start symbol of input grammars
	augmented string           // start symbol of CNF grammars
	counter   int              // serial number for generated names
	names     *nameTable       // all non-terminal names in use
	pairs     map[pair]string  // folded pairs (B,C) and their generated LHS
	cnf       *grammar.Grammar // finished rules
}

type pair [2]string

// Option configures a Normalizer.
type Option func(n *Normalizer)

// WithStartSymbol sets the start symbol of input grammars. Default is S.
func WithStartSymbol(s string) Option {
	return func(n *Normalizer) {
		n.start = s
	}
}

// WithAugmentedStart sets the name of the start symbol to introduce.
// Default is S0.
func WithAugmentedStart(s string) Option {
	return func(n *Normalizer) {
		n.augmented = s
	}
}

// NewNormalizer creates a normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		start:     grammar.Start,
		augmented: grammar.AugmentedStart,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts a grammar into Chomsky Normal Form, using a default
// normalizer.
func Normalize(g *grammar.Grammar, opts ...Option) *grammar.Grammar {
	return NewNormalizer(opts...).Normalize(g)
}

// Counter returns the number of stand-in names minted so far, including names
// discarded because of collisions.
func (n *Normalizer) Counter() int {
	return n.counter
}

// Normalize converts a grammar into Chomsky Normal Form. g is left untouched.
// The resulting grammar must be treated as read-only.
//
// Chain rules A -> B of g are copied without change, as are duplicate rules.
func (n *Normalizer) Normalize(g *grammar.Grammar) *grammar.Grammar {
	n.counter = 0
	n.names = newNameTable()
	n.pairs = make(map[pair]string)
	for _, A := range g.Nonterminals() {
		n.names.define(A, grammar.Nonterminal)
	}
	work := g.Copy()
	start := n.isolateStart()
	n.cnf = grammar.NewGrammar(g.Name, start)
	n.cnf.AddRule(start, grammar.N(n.start))
	n.isolateTerminals(work)
	n.binarize(work)
	tracer().Infof("grammar %s normalized: %d rules -> %d rules, %d non-terminals",
		g.Name, g.Size(), n.cnf.Size(), n.names.size())
	return n.cnf
}

// isolateStart determines the start symbol of the CNF grammar. It is the
// augmented start symbol, unless that one is already in use.
func (n *Normalizer) isolateStart() string {
	if n.names.resolve(n.augmented) == nil {
		n.names.define(n.augmented, grammar.Generated)
		return n.augmented
	}
	k := 0
	start := n.names.fresh(func() string {
		k++
		return fmt.Sprintf("%s_%d", n.augmented, k)
	})
	tracer().Infof("start symbol %s is in use, will use %s", n.augmented, start)
	return start
}

// isolateTerminals replaces terminals in rules with at least 2 RHS symbols by
// stand-in non-terminals. Unit rules A -> 'a' remain untouched.
func (n *Normalizer) isolateTerminals(work *grammar.Grammar) {
	standins := make(map[string]string) // terminal word -> stand-in name
	var words []string                  // terminal words in order of occurence
	work.EachRule(func(r *grammar.Rule) {
		if len(r.RHS) < 2 {
			return
		}
		for i, sym := range r.RHS {
			if !sym.IsTerminal() {
				continue
			}
			C, ok := standins[sym.Name]
			if !ok {
				C = n.mintConstant()
				standins[sym.Name] = C
				words = append(words, sym.Name)
				tracer().Debugf("stand-in %s for %s", C, sym)
			}
			r.RHS[i] = grammar.G(C)
		}
	})
	for _, word := range words {
		work.AddRule(standins[word], grammar.T(word))
	}
}

// mintConstant creates a fresh name Cn for a terminal stand-in.
func (n *Normalizer) mintConstant() string {
	return n.names.fresh(func() string {
		name := fmt.Sprintf("C%d", n.counter)
		n.counter++
		return name
	})
}

// binarize drains work and moves every rule into the CNF grammar, splitting
// rules longer than 2 into chains of binary rules.
func (n *Normalizer) binarize(work *grammar.Grammar) {
	for r, ok := work.Drain(); ok; r, ok = work.Drain() {
		if len(r.RHS) <= 2 {
			n.cnf.Add(r)
			continue
		}
		rhs := n.collapseFirstPair(r.RHS)
		for len(rhs) > 2 {
			k := len(rhs)
			combined := n.combine(rhs[k-2], rhs[k-1])
			rhs = append(rhs[:k-2], combined)
		}
		n.cnf.AddRule(r.LHS, rhs...)
		tracer().Debugf("%s split into %s", r, n.cnf.Rule(n.cnf.Size()-1))
	}
}

// collapseFirstPair replaces the leftmost pair of adjacent symbols which has
// already been folded by its generated symbol. At most one pair is replaced.
// Always returns a new slice.
func (n *Normalizer) collapseFirstPair(rhs []grammar.Symbol) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(rhs))
	for i := 0; i+1 < len(rhs); i++ {
		if name, ok := n.pairs[pair{rhs[i].Name, rhs[i+1].Name}]; ok {
			out = append(out, rhs[:i]...)
			out = append(out, grammar.G(name))
			out = append(out, rhs[i+2:]...)
			tracer().Debugf("re-using %s", name)
			return out
		}
	}
	return append(out, rhs...)
}

// combine returns a symbol X with rule X -> B C. If such a rule has been
// generated before, X is re-used. Otherwise a rule B_C -> B C is created.
// Should B_C collide with a name in use, a numeric suffix is appended.
func (n *Normalizer) combine(B, C grammar.Symbol) grammar.Symbol {
	key := pair{B.Name, C.Name}
	if name, ok := n.pairs[key]; ok {
		return grammar.G(name)
	}
	name := B.Name + "_" + C.Name
	if n.cnf.HasRule(name, B, C) { // a rule of the input grammar
		n.pairs[key] = name
		return grammar.N(name)
	}
	first := true
	name = n.names.fresh(func() string {
		if first {
			first = false
			return name
		}
		candidate := fmt.Sprintf("%s_%s_%d", B.Name, C.Name, n.counter)
		n.counter++
		return candidate
	})
	n.cnf.AddRule(name, B, C)
	n.pairs[key] = name
	tracer().Debugf("new rule %s -> %s %s", name, B, C)
	return grammar.G(name)
}
