package grammar

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
)

// Grammar is a rule store: a multi-valued mapping from left hand side
// non-terminals to right hand sides, preserving insertion order. Rules with
// identical bodies may occur more than once.
//
// A grammar must not be modified while it is shared between goroutines.
type Grammar struct {
	Name  string // name of the grammar, for debugging purposes
	Start string // start symbol
	rules *arraylist.List
	lhs   map[string]int // count of rules per LHS
}

// NewGrammar creates an empty grammar with start symbol start.
func NewGrammar(name string, start string) *Grammar {
	return &Grammar{
		Name:  name,
		Start: start,
		rules: arraylist.New(),
		lhs:   make(map[string]int),
	}
}

// Add appends a rule. The grammar takes ownership of r.
func (g *Grammar) Add(r *Rule) *Grammar {
	g.rules.Add(r)
	g.lhs[r.LHS]++
	return g
}

// AddRule creates a rule and appends it.
func (g *Grammar) AddRule(lhs string, rhs ...Symbol) *Rule {
	r := NewRule(lhs, rhs...)
	g.Add(r)
	return r
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// Rule returns rule #no, or nil.
func (g *Grammar) Rule(no int) *Rule {
	r, ok := g.rules.Get(no)
	if !ok {
		return nil
	}
	return r.(*Rule)
}

// Rules returns all rules in insertion order.
func (g *Grammar) Rules() []*Rule {
	rules := make([]*Rule, 0, g.rules.Size())
	it := g.rules.Iterator()
	for it.Next() {
		rules = append(rules, it.Value().(*Rule))
	}
	return rules
}

// EachRule calls f for every rule, in insertion order.
func (g *Grammar) EachRule(f func(*Rule)) {
	it := g.rules.Iterator()
	for it.Next() {
		f(it.Value().(*Rule))
	}
}

// HasLHS is a predicate: is there a rule for non-terminal A?
func (g *Grammar) HasLHS(A string) bool {
	return g.lhs[A] > 0
}

// RulesFor returns all rules with left hand side A.
func (g *Grammar) RulesFor(A string) []*Rule {
	var rules []*Rule
	g.EachRule(func(r *Rule) {
		if r.LHS == A {
			rules = append(rules, r)
		}
	})
	return rules
}

// HasRule is a predicate: is there a rule A -> rhs?
func (g *Grammar) HasRule(A string, rhs ...Symbol) bool {
	if !g.HasLHS(A) {
		return false
	}
	found := false
	g.EachRule(func(r *Rule) {
		if !found && r.LHS == A && r.Produces(rhs...) {
			found = true
		}
	})
	return found
}

// Drain removes the first rule from the grammar and returns it.
// Returns false if the grammar is empty.
func (g *Grammar) Drain() (*Rule, bool) {
	v, ok := g.rules.Get(0)
	if !ok {
		return nil, false
	}
	g.rules.Remove(0)
	r := v.(*Rule)
	if g.lhs[r.LHS]--; g.lhs[r.LHS] == 0 {
		delete(g.lhs, r.LHS)
	}
	return r, true
}

// Copy returns a deep copy of g.
func (g *Grammar) Copy() *Grammar {
	c := NewGrammar(g.Name, g.Start)
	g.EachRule(func(r *Rule) {
		c.Add(r.Copy())
	})
	return c
}

// Nonterminals returns the names of all non-terminals, sorted.
// Non-terminals occuring on right hand sides only are included.
func (g *Grammar) Nonterminals() []string {
	set := treeset.NewWithStringComparator()
	g.EachRule(func(r *Rule) {
		set.Add(r.LHS)
		for _, sym := range r.RHS {
			if !sym.IsTerminal() {
				set.Add(sym.Name)
			}
		}
	})
	return stringValues(set)
}

// Terminals returns the words of all terminals, sorted.
func (g *Grammar) Terminals() []string {
	set := treeset.NewWithStringComparator()
	g.EachRule(func(r *Rule) {
		for _, sym := range r.RHS {
			if sym.IsTerminal() {
				set.Add(sym.Name)
			}
		}
	})
	return stringValues(set)
}

func stringValues(set *treeset.Set) []string {
	values := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		values = append(values, v.(string))
	}
	return values
}

// IsCNF checks if g is in Chomsky Normal Form. Every rule has to be either of form
// A -> 'a' or of form A -> B C. A single chain rule from the start symbol,
// e.g. S0 -> S, is accepted. If g is not in CNF, the first offending rule is
// returned.
func (g *Grammar) IsCNF() (bool, *Rule) {
	var offending *Rule
	g.EachRule(func(r *Rule) {
		if offending != nil || r.IsUnit() || r.IsBinary() {
			return
		}
		if r.IsChain() && r.LHS == g.Start {
			return
		}
		offending = r
	})
	return offending == nil, offending
}

// Dump is a debugging helper, printing all rules to the trace at level Info.
func (g *Grammar) Dump() {
	tracer().Infof("--- grammar %s (start %s) -----------", g.Name, g.Start)
	for i, r := range g.Rules() {
		tracer().Infof("%3d: %s", i, ruleString(r))
	}
	tracer().Infof("-------------------------------------")
}

func ruleString(r *Rule) string {
	rhs := make([]string, len(r.RHS))
	for i, sym := range r.RHS {
		rhs[i] = sym.String()
	}
	return fmt.Sprintf("[%s] ::= [%s]", r.LHS, strings.Join(rhs, " "))
}

// String returns g in grammar text format.
func (g *Grammar) String() string {
	var b bytes.Buffer
	g.EachRule(func(r *Rule) {
		b.WriteString(r.String())
		b.WriteByte('\n')
	})
	return b.String()
}

// fingerprint is the hashable view of a grammar. structhash considers
// exported fields only.
type fingerprint struct {
	Start string
	Rules []string
}

// Fingerprint returns a hash over the start symbol and the rules of g, in order.
// Grammars with equal fingerprints recognize the same sentences.
func (g *Grammar) Fingerprint() string {
	fp := fingerprint{Start: g.Start}
	g.EachRule(func(r *Rule) {
		fp.Rules = append(fp.Rules, r.String())
	})
	hash, err := structhash.Hash(fp, 1)
	if err != nil { // cannot happen for strings only
		tracer().Errorf("cannot hash grammar %s: %v", g.Name, err)
		return ""
	}
	return hash
}
