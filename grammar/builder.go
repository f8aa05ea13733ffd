package grammar

import "fmt"

// GrammarBuilder is a helper for constructing grammars from Go code.
//
//    b := grammar.NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S -> A 'a'
//    b.LHS("A").T("b").End()         // A -> 'b'
//    g, err := b.Grammar()
//
// The start symbol is S.
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: NewGrammar(gname, Start)}
}

// RuleBuilder is a builder type for rules.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []Symbol
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: s}
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	rb.rhs = append(rb.rhs, N(s))
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(word string) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(word))
	return rb
}

// End ends a rule, appending it to the grammar.
// Epsilon-rules are not supported; the builder will report an error when
// Grammar() is called.
func (rb *RuleBuilder) End() *Rule {
	if len(rb.rhs) == 0 {
		if rb.gb.err == nil {
			rb.gb.err = fmt.Errorf("rule for %s has empty right hand side", rb.lhs)
		}
		return nil
	}
	return rb.gb.g.AddRule(rb.lhs, rb.rhs...)
}

// Grammar returns the grammar built so far, or an error if a malformed rule
// has been specified.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	return gb.g, nil
}
