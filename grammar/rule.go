package grammar

import (
	"bytes"
)

// Rule is a type for rules of a grammar. Rules consist of a non-terminal on the
// left hand side and a sequence of symbols on the right hand side.
type Rule struct {
	LHS string   // left hand side non-terminal
	RHS []Symbol // right hand side sequence of symbols
}

// NewRule creates a rule. The RHS symbols are copied.
func NewRule(lhs string, rhs ...Symbol) *Rule {
	r := &Rule{LHS: lhs, RHS: make([]Symbol, len(rhs))}
	copy(r.RHS, rhs)
	return r
}

// Copy returns a deep copy of a rule.
func (r *Rule) Copy() *Rule {
	return NewRule(r.LHS, r.RHS...)
}

// IsUnit is a predicate: is r of form A -> 'a' ?
func (r *Rule) IsUnit() bool {
	return len(r.RHS) == 1 && r.RHS[0].IsTerminal()
}

// IsChain is a predicate: is r of form A -> B ?
func (r *Rule) IsChain() bool {
	return len(r.RHS) == 1 && !r.RHS[0].IsTerminal()
}

// IsBinary is a predicate: is r of form A -> B C ?
func (r *Rule) IsBinary() bool {
	return len(r.RHS) == 2 && !r.RHS[0].IsTerminal() && !r.RHS[1].IsTerminal()
}

// Produces is a predicate: does r have exactly rhs as its right hand side?
func (r *Rule) Produces(rhs ...Symbol) bool {
	if len(r.RHS) != len(rhs) {
		return false
	}
	for i, sym := range r.RHS {
		if sym.IsTerminal() != rhs[i].IsTerminal() || sym.Name != rhs[i].Name {
			return false
		}
	}
	return true
}

// String returns a rule in grammar text format.
func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(r.LHS)
	b.WriteString(" ->")
	for _, sym := range r.RHS {
		b.WriteByte(' ')
		b.WriteString(sym.String())
	}
	return b.String()
}
