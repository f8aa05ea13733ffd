/*
Package cnf converts context-free grammars into Chomsky Normal Form.

A grammar is in Chomsky Normal Form (CNF) if every rule is either of form

    A -> 'a'      (unit rule)
    A -> B C      (binary rule)

Normalization proceeds in three steps:

■ The start symbol S is replaced by a new start symbol S0 with a single rule
S0 -> S. S0 never occurs on a right hand side.

■ Terminals within rules of length two or more are replaced by stand-in
non-terminals C0, C1, …, one per distinct terminal, together with unit rules
Cn -> 'a'.

■ Rules of length three or more are folded from the right into a chain of
binary rules, e.g. A -> w x y z becomes

    y_z -> y z
    x_y_z -> x y_z
    A -> w x_y_z

Pairs already folded for a previous rule are re-used.

Usage

    g, err := grammar.LoadFile("grammar.txt")
    …
    cnfg := cnf.Normalize(g)
    cnfg.Dump()

Normalization does not remove chain rules A -> B or duplicate rules of the
input grammar. Epsilon rules are not supported.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cnf")
}
