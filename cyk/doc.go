/*
Package cyk implements a CYK recognizer for grammars in Chomsky Normal Form.

The Cocke-Younger-Kasami algorithm decides membership of a sentence in the
language of a CNF grammar by dynamic programming over a triangular table.
Cell (i,j) holds the non-terminals deriving the words i…j of the sentence.
The diagonal is filled from unit rules A -> 'a', every other cell from binary
rules A -> B C with B in (i,k) and C in (k+1,j) for some split k.

Chain rules A -> B, among them S0 -> S of a normalized grammar, take no part
in filling the table unless option WithChainClosure is given. The sentence is
accepted if S is in the top cell.

Sentences are split into words at single space characters. A word not
produced by any unit rule rejects the sentence right away.

Usage

    g, err := grammar.LoadFile("grammar.txt")
    …
    r := cyk.NewRecognizer(cnf.Normalize(g))
    if r.Recognize("I shot an elephant in my pajamas") {
        …
    }

A Recognizer never changes after construction and may be shared between
goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cyk")
}
