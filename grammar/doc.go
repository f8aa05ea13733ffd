/*
Package grammar implements context-free grammars: symbols, rules and rule stores.

Building a Grammar

Grammars are either loaded from text or specified using a grammar builder object.
Clients add rules, consisting of non-terminal symbols and terminals.
Epsilon-productions are not supported.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("S").N("NP").N("VP").End()        // S  ->  NP VP
    b.LHS("NP").T("I").End()                // NP ->  'I'
    b.LHS("VP").T("shot").N("NP").End()     // VP ->  'shot' NP
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [NP VP]
   1: [NP] ::= ['I']
   2: [VP] ::= ['shot' NP]

Grammar Text

The text format has one rule per line:

    LHS -> RHS1 RHS2 … RHSn

Symbols are separated by spaces. Terminals are enclosed in single quotes,
everything else is a non-terminal. Several lines may share a left hand side,
resulting in alternative rules. Load and LoadFile read this format and report
malformed lines as *LoadError.

Start Symbols

Raw grammars start with non-terminal S. Normalizing a grammar to Chomsky Normal
Form introduces a new start symbol S0 with a single rule S0 -> S.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.grammar")
}
