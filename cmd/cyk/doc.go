/*
Command cyk normalizes context-free grammars and checks sentences against them.

Usage:

    cyk [--trace Debug|Info|Error] cnf GRAMMAR
    cyk check [--table] [--chains] [--accept SYMBOL] GRAMMAR SENTENCE…
    cyk repl [--table] [--chains] GRAMMAR

cnf prints the Chomsky Normal Form of a grammar file. check prints a verdict
for every sentence and exits with code 1 if any of them has been rejected.
repl reads sentences from the terminal, one per line, until <ctrl>D.
With --chains, table cells are closed under chain rules, which is required
for accepting on the start symbol S0 of the normalized grammar.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cmd")
}
