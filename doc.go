/*
Package chomsky is a toolbox for recognizing sentences of context-free languages.

It converts arbitrary context-free grammars into Chomsky Normal Form and
decides membership of space-delimited sentences with the CYK algorithm.
Package structure is as follows:

■ grammar: Package grammar implements symbols, rules and rule stores, together
with a loader for grammars in text format.

■ cnf: Package cnf rewrites a context-free grammar into Chomsky Normal Form.

■ cyk: Package cyk implements a Cocke–Younger–Kasami recognizer for grammars
in Chomsky Normal Form.

■ scanner: Package scanner provides tokenizers for grammar text and sentences.

The base package contains data types which are used throughout all the other packages.

A typical session looks like this:

    g, err := grammar.LoadFile("english.txt")      // S -> NP VP, …
    if err != nil { … }
    rec := cyk.NewRecognizer(cnf.Normalize(g))
    ok := rec.Recognize("I shot an elephant in my pajamas")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chomsky
