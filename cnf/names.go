package cnf

import (
	"github.com/npillmayer/chomsky/grammar"
)

// Symbol table for non-terminal names. Every name in use, either by the input
// grammar or generated during normalization, has a tag in the table.
// Generated names are checked against the table to avoid collisions.

// tag is the entry type of name tables.
type tag struct {
	name string
	kind grammar.SymbolKind
}

// nameTable stores tags (map-like semantics).
type nameTable struct {
	table map[string]*tag
}

func newNameTable() *nameTable {
	return &nameTable{table: make(map[string]*tag)}
}

// resolve checks for a tag in the table. Returns a tag or nil.
func (t *nameTable) resolve(name string) *tag {
	return t.table[name]
}

// define inserts a tag for name, overwriting an existing tag with this name.
func (t *nameTable) define(name string, kind grammar.SymbolKind) {
	t.table[name] = &tag{name: name, kind: kind}
}

// size counts the tags in the table.
func (t *nameTable) size() int {
	return len(t.table)
}

// fresh returns the first candidate name not yet in use and defines it as a
// generated name. Candidates are produced by next, which is called until it
// returns an unused name.
func (t *nameTable) fresh(next func() string) string {
	name := next()
	for tg := t.resolve(name); tg != nil; tg = t.resolve(name) {
		tracer().Debugf("%s name %s is taken", tg.kind, tg.name)
		name = next()
	}
	t.define(name, grammar.Generated)
	return name
}
