package cyk

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/chomsky"
)

// Table is the triangular CYK table for a sentence of n words. Cell (i,j),
// with 0 ≤ i ≤ j < n, holds the non-terminals deriving words i…j, which is
// input span (i…j+1).
//
// Cells are stored in a flat slice, row by row of the end position:
//
//     (0,0) | (0,1) (1,1) | (0,2) (1,2) (2,2) | …
//
type Table struct {
	words []string
	cells []*treeset.Set
}

func newTable(words []string) *Table {
	n := len(words)
	t := &Table{
		words: words,
		cells: make([]*treeset.Set, n*(n+1)/2),
	}
	for k := range t.cells {
		t.cells[k] = treeset.NewWithStringComparator()
	}
	return t
}

func (t *Table) index(i, j int) int {
	return j*(j+1)/2 + i
}

func (t *Table) cell(i, j int) *treeset.Set {
	if i < 0 || i > j || j >= len(t.words) {
		return nil
	}
	return t.cells[t.index(i, j)]
}

// Span returns the input span covered by the table.
func (t *Table) Span() chomsky.Span {
	return chomsky.Span{0, uint64(len(t.words))}
}

// Word returns word #i of the sentence.
func (t *Table) Word(i int) string {
	if i < 0 || i >= len(t.words) {
		return ""
	}
	return t.words[i]
}

// Cell returns the non-terminals deriving words i…j, sorted by name.
// Returns nil for positions outside the table.
func (t *Table) Cell(i, j int) []string {
	c := t.cell(i, j)
	if c == nil {
		return nil
	}
	names := make([]string, 0, c.Size())
	for _, v := range c.Values() {
		names = append(names, v.(string))
	}
	return names
}

// Contains is a predicate: does A derive words i…j?
func (t *Table) Contains(i, j int, A string) bool {
	c := t.cell(i, j)
	return c != nil && c.Contains(A)
}

// Rows returns the table as lines of text, one per cell, ordered by span
// length. Empty cells are omitted.
func (t *Table) Rows() []string {
	var rows []string
	n := len(t.words)
	for l := 1; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			j := i + l - 1
			if t.cell(i, j).Empty() {
				continue
			}
			span := chomsky.Span{uint64(i), uint64(j + 1)}
			rows = append(rows, fmt.Sprintf("%s %q: %s", span, strings.Join(t.words[i:j+1], " "),
				strings.Join(t.Cell(i, j), " ")))
		}
	}
	return rows
}

// Dump is a debugging helper, printing the non-empty cells to the trace at
// level Info.
func (t *Table) Dump() {
	tracer().Infof("--- CYK table for %d words ---------------", len(t.words))
	for _, row := range t.Rows() {
		tracer().Infof("    %s", row)
	}
	tracer().Infof("-----------------------------------------")
}
