// SPDX-License-Identifier: MIT

package freq

import (
	"sort"

	"github.com/katalvlaran/factorshape/factor"
)

// Entry is one row of a ranked frequency table.
type Entry struct {
	Shape factor.Shape
	Count int
}

// Less reports whether a ranks before b: higher count first, then shorter
// shape, then lexicographically smaller shape.
func Less(a, b Entry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}

	return a.Shape.Compare(b.Shape) < 0
}

// Table counts shape occurrences. The zero value is not usable; call
// NewTable. A Table is not safe for concurrent mutation.
type Table struct {
	entries map[string]*Entry
	total   int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Add records one occurrence of sh. The Table keeps its own copy of sh.
func (t *Table) Add(sh factor.Shape) {
	t.addN(sh, 1)
}

func (t *Table) addN(sh factor.Shape, n int) {
	key := sh.Key()
	if e, ok := t.entries[key]; ok {
		e.Count += n
	} else {
		t.entries[key] = &Entry{Shape: sh.Clone(), Count: n}
	}
	t.total += n
}

// Merge adds every count of o into t. o is left unchanged.
func (t *Table) Merge(o *Table) {
	for _, e := range o.entries {
		t.addN(e.Shape, e.Count)
	}
}

// Get returns the count recorded for sh (0 if never seen).
func (t *Table) Get(sh factor.Shape) int {
	if e, ok := t.entries[sh.Key()]; ok {
		return e.Count
	}

	return 0
}

// Len returns the number of distinct shapes.
func (t *Table) Len() int { return len(t.entries) }

// Total returns the sum of all counts, i.e. the number of integers counted.
func (t *Table) Total() int { return t.total }

// Ranked returns every entry ordered by Less. Entries are copies.
//
// Complexity: O(s log s) for s distinct shapes.
func (t *Table) Ranked() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, Entry{Shape: e.Shape.Clone(), Count: e.Count})
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })

	return out
}

// Top returns the first k ranked entries, or all of them when k exceeds Len.
// k < 1 yields an empty slice.
func (t *Table) Top(k int) []Entry {
	ranked := t.Ranked()
	if k < 0 {
		k = 0
	}
	if k < len(ranked) {
		ranked = ranked[:k]
	}

	return ranked
}
