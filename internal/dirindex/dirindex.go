// Package dirindex provides an in-memory directory-entry table keyed by
// equivalence key.
//
// This is the consumer side of the equivalence engine: entries are stored
// under the key their name normalises to, so lookups see through case and
// normalisation-form differences exactly the way the configured profile
// says the file system should. Original spellings are preserved for
// display; the key is only ever an internal map key.
package dirindex

import (
	"sync"

	"github.com/jpl-au/pathnorm/internal/equiv"
)

// Table maps equivalence keys to the name spellings recorded under them.
// Safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	n       *equiv.Normalizer
	entries map[string]*entry
	keys    []string // insertion order
}

type entry struct {
	names []string // distinct spellings, first is canonical for display
}

// New returns an empty table using the given normalizer. All names passed
// to a table must be compared under this one normalizer; mixing normalizers
// across the store and lookup sides breaks key stability.
func New(n *equiv.Normalizer) *Table {
	return &Table{
		n:       n,
		entries: make(map[string]*entry),
	}
}

// Put records name. If an equivalent entry already exists it reports the
// first spelling stored for it and true; the new spelling is still recorded
// in that entry's group. Byte-identical re-insertions are no-ops.
func (t *Table) Put(name string) (existing string, collided bool) {
	key := t.n.Normalize(name)

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		t.entries[key] = &entry{names: []string{name}}
		t.keys = append(t.keys, key)
		return name, false
	}

	for _, n := range e.names {
		if n == name {
			return e.names[0], true
		}
	}
	e.names = append(e.names, name)
	return e.names[0], true
}

// Lookup reports the stored spelling equivalent to name, if any.
func (t *Table) Lookup(name string) (string, bool) {
	key := t.n.Normalize(name)

	t.mu.RLock()
	defer t.mu.RUnlock()

	if e, ok := t.entries[key]; ok {
		return e.names[0], true
	}
	return "", false
}

// Delete removes the entry equivalent to name, with every spelling recorded
// under it. Reports whether an entry was removed.
func (t *Table) Delete(name string) bool {
	key := t.n.Normalize(name)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.entries[key]; !ok {
		return false
	}
	delete(t.entries, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries (equivalence classes, not spellings).
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Names returns the first stored spelling of every entry in insertion order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.keys))
	for _, k := range t.keys {
		names = append(names, t.entries[k].names[0])
	}
	return names
}

// Groups returns, in insertion order, the entries that collected more than
// one distinct spelling - the name collisions a byte-exact store would have
// treated as separate files.
func (t *Table) Groups() [][]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var groups [][]string
	for _, k := range t.keys {
		if e := t.entries[k]; len(e.names) > 1 {
			group := make([]string, len(e.names))
			copy(group, e.names)
			groups = append(groups, group)
		}
	}
	return groups
}
