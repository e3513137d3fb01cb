// Package symtable implements the append-only symbol table primitive shared
// by local scopes, the VM-wide global table, and the VM-wide method-selector
// table. It intentionally has no notion of what a "symbol" represents beyond
// a name and a dense index: locals, globals, and method selectors all reuse
// this one primitive, per the compiler's integrity invariant that a name and
// its index never move once assigned.
package symtable

// Table is an append-only, insertion-order mapping from name to dense index.
type Table struct {
	names   []string
	indices map[string]int
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{indices: make(map[string]int)}
}

// Find returns the index of name, or -1 if it is not present.
func (t *Table) Find(name string) int {
	if idx, ok := t.indices[name]; ok {
		return idx
	}
	return -1
}

// Add inserts name and returns its new index, or -1 if name is already
// present. Callers that want idempotent insertion should use Ensure instead.
func (t *Table) Add(name string) int {
	if _, ok := t.indices[name]; ok {
		return -1
	}
	idx := len(t.names)
	t.names = append(t.names, name)
	t.indices[name] = idx
	return idx
}

// Ensure returns the existing index for name, or adds it and returns the
// freshly assigned index.
func (t *Table) Ensure(name string) int {
	if idx, ok := t.indices[name]; ok {
		return idx
	}
	idx := len(t.names)
	t.names = append(t.names, name)
	t.indices[name] = idx
	return idx
}

// Count returns the number of names currently registered.
func (t *Table) Count() int {
	return len(t.names)
}

// Name returns the name registered at idx.
func (t *Table) Name(idx int) string {
	return t.names[idx]
}

// Names returns all registered names in insertion order. The returned slice
// is owned by the caller.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
