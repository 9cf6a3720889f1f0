package store

import "fmt"

// Entry is the type-erased view of a per-resource synchronizer held by a
// Table. Typed access stays with whoever registered the entry.
type Entry interface {
	Status() Status
	Invalidate()
}

// Table is a process-wide state table of collection caches keyed by
// resource tag. It is explicitly owned and injected by the caller rather
// than living as ambient package state: entries are registered on first
// fetch and invalidated per tag (page unmount) or wholesale (shutdown).
//
// Not safe for concurrent use; confine to a single goroutine like the
// collections it holds.
type Table struct {
	entries map[string]Entry
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Register adds an entry under tag. Registering a tag twice is a
// programming error.
func (t *Table) Register(tag string, e Entry) error {
	if _, ok := t.entries[tag]; ok {
		return fmt.Errorf("store: tag %q already registered", tag)
	}
	t.entries[tag] = e
	return nil
}

// Lookup returns the entry for tag, or nil and false.
func (t *Table) Lookup(tag string) (Entry, bool) {
	e, ok := t.entries[tag]
	return e, ok
}

// Invalidate clears the cache for one tag. Unknown tags are ignored.
func (t *Table) Invalidate(tag string) {
	if e, ok := t.entries[tag]; ok {
		e.Invalidate()
	}
}

// InvalidateAll clears every registered cache.
func (t *Table) InvalidateAll() {
	for _, e := range t.entries {
		e.Invalidate()
	}
}

// Tags returns the registered resource tags in unspecified order.
func (t *Table) Tags() []string {
	tags := make([]string, 0, len(t.entries))
	for tag := range t.entries {
		tags = append(tags, tag)
	}
	return tags
}
