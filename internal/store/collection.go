// Package store implements the client-side cache for remote resource
// collections: an ordered, id-keyed Collection patched in place from
// mutation responses, and a Synchronizer that pairs it with a remote.
package store

// Record is any entity with a unique integer id within its collection.
type Record interface {
	Key() int
}

// InsertPolicy fixes where ApplyCreate places a new record. It is chosen
// once per resource and never mixed within a collection.
type InsertPolicy int

const (
	// Prepend places new records at the front (newest first).
	Prepend InsertPolicy = iota
	// Append places new records at the back (catalog order).
	Append
)

// Collection is an ordered sequence of records mirroring a remote
// collection, with at most one record per id. Insertion order is preserved
// for display only.
//
// It is not safe for concurrent use; callers must confine access to a
// single goroutine (e.g., the Bubble Tea update loop). Apply* methods are
// meant to be called only with the result of a remote call that already
// succeeded, so a failed call leaves the collection untouched.
type Collection[T Record] struct {
	items  []T
	index  map[int]int // id → position in items
	policy InsertPolicy
}

// NewCollection creates an empty collection with the given insert policy.
func NewCollection[T Record](policy InsertPolicy) *Collection[T] {
	return &Collection[T]{index: make(map[int]int), policy: policy}
}

// ApplyList replaces the collection contents with a fetched sequence.
// Later duplicates of an id win so the invariant of one record per id holds
// even against a misbehaving server.
func (c *Collection[T]) ApplyList(items []T) {
	c.items = c.items[:0]
	clear(c.index)
	for _, it := range items {
		if pos, ok := c.index[it.Key()]; ok {
			c.items[pos] = it
			continue
		}
		c.index[it.Key()] = len(c.items)
		c.items = append(c.items, it)
	}
}

// ApplyCreate inserts a freshly created record per the collection's policy.
// A record whose id already exists replaces the existing entry in place.
func (c *Collection[T]) ApplyCreate(item T) {
	if pos, ok := c.index[item.Key()]; ok {
		c.items[pos] = item
		return
	}
	if c.policy == Prepend {
		c.items = append([]T{item}, c.items...)
		c.reindex()
		return
	}
	c.index[item.Key()] = len(c.items)
	c.items = append(c.items, item)
}

// ApplyUpdate replaces the entry with the same id as item. An update for an
// id not present in the collection is silently ignored.
func (c *Collection[T]) ApplyUpdate(item T) {
	pos, ok := c.index[item.Key()]
	if !ok {
		return
	}
	c.items[pos] = item
}

// ApplyDelete removes the entry with the given id. Deleting an absent id is
// a no-op.
func (c *Collection[T]) ApplyDelete(id int) {
	pos, ok := c.index[id]
	if !ok {
		return
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	// Positions after the removed entry shifted down by one.
	for i := pos; i < len(c.items); i++ {
		c.index[c.items[i].Key()] = i
	}
}

// Get returns the record with the given id, or the zero value and false.
func (c *Collection[T]) Get(id int) (T, bool) {
	if pos, ok := c.index[id]; ok {
		return c.items[pos], true
	}
	var zero T
	return zero, false
}

// Items returns a copy of the ordered record sequence.
func (c *Collection[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// Len returns the number of records in the collection.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Policy returns the collection's insert policy.
func (c *Collection[T]) Policy() InsertPolicy {
	return c.policy
}

// Clear empties the collection.
func (c *Collection[T]) Clear() {
	c.items = nil
	c.index = make(map[int]int)
}

func (c *Collection[T]) reindex() {
	clear(c.index)
	for i, it := range c.items {
		c.index[it.Key()] = i
	}
}
