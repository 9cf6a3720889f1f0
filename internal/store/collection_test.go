package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// todo is a minimal record for collection tests.
type todo struct {
	ID        int
	Todo      string
	Completed bool
}

func (t todo) Key() int { return t.ID }

func TestCollection_ApplyList(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1, Todo: "a"}, {ID: 2, Todo: "b"}})

	assert.Equal(t, 2, c.Len())
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", got.Todo)
}

func TestCollection_ApplyList_ReplacesPrevious(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1}, {ID: 2}, {ID: 3}})
	c.ApplyList([]todo{{ID: 9}})

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok, "records from the replaced list must be gone")
}

func TestCollection_ApplyList_DuplicateIDsLastWins(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1, Todo: "first"}, {ID: 1, Todo: "second"}})

	assert.Equal(t, 1, c.Len(), "at most one record per id")
	got, _ := c.Get(1)
	assert.Equal(t, "second", got.Todo)
}

func TestCollection_ApplyCreate_Append(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1}, {ID: 2}})

	before := c.Len()
	c.ApplyCreate(todo{ID: 42, Todo: "new"})

	assert.Equal(t, before+1, c.Len(), "cache grows by exactly one")
	items := c.Items()
	assert.Equal(t, 42, items[len(items)-1].ID, "append places the record last")
}

func TestCollection_ApplyCreate_Prepend(t *testing.T) {
	c := NewCollection[todo](Prepend)
	c.ApplyList([]todo{{ID: 1}, {ID: 2}})

	c.ApplyCreate(todo{ID: 42})

	items := c.Items()
	assert.Equal(t, 42, items[0].ID, "prepend places the record first")
	assert.Equal(t, []int{42, 1, 2}, ids(items))

	// Index must still resolve every record after the shift.
	for _, want := range []int{1, 2, 42} {
		got, ok := c.Get(want)
		require.True(t, ok, "id %d", want)
		assert.Equal(t, want, got.ID)
	}
}

func TestCollection_ApplyUpdate_ReplacesOnlyTarget(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{
		{ID: 1, Todo: "a", Completed: false},
		{ID: 2, Todo: "b", Completed: false},
	})

	c.ApplyUpdate(todo{ID: 1, Todo: "a", Completed: true})

	got, _ := c.Get(1)
	assert.True(t, got.Completed)
	other, _ := c.Get(2)
	assert.Equal(t, todo{ID: 2, Todo: "b"}, other, "other records unchanged")
	assert.Equal(t, []int{1, 2}, ids(c.Items()), "order preserved")
}

func TestCollection_ApplyUpdate_AbsentIDIgnored(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1, Todo: "a"}})

	c.ApplyUpdate(todo{ID: 99, Todo: "ghost"})

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(99)
	assert.False(t, ok, "update for an uncached id is silently dropped")
}

func TestCollection_ApplyDelete(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1}, {ID: 2}})

	c.ApplyDelete(2)

	assert.Equal(t, []int{1}, ids(c.Items()))
	_, ok := c.Get(2)
	assert.False(t, ok)
}

func TestCollection_ApplyDelete_Idempotent(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1}, {ID: 2}, {ID: 3}})

	c.ApplyDelete(2)
	after := ids(c.Items())

	c.ApplyDelete(2)

	assert.Equal(t, after, ids(c.Items()), "second delete is a no-op")
	assert.Equal(t, 2, c.Len())
}

func TestCollection_ApplyDelete_ReindexesTail(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}})

	c.ApplyDelete(1)

	for _, want := range []int{2, 3, 4} {
		got, ok := c.Get(want)
		require.True(t, ok, "id %d must survive delete of another record", want)
		assert.Equal(t, want, got.ID)
	}
}

func TestCollection_Items_IsACopy(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1, Todo: "a"}})

	items := c.Items()
	items[0].Todo = "mutated"

	got, _ := c.Get(1)
	assert.Equal(t, "a", got.Todo, "callers cannot mutate the cache through Items")
}

func TestCollection_Clear(t *testing.T) {
	c := NewCollection[todo](Append)
	c.ApplyList([]todo{{ID: 1}, {ID: 2}})

	c.Clear()

	assert.Zero(t, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok)
}

func ids(items []todo) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
