package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_RegisterAndLookup(t *testing.T) {
	tbl := NewTable()
	s := NewSynchronizer[todo](&fakeRemote{}, Append)

	require.NoError(t, tbl.Register("todos", s))

	got, ok := tbl.Lookup("todos")
	require.True(t, ok)
	assert.Equal(t, StatusIdle, got.Status())
}

func TestTable_RegisterDuplicateTag(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Register("todos", NewSynchronizer[todo](&fakeRemote{}, Append)))

	err := tbl.Register("todos", NewSynchronizer[todo](&fakeRemote{}, Append))
	assert.Error(t, err)
}

func TestTable_Invalidate(t *testing.T) {
	tbl := NewTable()
	s := NewSynchronizer[todo](&fakeRemote{listResult: []todo{{ID: 1}}}, Append)
	require.NoError(t, tbl.Register("todos", s))
	_, err := s.FetchAll(context.Background())
	require.NoError(t, err)

	tbl.Invalidate("todos")

	assert.Zero(t, s.Collection().Len())
	assert.Equal(t, StatusIdle, s.Status())

	// Unknown tags are ignored.
	tbl.Invalidate("recipes")
}

func TestTable_InvalidateAll(t *testing.T) {
	tbl := NewTable()
	a := NewSynchronizer[todo](&fakeRemote{listResult: []todo{{ID: 1}}}, Append)
	b := NewSynchronizer[todo](&fakeRemote{listResult: []todo{{ID: 2}}}, Prepend)
	require.NoError(t, tbl.Register("todos", a))
	require.NoError(t, tbl.Register("posts", b))
	_, err := a.FetchAll(context.Background())
	require.NoError(t, err)
	_, err = b.FetchAll(context.Background())
	require.NoError(t, err)

	tbl.InvalidateAll()

	assert.Zero(t, a.Collection().Len())
	assert.Zero(t, b.Collection().Len())
	assert.ElementsMatch(t, []string{"todos", "posts"}, tbl.Tags())
}
