package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smileynet/curio/internal/store"
)

// fakeTodoRemote scripts remote responses for page tests.
type fakeTodoRemote struct {
	list      []Todo
	listErr   error
	created   Todo
	createErr error
	updated   Todo
	updateErr error
	deleteErr error

	gotDraft Todo
	gotPatch map[string]any
}

func (f *fakeTodoRemote) FetchAll(ctx context.Context) ([]Todo, error) {
	return f.list, f.listErr
}

func (f *fakeTodoRemote) Create(ctx context.Context, draft Todo) (Todo, error) {
	f.gotDraft = draft
	return f.created, f.createErr
}

func (f *fakeTodoRemote) Update(ctx context.Context, id int, fields map[string]any) (Todo, error) {
	f.gotPatch = fields
	return f.updated, f.updateErr
}

func (f *fakeTodoRemote) Delete(ctx context.Context, id int) error {
	return f.deleteErr
}

func loadedPage(t *testing.T, remote *fakeTodoRemote) *Page[Todo] {
	t.Helper()
	p := NewPage(todosMeta, remote)
	apply, err := p.FetchRemote(context.Background())
	require.NoError(t, err)
	apply()
	return p
}

func TestPage_FetchRemote(t *testing.T) {
	remote := &fakeTodoRemote{list: []Todo{{ID: 1, Todo: "a"}, {ID: 2, Todo: "b"}}}
	p := NewPage(todosMeta, remote)
	p.MarkFetching()
	assert.Equal(t, store.StatusFetching, p.Status())

	apply, err := p.FetchRemote(context.Background())
	require.NoError(t, err)

	// Cache untouched until the applier runs in the owning goroutine.
	assert.Zero(t, p.Count())

	apply()
	assert.Equal(t, store.StatusReady, p.Status())
	assert.Equal(t, 2, p.Count())

	rows := p.Rows()
	assert.Equal(t, 1, rows[0].ID)
	assert.Equal(t, []string{"2", "[ ]", "b"}, rows[1].Cells)
}

func TestPage_FetchRemote_Error(t *testing.T) {
	remote := &fakeTodoRemote{listErr: errors.New("boom")}
	p := NewPage(todosMeta, remote)
	p.MarkFetching()

	apply, err := p.FetchRemote(context.Background())
	require.Error(t, err)

	apply()
	assert.Equal(t, store.StatusError, p.Status())
	assert.Zero(t, p.Count())
}

func TestPage_CreateRemote_PrependPolicy(t *testing.T) {
	remote := &fakeTodoRemote{
		list:    []Todo{{ID: 1, Todo: "a"}},
		created: Todo{ID: 151, Todo: "new", UserID: 5},
	}
	p := loadedPage(t, remote)

	row, apply, err := p.CreateRemote(context.Background(), map[string]string{
		"todo":   "new",
		"userId": "5",
	})
	require.NoError(t, err)
	assert.Equal(t, 151, row.ID)
	assert.Equal(t, Todo{Todo: "new", UserID: 5}, remote.gotDraft, "draft has no id")

	apply()
	rows := p.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, 151, rows[0].ID, "todos prepend new records")
}

func TestPage_CreateRemote_BadFields(t *testing.T) {
	remote := &fakeTodoRemote{list: []Todo{{ID: 1}}}
	p := loadedPage(t, remote)

	_, _, err := p.CreateRemote(context.Background(), map[string]string{"userId": "not-a-number"})
	assert.Error(t, err)
	assert.Equal(t, 1, p.Count(), "parse failure never reaches the cache")
}

func TestPage_UpdateRemote(t *testing.T) {
	remote := &fakeTodoRemote{
		list:    []Todo{{ID: 1, Todo: "a"}},
		updated: Todo{ID: 1, Todo: "a", Completed: true},
	}
	p := loadedPage(t, remote)

	row, apply, err := p.UpdateRemote(context.Background(), 1, map[string]string{"completed": "true"})
	require.NoError(t, err)
	assert.Equal(t, 1, row.ID)
	assert.Equal(t, map[string]any{"completed": true}, remote.gotPatch)

	apply()
	got := p.Rows()[0]
	assert.Equal(t, "[x]", got.Cells[1])
}

func TestPage_UpdateRemote_Error(t *testing.T) {
	remote := &fakeTodoRemote{
		list:      []Todo{{ID: 1, Todo: "a"}},
		updateErr: errors.New("boom"),
	}
	p := loadedPage(t, remote)
	before := p.Rows()

	_, _, err := p.UpdateRemote(context.Background(), 1, map[string]string{"todo": "z"})

	require.Error(t, err)
	assert.Equal(t, before, p.Rows())
}

func TestPage_DeleteRemote(t *testing.T) {
	remote := &fakeTodoRemote{list: []Todo{{ID: 1}, {ID: 2}}}
	p := loadedPage(t, remote)

	apply, err := p.DeleteRemote(context.Background(), 2)
	require.NoError(t, err)

	apply()
	rows := p.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].ID)
}

func TestPage_CombinedOps(t *testing.T) {
	remote := &fakeTodoRemote{
		list:    []Todo{{ID: 1, Todo: "a"}},
		created: Todo{ID: 151, Todo: "b", UserID: 5},
		updated: Todo{ID: 1, Todo: "a", Completed: true},
	}
	p := NewPage(todosMeta, remote)
	ctx := context.Background()

	rows, err := p.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, store.StatusReady, p.Status())

	row, err := p.Create(ctx, map[string]string{"todo": "b", "userId": "5"})
	require.NoError(t, err)
	assert.Equal(t, 151, row.ID)
	assert.Equal(t, 2, p.Count())

	row, err = p.Update(ctx, 1, map[string]string{"completed": "true"})
	require.NoError(t, err)
	assert.Equal(t, "[x]", row.Cells[1])

	require.NoError(t, p.Delete(ctx, 151))
	assert.Equal(t, 1, p.Count())
}

func TestPage_Invalidate(t *testing.T) {
	remote := &fakeTodoRemote{list: []Todo{{ID: 1}}}
	p := loadedPage(t, remote)

	p.Invalidate()

	assert.Zero(t, p.Count())
	assert.Equal(t, store.StatusIdle, p.Status())
}
