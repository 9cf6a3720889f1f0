package resource

import (
	"context"

	"github.com/smileynet/curio/internal/store"
)

// Meta is the static description of one resource page.
type Meta struct {
	// Tag is the resource path segment and cache key, e.g. "todos".
	Tag string
	// Title is the page heading.
	Title string
	// Singular names one record, e.g. "todo".
	Singular string
	// Policy fixes where created records land in the cached sequence.
	Policy store.InsertPolicy
	// Columns are the list-view column headings, aligned with Row.Cells.
	Columns []string
	// Fields are the editable fields, in form order.
	Fields []Field
}

// Row is one record projected for display.
type Row struct {
	ID    int
	Cells []string
}

// Applier patches the page's cache with a completed remote result. The
// remote halves below run in a command goroutine; the returned Applier must
// be called only from the goroutine that owns the cache (the update loop).
type Applier func()

// Pager is the type-erased view of one resource page. It hides the record
// type parameter from the dashboard, which handles all five resources
// uniformly through rows and field maps.
type Pager interface {
	Meta() Meta
	Status() store.Status
	Count() int
	Rows() []Row

	// MarkFetching and Invalidate mutate cache state and belong to the
	// owning goroutine.
	MarkFetching()
	Invalidate()

	FetchRemote(ctx context.Context) (Applier, error)
	CreateRemote(ctx context.Context, fields map[string]string) (Row, Applier, error)
	UpdateRemote(ctx context.Context, id int, fields map[string]string) (Row, Applier, error)
	DeleteRemote(ctx context.Context, id int) (Applier, error)

	// Combined call-and-patch operations for single-goroutine callers
	// such as the CLI commands.
	Fetch(ctx context.Context) ([]Row, error)
	Create(ctx context.Context, fields map[string]string) (Row, error)
	Update(ctx context.Context, id int, fields map[string]string) (Row, error)
	Delete(ctx context.Context, id int) error
}

// record constrains page record types to cache keys plus display cells.
type record interface {
	store.Record
	Cells() []string
}

// Page binds a record type to its metadata and synchronizer.
type Page[T record] struct {
	meta Meta
	sync *store.Synchronizer[T]
}

// NewPage creates a page over the given remote with the metadata's policy.
func NewPage[T record](meta Meta, remote store.Remote[T]) *Page[T] {
	return &Page[T]{
		meta: meta,
		sync: store.NewSynchronizer(remote, meta.Policy),
	}
}

// Meta returns the page description.
func (p *Page[T]) Meta() Meta { return p.meta }

// Status returns the fetch status of the page's collection.
func (p *Page[T]) Status() store.Status { return p.sync.Status() }

// Count returns the number of cached records.
func (p *Page[T]) Count() int { return p.sync.Collection().Len() }

// Rows projects the cached records for display, in cache order.
func (p *Page[T]) Rows() []Row {
	items := p.sync.Collection().Items()
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{ID: it.Key(), Cells: it.Cells()}
	}
	return rows
}

// MarkFetching records that a fetch command has been issued.
func (p *Page[T]) MarkFetching() { p.sync.MarkFetching() }

// Invalidate discards the cached collection, as on page unmount.
func (p *Page[T]) Invalidate() { p.sync.Invalidate() }

// Sync exposes the typed synchronizer for callers that run the combined
// fetch-mutate-patch path, such as the CLI commands.
func (p *Page[T]) Sync() *store.Synchronizer[T] { return p.sync }

// FetchRemote retrieves the collection and returns the cache patch.
func (p *Page[T]) FetchRemote(ctx context.Context) (Applier, error) {
	items, err := p.sync.Remote().FetchAll(ctx)
	if err != nil {
		return p.sync.ResolveFetchError, err
	}
	return func() { p.sync.ResolveFetch(items) }, nil
}

// CreateRemote sends a creation request built from form fields and returns
// the created row plus the cache patch.
func (p *Page[T]) CreateRemote(ctx context.Context, fields map[string]string) (Row, Applier, error) {
	draft, err := parseDraft[T](p.meta.Fields, fields)
	if err != nil {
		return Row{}, nil, err
	}
	created, err := p.sync.Remote().Create(ctx, draft)
	if err != nil {
		return Row{}, nil, err
	}
	row := Row{ID: created.Key(), Cells: created.Cells()}
	return row, func() { p.sync.Collection().ApplyCreate(created) }, nil
}

// UpdateRemote sends a partial update built from form fields and returns
// the updated row plus the cache patch.
func (p *Page[T]) UpdateRemote(ctx context.Context, id int, fields map[string]string) (Row, Applier, error) {
	patch, err := ParsePatch(p.meta.Fields, fields)
	if err != nil {
		return Row{}, nil, err
	}
	updated, err := p.sync.Remote().Update(ctx, id, patch)
	if err != nil {
		return Row{}, nil, err
	}
	row := Row{ID: updated.Key(), Cells: updated.Cells()}
	return row, func() { p.sync.Collection().ApplyUpdate(updated) }, nil
}

// DeleteRemote sends a removal request and returns the cache patch.
func (p *Page[T]) DeleteRemote(ctx context.Context, id int) (Applier, error) {
	if err := p.sync.Remote().Delete(ctx, id); err != nil {
		return nil, err
	}
	return func() { p.sync.Collection().ApplyDelete(id) }, nil
}

// Fetch retrieves the collection and patches the cache in one step.
func (p *Page[T]) Fetch(ctx context.Context) ([]Row, error) {
	if _, err := p.sync.FetchAll(ctx); err != nil {
		return nil, err
	}
	return p.Rows(), nil
}

// Create parses form fields, sends the creation request, and patches the
// cache in one step.
func (p *Page[T]) Create(ctx context.Context, fields map[string]string) (Row, error) {
	draft, err := parseDraft[T](p.meta.Fields, fields)
	if err != nil {
		return Row{}, err
	}
	created, err := p.sync.Create(ctx, draft)
	if err != nil {
		return Row{}, err
	}
	return Row{ID: created.Key(), Cells: created.Cells()}, nil
}

// Update parses patch fields, sends the modification, and patches the
// cache in one step.
func (p *Page[T]) Update(ctx context.Context, id int, fields map[string]string) (Row, error) {
	patch, err := ParsePatch(p.meta.Fields, fields)
	if err != nil {
		return Row{}, err
	}
	updated, err := p.sync.Update(ctx, id, patch)
	if err != nil {
		return Row{}, err
	}
	return Row{ID: updated.Key(), Cells: updated.Cells()}, nil
}

// Delete sends the removal request and patches the cache in one step.
func (p *Page[T]) Delete(ctx context.Context, id int) error {
	return p.sync.Delete(ctx, id)
}
