package store

import "context"

// Status describes the state of a collection's single in-flight operation.
// Transitions are driven solely by the resolution of that call; there is no
// queuing of overlapping mutations and no cancellation once issued.
type Status int

const (
	StatusIdle     Status = iota // No fetch has been issued yet.
	StatusFetching               // A fetch is pending; consumers show loading.
	StatusReady                  // Last fetch succeeded; cache is populated.
	StatusError                  // Last fetch failed; any prior cache is kept.
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusFetching:
		return "fetching"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Remote is the seam between the synchronizer and the REST client.
// Implementations must not retry and must not mutate any shared state.
type Remote[T Record] interface {
	// FetchAll retrieves the full collection.
	FetchAll(ctx context.Context) ([]T, error)
	// Create sends a creation request and returns the record with its
	// server-assigned id.
	Create(ctx context.Context, draft T) (T, error)
	// Update sends a partial modification and returns the full record.
	Update(ctx context.Context, id int, fields map[string]any) (T, error)
	// Delete sends a removal request.
	Delete(ctx context.Context, id int) error
}

// Synchronizer keeps a Collection consistent with a sequence of remote
// create/update/delete calls without re-fetching the collection after each
// mutation: the cache is patched from the mutating call's response alone,
// and only after that call succeeded. On failure the cache stays at its
// last-known-good state; there is no rollback path because nothing was
// applied early.
type Synchronizer[T Record] struct {
	remote Remote[T]
	col    *Collection[T]
	status Status
}

// NewSynchronizer creates a synchronizer over an empty collection with the
// given insert policy.
func NewSynchronizer[T Record](remote Remote[T], policy InsertPolicy) *Synchronizer[T] {
	return &Synchronizer[T]{
		remote: remote,
		col:    NewCollection[T](policy),
		status: StatusIdle,
	}
}

// FetchAll retrieves the full collection and replaces the cache contents.
// On failure the existing cache is left untouched and the error returned.
func (s *Synchronizer[T]) FetchAll(ctx context.Context) ([]T, error) {
	s.MarkFetching()
	items, err := s.remote.FetchAll(ctx)
	if err != nil {
		s.ResolveFetchError()
		return nil, err
	}
	s.ResolveFetch(items)
	return s.col.Items(), nil
}

// Create sends a creation request and, on success, inserts the returned
// record (including its server-assigned id) per the collection's policy.
func (s *Synchronizer[T]) Create(ctx context.Context, draft T) (T, error) {
	created, err := s.remote.Create(ctx, draft)
	if err != nil {
		var zero T
		return zero, err
	}
	s.col.ApplyCreate(created)
	return created, nil
}

// Update sends a partial modification and, on success, replaces the cached
// entry with the returned record. If the id is not cached the result is
// silently dropped.
func (s *Synchronizer[T]) Update(ctx context.Context, id int, fields map[string]any) (T, error) {
	updated, err := s.remote.Update(ctx, id, fields)
	if err != nil {
		var zero T
		return zero, err
	}
	s.col.ApplyUpdate(updated)
	return updated, nil
}

// Delete sends a removal request and, on success, drops the cached entry.
// Once the remote call succeeds, deleting an id absent from the cache is a
// no-op.
func (s *Synchronizer[T]) Delete(ctx context.Context, id int) error {
	if err := s.remote.Delete(ctx, id); err != nil {
		return err
	}
	s.col.ApplyDelete(id)
	return nil
}

// Remote returns the remote seam. Callers that split the remote call from
// the cache patch (a TUI issuing the call from a command goroutine) use the
// remote directly, then feed the result back through Resolve* from the
// goroutine that owns the cache.
func (s *Synchronizer[T]) Remote() Remote[T] {
	return s.remote
}

// MarkFetching records that a fetch has been issued.
func (s *Synchronizer[T]) MarkFetching() {
	s.status = StatusFetching
}

// ResolveFetch applies a successful fetch result to the cache.
func (s *Synchronizer[T]) ResolveFetch(items []T) {
	s.col.ApplyList(items)
	s.status = StatusReady
}

// ResolveFetchError records a failed fetch, leaving any prior cache intact.
func (s *Synchronizer[T]) ResolveFetchError() {
	s.status = StatusError
}

// Collection exposes the underlying cache for callers that split the remote
// call from the patch, such as a TUI update loop.
func (s *Synchronizer[T]) Collection() *Collection[T] {
	return s.col
}

// Status returns the fetch status of the collection.
func (s *Synchronizer[T]) Status() Status {
	return s.status
}

// Invalidate empties the cache and resets the status to idle, as on page
// unmount.
func (s *Synchronizer[T]) Invalidate() {
	s.col.Clear()
	s.status = StatusIdle
}
