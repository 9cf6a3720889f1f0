package api

import (
	"context"

	"github.com/smileynet/curio/internal/store"
)

// Remote binds a Client to one resource endpoint, satisfying store.Remote
// so a Synchronizer can drive it.
type Remote[T store.Record] struct {
	client   *Client
	resource string
}

// NewRemote creates a Remote for the given resource tag.
func NewRemote[T store.Record](c *Client, resource string) *Remote[T] {
	return &Remote[T]{client: c, resource: resource}
}

// FetchAll retrieves the full collection.
func (r *Remote[T]) FetchAll(ctx context.Context) ([]T, error) {
	return List[T](ctx, r.client, r.resource)
}

// Create sends a creation request and returns the stored record.
func (r *Remote[T]) Create(ctx context.Context, draft T) (T, error) {
	return Create(ctx, r.client, r.resource, draft)
}

// Update sends a partial modification and returns the full record.
func (r *Remote[T]) Update(ctx context.Context, id int, fields map[string]any) (T, error) {
	return Update[T](ctx, r.client, r.resource, id, fields)
}

// Delete sends a removal request.
func (r *Remote[T]) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, r.resource, id)
}
