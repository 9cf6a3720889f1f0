package api

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a 404 from the remote service. Callers branch on it
// when an update or delete targets an id the server no longer has.
var ErrNotFound = errors.New("api: record not found")

// RetrievalError reports a failed collection fetch.
type RetrievalError struct {
	Resource string
	Err      error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("api: fetching %s: %v", e.Resource, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// CreationError reports a failed create request.
type CreationError struct {
	Resource string
	Err      error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("api: creating %s record: %v", e.Resource, e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

// UpdateError reports a failed update request for one record.
type UpdateError struct {
	Resource string
	ID       int
	Err      error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("api: updating %s/%d: %v", e.Resource, e.ID, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// DeletionError reports a failed delete request for one record.
type DeletionError struct {
	Resource string
	ID       int
	Err      error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("api: deleting %s/%d: %v", e.Resource, e.ID, e.Err)
}

func (e *DeletionError) Unwrap() error { return e.Err }
