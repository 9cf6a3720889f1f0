// Package dashboard implements the CRUD browsing TUI: one page per remote
// collection, with fetch-on-mount, inline create/edit forms, and delete
// confirmation. All cache mutation happens in the update loop; command
// goroutines only talk to the remote service.
package dashboard

import "github.com/smileynet/curio/internal/resource"

// Mode represents the current dashboard view mode.
type Mode int

const (
	ModeBrowse  Mode = iota // Browsing the active page's record list.
	ModeForm                // Filling a create or edit form.
	ModeConfirm             // Confirming a delete.
)

// CollectionMsg carries the result of a page fetch. Apply patches the
// page's cache and must run in the update loop.
type CollectionMsg struct {
	Tag   string
	Apply resource.Applier
	Err   error
}

// CreatedMsg carries the result of a create mutation.
type CreatedMsg struct {
	Tag   string
	Row   resource.Row
	Apply resource.Applier
	Err   error
}

// UpdatedMsg carries the result of an update mutation.
type UpdatedMsg struct {
	Tag   string
	Row   resource.Row
	Apply resource.Applier
	Err   error
}

// DeletedMsg carries the result of a delete mutation.
type DeletedMsg struct {
	Tag   string
	ID    int
	Apply resource.Applier
	Err   error
}

// RefreshMsg signals that the active page should be refetched.
// browseState emits this on 'r'; Model.Update intercepts it.
type RefreshMsg struct{}
