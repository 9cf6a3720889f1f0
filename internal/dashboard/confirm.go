package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/curio/internal/resource"
)

// confirmState holds the data for the delete confirmation screen.
type confirmState struct {
	tag      string
	singular string
	id       int
	summary  string
}

// newConfirmState builds a confirmation for deleting the given row.
func newConfirmState(meta resource.Meta, row resource.Row) confirmState {
	return confirmState{
		tag:      meta.Tag,
		singular: meta.Singular,
		id:       row.ID,
		summary:  strings.Join(row.Cells, "  "),
	}
}

// deleteCmd issues the remote delete and wraps the patch in a DeletedMsg.
func (cs confirmState) deleteCmd(page resource.Pager) tea.Cmd {
	tag, id := cs.tag, cs.id
	return func() tea.Msg {
		apply, err := page.DeleteRemote(context.Background(), id)
		return DeletedMsg{Tag: tag, ID: id, Apply: apply, Err: err}
	}
}

// View renders the confirmation screen.
func (cs confirmState) View(width, height int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delete %s %d?\n", cs.singular, cs.id)
	fmt.Fprintf(&b, "\n  %s\n", cs.summary)
	b.WriteString("\n  The record is removed from the remote collection")
	b.WriteString("\n  and dropped from the cached list.")
	b.WriteString("\n\n  [Enter] Delete   [Esc] Cancel")
	return b.String()
}
