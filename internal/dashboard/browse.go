package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/curio/internal/resource"
)

// CursorMarker is the prefix shown on the selected row.
const CursorMarker = "▸ "

// browseState manages one page's record list, cursor, and loading/error
// states.
type browseState struct {
	rows    []resource.Row
	cursor  int
	loading bool
	err     error
	busy    bool // a mutation is in flight; list stays interactive
}

// newBrowseState returns a browseState in the loading state.
func newBrowseState() browseState {
	return browseState{loading: true}
}

// initFetch returns a tea.Cmd that fetches the page's collection
// asynchronously and wraps the cache patch in a CollectionMsg.
func initFetch(page resource.Pager) tea.Cmd {
	tag := page.Meta().Tag
	return func() tea.Msg {
		apply, err := page.FetchRemote(context.Background())
		return CollectionMsg{Tag: tag, Apply: apply, Err: err}
	}
}

// applyFetch applies a completed fetch to the browse state, clearing the
// loading indicator and clamping the cursor.
func (bs browseState) applyFetch(rows []resource.Row, err error) browseState {
	bs.loading = false
	if err != nil {
		bs.err = err
		bs.rows = nil
		return bs
	}
	bs.err = nil
	bs.rows = rows
	bs.cursor = 0
	return bs
}

// refreshRows re-projects the page's cache after a mutation patched it,
// keeping the cursor on the same position where possible.
func (bs browseState) refreshRows(rows []resource.Row) browseState {
	bs.rows = rows
	if bs.cursor >= len(bs.rows) {
		bs.cursor = len(bs.rows) - 1
	}
	if bs.cursor < 0 {
		bs.cursor = 0
	}
	return bs
}

func (bs browseState) handleKey(msg tea.KeyMsg) (browseState, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if len(bs.rows) > 0 {
			bs.cursor--
			if bs.cursor < 0 {
				bs.cursor = len(bs.rows) - 1
			}
		}
		return bs, nil

	case "down", "j":
		bs.cursor++
		if bs.cursor >= len(bs.rows) {
			bs.cursor = 0
		}
		return bs, nil

	case "r":
		bs.loading = true
		bs.err = nil
		return bs, func() tea.Msg { return RefreshMsg{} }
	}

	return bs, nil
}

// SelectedID returns the record id at the cursor, or 0 if the list is
// empty or still loading.
func (bs browseState) SelectedID() int {
	if len(bs.rows) == 0 || bs.cursor < 0 || bs.cursor >= len(bs.rows) {
		return 0
	}
	return bs.rows[bs.cursor].ID
}

// View renders the record list for the given dimensions.
// spinnerView is the current spinner frame (may be empty when inactive).
func (bs browseState) View(columns []string, width, height int, spinnerView string) string {
	if bs.loading {
		return fmt.Sprintf("%s Loading...", spinnerView)
	}

	if bs.err != nil {
		return fmt.Sprintf("Error: %s\n\nPress r to retry", bs.err)
	}

	if len(bs.rows) == 0 {
		return "No records. Press n to create one, r to refresh"
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerText.Render(strings.Join(columns, "  ")))
	for i, row := range bs.rows {
		b.WriteByte('\n')
		line := strings.Join(row.Cells, "  ")
		if runes := []rune(line); width > 3 && len(runes) > width-2 {
			line = string(runes[:width-3]) + "…"
		}
		if i == bs.cursor {
			b.WriteString(CursorMarker)
			b.WriteString(selectedRow.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
	}
	return b.String()
}
