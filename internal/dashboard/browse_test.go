package dashboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/smileynet/curio/internal/resource"
)

func rowsFixture() []resource.Row {
	return []resource.Row{
		{ID: 1, Cells: []string{"1", "[ ]", "buy milk"}},
		{ID: 2, Cells: []string{"2", "[x]", "walk dog"}},
		{ID: 3, Cells: []string{"3", "[ ]", "water plants"}},
	}
}

func TestBrowseState_StartsLoading(t *testing.T) {
	bs := newBrowseState()
	if !bs.loading {
		t.Error("new browse state should be loading")
	}
}

func TestBrowseState_ApplyFetch(t *testing.T) {
	bs := newBrowseState()
	bs = bs.applyFetch(rowsFixture(), nil)

	if bs.loading {
		t.Error("loading should clear after fetch")
	}
	if len(bs.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(bs.rows))
	}
	if bs.cursor != 0 {
		t.Errorf("cursor = %d, want 0", bs.cursor)
	}
}

func TestBrowseState_ApplyFetch_Error(t *testing.T) {
	bs := newBrowseState()
	bs = bs.applyFetch(nil, errors.New("boom"))

	if bs.loading {
		t.Error("loading should clear on error")
	}
	if bs.err == nil {
		t.Error("error should be recorded")
	}
	if bs.rows != nil {
		t.Error("rows should be nil on error")
	}
}

func TestBrowseState_CursorWraps(t *testing.T) {
	bs := newBrowseState().applyFetch(rowsFixture(), nil)

	bs, _ = bs.handleKey(keyMsg("up"))
	if bs.cursor != 2 {
		t.Errorf("cursor = %d, want wrap to 2", bs.cursor)
	}

	bs, _ = bs.handleKey(keyMsg("down"))
	if bs.cursor != 0 {
		t.Errorf("cursor = %d, want wrap to 0", bs.cursor)
	}
}

func TestBrowseState_SelectedID(t *testing.T) {
	bs := newBrowseState().applyFetch(rowsFixture(), nil)
	bs, _ = bs.handleKey(keyMsg("down"))

	if got := bs.SelectedID(); got != 2 {
		t.Errorf("SelectedID() = %d, want 2", got)
	}
}

func TestBrowseState_SelectedID_Empty(t *testing.T) {
	bs := newBrowseState().applyFetch(nil, nil)
	if got := bs.SelectedID(); got != 0 {
		t.Errorf("SelectedID() = %d, want 0 for empty list", got)
	}
}

func TestBrowseState_RefreshRows_ClampsCursor(t *testing.T) {
	bs := newBrowseState().applyFetch(rowsFixture(), nil)
	bs.cursor = 2

	bs = bs.refreshRows(rowsFixture()[:1])

	if bs.cursor != 0 {
		t.Errorf("cursor = %d, want clamp to 0", bs.cursor)
	}
}

func TestBrowseState_RefreshKey_EmitsRefreshMsg(t *testing.T) {
	bs := newBrowseState().applyFetch(rowsFixture(), nil)

	bs, cmd := bs.handleKey(keyMsg("r"))
	if !bs.loading {
		t.Error("refresh should re-enter loading")
	}
	if cmd == nil {
		t.Fatal("refresh should emit a command")
	}
	if _, ok := cmd().(RefreshMsg); !ok {
		t.Error("command should produce RefreshMsg")
	}
}

func TestBrowseState_View_States(t *testing.T) {
	cols := []string{"ID", "Done", "Todo"}

	loading := newBrowseState()
	if !strings.Contains(loading.View(cols, 60, 20, "⣾"), "Loading") {
		t.Error("loading view should show loading text")
	}

	failed := newBrowseState().applyFetch(nil, errors.New("service down"))
	view := failed.View(cols, 60, 20, "")
	if !strings.Contains(view, "service down") || !strings.Contains(view, "retry") {
		t.Errorf("error view = %q, want error and retry hint", view)
	}

	empty := newBrowseState().applyFetch(nil, nil)
	if !strings.Contains(empty.View(cols, 60, 20, ""), "No records") {
		t.Error("empty view should show empty hint")
	}

	full := newBrowseState().applyFetch(rowsFixture(), nil)
	view = full.View(cols, 60, 20, "")
	if !strings.Contains(view, "buy milk") {
		t.Errorf("list view should contain rows, got %q", view)
	}
	if !strings.Contains(view, CursorMarker) {
		t.Error("list view should mark the cursor row")
	}
}
