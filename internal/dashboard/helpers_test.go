package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/curio/internal/api"
	"github.com/smileynet/curio/internal/resource"
)

// todosHandler serves a fixed todos collection with working mutations.
func todosHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{
				"todos": []resource.Todo{
					{ID: 1, Todo: "buy milk", UserID: 5},
					{ID: 2, Todo: "walk dog", Completed: true, UserID: 5},
				},
			})
		case http.MethodPost:
			var draft resource.Todo
			json.NewDecoder(r.Body).Decode(&draft)
			draft.ID = 151
			json.NewEncoder(w).Encode(draft)
		case http.MethodPut:
			json.NewEncoder(w).Encode(resource.Todo{ID: 1, Todo: "buy milk", Completed: true, UserID: 5})
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]any{"id": 2, "isDeleted": true})
		}
	}
}

// failingHandler rejects every request.
func failingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service down", http.StatusInternalServerError)
	}
}

// newTestSet builds a resource set against a scripted server.
func newTestSet(t *testing.T, handler http.HandlerFunc) *resource.Set {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return resource.NewSet(api.NewClient(api.WithBaseURL(srv.URL)))
}

// loadedModel returns a model on the todos page with its first fetch
// already resolved.
func loadedModel(t *testing.T, handler http.HandlerFunc) Model {
	t.Helper()
	set := newTestSet(t, handler)
	m := NewModel(set, "todos")

	page, err := set.Page("todos")
	if err != nil {
		t.Fatal(err)
	}
	msg := initFetch(page)()
	newModel, _ := m.Update(msg)
	return newModel.(Model)
}

// runCmd executes a command synchronously and feeds its message back.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			newModel, _ := m.Update(c())
			m = newModel.(Model)
		}
		return m
	}
	newModel, _ := m.Update(msg)
	return newModel.(Model)
}

// keyMsg builds a key message from a key name or rune.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
