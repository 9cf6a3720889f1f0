package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/curio/internal/resource"
)

// formState is a create or edit form over the active page's fields, one
// text input per editable field.
type formState struct {
	tag        string
	fields     []resource.Field
	inputs     []textinput.Model
	focus      int
	editID     int // 0 for create, record id for edit
	err        error
	submitting bool
}

// newCreateForm builds an empty form for the page's fields.
func newCreateForm(meta resource.Meta) formState {
	return newForm(meta, 0)
}

// newEditForm builds a form for an existing record. Inputs start blank:
// only fields the user actually fills are sent, keeping the update partial.
func newEditForm(meta resource.Meta, id int) formState {
	return newForm(meta, id)
}

func newForm(meta resource.Meta, editID int) formState {
	inputs := make([]textinput.Model, len(meta.Fields))
	for i, f := range meta.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.Help
		in.CharLimit = 256
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
	}
	return formState{
		tag:    meta.Tag,
		fields: meta.Fields,
		inputs: inputs,
		editID: editID,
	}
}

// isEdit reports whether the form updates an existing record.
func (fs formState) isEdit() bool {
	return fs.editID != 0
}

// Update processes key and input messages for the form.
func (fs formState) Update(msg tea.Msg, page resource.Pager) (formState, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			fs = fs.moveFocus(1)
			return fs, nil
		case "shift+tab", "up":
			fs = fs.moveFocus(-1)
			return fs, nil
		case "enter":
			return fs.submit(page)
		}
	}

	var cmd tea.Cmd
	fs.inputs[fs.focus], cmd = fs.inputs[fs.focus].Update(msg)
	return fs, cmd
}

func (fs formState) moveFocus(delta int) formState {
	fs.inputs[fs.focus].Blur()
	fs.focus += delta
	if fs.focus < 0 {
		fs.focus = len(fs.inputs) - 1
	}
	if fs.focus >= len(fs.inputs) {
		fs.focus = 0
	}
	fs.inputs[fs.focus].Focus()
	return fs
}

// values collects the non-empty inputs as field name → raw value.
func (fs formState) values() map[string]string {
	vals := make(map[string]string)
	for i, f := range fs.fields {
		if v := strings.TrimSpace(fs.inputs[i].Value()); v != "" {
			vals[f.Name] = v
		}
	}
	return vals
}

// submit issues the create or update command. Parse errors surface
// immediately on the form; remote errors come back in the result message.
func (fs formState) submit(page resource.Pager) (formState, tea.Cmd) {
	vals := fs.values()
	tag := fs.tag

	if fs.isEdit() {
		id := fs.editID
		fs.submitting = true
		return fs, func() tea.Msg {
			row, apply, err := page.UpdateRemote(context.Background(), id, vals)
			return UpdatedMsg{Tag: tag, Row: row, Apply: apply, Err: err}
		}
	}

	fs.submitting = true
	return fs, func() tea.Msg {
		row, apply, err := page.CreateRemote(context.Background(), vals)
		return CreatedMsg{Tag: tag, Row: row, Apply: apply, Err: err}
	}
}

// View renders the form for the given width.
func (fs formState) View(singular string, width int) string {
	var b strings.Builder
	if fs.isEdit() {
		fmt.Fprintf(&b, "Edit %s %d (blank fields are left unchanged)\n\n", singular, fs.editID)
	} else {
		fmt.Fprintf(&b, "New %s\n\n", singular)
	}

	nameWidth := 0
	for _, f := range fs.fields {
		if len(f.Name) > nameWidth {
			nameWidth = len(f.Name)
		}
	}

	for i, f := range fs.fields {
		label := fmt.Sprintf("%-*s", nameWidth, f.Name)
		if f.Required && !fs.isEdit() {
			label = requiredMark.Render(label)
		}
		marker := "  "
		if i == fs.focus {
			marker = CursorMarker
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, label, fs.inputs[i].View())
	}

	if fs.err != nil {
		b.WriteString("\n")
		b.WriteString(errorText.Render(fs.err.Error()))
	}
	if fs.submitting {
		b.WriteString("\n  Saving...")
	} else {
		b.WriteString("\n  [Enter] Save   [Esc] Cancel")
	}
	return b.String()
}
