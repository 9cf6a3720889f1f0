package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/curio/internal/resource"
)

// Chrome line counts around the page content.
const (
	tabBarHeight    = 1
	statusBarHeight = 1
	helpBarHeight   = 1
	borderChrome    = 2
)

// Model is the root Bubble Tea model for the dashboard TUI. It routes
// messages by mode and owns the only goroutine that touches the caches:
// every Apply closure from a result message runs here.
type Model struct {
	set    *resource.Set
	tags   []string
	active int

	mode    Mode
	browse  map[string]browseState
	form    formState
	confirm confirmState

	spinner spinner.Model
	help    help.Model

	width  int
	height int

	status    string
	statusErr bool
}

// NewModel creates a dashboard Model opening the given resource page.
func NewModel(set *resource.Set, startTag string) Model {
	active := 0
	for i, tag := range resource.Tags {
		if tag == startTag {
			active = i
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		set:     set,
		tags:    resource.Tags,
		active:  active,
		mode:    ModeBrowse,
		browse:  make(map[string]browseState),
		spinner: sp,
		help:    help.New(),
	}
	m.browse[m.activeTag()] = newBrowseState()
	if page, err := set.Page(m.activeTag()); err == nil {
		page.MarkFetching()
	}
	return m
}

// Init starts the spinner and fetches the starting page.
func (m Model) Init() tea.Cmd {
	page, err := m.set.Page(m.activeTag())
	if err != nil {
		return tea.Quit
	}
	return tea.Batch(m.spinner.Tick, initFetch(page))
}

func (m Model) activeTag() string {
	return m.tags[m.active]
}

func (m Model) activePage() resource.Pager {
	// Tags come from the same catalog the set was built from; a miss is a
	// programming error surfaced as an empty page.
	page, _ := m.set.Page(m.activeTag())
	return page
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CollectionMsg:
		return m.handleCollection(msg)

	case CreatedMsg:
		return m.handleCreated(msg)

	case UpdatedMsg:
		return m.handleUpdated(msg)

	case DeletedMsg:
		return m.handleDeleted(msg)

	case RefreshMsg:
		page := m.activePage()
		page.MarkFetching()
		return m, tea.Batch(m.spinner.Tick, initFetch(page))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) anyLoading() bool {
	for _, bs := range m.browse {
		if bs.loading || bs.busy {
			return true
		}
	}
	return false
}

func (m Model) handleCollection(msg CollectionMsg) (tea.Model, tea.Cmd) {
	if msg.Apply != nil {
		msg.Apply()
	}
	bs := m.browse[msg.Tag]
	page, err := m.set.Page(msg.Tag)
	if err != nil {
		return m, nil
	}
	m.browse[msg.Tag] = bs.applyFetch(page.Rows(), msg.Err)
	return m, nil
}

func (m Model) handleCreated(msg CreatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m = m.clearBusy(msg.Tag)
		if m.mode == ModeForm && m.form.tag == msg.Tag {
			m.form.err = msg.Err
			m.form.submitting = false
		}
		return m.withError(msg.Err), nil
	}

	msg.Apply()
	m = m.refreshBrowse(msg.Tag)
	m.mode = ModeBrowse
	return m.withStatus(fmt.Sprintf("created %s %d", m.singular(msg.Tag), msg.Row.ID)), nil
}

func (m Model) handleUpdated(msg UpdatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m = m.clearBusy(msg.Tag)
		if m.mode == ModeForm && m.form.tag == msg.Tag {
			m.form.err = msg.Err
			m.form.submitting = false
		}
		return m.withError(msg.Err), nil
	}

	msg.Apply()
	m = m.refreshBrowse(msg.Tag)
	m.mode = ModeBrowse
	return m.withStatus(fmt.Sprintf("updated %s %d", m.singular(msg.Tag), msg.Row.ID)), nil
}

func (m Model) handleDeleted(msg DeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m = m.clearBusy(msg.Tag)
		m.mode = ModeBrowse
		return m.withError(msg.Err), nil
	}

	msg.Apply()
	m = m.refreshBrowse(msg.Tag)
	m.mode = ModeBrowse
	return m.withStatus(fmt.Sprintf("deleted %s %d", m.singular(msg.Tag), msg.ID)), nil
}

// refreshBrowse re-projects a page's cache into its browse state after a
// mutation patched it.
func (m Model) refreshBrowse(tag string) Model {
	page, err := m.set.Page(tag)
	if err != nil {
		return m
	}
	bs := m.browse[tag]
	bs.busy = false
	m.browse[tag] = bs.refreshRows(page.Rows())
	return m
}

// clearBusy drops a page's mutation-in-flight flag.
func (m Model) clearBusy(tag string) Model {
	bs := m.browse[tag]
	bs.busy = false
	m.browse[tag] = bs
	return m
}

func (m Model) singular(tag string) string {
	page, err := m.set.Page(tag)
	if err != nil {
		return "record"
	}
	return page.Meta().Singular
}

func (m Model) withStatus(s string) Model {
	m.status = s
	m.statusErr = false
	return m
}

func (m Model) withError(err error) Model {
	m.status = err.Error()
	m.statusErr = true
	return m
}

// handleKey processes key messages with global and mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bs := m.browse[m.activeTag()]

	switch msg.String() {
	case "q", "ctrl+c":
		m.set.InvalidateAll()
		return m, tea.Quit

	case "left", "h":
		return m.switchPage(-1)

	case "right", "l":
		return m.switchPage(1)

	case "n":
		if bs.loading {
			return m, nil
		}
		m.mode = ModeForm
		m.form = newCreateForm(m.activePage().Meta())
		m.status = ""
		return m, nil

	case "enter", "e":
		if bs.loading || bs.SelectedID() == 0 {
			return m, nil
		}
		m.mode = ModeForm
		m.form = newEditForm(m.activePage().Meta(), bs.SelectedID())
		m.status = ""
		return m, nil

	case "d":
		if bs.loading || bs.SelectedID() == 0 {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirm = newConfirmState(m.activePage().Meta(), bs.rows[bs.cursor])
		m.status = ""
		return m, nil
	}

	if bs.loading {
		return m, nil
	}
	var cmd tea.Cmd
	bs, cmd = bs.handleKey(msg)
	m.browse[m.activeTag()] = bs
	return m, cmd
}

// switchPage moves to the adjacent resource page. The page being left
// unmounts: its cache is discarded and the new page fetches on mount.
func (m Model) switchPage(delta int) (tea.Model, tea.Cmd) {
	leaving := m.activeTag()
	m.set.Invalidate(leaving)
	delete(m.browse, leaving)

	m.active += delta
	if m.active < 0 {
		m.active = len(m.tags) - 1
	}
	if m.active >= len(m.tags) {
		m.active = 0
	}

	m.status = ""
	m.browse[m.activeTag()] = newBrowseState()
	page := m.activePage()
	page.MarkFetching()
	return m, tea.Batch(m.spinner.Tick, initFetch(page))
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = ModeBrowse
		return m, nil
	}
	if m.form.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg, m.activePage())
	if m.form.submitting {
		bs := m.browse[m.activeTag()]
		bs.busy = true
		m.browse[m.activeTag()] = bs
		cmd = tea.Batch(m.spinner.Tick, cmd)
	}
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		bs := m.browse[m.activeTag()]
		bs.busy = true
		m.browse[m.activeTag()] = bs
		return m, tea.Batch(m.spinner.Tick, m.confirm.deleteCmd(m.activePage()))
	case "esc":
		m.mode = ModeBrowse
		return m, nil
	}
	return m, nil
}

// contentHeight returns the usable height for page content.
func (m Model) contentHeight() int {
	h := m.height - tabBarHeight - statusBarHeight - helpBarHeight - borderChrome
	if h < 1 {
		return 1
	}
	return h
}

// View renders the tab bar, page content, status line, and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	width := m.width
	if width < MinWidth {
		width = MinWidth
	}

	content := PageBorder().
		Width(width - borderChrome).
		Height(m.contentHeight()).
		Render(m.viewContent(width - borderChrome))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(HelpBindings(m.mode)),
	)
}

func (m Model) viewContent(width int) string {
	switch m.mode {
	case ModeForm:
		return m.form.View(m.activePage().Meta().Singular, width)
	case ModeConfirm:
		return m.confirm.View(width, m.contentHeight())
	default:
		bs := m.browse[m.activeTag()]
		return bs.View(m.activePage().Meta().Columns, width, m.contentHeight(), m.spinner.View())
	}
}

func (m Model) viewTabs() string {
	parts := make([]string, len(m.tags))
	for i, tag := range m.tags {
		title := tag
		if page, err := m.set.Page(tag); err == nil {
			title = page.Meta().Title
		}
		if i == m.active {
			parts[i] = activeTab.Render("[" + title + "]")
		} else {
			parts[i] = inactiveTab.Render(" " + title + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return " "
	}
	if m.statusErr {
		return errorText.Render(m.status)
	}
	return statusText.Render(m.status)
}
