package dashboard

import "github.com/charmbracelet/lipgloss"

// MinWidth is the minimum terminal width the dashboard renders into.
const MinWidth = 40

var (
	// activeTab styles the selected resource tab.
	activeTab = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	// inactiveTab styles the other resource tabs.
	inactiveTab = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	// headerText styles the column heading row.
	headerText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	// selectedRow styles the row under the cursor.
	selectedRow = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	// errorText styles error lines in the status bar and forms.
	errorText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

	// statusText styles transient status notices.
	statusText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})

	// requiredMark styles required field labels in create forms.
	requiredMark = lipgloss.NewStyle().Bold(true)
)

// PageBorder returns the rounded border around the page content.
func PageBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}
