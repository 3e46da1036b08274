package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	help    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	box     lipgloss.Style
}

// newStyles binds every style to r so colors follow the capabilities of the
// writer r renders to.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		app:     r.NewStyle().PaddingLeft(2),
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Faint(true),
		help:    r.NewStyle().Faint(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
	}
}
