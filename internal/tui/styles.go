// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#F48982")
	colorPrimary = lipgloss.Color("#F38E82")
	colorMuted   = lipgloss.Color("#918581")
	colorError   = lipgloss.Color("#E53935")
	colorSuccess = lipgloss.Color("#8BC34A")
)

// Styles groups the lipgloss styles used by the browser.
type Styles struct {
	Title       lipgloss.Style
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Help        lipgloss.Style
	Modal       lipgloss.Style
	Label       lipgloss.Style
}

// DefaultStyles returns the browser's color scheme.
func DefaultStyles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Pane:        pane,
		FocusedPane: pane.BorderForeground(colorAccent),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Muted:       lipgloss.NewStyle().Foreground(colorMuted),
		Error:       lipgloss.NewStyle().Foreground(colorError),
		Success:     lipgloss.NewStyle().Foreground(colorSuccess),
		Help:        lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2),
		Label: lipgloss.NewStyle().Width(14).Foreground(colorPrimary),
	}
}
