package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the TUI.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Section  lipgloss.Style
	Score    lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Score: lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
