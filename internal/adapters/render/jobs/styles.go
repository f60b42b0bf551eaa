package jobs

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	jobID     lipgloss.Style
	command   lipgloss.Style
	detail    lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	succeeded lipgloss.Style
	failed    lipgloss.Style
	timedOut  lipgloss.Style
	pending   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		jobID:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		command:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		succeeded: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failed:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		timedOut:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
