package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	account    lipgloss.Style
	metricKey  lipgloss.Style
	metricVal  lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	unread     lipgloss.Style
	read       lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	barLabel   lipgloss.Style
	help       lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		account:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		metricKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		metricVal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		unread:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		read:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		help:       lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
