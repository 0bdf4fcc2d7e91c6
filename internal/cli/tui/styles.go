package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for the dashboard
type Styles struct {
	// Header styling
	Title lipgloss.Style
	Timer lipgloss.Style

	// Gauge styling
	GaugeLabel  lipgloss.Style
	GaugeParked lipgloss.Style
	GaugeBusy   lipgloss.Style
	GaugeEmpty  lipgloss.Style

	// Counter styling
	CounterLabel lipgloss.Style
	CounterValue lipgloss.Style
	Shrink       lipgloss.Style
	Grow         lipgloss.Style

	// Footer styling
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
}

// DefaultStyles returns the default dashboard styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Timer: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		GaugeLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		GaugeParked: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		GaugeBusy:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		GaugeEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		CounterLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CounterValue: lipgloss.NewStyle().Bold(true),
		Shrink:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Grow:         lipgloss.NewStyle().Foreground(lipgloss.Color("42")),

		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		FooterKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

// Icons used in the dashboard
const (
	IconParked = "●"
	IconBusy   = "◆"
	IconEmpty  = "·"
)
