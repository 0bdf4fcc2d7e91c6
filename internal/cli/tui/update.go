package tui

import tea "github.com/charmbracelet/bubbletea"

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case TickMsg:
		// Continue ticking for timer updates
		return m, tickCmd()

	case StatsMsg:
		m.Stats = msg.Stats
		m.Completed = msg.Completed
		m.Rounds = msg.Rounds
		if msg.Stats.Max > m.PeakMax {
			m.PeakMax = msg.Stats.Max
		}

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}
