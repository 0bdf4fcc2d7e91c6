package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moharaka/thdpool/internal/pool"
)

// Model is the bubbletea model for the live pool dashboard
type Model struct {
	// State
	Stats     pool.Stats
	Completed int64
	Rounds    int64
	StartTime time.Time
	PeakMax   int
	Width     int
	Height    int
	Styles    Styles

	// Control
	Quitting bool
	Done     bool
}

// NewModel creates a new dashboard model seeded with an initial snapshot
func NewModel(st pool.Stats) *Model {
	return &Model{
		Stats:     st,
		StartTime: time.Now(),
		PeakMax:   st.Max,
		Styles:    DefaultStyles(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// TickMsg is sent every second to update the timer
type TickMsg time.Time

// tickCmd returns a command that sends TickMsg every second
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// StatsMsg carries a fresh pool snapshot
type StatsMsg struct {
	Stats     pool.Stats
	Completed int64
	Rounds    int64
}

// DoneMsg signals the TUI should exit
type DoneMsg struct{}
