package tui

import (
	"fmt"
	"strings"
	"time"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.Quitting || m.Done {
		return ""
	}

	var b strings.Builder

	// Header: pool name and elapsed time
	elapsed := time.Since(m.StartTime).Round(time.Second)
	b.WriteString(m.Styles.Title.Render(fmt.Sprintf("thdpool %s", m.Stats.Name)))
	b.WriteString("  ")
	b.WriteString(m.Styles.Timer.Render(elapsed.String()))
	b.WriteString("\n\n")

	// Worker gauge: one cell per worker up to the peak ceiling
	b.WriteString(m.renderGauge())
	b.WriteString("\n")

	// Sizing window and balance
	b.WriteString(m.Styles.GaugeLabel.Render(
		fmt.Sprintf("  window min=%d max=%d", m.Stats.Min, m.Stats.Max)))
	b.WriteString(m.renderBalance())
	b.WriteString("\n\n")

	// Cumulative counters
	b.WriteString(m.renderCounters())

	// Footer
	b.WriteString(m.Styles.Footer.Render(
		m.Styles.FooterKey.Render("q") + " quit"))
	b.WriteString("\n")

	return b.String()
}

// renderGauge draws one cell per worker: parked, busy, or free capacity.
func (m *Model) renderGauge() string {
	parked := m.Stats.InList
	busy := m.Stats.Number - m.Stats.InList
	if busy < 0 {
		busy = 0
	}
	width := m.PeakMax
	if m.Stats.Number > width {
		width = m.Stats.Number
	}

	var b strings.Builder
	b.WriteString(m.Styles.GaugeLabel.Render("  workers "))
	for i := 0; i < busy; i++ {
		b.WriteString(m.Styles.GaugeBusy.Render(IconBusy))
	}
	for i := 0; i < parked; i++ {
		b.WriteString(m.Styles.GaugeParked.Render(IconParked))
	}
	for i := busy + parked; i < width; i++ {
		b.WriteString(m.Styles.GaugeEmpty.Render(IconEmpty))
	}
	b.WriteString(m.Styles.GaugeLabel.Render(
		fmt.Sprintf("  %d busy / %d parked / %d total", busy, parked, m.Stats.Number)))
	return b.String()
}

// renderBalance shows the shrink counter, colored by direction.
func (m *Model) renderBalance() string {
	s := fmt.Sprintf("  balance=%d", m.Stats.Balance)
	if m.Stats.Balance < 0 {
		return m.Styles.Shrink.Render(s)
	}
	if m.Stats.Balance > 0 {
		return m.Styles.Grow.Render(s)
	}
	return m.Styles.CounterLabel.Render(s)
}

func (m *Model) renderCounters() string {
	var b strings.Builder
	row := func(label string, value int64) {
		b.WriteString(m.Styles.CounterLabel.Render(fmt.Sprintf("  %-10s", label)))
		b.WriteString(m.Styles.CounterValue.Render(fmt.Sprintf("%d", value)))
		b.WriteString("\n")
	}
	row("completed", m.Completed)
	row("rounds", m.Rounds)
	row("submits", m.Stats.Submits)
	row("retries", m.Stats.Retries)
	row("created", m.Stats.Created)
	row("retired", m.Stats.Retired)
	return b.String()
}
