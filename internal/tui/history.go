package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/countdial/internal/dial"
)

func (a *App) renderHistory() string {
	height := a.layout.rows
	var b strings.Builder
	b.WriteString(titleStyle.Render("History"))
	b.WriteString("\n")
	switch {
	case a.services.Journal == nil:
		b.WriteString("Journal disabled (journal.enabled = false).")
	case len(a.history) == 0:
		b.WriteString("No sessions yet. Start the dial with space.")
	default:
		b.WriteString(headerMutedStyle.Render(fmt.Sprintf("%-12s  %-7s  %-7s  %s", "ended", "planned", "counted", "outcome")))
		for _, s := range a.history {
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("%-12s  %-7s  %-7s  %s",
				s.EndedAt.In(a.tz).Format("Jan 02 15:04"),
				dial.Format(s.PlannedSeconds),
				dial.Format(s.ElapsedSeconds),
				s.Outcome,
			))
		}
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Today: %d sessions, %d completed, %s counted",
			a.summary.Sessions, a.summary.Completed, dial.Format(a.summary.ElapsedSeconds)))
	}
	box := historyBoxStyle.Render(b.String())
	return lipgloss.Place(max(a.width, 1), height, lipgloss.Center, lipgloss.Center, box)
}
