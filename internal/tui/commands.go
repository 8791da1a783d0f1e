package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/countdial/internal/dial"
	"github.com/jask/countdial/internal/service"
)

const historyLimit = 12

// tickCmd arms the one-second tick for the current run.
func (a *App) tickCmd() tea.Cmd {
	gen := a.dial.RunGen()
	return tea.Tick(dial.TickInterval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// spinCmd arms the spin clear for the current spin.
func (a *App) spinCmd() tea.Cmd {
	gen := a.dial.SpinGen()
	return tea.Tick(dial.SpinDuration, func(time.Time) tea.Msg { return spinDoneMsg{gen: gen} })
}

func (a *App) frameCmd() tea.Cmd {
	fps := a.cfg.UI.FPS
	if fps <= 0 {
		fps = 30
	}
	gen := a.dial.SpinGen()
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func (a *App) loadPresets() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Presets == nil {
			return presetsMsg(nil)
		}
		list, err := a.repos.Presets.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return presetsMsg(list)
	}
}

func (a *App) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if a.services.Journal == nil {
			return historyMsg{}
		}
		list, err := a.services.Journal.Recent(a.ctx, historyLimit)
		if err != nil {
			return errMsg{err}
		}
		sum, err := a.services.Journal.Today(a.ctx, a.tz)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg{sessions: list, summary: sum}
	}
}

// recordCmd journals the run that just ended. The run's figures are read
// now; the write happens off the update loop.
func (a *App) recordCmd(outcome string) tea.Cmd {
	if a.services.Journal == nil {
		return nil
	}
	run := service.Run{
		Planned:   a.dial.Planned(),
		Elapsed:   a.dial.Elapsed(),
		Outcome:   outcome,
		StartedAt: a.runStarted,
	}
	journal := a.services.Journal
	ctx := a.ctx
	return func() tea.Msg {
		s, err := journal.Record(ctx, run)
		if err != nil {
			return errMsg{err}
		}
		return sessionSavedMsg{session: s}
	}
}

func (a *App) clearHistoryCmd() tea.Cmd {
	maint := a.services.Maintenance
	ctx := a.ctx
	return func() tea.Msg {
		if maint == nil {
			return statusMsg("no journal configured")
		}
		if err := maint.ClearHistory(ctx); err != nil {
			return errMsg{err}
		}
		return historyClearedMsg{}
	}
}
