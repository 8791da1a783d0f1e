package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/countdial/internal/config"
	"github.com/jask/countdial/internal/database/repository"
	"github.com/jask/countdial/internal/dial"
	"github.com/jask/countdial/internal/service"
	"github.com/jask/countdial/internal/sound"
)

// App binds the countdown dial to the terminal.
type App struct {
	ctx      context.Context
	repos    Repos
	services Services
	cfg      config.Config
	variant  dial.Variant
	dial     *dial.Dial
	keys     keyMap
	theme    theme
	tz       *time.Location
	now      func() time.Time

	width  int
	height int
	layout layout

	runStarted  time.Time
	spinStarted time.Time

	presets     []repository.Preset
	history     []repository.Session
	summary     repository.SessionSummary
	showHistory bool

	status    string
	statusErr bool
	quitting  bool
}

type Repos struct {
	Presets *repository.PresetRepo
}

type Services struct {
	Journal     *service.Journal
	Maintenance *service.MaintenanceService
	Sound       sound.Player
}

func New(ctx context.Context, cfg config.Config, repos Repos, services Services, tz *time.Location) *App {
	if tz == nil {
		tz = time.Local
	}
	if services.Sound == nil {
		services.Sound = sound.Nop{}
	}
	v := cfg.Variant()
	a := &App{
		ctx:      ctx,
		repos:    repos,
		services: services,
		cfg:      cfg,
		variant:  v,
		dial:     dial.New(dial.WithSensitivity(v.Sensitivity), dial.WithInitial(cfg.Dial.InitialSeconds)),
		keys:     defaultKeys(),
		theme:    newTheme(v),
		tz:       tz,
		now:      time.Now,
		width:    80,
		height:   24,
	}
	a.layout = newLayout(a.width, a.height, a.aspect())
	return a
}

func (a *App) aspect() float64 {
	if a.cfg.UI.CellAspect > 0 {
		return a.cfg.UI.CellAspect
	}
	return 2
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadPresets(), a.loadHistory())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.layout = newLayout(a.width, a.height, a.aspect())
	case tea.KeyMsg:
		if a.showHistory {
			return a.handleHistoryKey(m)
		}
		return a.handleKey(m)
	case tea.MouseMsg:
		return a.handleMouse(m)
	case tea.BlurMsg:
		// focus loss cancels a gesture like a cancelled touch
		a.dial.PointerUp()
	case tickMsg:
		return a.handleTick(m)
	case spinDoneMsg:
		a.dial.ClearSpin(m.gen)
	case frameMsg:
		if a.dial.Spinning() && m.gen == a.dial.SpinGen() {
			return a, a.frameCmd()
		}
	case presetsMsg:
		a.presets = m
	case historyMsg:
		a.history = m.sessions
		a.summary = m.summary
	case sessionSavedMsg:
		if m.session != nil {
			a.setStatus(fmt.Sprintf("logged %s (%s)", dial.Format(m.session.ElapsedSeconds), m.session.Outcome))
		}
		return a, a.loadHistory()
	case historyClearedMsg:
		a.setStatus("history cleared")
		return a, a.loadHistory()
	case statusMsg:
		a.setStatus(string(m))
	case errMsg:
		log.Printf("countdial: %v", m.error)
		a.status = m.Error()
		a.statusErr = true
	}
	return a, nil
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, a.quit()
	case key.Matches(m, a.keys.Toggle):
		return a, a.toggle()
	case key.Matches(m, a.keys.Plus):
		a.adjust(10)
	case key.Matches(m, a.keys.Minus):
		a.adjust(-10)
	case key.Matches(m, a.keys.Up):
		a.adjust(60)
	case key.Matches(m, a.keys.Down):
		a.adjust(-60)
	case key.Matches(m, a.keys.Reset):
		if a.locked() {
			return a, nil
		}
		a.dial.Reset()
		a.setStatus("reset")
	case key.Matches(m, a.keys.Preset):
		idx, _ := presetIndex(m.String())
		a.applyPreset(idx)
	case key.Matches(m, a.keys.History):
		a.showHistory = true
		a.dial.PointerUp()
		return a, a.loadHistory()
	}
	return a, nil
}

func (a *App) handleHistoryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, a.quit()
	case key.Matches(m, a.keys.Close):
		a.showHistory = false
	case key.Matches(m, a.keys.Clear):
		return a, a.clearHistoryCmd()
	}
	return a, nil
}

// locked reports (and explains) that the value cannot change mid-run.
func (a *App) locked() bool {
	if a.dial.Running() {
		a.setStatus("pause to adjust")
		return true
	}
	return false
}

func (a *App) adjust(delta int) {
	if a.locked() {
		return
	}
	a.dial.Adjust(delta)
}

func (a *App) applyPreset(idx int) {
	if idx < 0 || idx >= len(a.presets) {
		a.setStatus(fmt.Sprintf("no preset %d", idx+1))
		return
	}
	if a.locked() {
		return
	}
	p := a.presets[idx]
	a.dial.Set(p.Seconds)
	a.setStatus(fmt.Sprintf("%s: %s", p.Name, dial.Format(a.dial.Remaining())))
}

func (a *App) toggle() tea.Cmd {
	wasRunning := a.dial.Running()
	if a.dial.Toggle() {
		a.runStarted = a.now()
		a.setStatus("running")
		if a.dial.ShouldTick() {
			return a.tickCmd()
		}
		return nil
	}
	if wasRunning {
		a.setStatus("paused")
		return a.recordCmd(repository.OutcomePaused)
	}
	return nil
}

func (a *App) handleTick(m tickMsg) (tea.Model, tea.Cmd) {
	switch a.dial.Tick(m.gen) {
	case dial.TickCounted:
		return a, a.tickCmd()
	case dial.TickExpired:
		a.spinStarted = a.now()
		a.setStatus("time's up")
		a.services.Sound.Chime()
		return a, tea.Batch(a.spinCmd(), a.frameCmd(), a.recordCmd(repository.OutcomeCompleted))
	}
	return a, nil
}

// quit tears the dial down so no timer armed earlier can act on it.
func (a *App) quit() tea.Cmd {
	var record tea.Cmd
	if a.dial.Running() {
		record = a.recordCmd(repository.OutcomeAbandoned)
	}
	a.dial.Halt()
	a.quitting = true
	if record != nil {
		return tea.Sequence(record, tea.Quit)
	}
	return tea.Quit
}

// spinProgress is the fraction of the spin window elapsed.
func (a *App) spinProgress() float64 {
	if !a.dial.Spinning() {
		return 0
	}
	p := float64(a.now().Sub(a.spinStarted)) / float64(dial.SpinDuration)
	return min(max(p, 0), 1)
}

// messages
type tickMsg struct{ gen uint64 }

type spinDoneMsg struct{ gen uint64 }

type frameMsg struct{ gen uint64 }

type presetsMsg []repository.Preset

type historyMsg struct {
	sessions []repository.Session
	summary  repository.SessionSummary
}

type sessionSavedMsg struct{ session *repository.Session }

type historyClearedMsg struct{}

type statusMsg string

type errMsg struct{ error }
