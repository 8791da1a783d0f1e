package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 10

func (a *App) handleMouse(m tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHistory {
		return a, nil
	}
	inside := a.layout.contains(m.X, m.Y)

	switch m.Action {
	case tea.MouseActionPress:
		if !inside {
			return a, nil
		}
		switch m.Button {
		case tea.MouseButtonWheelUp:
			a.adjust(wheelStep)
			return a, nil
		case tea.MouseButtonWheelDown:
			a.adjust(-wheelStep)
			return a, nil
		case tea.MouseButtonLeft:
		default:
			return a, nil
		}
		col, row := a.layout.local(m.X, m.Y)
		if !a.dial.Running() {
			for _, b := range a.layout.buttons(a.variant) {
				if b.box.hit(col, row) {
					a.dial.Adjust(b.segment.Delta)
					return a, nil
				}
			}
		}
		if a.layout.playBox(a.dial.Running()).hit(col, row) {
			return a, a.toggle()
		}
		px, py := a.layout.pixel(m.X, m.Y)
		cx, cy := a.layout.pivot()
		a.dial.PointerDown(px, py, cx, cy)

	case tea.MouseActionMotion:
		if !a.dial.Dragging() {
			return a, nil
		}
		if !inside {
			// leaving the dial ends the gesture
			a.dial.PointerUp()
			return a, nil
		}
		px, py := a.layout.pixel(m.X, m.Y)
		a.dial.PointerMove(px, py)

	case tea.MouseActionRelease:
		a.dial.PointerUp()
	}
	return a, nil
}
