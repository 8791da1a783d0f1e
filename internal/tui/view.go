package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/countdial/internal/canvas"
	"github.com/jask/countdial/internal/dial"
)

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	var body string
	if a.showHistory {
		body = a.renderHistory()
	} else {
		body = a.renderDial()
	}
	status := renderStatusBar(a.statusLine(), a.statusErr, a.width)
	help := a.keys.dialHelp(a.dial.Running())
	if a.showHistory {
		help = a.keys.historyHelp()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		body,
		status,
		renderFooter(help, a.width),
	)
}

func (a *App) renderHeader() string {
	phase := a.dial.Phase()
	if a.dial.Spinning() {
		phase = "spinning"
	}
	line := headerStyle.Render("countdial") + headerMutedStyle.Render(fmt.Sprintf(" · %s · %s", a.variant.Name, phase))
	return trimToWidth(line, a.width)
}

func (a *App) statusLine() string {
	s := a.status
	if a.summary.Sessions > 0 {
		today := fmt.Sprintf("today: %d done, %s counted", a.summary.Completed, dial.Format(a.summary.ElapsedSeconds))
		if s == "" {
			return today
		}
		return s + "  ·  " + today
	}
	return s
}

// renderDial draws the rings, the readout and the controls into the dial
// square and pads it into place.
func (a *App) renderDial() string {
	l := a.layout
	st := a.dial.State()
	c := canvas.New(l.cols, l.rows)

	rotation := dial.ArcRotation(st.Remaining, st.Spinning, a.spinProgress())
	a.drawRings(c, rotation)

	readout := dial.Format(st.Remaining)
	rb := l.readoutBox(readout)
	c.Label(rb.col, rb.row, readout, a.theme.readout())

	glyph, ink := playGlyph, a.theme.play()
	if st.Running {
		glyph, ink = pauseGlyph, a.theme.pause()
	}
	pb := l.playBox(st.Running)
	c.Label(pb.col, pb.row, glyph, ink)

	if !st.Running {
		for _, b := range l.buttons(a.variant) {
			c.Label(b.box.col, b.box.row, b.segment.Label, a.theme.button())
		}
	}

	out := c.Render(a.theme.styles(st.Dragging), a.theme.blank)
	if l.left == 0 {
		return out
	}
	pad := strings.Repeat(" ", l.left)
	lines := strings.Split(out, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (a *App) drawRings(c *canvas.Canvas, rotation float64) {
	dw, dh := c.DotWidth(), c.DotHeight()
	if dw == 0 || dh == 0 {
		return
	}
	ux := viewSpan / float64(dw)
	uy := viewSpan / float64(dh)
	half := math.Max(ux, uy) * 0.75

	for y := 0; y < dh; y++ {
		vy := (float64(y)+0.5)*uy - viewSpan/2
		for x := 0; x < dw; x++ {
			vx := (float64(x)+0.5)*ux - viewSpan/2
			r := math.Hypot(vx, vy)
			theta := math.Atan2(vy, vx)
			for i, ring := range a.variant.Rings {
				if math.Abs(r-ring.Radius) > half {
					continue
				}
				if dial.DashOn(ring, theta, rotation) {
					c.Set(x, y, a.theme.ring(i))
				} else if dial.DashOn(ring, theta, 0) {
					c.Set(x, y, a.theme.track())
				}
			}
		}
	}
}

func trimToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}
