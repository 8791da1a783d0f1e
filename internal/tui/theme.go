package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jask/countdial/internal/canvas"
	"github.com/jask/countdial/internal/dial"
)

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	ringOpacityIdle     = 0.6
	ringOpacityDragging = 0.8
	trackOpacity        = 0.35
)

var (
	headerStyle       = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerMutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	statusBarStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
	footerStyle       = lipgloss.NewStyle().Background(colorMantle)
	titleStyle        = lipgloss.NewStyle().Bold(true).Underline(true)
	historyBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Foreground(colorText).
				Padding(0, 1)
)

// blend composites fg over bg at the given opacity.
func blend(fg, bg string, opacity float64) lipgloss.Color {
	f, err := colorful.Hex(fg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	return lipgloss.Color(b.BlendRgb(f, opacity).Clamped().Hex())
}

// theme maps canvas inks to styles for one variant. Inks are laid out as
// track, one per ring, then the text inks.
type theme struct {
	rings    int
	idle     []lipgloss.Style
	dragging []lipgloss.Style
	blank    lipgloss.Style
}

func newTheme(v dial.Variant) theme {
	p := v.Palette
	t := theme{rings: len(v.Rings), blank: lipgloss.NewStyle()}
	build := func(opacity float64, emphasise bool) []lipgloss.Style {
		styles := []lipgloss.Style{
			lipgloss.NewStyle().Foreground(blend(p.Track, p.Background, trackOpacity)),
		}
		for i := range v.Rings {
			styles = append(styles, lipgloss.NewStyle().Foreground(blend(v.RingColor(i), p.Background, opacity)))
		}
		readout := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Readout)).Bold(true)
		if emphasise {
			readout = readout.Underline(true)
		}
		return append(styles,
			readout,
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Play)).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Pause)).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Button)).Bold(true),
		)
	}
	t.idle = build(ringOpacityIdle, false)
	t.dragging = build(ringOpacityDragging, true)
	return t
}

func (t theme) styles(dragging bool) []lipgloss.Style {
	if dragging {
		return t.dragging
	}
	return t.idle
}

func (t theme) track() canvas.Ink { return 0 }
func (t theme) ring(i int) canvas.Ink { return canvas.Ink(1 + i) }
func (t theme) readout() canvas.Ink { return canvas.Ink(1 + t.rings) }
func (t theme) play() canvas.Ink { return canvas.Ink(2 + t.rings) }
func (t theme) pause() canvas.Ink { return canvas.Ink(3 + t.rings) }
func (t theme) button() canvas.Ink { return canvas.Ink(4 + t.rings) }
