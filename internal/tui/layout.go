package tui

import (
	"math"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/countdial/internal/dial"
)

const (
	// viewSpan is the width of the dial square in viewbox units. The rings
	// live within radius 50; the extra margin holds the rim controls.
	viewSpan = 124.0

	headerRows = 1
	chromeRows = 3 // header, status bar, footer
	minRows    = 9
)

// layout places the dial square on screen.
type layout struct {
	left, top  int
	cols, rows int
	aspect     float64
}

func newLayout(width, height int, aspect float64) layout {
	if aspect <= 0 {
		aspect = 2
	}
	rows := max(height-chromeRows, minRows)
	cols := int(math.Round(float64(rows) * aspect))
	if width > 0 && cols > width {
		cols = width
		rows = max(int(float64(cols)/aspect), 1)
	}
	return layout{
		left:   max((width-cols)/2, 0),
		top:    headerRows,
		cols:   cols,
		rows:   rows,
		aspect: aspect,
	}
}

// contains reports whether screen cell (x, y) lies on the dial square.
func (l layout) contains(x, y int) bool {
	return x >= l.left && x < l.left+l.cols && y >= l.top && y < l.top+l.rows
}

// local converts a screen cell to a cell within the dial square.
func (l layout) local(x, y int) (col, row int) {
	return x - l.left, y - l.top
}

// pixel converts a screen cell to aspect-corrected screen coordinates where
// one unit is one cell width.
func (l layout) pixel(x, y int) (px, py float64) {
	return float64(x) + 0.5, (float64(y) + 0.5) * l.aspect
}

// pivot is the dial center in pixel coordinates.
func (l layout) pivot() (px, py float64) {
	return float64(l.left) + float64(l.cols)/2, (float64(l.top) + float64(l.rows)/2) * l.aspect
}

// cellAt maps viewbox coordinates to a cell within the dial square.
func (l layout) cellAt(vx, vy float64) (col, row int) {
	col = int(math.Floor((vx + viewSpan/2) / viewSpan * float64(l.cols)))
	row = int(math.Floor((vy + viewSpan/2) / viewSpan * float64(l.rows)))
	return col, row
}

// hitBox is a run of cells within the dial square.
type hitBox struct {
	col, row, width int
}

func (b hitBox) hit(col, row int) bool {
	return row == b.row && col >= b.col-1 && col <= b.col+b.width
}

// centered returns a box for text centered on viewbox point (vx, vy).
func (l layout) centered(vx, vy float64, text string) hitBox {
	col, row := l.cellAt(vx, vy)
	w := ansi.StringWidth(text)
	return hitBox{col: col - w/2, row: row, width: w}
}

type rimButton struct {
	segment dial.Segment
	box     hitBox
}

func (l layout) buttons(v dial.Variant) []rimButton {
	out := make([]rimButton, 0, len(v.Segments))
	for _, s := range v.Segments {
		x, y := dial.ButtonPosition(s.Angle, v.ButtonRadius)
		out = append(out, rimButton{segment: s, box: l.centered(x, y, s.Label)})
	}
	return out
}

const (
	playGlyph  = "▶"
	pauseGlyph = "❚❚"
)

func (l layout) readoutBox(text string) hitBox {
	w := ansi.StringWidth(text)
	return hitBox{col: l.cols/2 - w/2, row: l.rows/2 - 1, width: w}
}

func (l layout) playBox(running bool) hitBox {
	g := playGlyph
	if running {
		g = pauseGlyph
	}
	w := ansi.StringWidth(g)
	return hitBox{col: l.cols/2 - w/2, row: l.rows/2 + 1, width: w}
}
