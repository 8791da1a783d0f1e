// Package canvas rasterises into braille cells: every terminal cell holds a
// 2x4 grid of dots, and each cell is drawn in the ink of its topmost dot.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ink selects a style from the palette passed to Render. Higher inks paint
// over lower ones within a cell. None leaves a dot unset.
type Ink int8

const None Ink = -1

const brailleBase = 0x2800

// dot bit for column x, row y within a cell
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type label struct {
	text string
	ink  Ink
}

// Canvas is a cols x rows grid of braille cells.
type Canvas struct {
	cols, rows int
	dots       []Ink
	labels     map[int]label
}

func New(cols, rows int) *Canvas {
	cols = max(cols, 0)
	rows = max(rows, 0)
	dots := make([]Ink, cols*2*rows*4)
	for i := range dots {
		dots[i] = None
	}
	return &Canvas{cols: cols, rows: rows, dots: dots, labels: map[int]label{}}
}

func (c *Canvas) Cols() int { return c.cols }
func (c *Canvas) Rows() int { return c.rows }

// DotWidth and DotHeight are the raster size in dots.
func (c *Canvas) DotWidth() int { return c.cols * 2 }
func (c *Canvas) DotHeight() int { return c.rows * 4 }

// Set paints dot (x, y). Out-of-range dots are dropped; a lower ink never
// overwrites a higher one.
func (c *Canvas) Set(x, y int, ink Ink) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	i := y*c.DotWidth() + x
	if ink > c.dots[i] {
		c.dots[i] = ink
	}
}

// At returns the ink of dot (x, y).
func (c *Canvas) At(x, y int) Ink {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return None
	}
	return c.dots[y*c.DotWidth()+x]
}

// Label places text over the cells starting at (col, row), replacing the
// braille there. Text is clipped at the right edge.
func (c *Canvas) Label(col, row int, text string, ink Ink) {
	if row < 0 || row >= c.rows || col >= c.cols || text == "" {
		return
	}
	if col < 0 {
		text = ansi.Cut(text, -col, ansi.StringWidth(text))
		col = 0
	}
	text = ansi.Truncate(text, c.cols-col, "")
	if text == "" {
		return
	}
	c.labels[row*c.cols+col] = label{text: text, ink: ink}
}

func (c *Canvas) cell(col, row int) (rune, Ink) {
	var bits rune
	top := None
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			ink := c.At(col*2+dx, row*4+dy)
			if ink == None {
				continue
			}
			bits |= dotBits[dy][dx]
			if ink > top {
				top = ink
			}
		}
	}
	if bits == 0 {
		return ' ', None
	}
	return brailleBase + bits, top
}

// Render draws the canvas, styling each run of equal ink with inks[ink].
// Unset cells use blank.
func (c *Canvas) Render(inks []lipgloss.Style, blank lipgloss.Style) string {
	style := func(ink Ink) lipgloss.Style {
		if ink == None || int(ink) >= len(inks) {
			return blank
		}
		return inks[ink]
	}
	var out strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		runInk := None
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(style(runInk).Render(run.String()))
				run.Reset()
			}
		}
		for col := 0; col < c.cols; {
			if l, ok := c.labels[row*c.cols+col]; ok {
				flush()
				out.WriteString(style(l.ink).Render(l.text))
				col += max(ansi.StringWidth(l.text), 1)
				continue
			}
			r, ink := c.cell(col, row)
			if ink != runInk {
				flush()
				runInk = ink
			}
			run.WriteRune(r)
			col++
		}
		flush()
	}
	return out.String()
}
