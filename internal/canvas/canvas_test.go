package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func plain(c *Canvas) string {
	inks := []lipgloss.Style{lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()}
	return c.Render(inks, lipgloss.NewStyle())
}

func TestSetAndAt(t *testing.T) {
	c := New(2, 1)
	require.Equal(t, 4, c.DotWidth())
	require.Equal(t, 4, c.DotHeight())

	c.Set(0, 0, 1)
	c.Set(0, 0, 0) // lower ink does not overwrite
	require.Equal(t, Ink(1), c.At(0, 0))
	c.Set(0, 0, 2)
	require.Equal(t, Ink(2), c.At(0, 0))

	c.Set(-1, 0, 1)
	c.Set(4, 0, 1)
	require.Equal(t, None, c.At(4, 0))
}

func TestBrailleCells(t *testing.T) {
	c := New(2, 1)
	require.Equal(t, "  ", plain(c))

	c.Set(0, 0, 0)
	require.Equal(t, "⠁ ", plain(c))

	for y := 0; y < 4; y++ {
		c.Set(2, y, 0)
		c.Set(3, y, 0)
	}
	require.Equal(t, "⠁⣿", plain(c))
}

func TestLabelsReplaceCells(t *testing.T) {
	c := New(6, 2)
	for x := 0; x < c.DotWidth(); x++ {
		c.Set(x, 4, 0)
	}
	c.Label(1, 1, "ab", 1)
	c.Label(5, 1, "xyz", 1) // clipped
	c.Label(0, 5, "no", 1)  // off canvas
	lines := strings.Split(plain(c), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "      ", lines[0])
	require.Equal(t, "⠉ab⠉⠉x", lines[1])
}
