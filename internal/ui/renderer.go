package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Renderer handles drawing the console to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the tail of the output log with the prompt on the last row.
// An empty prompt hides the cursor.
func (r *Renderer) Render(lines []Line, prompt Line, input string) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if height < 1 {
		return
	}

	rows := height - 1
	start := 0
	if len(lines) > rows {
		start = len(lines) - rows
	}
	for y, line := range lines[start:] {
		r.drawLine(0, y, width, line)
	}

	if len(prompt) == 0 {
		r.screen.HideCursor()
	} else {
		x := r.drawLine(0, height-1, width, prompt)
		x = r.drawText(x, height-1, width, input, TonePlain.Style())
		r.screen.ShowCursor(x, height-1)
	}

	r.screen.Show()
}

// drawLine draws every segment of line starting at x and returns the next column.
func (r *Renderer) drawLine(x, y, width int, line Line) int {
	for _, seg := range line {
		x = r.drawText(x, y, width, seg.Text, seg.Style)
	}
	return x
}

// drawText draws text grapheme by grapheme, clipping at width.
func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if x+w > width {
			break
		}
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
