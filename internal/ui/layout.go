package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

var (
	borderStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	keyStyle    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorAqua)
	valueStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow)
)

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PanelLines lays out a bordered panel sized to its content.
func PanelLines(title string, tone Tone, body ...string) []Line {
	style := tone.Style()
	border := style.Bold(false)

	inner := uniseg.StringWidth(title) + 4
	for _, b := range body {
		if w := uniseg.StringWidth(b) + 2; w > inner {
			inner = w
		}
	}

	var top Line
	if title == "" {
		top = plain("╭"+strings.Repeat("─", inner)+"╮", border)
	} else {
		rest := inner - uniseg.StringWidth(title) - 3
		top = Line{
			{Text: "╭─ ", Style: border},
			{Text: title, Style: style},
			{Text: " " + strings.Repeat("─", rest) + "╮", Style: border},
		}
	}

	lines := []Line{top}
	for _, b := range body {
		lines = append(lines, Line{
			{Text: "│ ", Style: border},
			{Text: padRight(b, inner-2), Style: style},
			{Text: " │", Style: border},
		})
	}
	lines = append(lines, plain("╰"+strings.Repeat("─", inner)+"╯", border))
	return lines
}

// TableLines lays out a two-column table with a centered title.
func TableLines(title string, columns [2]string, rows [][2]string) []Line {
	widths := [2]int{uniseg.StringWidth(columns[0]), uniseg.StringWidth(columns[1])}
	for _, r := range rows {
		for i := range r {
			if w := uniseg.StringWidth(r[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	total := widths[0] + widths[1] + 7
	var lines []Line
	if title != "" {
		pad := (total - uniseg.StringWidth(title)) / 2
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, plain(strings.Repeat(" ", pad)+title, TonePlain.Style().Italic(true)))
	}

	rule := func(l, m, r string) Line {
		return plain(l+strings.Repeat("─", widths[0]+2)+m+strings.Repeat("─", widths[1]+2)+r, borderStyle)
	}
	row := func(a, b string, as, bs tcell.Style) Line {
		return Line{
			{Text: "│ ", Style: borderStyle},
			{Text: padRight(a, widths[0]), Style: as},
			{Text: " │ ", Style: borderStyle},
			{Text: padRight(b, widths[1]), Style: bs},
			{Text: " │", Style: borderStyle},
		}
	}

	header := TonePlain.Style().Bold(true)
	lines = append(lines, rule("┏", "┳", "┓"))
	lines = append(lines, row(columns[0], columns[1], header, header))
	lines = append(lines, rule("┡", "╇", "┩"))
	for _, r := range rows {
		lines = append(lines, row(r[0], r[1], keyStyle, valueStyle))
	}
	lines = append(lines, rule("└", "┴", "┘"))
	return lines
}
