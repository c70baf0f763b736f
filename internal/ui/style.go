package ui

import "github.com/gdamore/tcell/v2"

// Tone is the semantic color of a message.
type Tone int

const (
	TonePlain Tone = iota
	ToneTitle      // headings and questions
	ToneGood       // player successes
	ToneBad        // damage, failures
	ToneWarn       // notices, rewards
	ToneInfo       // neutral highlights
)

// Style returns the tcell style for a tone.
func (t Tone) Style() tcell.Style {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch t {
	case ToneTitle:
		return base.Foreground(tcell.ColorAqua).Bold(true)
	case ToneGood:
		return base.Foreground(tcell.ColorGreen)
	case ToneBad:
		return base.Foreground(tcell.ColorRed)
	case ToneWarn:
		return base.Foreground(tcell.ColorYellow)
	case ToneInfo:
		return base.Foreground(tcell.ColorBlue)
	default:
		return base.Foreground(tcell.ColorWhite)
	}
}

// Segment is a run of text drawn in one style.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Line is one row of console output.
type Line []Segment

// Text returns the line without styling.
func (l Line) Text() string {
	s := ""
	for _, seg := range l {
		s += seg.Text
	}
	return s
}

// plain builds a single-segment line.
func plain(text string, style tcell.Style) Line {
	return Line{{Text: text, Style: style}}
}
