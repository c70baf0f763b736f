package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned by prompts when the user presses Esc or Ctrl-C,
// or the screen stops delivering events.
var ErrClosed = errors.New("console closed")

// maxHistory bounds the number of output lines kept for redraws.
const maxHistory = 500

// Console is a scrolling, styled output log with a single-line prompt.
type Console struct {
	screen   *Screen
	renderer *Renderer
	lines    []Line
}

// NewConsole creates a console drawing on screen.
func NewConsole(screen *Screen) *Console {
	return &Console{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// Close restores the terminal.
func (c *Console) Close() {
	c.screen.Close()
}

// History returns the unstyled text of every line still in the log.
func (c *Console) History() []string {
	out := make([]string, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.Text()
	}
	return out
}

func (c *Console) append(lines ...Line) {
	c.lines = append(c.lines, lines...)
	if over := len(c.lines) - maxHistory; over > 0 {
		c.lines = c.lines[over:]
	}
	c.renderer.Render(c.lines, nil, "")
}

// Print appends a formatted message in the given tone. Each embedded
// newline starts a new row.
func (c *Console) Print(tone Tone, format string, args ...any) {
	c.PrintStyle(tone.Style(), format, args...)
}

// PrintColor appends a formatted message in an arbitrary foreground color.
func (c *Console) PrintColor(color tcell.Color, format string, args ...any) {
	c.PrintStyle(TonePlain.Style().Foreground(color), format, args...)
}

// PrintStyle appends a formatted message in style.
func (c *Console) PrintStyle(style tcell.Style, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	var lines []Line
	for _, row := range strings.Split(text, "\n") {
		lines = append(lines, plain(row, style))
	}
	c.append(lines...)
}

// Panel appends a bordered panel.
func (c *Console) Panel(title string, tone Tone, body ...string) {
	c.append(PanelLines(title, tone, body...)...)
}

// Table appends a two-column table.
func (c *Console) Table(title string, columns [2]string, rows [][2]string) {
	c.append(TableLines(title, columns, rows)...)
}

// Pause holds the current frame for d or until ctx is done.
func (c *Console) Pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Ask prompts for free text and returns it trimmed.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	answer, err := c.readLine(ctx, Line{{Text: prompt + ": ", Style: ToneWarn.Style()}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Choose prompts until the answer matches one of choices, ignoring case and
// surrounding space, and returns the matching choice.
func (c *Console) Choose(ctx context.Context, prompt string, choices []string) (string, error) {
	p := Line{
		{Text: prompt + " ", Style: ToneTitle.Style()},
		{Text: "[" + strings.Join(choices, "/") + "]", Style: ToneInfo.Style().Bold(true)},
		{Text: ": ", Style: TonePlain.Style()},
	}
	for {
		answer, err := c.readLine(ctx, p)
		if err != nil {
			return "", err
		}
		if choice, ok := MatchChoice(answer, choices); ok {
			return choice, nil
		}
		c.Print(ToneBad, "Please select one of the available options")
	}
}

// MatchChoice finds the choice equal to answer, ignoring case and surrounding space.
func MatchChoice(answer string, choices []string) (string, bool) {
	answer = strings.TrimSpace(answer)
	for _, ch := range choices {
		if strings.EqualFold(answer, ch) {
			return ch, true
		}
	}
	return "", false
}

// WaitKey shows prompt and blocks until any key is pressed. The prompt is not
// echoed into the log, so the last frame stays as printed.
func (c *Console) WaitKey(ctx context.Context, prompt string) error {
	p := Line{{Text: prompt, Style: ToneInfo.Style()}}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.renderer.Render(c.lines, p, "")

		switch c.screen.PollEvent().(type) {
		case nil:
			return ErrClosed
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			c.renderer.Render(c.lines, nil, "")
			return nil
		}
	}
}

// readLine edits a line of input until Enter. The prompt and answer are
// echoed into the log.
func (c *Console) readLine(ctx context.Context, prompt Line) (string, error) {
	var input []rune
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		c.renderer.Render(c.lines, prompt, string(input))

		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return "", ErrClosed
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrClosed
			case tcell.KeyEnter:
				echo := append(append(Line{}, prompt...), Segment{Text: string(input), Style: TonePlain.Style()})
				c.append(echo)
				return string(input), nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		}
	}
}
