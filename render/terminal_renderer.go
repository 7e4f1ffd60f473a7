package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/engine"
)

// ErrNoScreen is returned when drawing without a screen
var ErrNoScreen = errors.New("render: no screen")

// TerminalRenderer draws frames onto a tcell screen
// The board sits at the top-left corner with text panels stacked below it
type TerminalRenderer struct {
	screen tcell.Screen
	styles Styles
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		styles: DefaultStyles(),
	}
}

// Render projects the snapshot and draws it, satisfying engine.Renderer
func (r *TerminalRenderer) Render(s engine.Snapshot) error {
	return r.Draw(Project(s))
}

// Draw performs a full redraw of f
// A terminal resize since the previous frame forces a full resync instead of an incremental show
func (r *TerminalRenderer) Draw(f Frame) error {
	if r.screen == nil {
		return ErrNoScreen
	}

	w, h := r.screen.Size()
	resized := w != r.width || h != r.height
	r.width, r.height = w, h

	r.screen.Fill(' ', r.styles.Cells[ClassEmpty])

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			ch, class := f.At(x, y)
			r.screen.SetContent(x, y, ch, nil, r.styles.Cells[class])
		}
	}

	row := f.Height
	col := r.drawText(0, row, f.Status, r.styles.Status)
	r.drawText(col+2, row, f.Hint, r.styles.Hint)
	row++

	for _, line := range []struct {
		text  string
		style tcell.Style
	}{
		{f.Banner, r.styles.Banner},
		{f.Notice, r.styles.Notice},
		{f.Prompt, r.styles.Prompt},
	} {
		if line.text == "" {
			continue
		}
		r.drawText(0, row, line.text, line.style)
		row++
	}

	if len(f.Tip) > 0 {
		row++
		for _, line := range f.Tip {
			r.drawText(0, row, line, r.styles.Tip)
			row++
		}
	}

	if resized {
		r.screen.Sync()
	} else {
		r.screen.Show()
	}
	return nil
}

// drawText writes s starting at (x, y) and returns the column after the last rune
// Text past the right edge is clipped
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
