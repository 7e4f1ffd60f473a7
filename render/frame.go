package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
)

// CellClass selects the style of a board cell, ordered by draw priority
type CellClass uint8

const (
	ClassEmpty CellClass = iota
	ClassWall
	ClassFood
	ClassBody
	ClassHead
)

// Frame is the terminal-independent picture of one tick
// Board is (width+2) x (height+2) including the wall frame
type Frame struct {
	Width, Height int
	Runes         []rune
	Classes       []CellClass

	Status string
	Hint   string
	Banner string
	Notice string
	Prompt string
	Tip    []string
}

// At returns the rune and class at board position (x, y)
func (f Frame) At(x, y int) (rune, CellClass) {
	i := y*f.Width + x
	return f.Runes[i], f.Classes[i]
}

// Rows returns the board as strings, top to bottom
func (f Frame) Rows() []string {
	rows := make([]string, f.Height)
	for y := range rows {
		rows[y] = string(f.Runes[y*f.Width : (y+1)*f.Width])
	}
	return rows
}

// Project builds the frame for a snapshot, pure and idempotent
// Text lines are wrapped to the board width, or TipPanelMinWidth when the board is narrower
func Project(s engine.Snapshot) Frame {
	gs := s.State
	f := Frame{
		Width:  gs.Width() + 2,
		Height: gs.Height() + 2,
	}
	head := gs.Head()
	size := f.Width * f.Height
	f.Runes = make([]rune, size)
	f.Classes = make([]CellClass, size)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := y*f.Width + x
			if x == 0 || y == 0 || x == f.Width-1 || y == f.Height-1 {
				f.Runes[i], f.Classes[i] = constant.GlyphWall, ClassWall
				continue
			}
			f.Runes[i], f.Classes[i] = classify(gs, head, engine.Cell{X: x - 1, Y: y - 1})
		}
	}

	f.Status = fmt.Sprintf("Score: %d", gs.Score())
	f.Hint = hint(s)
	f.Banner = banner(s)
	f.Notice = s.Notice
	if s.Phase == engine.PhasePaused {
		f.Prompt = "> " + s.Question
	}

	width := max(f.Width, constant.TipPanelMinWidth)
	f.Tip = Wrap(s.Tip, width, constant.TipPanelMaxLines)
	return f
}

// classify is O(1) per cell through the state's occupancy grid
func classify(gs *engine.GameState, head, c engine.Cell) (rune, CellClass) {
	switch {
	case c == head:
		return constant.GlyphHead, ClassHead
	case gs.Occupies(c):
		return constant.GlyphBody, ClassBody
	}
	if c == gs.Food() {
		return constant.GlyphFood, ClassFood
	}
	return constant.GlyphEmpty, ClassEmpty
}

func hint(s engine.Snapshot) string {
	var h string
	switch s.Phase {
	case engine.PhasePaused:
		h = "Enter ask | Esc/P resume | Ctrl+R restart | Ctrl+Q quit"
	case engine.PhaseOver:
		h = "Y play again | N quit"
	default:
		if s.Mode == engine.TipModeInline {
			h = "WASD/arrows | P pause | T tip | R restart | Ctrl+Q quit"
		} else {
			h = "WASD/arrows | R restart | Ctrl+Q quit"
		}
	}
	if s.Muted {
		h += " | M unmute"
	}
	return h
}

func banner(s engine.Snapshot) string {
	switch s.Phase {
	case engine.PhasePaused:
		return "PAUSED - type a question for the tip assistant"
	case engine.PhaseOver:
		head := "GAME OVER"
		switch s.State.Outcome() {
		case engine.OutcomeWall:
			head = "GAME OVER - you hit the wall"
		case engine.OutcomeSelf:
			head = "GAME OVER - you ran into yourself"
		case engine.OutcomeBoardCleared:
			head = "BOARD CLEARED"
		}
		return fmt.Sprintf("%s. Final score: %d. Play again? (y/n)", head, s.State.Score())
	}
	return ""
}

// Wrap splits text into lines no wider than width display columns, keeping at most maxLines
// Existing line breaks are kept; words longer than width are cut
func Wrap(text string, width, maxLines int) []string {
	if text == "" || width <= 0 || maxLines <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					_, n := utf8.DecodeRuneInString(word)
					head = word[:n]
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			switch {
			case word == "":
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}

	// Drop trailing blank lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
