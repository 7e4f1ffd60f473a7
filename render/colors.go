package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for board cells and text panels
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(120, 120, 140) // Slate gray
	RgbEmpty      = tcell.NewRGBColor(60, 62, 80)    // Dim dots
	RgbFood       = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbBody       = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbHead       = tcell.NewRGBColor(50, 255, 50)   // Bright Green

	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbHintText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBannerText = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbNoticeText = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbPromptText = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbTipText    = tcell.NewRGBColor(255, 255, 200) // Yellow-white
)

// Styles maps each drawable element to a tcell style
type Styles struct {
	Cells  [ClassHead + 1]tcell.Style
	Status tcell.Style
	Hint   tcell.Style
	Banner tcell.Style
	Notice tcell.Style
	Prompt tcell.Style
	Tip    tcell.Style
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(RgbBackground)
	var s Styles
	s.Cells[ClassEmpty] = base.Foreground(RgbEmpty)
	s.Cells[ClassWall] = base.Foreground(RgbWall)
	s.Cells[ClassFood] = base.Foreground(RgbFood).Bold(true)
	s.Cells[ClassBody] = base.Foreground(RgbBody)
	s.Cells[ClassHead] = base.Foreground(RgbHead).Bold(true)
	s.Status = base.Foreground(RgbStatusText).Bold(true)
	s.Hint = base.Foreground(RgbHintText)
	s.Banner = base.Foreground(RgbBannerText).Bold(true)
	s.Notice = base.Foreground(RgbNoticeText)
	s.Prompt = base.Foreground(RgbPromptText)
	s.Tip = base.Foreground(RgbTipText).Italic(true)
	return s
}
