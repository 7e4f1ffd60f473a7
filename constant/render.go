package constant

// Glyphs
const (
	GlyphHead  = '@'
	GlyphBody  = 'O'
	GlyphFood  = '*'
	GlyphEmpty = '.'
	GlyphWall  = '#'
)

// Tip panel
const (
	// TipPanelMinWidth is the wrap width used when the framed board is narrower than this
	TipPanelMinWidth = 30

	// TipPanelMaxLines caps the number of wrapped tip lines drawn below the board
	TipPanelMaxLines = 8

	// QuestionMaxLength caps the chat question typed while paused
	QuestionMaxLength = 200
)
