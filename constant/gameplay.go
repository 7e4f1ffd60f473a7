package constant

// Grid
const (
	DefaultGridWidth  = 20
	DefaultGridHeight = 20

	// MinGridWidth fits the initial snake left of centre plus one free cell
	MinGridWidth  = InitialSnakeLength + 1
	MinGridHeight = 1

	MaxGridWidth  = 200
	MaxGridHeight = 100
)

// Snake
const (
	// InitialSnakeLength is the segment count after a reset
	InitialSnakeLength = 3

	// FoodScore is added per food eaten
	FoodScore = 10
)
