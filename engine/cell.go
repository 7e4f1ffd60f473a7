package engine

// Cell is a grid coordinate, origin at the top-left corner
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Heading is the direction of snake movement
type Heading uint8

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

var headingDeltas = [...]Cell{
	HeadingUp:    {X: 0, Y: -1},
	HeadingDown:  {X: 0, Y: 1},
	HeadingLeft:  {X: -1, Y: 0},
	HeadingRight: {X: 1, Y: 0},
}

var headingNames = [...]string{
	HeadingUp:    "up",
	HeadingDown:  "down",
	HeadingLeft:  "left",
	HeadingRight: "right",
}

// Delta returns the unit step for the heading
func (h Heading) Delta() Cell {
	return headingDeltas[h]
}

// Opposite returns the 180° reverse of the heading
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

func (h Heading) String() string {
	if int(h) < len(headingNames) {
		return headingNames[h]
	}
	return "unknown"
}

// Outcome records why a round ended
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeBoardCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWall:
		return "hit the wall"
	case OutcomeSelf:
		return "ran into itself"
	case OutcomeBoardCleared:
		return "board cleared"
	default:
		return "in play"
	}
}

// AdvanceResult names the transition performed by a single Advance call
type AdvanceResult uint8

const (
	// ResultIdle is returned when the state was already terminated
	ResultIdle AdvanceResult = iota
	ResultMoved
	ResultAte
	ResultCrashed
	ResultCleared
)
