package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/vi-snake/constant"
)

// ErrGridTooSmall is returned when the grid cannot hold the initial snake
var ErrGridTooSmall = errors.New("grid too small for initial snake")

// GameState is the complete simulation state of one round
// Not safe for concurrent use; owned by the goroutine running GameLoop
type GameState struct {
	width, height int

	// snake[0] is the head
	snake   []Cell
	food    Cell
	heading Heading
	score   int

	terminated bool
	outcome    Outcome

	// occupied[y*width+x] mirrors snake for O(1) collision and draw lookups
	occupied []bool

	rng *rand.Rand
}

// NewGameState creates and initializes a state for the given grid
// A nil rng falls back to a randomly seeded source
func NewGameState(width, height int, rng *rand.Rand) (*GameState, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	gs := &GameState{rng: rng}
	if err := gs.Initialize(width, height); err != nil {
		return nil, err
	}
	return gs, nil
}

// Initialize resets the state: centred 3-segment snake heading right, zero score, fresh food
func (gs *GameState) Initialize(width, height int) error {
	if width < constant.MinGridWidth || height < constant.MinGridHeight {
		return fmt.Errorf("%w: %dx%d", ErrGridTooSmall, width, height)
	}

	gs.width = width
	gs.height = height

	cx, cy := width/2, height/2
	gs.snake = gs.snake[:0]
	for i := 0; i < constant.InitialSnakeLength; i++ {
		gs.snake = append(gs.snake, Cell{X: cx - i, Y: cy})
	}

	gs.reindex()

	gs.heading = HeadingRight
	gs.score = 0
	gs.terminated = false
	gs.outcome = OutcomeNone

	gs.PlaceFood()
	return nil
}

// SetHeading changes direction unless h is the reverse of the current heading
// Reversal requests and requests after termination are dropped silently
func (gs *GameState) SetHeading(h Heading) {
	if gs.terminated || h == gs.heading.Opposite() {
		return
	}
	gs.heading = h
}

// Advance performs one tick of movement
// A terminated state is left untouched
func (gs *GameState) Advance() AdvanceResult {
	if gs.terminated {
		return ResultIdle
	}

	next := gs.snake[0].Add(gs.heading.Delta())

	if !gs.InBounds(next) {
		gs.terminate(OutcomeWall)
		return ResultCrashed
	}
	// Tail cell counts as occupied: it has not moved yet at this point
	if gs.Occupies(next) {
		gs.terminate(OutcomeSelf)
		return ResultCrashed
	}

	gs.snake = append(gs.snake, Cell{})
	copy(gs.snake[1:], gs.snake[:len(gs.snake)-1])
	gs.snake[0] = next
	gs.occupied[gs.index(next)] = true

	if next == gs.food {
		gs.score += constant.FoodScore
		if !gs.PlaceFood() {
			return ResultCleared
		}
		return ResultAte
	}

	tail := gs.snake[len(gs.snake)-1]
	gs.occupied[gs.index(tail)] = false
	gs.snake = gs.snake[:len(gs.snake)-1]
	return ResultMoved
}

// PlaceFood picks a free cell by rejection sampling
// Returns false and terminates the round with OutcomeBoardCleared when no cell is free
func (gs *GameState) PlaceFood() bool {
	if len(gs.snake) >= gs.width*gs.height {
		gs.terminate(OutcomeBoardCleared)
		return false
	}

	for {
		c := Cell{X: gs.rng.IntN(gs.width), Y: gs.rng.IntN(gs.height)}
		if !gs.Occupies(c) {
			gs.food = c
			return true
		}
	}
}

func (gs *GameState) terminate(o Outcome) {
	gs.terminated = true
	gs.outcome = o
}

// InBounds reports whether c lies inside the grid
func (gs *GameState) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gs.width && c.Y >= 0 && c.Y < gs.height
}

// Occupies reports whether any snake segment is on c
func (gs *GameState) Occupies(c Cell) bool {
	return gs.InBounds(c) && gs.occupied[gs.index(c)]
}

func (gs *GameState) index(c Cell) int {
	return c.Y*gs.width + c.X
}

// reindex rebuilds the occupancy grid from the snake body
func (gs *GameState) reindex() {
	size := gs.width * gs.height
	if cap(gs.occupied) < size {
		gs.occupied = make([]bool, size)
	} else {
		gs.occupied = gs.occupied[:size]
		clear(gs.occupied)
	}
	for _, c := range gs.snake {
		gs.occupied[gs.index(c)] = true
	}
}

// Snake returns a copy of the body, head first
func (gs *GameState) Snake() []Cell {
	out := make([]Cell, len(gs.snake))
	copy(out, gs.snake)
	return out
}

// Head returns the first segment
func (gs *GameState) Head() Cell { return gs.snake[0] }

// Len returns the snake length
func (gs *GameState) Len() int { return len(gs.snake) }

func (gs *GameState) Food() Cell { return gs.food }
func (gs *GameState) Heading() Heading { return gs.heading }
func (gs *GameState) Score() int { return gs.score }
func (gs *GameState) Terminated() bool { return gs.terminated }
func (gs *GameState) Outcome() Outcome { return gs.outcome }
func (gs *GameState) Width() int { return gs.width }
func (gs *GameState) Height() int { return gs.height }
