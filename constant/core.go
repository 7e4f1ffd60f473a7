package constant

import "time"

// Game Loop Timing
const (
	// DefaultTickInterval is the time between two simulation steps
	DefaultTickInterval = 100 * time.Millisecond

	// MinTickInterval and MaxTickInterval bound the configurable tick
	MinTickInterval = 50 * time.Millisecond
	MaxTickInterval = 500 * time.Millisecond

	// CommandQueueSize is the capacity of the input command channel
	CommandQueueSize = 64

	// TipQueueSize is the capacity of the tip result channel
	TipQueueSize = 4
)

// End-of-game prompt
const (
	// DefaultEndWait is how long the game-over screen waits for an answer before exiting
	DefaultEndWait = 60 * time.Second

	// DefaultMaxInvalidAnswers is the number of unrecognized keys tolerated on the game-over prompt
	DefaultMaxInvalidAnswers = 10
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-snake.log"

	// MaxLogSize triggers rotation of the debug log (10MB)
	MaxLogSize = 10 * 1024 * 1024
)

// Tip collaborator
const (
	DefaultTipEndpoint = "https://open.bigmodel.cn/api/paas/v4/chat/completions"
	DefaultTipModel    = "glm-4"

	// DefaultTipTimeout bounds a single tip request including the response body
	DefaultTipTimeout = 10 * time.Second

	// DefaultStubAddr is the listen address of the offline tip server
	DefaultStubAddr = "127.0.0.1:8089"

	// APIKeyEnv names the environment variable holding the tip API key
	APIKeyEnv = "VI_SNAKE_API_KEY"
)
