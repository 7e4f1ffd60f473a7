package input

// Action is the semantic meaning of a key press
type Action uint8

const (
	ActionNone Action = iota

	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	ActionPause
	ActionRestart
	ActionRequestTip
	ActionToggleMute
	ActionQuit

	// Game-over prompt answers
	ActionYes
	ActionNo

	// Text entry while paused
	ActionSubmit
	ActionBackspace
	ActionCancel
)

// actionRegistry maps canonical action names to actions
// Used by the [keys] config table to resolve binding strings
var actionRegistry = map[string]Action{
	"none":        ActionNone,
	"move_up":     ActionMoveUp,
	"move_down":   ActionMoveDown,
	"move_left":   ActionMoveLeft,
	"move_right":  ActionMoveRight,
	"pause":       ActionPause,
	"restart":     ActionRestart,
	"request_tip": ActionRequestTip,
	"toggle_mute": ActionToggleMute,
	"quit":        ActionQuit,
	"yes":         ActionYes,
	"no":          ActionNo,
	"submit":      ActionSubmit,
	"backspace":   ActionBackspace,
	"cancel":      ActionCancel,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// IsMove reports whether the action requests a heading change
func (a Action) IsMove() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// Command is one mapped key event
// Rune carries the typed character for rune keys regardless of binding, for chat entry
type Command struct {
	Action Action
	Rune   rune
}
