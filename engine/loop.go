package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/tip"
)

const (
	tipPendingText = "Asking for a tip..."
	invalidAnswer  = "Invalid input. Press Y to play again or N to quit."
)

// SoundPlayer is the audio sink driven by round events
type SoundPlayer interface {
	Play(audio.Sound)
	ToggleMute() bool
	Muted() bool
}

// LoopConfig holds the tunables of a GameLoop
type LoopConfig struct {
	Width, Height int
	TickInterval  time.Duration
	TipMode       TipMode

	// StartTip requests a generic tip at the start of every round
	StartTip   bool
	TipTimeout time.Duration

	// EndWait and MaxInvalidAnswers bound the game-over prompt; zero EndWait waits forever
	EndWait           time.Duration
	MaxInvalidAnswers int
}

// LoopDeps are the collaborators of a GameLoop; only Renderer is required
type LoopDeps struct {
	Renderer Renderer
	Tipper   tip.Client
	Sounds   SoundPlayer
	Clock    TimeProvider
	Rand     *rand.Rand
}

type tipResult struct {
	seq  uint64
	text string
}

// GameLoop drives a GameState at a fixed cadence
// All methods must be called from a single goroutine; tip fetches report back over a channel
type GameLoop struct {
	cfg      LoopConfig
	state    *GameState
	renderer Renderer
	tipper   tip.Client
	sounds   SoundPlayer
	clock    TimeProvider

	phase    Phase
	question []rune
	tipText  string
	notice   string

	// tipSeq identifies the newest request; older results are dropped
	tipSeq uint64
	tips   chan tipResult

	overSince      time.Time
	invalidAnswers int

	ctx context.Context
}

// NewGameLoop validates cfg and creates the first round
func NewGameLoop(cfg LoopConfig, deps LoopDeps) (*GameLoop, error) {
	if deps.Renderer == nil {
		return nil, errors.New("game loop: renderer is required")
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("game loop: tick interval must be positive, got %v", cfg.TickInterval)
	}
	if cfg.TipTimeout <= 0 {
		return nil, fmt.Errorf("game loop: tip timeout must be positive, got %v", cfg.TipTimeout)
	}
	if cfg.MaxInvalidAnswers <= 0 {
		cfg.MaxInvalidAnswers = constant.DefaultMaxInvalidAnswers
	}

	state, err := NewGameState(cfg.Width, cfg.Height, deps.Rand)
	if err != nil {
		return nil, fmt.Errorf("game loop: %w", err)
	}

	l := &GameLoop{
		cfg:      cfg,
		state:    state,
		renderer: deps.Renderer,
		tipper:   deps.Tipper,
		sounds:   deps.Sounds,
		clock:    deps.Clock,
		tips:     make(chan tipResult, constant.TipQueueSize),
		ctx:      context.Background(),
	}
	if l.sounds == nil {
		l.sounds = silentPlayer{}
	}
	if l.clock == nil {
		l.clock = NewMonotonicTimeProvider()
	}
	return l, nil
}

// Run ticks until the player quits, the end-of-game prompt gives up, commands closes or ctx is done
// Pending commands are collected between ticks and handed to Tick in arrival order
func (l *GameLoop) Run(ctx context.Context, commands <-chan input.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	l.ctx = ctx

	if l.cfg.StartTip {
		l.requestTip(tip.GenericPrompt)
	}
	if err := l.render(); err != nil {
		return err
	}

	ticker := time.NewTicker(l.cfg.TickInterval)
	defer ticker.Stop()

	var pending []input.Command
	for {
		select {
		case <-ctx.Done():
			return nil

		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			pending = append(pending, cmd)

		case <-ticker.C:
			more, err := l.Tick(pending)
			pending = pending[:0]
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
	}
}

// Tick applies the commands received since the previous tick, advances once and renders
// Returns false when the loop should stop
func (l *GameLoop) Tick(cmds []input.Command) (bool, error) {
	l.collectTips()

	var more bool
	if l.phase == PhaseOver {
		more = l.tickOver(cmds)
	} else {
		more = l.tickPlay(cmds)
	}
	if !more {
		return false, nil
	}
	return true, l.render()
}

func (l *GameLoop) tickPlay(cmds []input.Command) bool {
	turn := input.ActionNone

	for _, cmd := range cmds {
		if cmd.Action == input.ActionQuit {
			return false
		}
		if l.phase == PhasePaused {
			l.handleChat(cmd)
			continue
		}

		switch {
		case cmd.Action == input.ActionCancel:
			return false
		case cmd.Action.IsMove():
			turn = cmd.Action
		case cmd.Action == input.ActionPause:
			if l.cfg.TipMode == TipModeInline {
				l.phase = PhasePaused
				turn = input.ActionNone
			}
		case cmd.Action == input.ActionRestart:
			l.restart()
			turn = input.ActionNone
		case cmd.Action == input.ActionRequestTip:
			if l.cfg.TipMode == TipModeInline {
				l.requestTip(tip.GenericPrompt)
			}
		case cmd.Action == input.ActionToggleMute:
			l.sounds.ToggleMute()
		}
	}

	if l.phase != PhasePlaying {
		return true
	}

	if turn != input.ActionNone {
		l.state.SetHeading(headingFor(turn))
	}

	switch l.state.Advance() {
	case ResultAte:
		l.sounds.Play(audio.SoundEat)
	case ResultCrashed:
		l.sounds.Play(audio.SoundCrash)
		l.endRound()
	case ResultCleared:
		l.sounds.Play(audio.SoundCleared)
		l.endRound()
	}
	return true
}

// handleChat edits the question typed while paused
// Pause or Escape on an empty line and a lone "p" submitted resume play;
// Restart on an empty line or from a non-rune key starts a new round
func (l *GameLoop) handleChat(cmd input.Command) {
	switch cmd.Action {
	case input.ActionSubmit:
		q := strings.TrimSpace(string(l.question))
		l.question = l.question[:0]
		switch {
		case q == "":
		case strings.EqualFold(q, "p"):
			l.resume()
		default:
			l.requestTip(q)
		}

	case input.ActionBackspace:
		if n := len(l.question); n > 0 {
			l.question = l.question[:n-1]
		}

	case input.ActionCancel:
		if len(l.question) == 0 {
			l.resume()
			return
		}
		l.question = l.question[:0]

	case input.ActionPause:
		if len(l.question) == 0 {
			l.resume()
			return
		}
		l.appendRune(cmd.Rune)

	case input.ActionRestart:
		// A bound key with no rune (Ctrl+R) always restarts; a printable one only on an empty line
		if cmd.Rune == 0 || len(l.question) == 0 {
			l.restart()
			return
		}
		l.appendRune(cmd.Rune)

	default:
		l.appendRune(cmd.Rune)
	}
}

func (l *GameLoop) appendRune(r rune) {
	if r == 0 || !unicode.IsPrint(r) || len(l.question) >= constant.QuestionMaxLength {
		return
	}
	l.question = append(l.question, r)
}

func (l *GameLoop) resume() {
	l.phase = PhasePlaying
	l.question = l.question[:0]
}

func (l *GameLoop) tickOver(cmds []input.Command) bool {
	for _, cmd := range cmds {
		switch cmd.Action {
		case input.ActionYes, input.ActionRestart, input.ActionSubmit:
			l.restart()
			return true
		case input.ActionNo, input.ActionQuit, input.ActionCancel:
			return false
		case input.ActionToggleMute:
			l.sounds.ToggleMute()
		default:
			l.invalidAnswers++
			l.notice = invalidAnswer
			if l.invalidAnswers >= l.cfg.MaxInvalidAnswers {
				log.Printf("game over prompt: %d invalid answers, exiting", l.invalidAnswers)
				return false
			}
		}
	}

	if l.cfg.EndWait > 0 && l.clock.Now().Sub(l.overSince) >= l.cfg.EndWait {
		log.Printf("game over prompt: no answer within %v, exiting", l.cfg.EndWait)
		return false
	}
	return true
}

func (l *GameLoop) endRound() {
	l.phase = PhaseOver
	l.overSince = l.clock.Now()
	l.invalidAnswers = 0
	l.notice = ""
	l.question = l.question[:0]

	log.Printf("round over: score %d, %s", l.state.Score(), l.state.Outcome())
	l.requestTip(tip.ScorePrompt(l.state.Score()))
}

func (l *GameLoop) restart() {
	// Dimensions were validated when the loop was built
	if err := l.state.Initialize(l.cfg.Width, l.cfg.Height); err != nil {
		log.Printf("restart: %v", err)
		return
	}
	l.phase = PhasePlaying
	l.question = l.question[:0]
	l.notice = ""
	l.tipText = ""
	l.invalidAnswers = 0

	// Results of requests from the previous round are dropped
	l.tipSeq++
	if l.cfg.StartTip {
		l.requestTip(tip.GenericPrompt)
	}
}

// requestTip fetches asynchronously; the result only touches display fields
func (l *GameLoop) requestTip(prompt string) {
	l.tipSeq++
	seq := l.tipSeq
	l.tipText = tipPendingText

	parent := l.ctx
	client := l.tipper
	out := l.tips
	timeout := l.cfg.TipTimeout

	go func() {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		text, _ := tip.Fetch(ctx, client, prompt)
		select {
		case out <- tipResult{seq: seq, text: text}:
		case <-parent.Done():
		}
	}()
}

func (l *GameLoop) collectTips() {
	for {
		select {
		case r := <-l.tips:
			if r.seq == l.tipSeq {
				l.tipText = r.text
			}
		default:
			return
		}
	}
}

func (l *GameLoop) render() error {
	if err := l.renderer.Render(l.Snapshot()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Snapshot captures the current frame inputs
func (l *GameLoop) Snapshot() Snapshot {
	return Snapshot{
		State:    l.state,
		Phase:    l.phase,
		Mode:     l.cfg.TipMode,
		Tip:      l.tipText,
		Question: string(l.question),
		Notice:   l.notice,
		Muted:    l.sounds.Muted(),
	}
}

// State exposes the current round, read-only for callers
func (l *GameLoop) State() *GameState { return l.state }

// Phase returns the loop phase
func (l *GameLoop) Phase() Phase { return l.phase }

func headingFor(a input.Action) Heading {
	switch a {
	case input.ActionMoveUp:
		return HeadingUp
	case input.ActionMoveDown:
		return HeadingDown
	case input.ActionMoveLeft:
		return HeadingLeft
	default:
		return HeadingRight
	}
}

type silentPlayer struct{}

func (silentPlayer) Play(audio.Sound) {}
func (silentPlayer) ToggleMute() bool { return true }
func (silentPlayer) Muted() bool { return true }
