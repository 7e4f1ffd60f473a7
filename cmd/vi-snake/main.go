package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio/playback"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/service"
	"github.com/lixenwraith/vi-snake/tip"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config file")
	tickFlag    = flag.Duration("tick", 0, "Tick interval, 50ms to 500ms")
	widthFlag   = flag.Int("width", 0, "Board width in cells")
	heightFlag  = flag.Int("height", 0, "Board height in cells")
	tipModeFlag = flag.String("tip-mode", "", "Tip mode: inline (pause and chat) or end (tip after game over)")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	seedFlag    = flag.Uint64("seed", 0, "Food placement seed, 0 for random")
	offlineFlag = flag.Bool("offline", false, "Serve tips from the built-in stub instead of the remote endpoint")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/vi-snake.log")
)

// offlineAPIKey satisfies the stub's bearer check
const offlineAPIKey = "offline"

// flagValues holds command-line overrides; set names the flags given explicitly
type flagValues struct {
	tick          time.Duration
	width, height int
	tipMode       string
	mute          bool
	seed          uint64
	offline       bool
	set           map[string]bool
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)

	fv := flagValues{
		tick:    *tickFlag,
		width:   *widthFlag,
		height:  *heightFlag,
		tipMode: *tipModeFlag,
		mute:    *muteFlag,
		seed:    *seedFlag,
		offline: *offlineFlag,
		set:     make(map[string]bool),
	}
	flag.Visit(func(f *flag.Flag) { fv.set[f.Name] = true })

	score, err := run(fv)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Final score: %d\n", score)
}

// applyFlags overrides file values with explicitly given flags
func applyFlags(cfg *config.Config, fv flagValues) {
	if fv.set["tick"] {
		cfg.Game.Tick = fv.tick
	}
	if fv.set["width"] {
		cfg.Game.Width = fv.width
	}
	if fv.set["height"] {
		cfg.Game.Height = fv.height
	}
	if fv.set["tip-mode"] {
		cfg.Tip.Mode = fv.tipMode
	}
	if fv.set["mute"] {
		cfg.Audio.Muted = fv.mute
	}
	if fv.set["seed"] {
		cfg.Game.Seed = fv.seed
	}
	if fv.set["offline"] {
		cfg.Tip.Offline = fv.offline
	}
}

// loadConfig resolves file, environment and flags into a validated config
func loadConfig(path string, fv flagValues) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	applyFlags(&cfg, fv)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

func run(fv flagValues) (int, error) {
	cfg, err := loadConfig(*configFlag, fv)
	if err != nil {
		return 0, err
	}
	mode, _ := engine.ParseTipMode(cfg.Tip.Mode)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return 0, errors.New("stdin is not a terminal")
	}

	mapper, err := input.NewMapper(cfg.Keys)
	if err != nil {
		return 0, fmt.Errorf("key bindings: %w", err)
	}

	hub := service.NewHub()
	player := playback.NewPlayer(cfg.Audio.Muted, cfg.Audio.Volume)
	if err := hub.Register(player); err != nil {
		return 0, err
	}
	var stub *tip.StubServer
	if cfg.Tip.Offline {
		stub = tip.NewStubServer(cfg.Tip.StubAddr)
		if err := hub.Register(stub); err != nil {
			return 0, err
		}
	}
	if err := hub.InitAll(); err != nil {
		return 0, fmt.Errorf("init services: %w", err)
	}
	if err := hub.StartAll(); err != nil {
		return 0, fmt.Errorf("start services: %w", err)
	}
	defer hub.StopAll()

	endpoint, apiKey := cfg.Tip.Endpoint, cfg.Tip.APIKey
	if stub != nil {
		endpoint, apiKey = stub.URL(), offlineAPIKey
	}
	if apiKey == "" {
		log.Printf("no API key in %s, tips fall back to local hints", constant.APIKeyEnv)
	}
	tipper := tip.NewHTTPClient(endpoint, apiKey, cfg.Tip.Model, cfg.Tip.Timeout)

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nVI-SNAKE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands := make(chan input.Command, constant.CommandQueueSize)
	go func() {
		// Input polling talks to the terminal directly, so a crash here must also reset it
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nINPUT PUMP CRASHED: %v\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		input.Pump(ctx, screen, mapper, commands)
	}()

	var rng *rand.Rand
	if cfg.Game.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Game.Seed, cfg.Game.Seed))
	}

	loop, err := engine.NewGameLoop(engine.LoopConfig{
		Width:             cfg.Game.Width,
		Height:            cfg.Game.Height,
		TickInterval:      cfg.Game.Tick,
		TipMode:           mode,
		StartTip:          cfg.Tip.StartTip,
		TipTimeout:        cfg.Tip.Timeout,
		EndWait:           cfg.Game.EndWait,
		MaxInvalidAnswers: cfg.Game.MaxInvalidAnswers,
	}, engine.LoopDeps{
		Renderer: render.NewTerminalRenderer(screen),
		Tipper:   tipper,
		Sounds:   player,
		Rand:     rng,
	})
	if err != nil {
		return 0, err
	}

	log.Printf("game start: %dx%d, tick %v, tip mode %s", cfg.Game.Width, cfg.Game.Height, cfg.Game.Tick, mode)
	if err := loop.Run(ctx, commands); err != nil {
		return loop.State().Score(), err
	}
	return loop.State().Score(), nil
}
