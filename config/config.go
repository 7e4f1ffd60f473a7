// Package config loads the game configuration from TOML.
// Missing files and missing keys fall back to defaults; flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
)

// Config is the root of the TOML document
type Config struct {
	Game  GameConfig  `toml:"game"`
	Tip   TipConfig   `toml:"tip"`
	Audio AudioConfig `toml:"audio"`

	// Keys maps key names to action names, e.g. `k = "move_up"`
	Keys map[string]string `toml:"keys"`
}

// GameConfig controls the board and the loop cadence
type GameConfig struct {
	Width  int           `toml:"width"`
	Height int           `toml:"height"`
	Tick   time.Duration `toml:"tick"`

	// Seed fixes food placement when non-zero
	Seed uint64 `toml:"seed"`

	EndWait           time.Duration `toml:"end_wait"`
	MaxInvalidAnswers int           `toml:"max_invalid_answers"`
}

// TipConfig controls the tip collaborator
type TipConfig struct {
	Mode     string        `toml:"mode"`
	Endpoint string        `toml:"endpoint"`
	Model    string        `toml:"model"`
	APIKey   string        `toml:"api_key"`
	Timeout  time.Duration `toml:"timeout"`
	StartTip bool          `toml:"start_tip"`

	// Offline serves tips from an in-process stub on StubAddr
	Offline  bool   `toml:"offline"`
	StubAddr string `toml:"stub_addr"`
}

// AudioConfig controls sound effects
type AudioConfig struct {
	Muted  bool    `toml:"muted"`
	Volume float64 `toml:"volume"`
}

// Default returns a configuration that passes Validate
func Default() Config {
	return Config{
		Game: GameConfig{
			Width:             constant.DefaultGridWidth,
			Height:            constant.DefaultGridHeight,
			Tick:              constant.DefaultTickInterval,
			EndWait:           constant.DefaultEndWait,
			MaxInvalidAnswers: constant.DefaultMaxInvalidAnswers,
		},
		Tip: TipConfig{
			Mode:     engine.TipModeInline.String(),
			Endpoint: constant.DefaultTipEndpoint,
			Model:    constant.DefaultTipModel,
			Timeout:  constant.DefaultTipTimeout,
			StartTip: true,
			StubAddr: constant.DefaultStubAddr,
		},
		Audio: AudioConfig{
			Volume: constant.DefaultVolume,
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
// The API key from the environment overrides the file
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if key := os.Getenv(constant.APIKeyEnv); key != "" {
		cfg.Tip.APIKey = key
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once
func (c Config) Validate() error {
	var errs []error

	g := c.Game
	if g.Width < constant.MinGridWidth || g.Width > constant.MaxGridWidth {
		errs = append(errs, fmt.Errorf("game.width %d out of range [%d, %d]", g.Width, constant.MinGridWidth, constant.MaxGridWidth))
	}
	if g.Height < constant.MinGridHeight || g.Height > constant.MaxGridHeight {
		errs = append(errs, fmt.Errorf("game.height %d out of range [%d, %d]", g.Height, constant.MinGridHeight, constant.MaxGridHeight))
	}
	if g.Tick < constant.MinTickInterval || g.Tick > constant.MaxTickInterval {
		errs = append(errs, fmt.Errorf("game.tick %v out of range [%v, %v]", g.Tick, constant.MinTickInterval, constant.MaxTickInterval))
	}
	if g.EndWait < 0 {
		errs = append(errs, fmt.Errorf("game.end_wait must not be negative, got %v", g.EndWait))
	}
	if g.MaxInvalidAnswers < 1 {
		errs = append(errs, fmt.Errorf("game.max_invalid_answers must be at least 1, got %d", g.MaxInvalidAnswers))
	}

	if _, err := engine.ParseTipMode(c.Tip.Mode); err != nil {
		errs = append(errs, fmt.Errorf("tip.mode: %w", err))
	}
	if c.Tip.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("tip.timeout must be positive, got %v", c.Tip.Timeout))
	}
	if !c.Tip.Offline && c.Tip.Endpoint == "" {
		errs = append(errs, errors.New("tip.endpoint is required unless tip.offline is set"))
	}
	if c.Tip.Offline && c.Tip.StubAddr == "" {
		errs = append(errs, errors.New("tip.stub_addr is required when tip.offline is set"))
	}

	if _, err := input.ParseBindings(c.Keys); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}

	return errors.Join(errs...)
}
