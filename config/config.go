// Package config loads the optional YAML configuration file
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/engine"
	"github.com/lixenwraith/rocket-lander/terminal"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full program configuration
type Config struct {
	Assets  Assets  `yaml:"assets"`
	Audio   Audio   `yaml:"audio"`
	Physics Physics `yaml:"physics"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

// Assets lists the files loaded at startup
type Assets struct {
	Player   string `yaml:"player"`
	Platform string `yaml:"platform"`
	Floor    string `yaml:"floor"`
	Font     string `yaml:"font"`
	Music    string `yaml:"music"`
	Effect   string `yaml:"effect"`
}

// Audio controls the mixer
type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	EffectVolume float64 `yaml:"effect_volume"`
}

// Physics tunes the simulation loop
type Physics struct {
	// FrictionMode is "per_call" or "per_step"
	FrictionMode string `yaml:"friction_mode"`
	// Timestep overrides the fixed step; zero keeps the default
	Timestep time.Duration `yaml:"timestep"`
}

// Display controls presentation
type Display struct {
	// Color is "auto", "truecolor" (or "24bit"), "256" or "mono" (or "none")
	Color string `yaml:"color"`
	// Snapshot, when set, saves the final frame as PNG on exit
	Snapshot string `yaml:"snapshot"`
	// FrameInterval overrides the render tick; zero keeps the default
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// Log controls file logging
type Log struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Assets: Assets{
			Player:   constants.PlayerTexturePath,
			Platform: constants.PlatformTexturePath,
			Floor:    constants.FloorTexturePath,
			Font:     constants.FontTexturePath,
			Music:    constants.MusicPath,
			Effect:   constants.EffectPath,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 0.8,
			MusicVolume:  0.5,
			EffectVolume: 0.7,
		},
		Physics: Physics{
			FrictionMode: engine.FrictionPerCall.String(),
		},
		Display: Display{
			Color: "auto",
		},
		Log: Log{
			Dir:   constants.LogDir,
			Level: "info",
		},
	}
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg and validates the result
// Unknown keys are rejected
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	var errs []error

	for name, path := range map[string]string{
		"assets.player":   c.Assets.Player,
		"assets.platform": c.Assets.Platform,
		"assets.floor":    c.Assets.Floor,
		"assets.font":     c.Assets.Font,
	} {
		if path == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalid, name))
		}
	}

	for name, v := range map[string]float64{
		"audio.master_volume": c.Audio.MasterVolume,
		"audio.music_volume":  c.Audio.MusicVolume,
		"audio.effect_volume": c.Audio.EffectVolume,
	} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: %s %.2f outside [0, 1]", ErrInvalid, name, v))
		}
	}

	if _, err := c.FrictionMode(); err != nil {
		errs = append(errs, fmt.Errorf("%w: physics.friction_mode: %w", ErrInvalid, err))
	}
	if c.Physics.Timestep < 0 || c.Physics.Timestep > time.Second {
		errs = append(errs, fmt.Errorf("%w: physics.timestep %s outside [0, 1s]", ErrInvalid, c.Physics.Timestep))
	}
	if c.Display.FrameInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: display.frame_interval is negative", ErrInvalid))
	}

	if _, err := c.ColorMode(); err != nil {
		errs = append(errs, fmt.Errorf("%w: display.color: %w", ErrInvalid, err))
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// FrictionMode parses Physics.FrictionMode
func (c *Config) FrictionMode() (engine.FrictionMode, error) {
	return engine.ParseFrictionMode(c.Physics.FrictionMode)
}

// ColorMode parses Display.Color
func (c *Config) ColorMode() (terminal.ColorMode, error) {
	return terminal.ParseColorMode(c.Display.Color)
}

// LogLevel parses Log.Level, falling back to info
func (c *Config) LogLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
