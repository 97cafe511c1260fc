package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/rocket-lander/asset"
	"github.com/lixenwraith/rocket-lander/audio"
	"github.com/lixenwraith/rocket-lander/config"
	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/engine"
	"github.com/lixenwraith/rocket-lander/input"
	"github.com/lixenwraith/rocket-lander/render"
	"github.com/lixenwraith/rocket-lander/render/renderers"
	"github.com/lixenwraith/rocket-lander/terminal"
)

var (
	configFlag   = flag.String("config", "lander.yaml", "YAML config path; a missing file uses defaults")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to the log directory")
	muteFlag     = flag.Bool("mute", false, "Disable music and sound effects")
	snapshotFlag = flag.String("snapshot", "", "Save the final frame as PNG to this path")
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256, mono")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// overrides are command-line values that take precedence over the config file
type overrides struct {
	debug    bool
	mute     bool
	snapshot string
	color    string
}

func applyOverrides(cfg *config.Config, o overrides) error {
	if o.debug {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}
	if o.snapshot != "" {
		cfg.Display.Snapshot = o.snapshot
	}
	if o.color != "" {
		cfg.Display.Color = o.color
	}
	return cfg.Validate()
}

// audioConfig maps the file config onto the mixer settings
func audioConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.MasterVolume
	ac.MusicVolume = cfg.Audio.MusicVolume
	for st := range ac.EffectVolumes {
		ac.EffectVolumes[st] = cfg.Audio.EffectVolume
	}
	return ac
}

func run() int {
	// Terminal is restored by the registered finalizer before the trace prints
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(*configFlag)
	if err == nil {
		err = applyOverrides(cfg, overrides{
			debug:    *debugFlag,
			mute:     *muteFlag,
			snapshot: *snapshotFlag,
			color:    *colorFlag,
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	logger, closeLog, err := setupLogging(cfg.Log.Enabled, cfg.Log.Dir, cfg.LogLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Textures are required
	store := asset.NewStore(logger.Named("asset"))
	ids, err := store.LoadAll(ctx, cfg.Assets.Player, cfg.Assets.Platform, cfg.Assets.Floor, cfg.Assets.Font)
	if err != nil {
		logger.Error("asset load failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "asset load failed: %v\n", err)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "run lander-assets to generate the default asset set")
		}
		return 1
	}
	textures := engine.Textures{Player: ids[0], Platform: ids[1], Floor: ids[2]}
	font := ids[3]

	// Audio is optional
	sound := startAudio(cfg, logger.Named("audio"))
	if sound != nil {
		defer sound.Stop()
	}

	friction, _ := cfg.FrictionMode()
	opts := []engine.Option{
		engine.WithLogger(logger.Named("engine")),
		engine.WithFrictionMode(friction),
	}
	if cfg.Physics.Timestep > 0 {
		opts = append(opts, engine.WithTimestep(cfg.Physics.Timestep))
	}
	if sound != nil {
		opts = append(opts, engine.WithListener(sound))
	}

	session := engine.NewSession(textures)
	clock := engine.NewMonotonicTimeProvider()
	controller := engine.NewController(session, clock, opts...)

	colorMode, _ := cfg.ColorMode()
	term := terminal.NewService(nil, colorMode, logger.Named("terminal"))
	if err := term.Init(); err != nil {
		logger.Error("terminal init failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	defer term.Stop()
	if err := term.Start(); err != nil {
		logger.Error("terminal start failed", zap.Error(err))
		return 1
	}

	orchestrator := render.NewRenderOrchestrator(font, logger.Named("render"))
	orchestrator.Register("terminal", renderers.NewTerminalRenderer(term.Screen(), store), render.PriorityScreen)

	source := input.NewSource(term.Events(), input.DefaultKeyTable(), input.NewKeyTracker(clock, input.DefaultHoldWindow))
	source.OnResize = term.Sync

	runner := engine.NewRunner(controller, source, orchestrator, cfg.Display.FrameInterval, logger.Named("loop"))
	runErr := runner.Run(ctx)

	if cfg.Display.Snapshot != "" {
		if err := saveSnapshot(cfg.Display.Snapshot, orchestrator.LastFrame(), store); err != nil {
			logger.Warn("snapshot failed", zap.Error(err))
		} else {
			logger.Info("snapshot saved", zap.String("path", cfg.Display.Snapshot))
		}
	}

	if ev, ok := session.Outcome(); ok {
		logger.Info("session ended",
			zap.String("outcome", ev.Outcome.String()),
			zap.Uint64("steps", session.Steps()),
			zap.Uint64("frames", orchestrator.Frames()),
		)
	}

	if runErr != nil {
		logger.Error("frame loop failed", zap.Error(runErr))
		return 1
	}
	return 0
}

// startAudio returns nil when the mixer cannot run; the game continues silent
func startAudio(cfg *config.Config, logger *zap.Logger) *audio.AudioEngine {
	if !cfg.Audio.Enabled {
		return nil
	}

	sound := audio.NewAudioEngine(audioConfig(cfg), nil, logger)
	if err := sound.Start(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return nil
	}

	if cfg.Assets.Music != "" {
		if err := sound.LoadMusic(cfg.Assets.Music); err != nil {
			logger.Warn("music not loaded", zap.Error(err))
		}
	}
	if cfg.Assets.Effect != "" {
		if err := sound.LoadEffect(core.SoundImpact, cfg.Assets.Effect); err != nil {
			logger.Warn("effect not loaded", zap.Error(err))
		}
	}
	return sound
}

// saveSnapshot draws the frame offscreen at window resolution and writes it as PNG
func saveSnapshot(path string, f *render.Frame, textures render.Textures) error {
	img := renderers.NewImageRenderer(constants.WindowWidth, constants.WindowHeight, textures)
	defer img.Close()

	if err := img.Draw(f); err != nil {
		return err
	}
	return img.SavePNG(path)
}
