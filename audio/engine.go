package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"go.uber.org/zap"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/engine"
)

// AudioEngine mixes a looping music track with one-shot effects
// Effects are rendered to memory once so playback is a mixer add
type AudioEngine struct {
	mu     sync.Mutex
	config *AudioConfig
	output Output
	mixer  *beep.Mixer
	rate   beep.SampleRate

	music   *beep.Ctrl
	effects [core.SoundTypeCount]*beep.Buffer

	running bool
	muted   bool
	logger  *zap.Logger
}

// NewAudioEngine creates an engine; nil cfg selects defaults, nil out selects the speaker
func NewAudioEngine(cfg *AudioConfig, out Output, logger *zap.Logger) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if out == nil {
		out = speakerOutput{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AudioEngine{
		config: cfg,
		output: out,
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		muted:  !cfg.Enabled,
		logger: logger,
	}
}

// Start opens the output device and renders the synthesized effects
func (ae *AudioEngine) Start() error {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if ae.running {
		return nil
	}

	if err := ae.output.Init(ae.rate, ae.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init audio output: %w", err)
	}
	ae.output.Play(ae.mixer)

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if s := GetSoundEffect(st, ae.config); s != nil {
			ae.effects[st] = Render(s, ae.rate)
		}
	}

	ae.running = true
	ae.logger.Info("audio started", zap.Int("sample_rate", int(ae.rate)))
	return nil
}

// LoadMusic decodes a track and starts it looping
func (ae *AudioEngine) LoadMusic(path string) error {
	buf, err := DecodeFile(path, ae.rate)
	if err != nil {
		return err
	}

	ae.mu.Lock()
	defer ae.mu.Unlock()
	if !ae.running {
		return ErrNotRunning
	}

	ctrl := &beep.Ctrl{
		Streamer: withGain(beep.Loop(-1, buf.Streamer(0, buf.Len())), ae.config.MusicVolume*ae.config.MasterVolume),
		Paused:   ae.muted,
	}

	ae.output.Lock()
	if ae.music != nil {
		ae.music.Streamer = nil
	}
	ae.music = ctrl
	ae.mixer.Add(ctrl)
	ae.output.Unlock()

	ae.logger.Info("music loaded", zap.String("path", path), zap.Int("samples", buf.Len()))
	return nil
}

// LoadEffect decodes a file into the slot for st, replacing any synthesized sound
func (ae *AudioEngine) LoadEffect(st core.SoundType, path string) error {
	if st < 0 || st >= core.SoundTypeCount {
		return fmt.Errorf("sound type %d out of range", st)
	}
	buf, err := DecodeFile(path, ae.rate)
	if err != nil {
		return err
	}

	ae.mu.Lock()
	ae.effects[st] = buf
	ae.mu.Unlock()

	ae.logger.Info("effect loaded", zap.String("path", path), zap.Int("sound", int(st)))
	return nil
}

// Play queues a one-shot effect; no-op when stopped, muted or the slot is empty
func (ae *AudioEngine) Play(st core.SoundType) {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.running || ae.muted || st < 0 || st >= core.SoundTypeCount {
		return
	}
	buf := ae.effects[st]
	if buf == nil {
		return
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if st == core.SoundImpact {
		// Synthesized effects carry their own gain
		s = withGain(s, ae.config.effectVolume(st))
	}

	ae.output.Lock()
	ae.mixer.Add(s)
	ae.output.Unlock()
}

// OnOutcome implements engine.OutcomeListener
func (ae *AudioEngine) OnOutcome(ev engine.OutcomeEvent) {
	switch ev.Outcome {
	case engine.OutcomeSuccess:
		ae.Play(core.SoundSuccess)
	case engine.OutcomeFailure:
		ae.Play(core.SoundFailure)
	default:
		return
	}
	ae.Play(core.SoundImpact)
}

// SetMuted silences effects and pauses music
func (ae *AudioEngine) SetMuted(muted bool) {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	ae.muted = muted
	if ae.music != nil {
		ae.output.Lock()
		ae.music.Paused = muted
		ae.output.Unlock()
	}
}

// IsMuted reports the mute state
func (ae *AudioEngine) IsMuted() bool {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	return ae.muted
}

// IsRunning reports whether the output is open
func (ae *AudioEngine) IsRunning() bool {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	return ae.running
}

// Active returns the number of streamers currently in the mixer
func (ae *AudioEngine) Active() int {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	ae.output.Lock()
	defer ae.output.Unlock()
	return ae.mixer.Len()
}

// Stop clears the mixer and closes the output
func (ae *AudioEngine) Stop() {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.running {
		return
	}

	ae.output.Lock()
	if ae.music != nil {
		ae.music.Paused = true
	}
	ae.mixer.Clear()
	ae.output.Unlock()

	ae.output.Close()
	ae.running = false
	ae.logger.Info("audio stopped")
}
