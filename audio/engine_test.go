package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/engine"
)

type fakeOutput struct {
	initErr error
	inits   int
	played  []beep.Streamer
	closed  bool
}

func (f *fakeOutput) Init(rate beep.SampleRate, bufferSize int) error {
	f.inits++
	return f.initErr
}

func (f *fakeOutput) Play(s beep.Streamer) { f.played = append(f.played, s) }
func (f *fakeOutput) Lock()                {}
func (f *fakeOutput) Unlock()              {}
func (f *fakeOutput) Close()               { f.closed = true }

// writeWAV encodes a short tone at the given rate
func writeWAV(t *testing.T, dir string, rate beep.SampleRate, d time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, NewOscillator(440, d, WaveSine, rate), format))
	return path
}

func startedEngine(t *testing.T) (*AudioEngine, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	ae := NewAudioEngine(nil, out, nil)
	require.NoError(t, ae.Start())
	return ae, out
}

// TestDecodeFileResamples verifies WAV decode and conversion to the output rate
func TestDecodeFileResamples(t *testing.T) {
	path := writeWAV(t, t.TempDir(), 22050, 200*time.Millisecond)

	buf, err := DecodeFile(path, testRate)
	require.NoError(t, err)
	assert.InDelta(t, testRate.N(200*time.Millisecond), buf.Len(), 64, "sample count after resampling")
}

// TestDecodeFileErrors verifies format and missing-file errors
func TestDecodeFileErrors(t *testing.T) {
	dir := t.TempDir()

	ogg := filepath.Join(dir, "track.ogg")
	require.NoError(t, os.WriteFile(ogg, []byte("OggS"), 0o644))
	_, err := DecodeFile(ogg, testRate)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = DecodeFile(filepath.Join(dir, "missing.wav"), testRate)
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk.wav")
	require.NoError(t, os.WriteFile(junk, []byte("definitely not riff"), 0o644))
	_, err = DecodeFile(junk, testRate)
	assert.Error(t, err)
}

// TestAudioEngineStartStop verifies the output lifecycle
func TestAudioEngineStartStop(t *testing.T) {
	ae, out := startedEngine(t)

	require.True(t, ae.IsRunning())
	require.NoError(t, ae.Start(), "second start is a no-op")
	assert.Equal(t, 1, out.inits, "output initialized once")
	assert.Len(t, out.played, 1, "mixer handed to output once")

	ae.Stop()
	assert.False(t, ae.IsRunning())
	assert.True(t, out.closed)
	ae.Stop()
}

// TestAudioEngineStartFailure verifies init errors surface and leave the engine stopped
func TestAudioEngineStartFailure(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	ae := NewAudioEngine(nil, out, nil)
	require.Error(t, ae.Start())
	assert.False(t, ae.IsRunning())
	ae.Play(core.SoundSuccess)
}

// TestAudioEngineOutcomeCues verifies outcome events queue effects
func TestAudioEngineOutcomeCues(t *testing.T) {
	ae, _ := startedEngine(t)

	ae.OnOutcome(engine.OutcomeEvent{Outcome: engine.OutcomeSuccess})
	assert.Equal(t, 1, ae.Active(), "success cue only, no impact sound loaded")

	path := writeWAV(t, t.TempDir(), testRate, 50*time.Millisecond)
	require.NoError(t, ae.LoadEffect(core.SoundImpact, path))
	ae.OnOutcome(engine.OutcomeEvent{Outcome: engine.OutcomeFailure})
	assert.Equal(t, 3, ae.Active())

	ae.OnOutcome(engine.OutcomeEvent{Outcome: engine.OutcomeNone})
	assert.Equal(t, 3, ae.Active(), "none outcome must not play")
}

// TestAudioEngineMute verifies muted engines queue nothing and pause music
func TestAudioEngineMute(t *testing.T) {
	ae, _ := startedEngine(t)
	path := writeWAV(t, t.TempDir(), testRate, 50*time.Millisecond)
	require.NoError(t, ae.LoadMusic(path))
	require.Equal(t, 1, ae.Active(), "music in mixer")

	ae.SetMuted(true)
	assert.True(t, ae.IsMuted())
	assert.True(t, ae.music.Paused, "mute pauses music")
	ae.Play(core.SoundFailure)
	assert.Equal(t, 1, ae.Active(), "muted play must not queue")

	ae.SetMuted(false)
	assert.False(t, ae.music.Paused, "unmute resumes music")
}

// TestAudioEngineLoadBeforeStart verifies music requires a running engine
func TestAudioEngineLoadBeforeStart(t *testing.T) {
	ae := NewAudioEngine(nil, &fakeOutput{}, nil)
	path := writeWAV(t, t.TempDir(), testRate, 20*time.Millisecond)
	assert.ErrorIs(t, ae.LoadMusic(path), ErrNotRunning)
	assert.Error(t, ae.LoadEffect(core.SoundTypeCount, path), "sound type out of range")
}

// TestAudioEngineDisabledStartsMuted verifies the Enabled flag
func TestAudioEngineDisabledStartsMuted(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	ae := NewAudioEngine(cfg, &fakeOutput{}, nil)
	assert.True(t, ae.IsMuted())
}
