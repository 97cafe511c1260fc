package audio

import (
	"errors"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
)

// AudioConfig holds output and volume settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	MusicVolume   float64
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.8,
		MusicVolume:  0.5,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundSuccess: 0.7,
			core.SoundFailure: 0.6,
			core.SoundImpact:  0.8,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// effectVolume returns the final linear gain for a sound type
func (c *AudioConfig) effectVolume(st core.SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

// Sentinel errors
var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNotRunning        = errors.New("audio engine not running")
)
