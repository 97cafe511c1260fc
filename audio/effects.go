package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// sample returns the wave value in [-1, 1] at phase p in [0, 1)
func (w WaveType) sample(p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*p - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(p-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// oscillator is a finite tone whose frequency may glide linearly per sample
type oscillator struct {
	wave      WaveType
	freq      float64
	glide     float64
	phase     float64
	rate      float64
	remaining int
}

// NewOscillator returns a fixed-pitch tone lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep returns a tone gliding linearly from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := rate.N(duration)
	o := &oscillator{wave: wave, freq: from, rate: float64(rate), remaining: n}
	if n > 0 {
		o.glide = (to - from) / float64(n)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	n := min(len(samples), o.remaining)
	for i := 0; i < n; i++ {
		v := o.wave.sample(o.phase)
		samples[i] = [2]float64{v, v}

		_, o.phase = math.Modf(o.phase + o.freq/o.rate)
		o.freq += o.glide
	}
	o.remaining -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release, cutting it at duration
type envelope struct {
	src     beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewEnvelope shapes s with a linear attack and release inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		src:     s,
		attack:  min(rate.N(attack), total),
		release: min(rate.N(release), total),
		total:   total,
	}
}

func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; e.release > 0 && left < e.release {
		g = math.Min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok := e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// withGain scales s linearly; zero or negative gain silences it since Log2(0) is -Inf
func withGain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// Sound effect generators

// CreateSuccessSound generates a rising two-note chime for a safe landing
func CreateSuccessSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E5)
	n1 := NewOscillator(659.25, constants.SuccessNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.SuccessNote1Duration, constants.SuccessSoundAttack, constants.SuccessNote1Release, rate)

	// Second note (A5)
	n2 := NewOscillator(880.0, constants.SuccessNote2Duration, WaveTriangle, rate)
	n2Shaped := NewEnvelope(n2, constants.SuccessNote2Duration, constants.SuccessSoundAttack, constants.SuccessNote2Release, rate)

	sequence := beep.Seq(withGain(n1Shaped, 0.6), n2Shaped)

	return withGain(sequence, cfg.effectVolume(core.SoundSuccess))
}

// CreateFailureSound generates a low harsh buzz with a noise burst for a crash
func CreateFailureSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Falling saw, 180Hz down to 60Hz
	buzz := NewSweep(180.0, 60.0, constants.FailureSoundDuration, WaveSaw, rate)
	buzzShaped := NewEnvelope(buzz, constants.FailureSoundDuration, constants.FailureSoundAttack, constants.FailureSoundRelease, rate)

	noise := NewOscillator(0, constants.FailureSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.FailureSoundDuration, constants.FailureSoundAttack, constants.FailureSoundRelease/2, rate)

	mixed := beep.Mix(
		withGain(buzzShaped, 0.7),
		withGain(noiseShaped, 0.3),
	)

	return withGain(mixed, cfg.effectVolume(core.SoundFailure))
}

// GetSoundEffect returns the synthesized streamer for the given type
// File-backed sounds (SoundImpact) return nil
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundSuccess:
		return CreateSuccessSound(cfg)
	case core.SoundFailure:
		return CreateFailureSound(cfg)
	default:
		return nil
	}
}
