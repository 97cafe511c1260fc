package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker output rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// ResampleQuality is passed to beep.Resample for decoded assets
	ResampleQuality = 4
)

// Success Chime Timing
const (
	SuccessNote1Duration = 120 * time.Millisecond
	SuccessNote2Duration = 400 * time.Millisecond
	SuccessSoundAttack   = 5 * time.Millisecond
	SuccessNote1Release  = 60 * time.Millisecond
	SuccessNote2Release  = 350 * time.Millisecond
)

// Failure Buzz Timing
const (
	FailureSoundDuration = 450 * time.Millisecond
	FailureSoundAttack   = 10 * time.Millisecond
	FailureSoundRelease  = 300 * time.Millisecond
)
