package core

// SoundType represents the one-shot sound effects
type SoundType int

const (
	SoundSuccess SoundType = iota // Landed on a safe zone
	SoundFailure                  // Crash or left the playfield
	SoundImpact                   // Contact effect loaded from disk
	SoundTypeCount
)
