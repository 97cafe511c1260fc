package constants

import "time"

// Game Loop Timing Constants
const (
	// FixedTimestep is the simulation slice advanced per physics step (~60 Hz)
	FixedTimestep = 16666600 * time.Nanosecond

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EndGameDisplayTime is how long the outcome message lingers before the session ends
	EndGameDisplayTime = 2 * time.Second
)

// Window / Projection
const (
	WindowTitle  = "Rocket Lander"
	WindowWidth  = 640
	WindowHeight = 480

	// Orthographic projection bounds in world units
	ProjectionLeft   = -5.0
	ProjectionRight  = 5.0
	ProjectionBottom = -3.75
	ProjectionTop    = 3.75
)
