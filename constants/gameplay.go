package constants

// Kinematics
const (
	// Gravity is the vertical acceleration applied to the player every fixed step
	Gravity = -0.1

	// HorizontalAcceleration is the thrust magnitude while left/right is held
	HorizontalAcceleration = 5.0

	// Friction is subtracted from |velocity.x| when no thrust is held
	Friction = 0.5

	// FrictionStopThreshold snaps velocity.x to zero below this magnitude
	FrictionStopThreshold = 0.1
)

// Playfield bounds, leaving any of them fails the mission
const (
	LeftBound  = -5.0
	RightBound = 5.0
	LowerBound = -3.75
)

// Player
const (
	PlayerStartX = 0.0
	PlayerStartY = 3.75
	PlayerWidth  = 1.0
	PlayerHeight = 1.0
)

// Platform field
const (
	// PlatformCount is the number of static platforms in the field
	PlatformCount = 11

	// PlatformY is the shared vertical position of every platform
	PlatformY = -3.0

	// Left safe run occupies [0, SafeLeftCount)
	SafeLeftCount = 5

	// Dangerous run occupies [SafeLeftCount, DangerousEnd)
	DangerousEnd = 8

	SafePlatformSize      = 1.0
	DangerousPlatformSize = 0.3
)

// Outcome messages
const (
	MessageSuccess = "Mission Accomplished!"
	MessageFailure = "Mission Failed!"
)
