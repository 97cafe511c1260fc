package constants

// Default asset locations, relative to the working directory
const (
	PlayerTexturePath   = "assets/rocket.png"
	PlatformTexturePath = "assets/platformPack_tile027.png"
	FloorTexturePath    = "assets/floor.png"
	FontTexturePath     = "assets/font1.png"

	MusicPath  = "assets/music.wav"
	EffectPath = "assets/bounce.wav"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "lander.log"

	// MaxLogSize triggers rotation of the previous log at startup
	MaxLogSize = 10 * 1024 * 1024
)
