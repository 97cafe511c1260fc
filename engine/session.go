package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/vmath"
)

// Phase is the session lifecycle state
type Phase uint8

const (
	// PhaseRunning accepts input, steps physics, checks bounds and collisions
	PhaseRunning Phase = iota
	// PhaseEnding shows the outcome message; player physics is frozen
	PhaseEnding
	// PhaseTerminated signals the loop to stop
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEnding:
		return "ending"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Textures carries the presentation handles assigned to session entities
type Textures struct {
	Player   core.TextureID
	Platform core.TextureID
	Floor    core.TextureID
}

// Session is the complete state of one landing attempt
// Owned and mutated by a single Controller
type Session struct {
	ID uuid.UUID

	Player    core.Entity
	Platforms []core.Entity

	// Message is empty while playing
	Message string
	// Countdown is the remaining linger time once an outcome is set
	Countdown time.Duration

	phase   Phase
	outcome OutcomeEvent
	steps   uint64
}

// NewSession creates a session with the player at the top of the playfield and the fixed platform field
func NewSession(tex Textures) *Session {
	return &Session{
		ID: uuid.New(),
		Player: core.Entity{
			Position: vmath.V3F(constants.PlayerStartX, constants.PlayerStartY, 0),
			Width:    constants.PlayerWidth,
			Height:   constants.PlayerHeight,
			Type:     core.EntityPlayer,
			Texture:  tex.Player,
		},
		Platforms: NewPlatformField(tex),
		phase:     PhaseRunning,
	}
}

// NewPlatformField lays out the static platforms
// Order is significant: collision tie-breaks pick the lowest index
func NewPlatformField(tex Textures) []core.Entity {
	platforms := make([]core.Entity, constants.PlatformCount)
	for i := range platforms {
		p := &platforms[i]
		p.Position = vmath.V3F(float64(i)-constants.PlatformCount/2.0, constants.PlatformY, 0)

		if i >= constants.SafeLeftCount && i < constants.DangerousEnd {
			p.Type = core.EntityDangerousZone
			p.Width, p.Height = constants.DangerousPlatformSize, constants.DangerousPlatformSize
			p.Texture = tex.Floor
			continue
		}
		p.Type = core.EntitySafeZone
		p.Width, p.Height = constants.SafePlatformSize, constants.SafePlatformSize
		p.Texture = tex.Platform
	}
	return platforms
}

// Phase returns the current lifecycle state
func (s *Session) Phase() Phase {
	return s.phase
}

// Running reports whether the loop should keep going
func (s *Session) Running() bool {
	return s.phase != PhaseTerminated
}

// Steps returns the number of fixed physics steps executed
func (s *Session) Steps() uint64 {
	return s.steps
}

// Outcome returns the outcome event, valid once the phase left PhaseRunning
func (s *Session) Outcome() (OutcomeEvent, bool) {
	return s.outcome, s.phase != PhaseRunning
}
