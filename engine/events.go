package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/vmath"
)

// Outcome classifies the end of a landing attempt
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "none"
	}
}

// Cause records which check produced the outcome
type Cause uint8

const (
	CauseNone Cause = iota
	CauseBounds
	CauseCollision
)

func (c Cause) String() string {
	switch c {
	case CauseBounds:
		return "bounds"
	case CauseCollision:
		return "collision"
	default:
		return "none"
	}
}

// OutcomeEvent is published once when the session leaves PhaseRunning
type OutcomeEvent struct {
	SessionID uuid.UUID
	Outcome   Outcome
	Cause     Cause
	Message   string

	// PlatformIndex is the colliding platform, -1 for bounds outcomes
	PlatformIndex int
	PlatformType  core.EntityType

	Position vmath.Vec3F
	Steps    uint64
}

// OutcomeListener receives outcome notifications on the loop goroutine
type OutcomeListener interface {
	OnOutcome(OutcomeEvent)
}

// OutcomeListenerFunc adapts a function to OutcomeListener
type OutcomeListenerFunc func(OutcomeEvent)

func (f OutcomeListenerFunc) OnOutcome(ev OutcomeEvent) { f(ev) }
