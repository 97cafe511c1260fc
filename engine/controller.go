package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/input"
	"github.com/lixenwraith/rocket-lander/physics"
)

// FrictionMode selects where horizontal friction is applied
type FrictionMode uint8

const (
	// FrictionPerCall applies friction once per input call, frame-rate dependent
	FrictionPerCall FrictionMode = iota
	// FrictionPerStep applies friction once per fixed physics step
	FrictionPerStep
)

func (m FrictionMode) String() string {
	if m == FrictionPerStep {
		return "per_step"
	}
	return "per_call"
}

// ParseFrictionMode accepts "per_call" or "per_step"; empty selects per_call
func ParseFrictionMode(s string) (FrictionMode, error) {
	switch s {
	case "", "per_call":
		return FrictionPerCall, nil
	case "per_step":
		return FrictionPerStep, nil
	default:
		return FrictionPerCall, fmt.Errorf("unknown friction mode %q", s)
	}
}

// Controller drives one session: input mapping, fixed-step physics and the outcome state machine
type Controller struct {
	session *Session
	clock   TimeProvider
	acc     *Accumulator

	lastTick time.Time
	friction FrictionMode
	// coasting is true when no thrust is held; per-step friction reads it
	coasting bool

	listeners []OutcomeListener
	logger    *zap.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the controller logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithFrictionMode selects per-call or per-step friction
func WithFrictionMode(m FrictionMode) Option {
	return func(c *Controller) { c.friction = m }
}

// WithTimestep overrides the fixed simulation step
func WithTimestep(step time.Duration) Option {
	return func(c *Controller) { c.acc = NewAccumulator(step) }
}

// WithListener registers an outcome listener
func WithListener(l OutcomeListener) Option {
	return func(c *Controller) { c.listeners = append(c.listeners, l) }
}

// NewController binds a session to a clock; the first Update measures time from now
func NewController(s *Session, clock TimeProvider, opts ...Option) *Controller {
	c := &Controller{
		session: s,
		clock:   clock,
		acc:     NewAccumulator(constants.FixedTimestep),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lastTick = clock.Now()

	c.logger.Info("session started",
		zap.String("session", s.ID.String()),
		zap.Float64("x", s.Player.Position.X),
		zap.Float64("y", s.Player.Position.Y),
		zap.Stringer("friction", c.friction),
		zap.Duration("timestep", c.acc.Step()),
	)
	return c
}

// Session returns the controlled session
func (c *Controller) Session() *Session {
	return c.session
}

// Accumulator exposes the fixed-step accumulator
func (c *Controller) Accumulator() *Accumulator {
	return c.acc
}

// ProcessInput maps the frame's controls onto the player; ignored once an outcome is set
// Left wins when both directions are held
func (c *Controller) ProcessInput(ctl input.Controls) {
	if c.session.phase != PhaseRunning {
		return
	}
	p := &c.session.Player

	switch {
	case ctl.Left:
		p.Acceleration.X = -constants.HorizontalAcceleration
		c.coasting = false
	case ctl.Right:
		p.Acceleration.X = constants.HorizontalAcceleration
		c.coasting = false
	default:
		c.coasting = true
		if c.friction == FrictionPerCall {
			p.Velocity.X = physics.ApplyFriction(p.Velocity.X, constants.Friction, constants.FrictionStopThreshold)
		}
		p.Acceleration.X = 0
	}
}

// Update advances the session by the wall-clock time since the previous call
func (c *Controller) Update() {
	s := c.session

	switch s.phase {
	case PhaseTerminated:
		return
	case PhaseEnding:
		s.Countdown -= c.acc.Step()
		if s.Countdown <= 0 {
			s.Countdown = 0
			s.phase = PhaseTerminated
			c.logger.Info("session terminated", zap.String("session", s.ID.String()), zap.Uint64("steps", s.steps))
		}
		return
	}

	now := c.clock.Now()
	elapsed := now.Sub(c.lastTick)
	c.lastTick = now

	n := c.acc.Advance(elapsed)
	dt := c.acc.Step().Seconds()
	p := &s.Player

	for i := 0; i < n; i++ {
		p.Acceleration.Y = constants.Gravity
		if c.friction == FrictionPerStep && c.coasting {
			p.Velocity.X = physics.ApplyFriction(p.Velocity.X, constants.Friction, constants.FrictionStopThreshold)
		}

		contact, hit := physics.Step(p, dt, s.Platforms)
		s.steps++

		if c.evaluate(contact, hit) {
			return
		}
	}
}

// evaluate applies bounds then collision checks, returns true when an outcome was set
func (c *Controller) evaluate(contact physics.Contact, hit bool) bool {
	p := &c.session.Player

	if p.Position.X < constants.LeftBound ||
		p.Position.X > constants.RightBound ||
		p.Position.Y < constants.LowerBound {
		c.finish(OutcomeEvent{
			Outcome:       OutcomeFailure,
			Cause:         CauseBounds,
			Message:       constants.MessageFailure,
			PlatformIndex: -1,
		})
		return true
	}

	if !hit {
		return false
	}

	ev := OutcomeEvent{
		Cause:         CauseCollision,
		PlatformIndex: contact.Index,
		PlatformType:  contact.Type,
	}
	switch contact.Type {
	case core.EntitySafeZone:
		ev.Outcome, ev.Message = OutcomeSuccess, constants.MessageSuccess
	case core.EntityDangerousZone:
		ev.Outcome, ev.Message = OutcomeFailure, constants.MessageFailure
	default:
		return false
	}
	c.finish(ev)
	return true
}

// finish moves the session to PhaseEnding and notifies listeners
func (c *Controller) finish(ev OutcomeEvent) {
	s := c.session
	ev.SessionID = s.ID
	ev.Position = s.Player.Position
	ev.Steps = s.steps

	s.Message = ev.Message
	s.Countdown = constants.EndGameDisplayTime
	s.outcome = ev
	s.phase = PhaseEnding

	c.logger.Info("mission outcome",
		zap.String("session", s.ID.String()),
		zap.Stringer("outcome", ev.Outcome),
		zap.Stringer("cause", ev.Cause),
		zap.Int("platform", ev.PlatformIndex),
		zap.Float64("x", ev.Position.X),
		zap.Float64("y", ev.Position.Y),
		zap.Uint64("steps", ev.Steps),
	)

	for _, l := range c.listeners {
		l.OnOutcome(ev)
	}
}
