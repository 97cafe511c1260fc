package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/input"
	"github.com/lixenwraith/rocket-lander/vmath"
)

const step = constants.FixedTimestep

type testRig struct {
	clock      *ManualTimeProvider
	session    *Session
	controller *Controller
	events     []OutcomeEvent
}

func newRig(t *testing.T, opts ...Option) *testRig {
	t.Helper()
	r := &testRig{
		clock:   NewManualTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		session: NewSession(Textures{}),
	}
	opts = append(opts, WithListener(OutcomeListenerFunc(func(ev OutcomeEvent) {
		r.events = append(r.events, ev)
	})))
	r.controller = NewController(r.session, r.clock, opts...)
	return r
}

// tick advances wall time by n fixed steps and runs one update call
func (r *testRig) tick(n int) {
	r.clock.Advance(time.Duration(n) * step)
	r.controller.Update()
}

func TestUnattendedFallCrashesOnDangerousZone(t *testing.T) {
	r := newRig(t)
	p := &r.session.Player

	prevVel := p.Velocity.Y
	for i := 0; i < 2000 && r.session.Phase() == PhaseRunning; i++ {
		r.tick(1)
		if r.session.Phase() == PhaseRunning {
			require.Less(t, p.Velocity.Y, prevVel, "vertical velocity must keep decreasing, step %d", i)
			prevVel = p.Velocity.Y
		}
	}

	require.Equal(t, PhaseEnding, r.session.Phase())
	assert.Equal(t, constants.MessageFailure, r.session.Message)

	require.Len(t, r.events, 1)
	ev := r.events[0]
	assert.Equal(t, OutcomeFailure, ev.Outcome)
	assert.Equal(t, CauseCollision, ev.Cause)
	assert.Equal(t, 5, ev.PlatformIndex, "first dangerous platform wins the tie-break")
	assert.Equal(t, core.EntityDangerousZone, ev.PlatformType)
	assert.Equal(t, r.session.ID, ev.SessionID)
}

func TestLandingOnSafeZone(t *testing.T) {
	r := newRig(t)
	r.session.Player.Position = vmath.V3F(-2.5, -1.0, 0)

	for i := 0; i < 2000 && r.session.Phase() == PhaseRunning; i++ {
		r.tick(1)
	}

	require.Equal(t, PhaseEnding, r.session.Phase())
	assert.Equal(t, constants.MessageSuccess, r.session.Message)
	assert.Equal(t, constants.EndGameDisplayTime, r.session.Countdown)

	ev, ok := r.session.Outcome()
	require.True(t, ok)
	assert.Equal(t, OutcomeSuccess, ev.Outcome)
	assert.Equal(t, 3, ev.PlatformIndex)
	assert.Equal(t, 0.0, r.session.Player.Velocity.Y, "landing zeroes vertical velocity")
}

func TestOverlappingSafeZoneSucceeds(t *testing.T) {
	r := newRig(t)
	target := r.session.Platforms[2]
	r.session.Player.Position = vmath.V3F(target.Position.X+0.2, target.Position.Y+0.3, 0)

	r.tick(1)

	assert.Equal(t, PhaseEnding, r.session.Phase())
	assert.Equal(t, constants.MessageSuccess, r.session.Message)
	require.Len(t, r.events, 1)
	assert.Equal(t, CauseCollision, r.events[0].Cause)
	assert.Equal(t, 2, r.events[0].PlatformIndex)
}

func TestBoundsFailure(t *testing.T) {
	tests := []struct {
		name string
		pos  vmath.Vec3F
	}{
		{"Beyond right bound", vmath.V3F(6.0, 0, 0)},
		{"Beyond left bound", vmath.V3F(-5.2, 1, 0)},
		{"Below lower bound", vmath.V3F(0, -3.8, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			r.session.Player.Position = tt.pos

			r.tick(1)

			assert.Equal(t, PhaseEnding, r.session.Phase())
			assert.Equal(t, constants.MessageFailure, r.session.Message)
			require.Len(t, r.events, 1)
			assert.Equal(t, CauseBounds, r.events[0].Cause)
			assert.Equal(t, -1, r.events[0].PlatformIndex)
		})
	}
}

func TestNoStepBelowOneTimestep(t *testing.T) {
	r := newRig(t)
	start := r.session.Player

	r.clock.Advance(step / 2)
	r.controller.Update()

	assert.Equal(t, uint64(0), r.session.Steps())
	assert.Equal(t, start, r.session.Player)
	assert.Equal(t, step/2, r.controller.Accumulator().Residual())

	// Remainder carries into the next call
	r.clock.Advance(step / 2)
	r.controller.Update()
	assert.Equal(t, uint64(1), r.session.Steps())
}

func TestStepsMatchElapsedTime(t *testing.T) {
	r := newRig(t)
	elapsed := []time.Duration{3 * time.Millisecond, 40 * time.Millisecond, 16 * time.Millisecond, 17 * time.Millisecond, 90 * time.Millisecond}

	var total time.Duration
	for _, d := range elapsed {
		total += d
		r.clock.Advance(d)
		r.controller.Update()
	}

	require.Equal(t, PhaseRunning, r.session.Phase())
	assert.Equal(t, uint64(total/step), r.session.Steps())
}

func TestGravityOverwritesVerticalAcceleration(t *testing.T) {
	r := newRig(t)
	r.session.Player.Acceleration.Y = 50

	r.tick(1)

	assert.Equal(t, constants.Gravity, r.session.Player.Acceleration.Y)
	assert.Less(t, r.session.Player.Velocity.Y, 0.0)
}

func TestEndingFreezesPlayer(t *testing.T) {
	r := newRig(t)
	r.session.Player.Position = vmath.V3F(6.0, 0, 0)
	r.tick(1)
	require.Equal(t, PhaseEnding, r.session.Phase())

	frozen := r.session.Player
	steps := r.session.Steps()

	r.controller.ProcessInput(input.Controls{Right: true})
	r.tick(10)
	r.controller.ProcessInput(input.Controls{})
	r.tick(10)

	assert.Equal(t, frozen, r.session.Player)
	assert.Equal(t, steps, r.session.Steps())
	assert.Len(t, r.events, 1, "outcome is published once")
}

func TestCountdownTerminates(t *testing.T) {
	r := newRig(t)
	r.session.Player.Position = vmath.V3F(6.0, 0, 0)
	r.tick(1)
	require.Equal(t, PhaseEnding, r.session.Phase())
	require.Equal(t, 2*time.Second, r.session.Countdown)

	// ceil(2.0 / 0.0166666) = 121 calls
	calls := int((constants.EndGameDisplayTime + step - 1) / step)
	require.Equal(t, 121, calls)

	for i := 0; i < calls-1; i++ {
		r.controller.Update()
		require.Equal(t, PhaseEnding, r.session.Phase(), "call %d", i+1)
	}
	r.controller.Update()

	assert.Equal(t, PhaseTerminated, r.session.Phase())
	assert.False(t, r.session.Running())
	assert.Equal(t, time.Duration(0), r.session.Countdown)
}

func TestProcessInputThrust(t *testing.T) {
	tests := []struct {
		name  string
		ctl   input.Controls
		accel float64
	}{
		{"Left", input.Controls{Left: true}, -constants.HorizontalAcceleration},
		{"Right", input.Controls{Right: true}, constants.HorizontalAcceleration},
		{"Both prefers left", input.Controls{Left: true, Right: true}, -constants.HorizontalAcceleration},
		{"None", input.Controls{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			r.session.Player.Acceleration.X = 123
			r.controller.ProcessInput(tt.ctl)
			assert.Equal(t, tt.accel, r.session.Player.Acceleration.X)
		})
	}
}

func TestThrustMovesPlayer(t *testing.T) {
	r := newRig(t)

	r.controller.ProcessInput(input.Controls{Right: true})
	r.tick(10)

	assert.Greater(t, r.session.Player.Velocity.X, 0.0)
	assert.Greater(t, r.session.Player.Position.X, 0.0)
}

func TestFrictionPerCall(t *testing.T) {
	r := newRig(t)
	r.session.Player.Velocity.X = 2.0

	r.controller.ProcessInput(input.Controls{})
	assert.Equal(t, 1.5, r.session.Player.Velocity.X)

	// Several fixed steps within one call do not add friction
	r.tick(3)
	assert.Equal(t, 1.5, r.session.Player.Velocity.X)

	r.controller.ProcessInput(input.Controls{})
	r.controller.ProcessInput(input.Controls{})
	r.controller.ProcessInput(input.Controls{})
	assert.Equal(t, 0.0, r.session.Player.Velocity.X, "0.5 snaps to zero below threshold")
}

func TestFrictionPerStep(t *testing.T) {
	r := newRig(t, WithFrictionMode(FrictionPerStep))
	r.session.Player.Velocity.X = 2.0

	r.controller.ProcessInput(input.Controls{})
	assert.Equal(t, 2.0, r.session.Player.Velocity.X, "no friction at input time")

	r.tick(3)
	assert.Equal(t, 0.5, r.session.Player.Velocity.X)
}

func TestParseFrictionMode(t *testing.T) {
	m, err := ParseFrictionMode("per_step")
	require.NoError(t, err)
	assert.Equal(t, FrictionPerStep, m)

	m, err = ParseFrictionMode("")
	require.NoError(t, err)
	assert.Equal(t, FrictionPerCall, m)
	assert.Equal(t, "per_call", m.String())

	_, err = ParseFrictionMode("sometimes")
	assert.Error(t, err)
}

func TestOutcomeIsLogged(t *testing.T) {
	obsCore, logs := observer.New(zapcore.InfoLevel)
	r := newRig(t, WithLogger(zap.New(obsCore)))
	r.session.Player.Position = vmath.V3F(6.0, 0, 0)

	r.tick(1)

	entries := logs.FilterMessage("mission outcome").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "failure", fields["outcome"])
	assert.Equal(t, "bounds", fields["cause"])
	assert.Equal(t, 1, logs.FilterMessage("session started").Len())
}
