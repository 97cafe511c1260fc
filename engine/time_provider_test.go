package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1), "t1=%v t2=%v", t1, t2)
	assert.True(t, t2.Sub(t1) >= 10*time.Millisecond, "diff %v", t2.Sub(t1))
}

func TestManualTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualTimeProvider(start)

	assert.True(t, clock.Now().Equal(start))
	assert.True(t, clock.Now().Equal(start), "reading must not move the clock")

	clock.Advance(step)
	got := clock.Advance(step)
	assert.True(t, got.Equal(start.Add(2*step)))
	assert.True(t, clock.Now().Equal(got))
}
