package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer_RemainingRecomputedLazily(t *testing.T) {
	t.Parallel()

	e, clock := newTestEngine()
	snap := advanceTo(e, PhaseEating)
	require.Equal(t, int64(90_000), snap.Timer.RemainingMs)

	clock.Advance(30 * time.Second)
	snap = e.Snapshot()
	assert.Equal(t, int64(60_000), snap.Timer.RemainingMs)

	// Past the deadline the remaining time floors at zero
	clock.Advance(2 * time.Minute)
	snap = e.Snapshot()
	assert.Zero(t, snap.Timer.RemainingMs)
	// Expiry is informational: the phase does not move on its own
	assert.Equal(t, PhaseEating, snap.Phase)
}

func TestTimer_PauseFreezesRemaining(t *testing.T) {
	t.Parallel()

	e, clock := newTestEngine()
	advanceTo(e, PhaseEating)

	clock.Advance(10 * time.Second)
	snap := e.PauseTimer()
	require.True(t, snap.Timer.IsPaused)
	assert.Equal(t, int64(80_000), snap.Timer.RemainingMs)

	// Wall clock keeps moving, the frozen value does not
	clock.Advance(1 * time.Minute)
	snap = e.Snapshot()
	assert.Equal(t, int64(80_000), snap.Timer.RemainingMs)

	// Pausing a paused timer is a no-op
	snap = e.PauseTimer()
	assert.Equal(t, int64(80_000), snap.Timer.RemainingMs)
}

func TestTimer_ResumeContinuesFromFrozenValue(t *testing.T) {
	t.Parallel()

	e, clock := newTestEngine()
	advanceTo(e, PhaseEating)

	clock.Advance(10 * time.Second)
	e.PauseTimer()
	clock.Advance(5 * time.Minute) // paused: does not count

	snap := e.ResumeTimer()
	require.False(t, snap.Timer.IsPaused)
	assert.Equal(t, int64(80_000), snap.Timer.RemainingMs)

	clock.Advance(20 * time.Second)
	snap = e.Snapshot()
	assert.Equal(t, int64(60_000), snap.Timer.RemainingMs)
}

func TestTimer_ResumeWithoutPauseIsNoop(t *testing.T) {
	t.Parallel()

	e, clock := newTestEngine()
	advanceTo(e, PhaseEating)

	clock.Advance(10 * time.Second)
	snap := e.ResumeTimer()
	assert.False(t, snap.Timer.IsPaused)
	assert.Equal(t, int64(80_000), snap.Timer.RemainingMs)
}

func TestTimer_Extend(t *testing.T) {
	t.Parallel()

	e, clock := newTestEngine()
	advanceTo(e, PhaseEating)

	snap := e.ExtendTimer(30)
	assert.Equal(t, int64(120_000), snap.Timer.DurationMs)
	assert.Equal(t, int64(120_000), snap.Timer.RemainingMs)

	// Invalid amounts are ignored
	snap = e.ExtendTimer(0)
	assert.Equal(t, int64(120_000), snap.Timer.DurationMs)
	snap = e.ExtendTimer(-5)
	assert.Equal(t, int64(120_000), snap.Timer.DurationMs)
	snap = e.ExtendTimer(TimerExtendMaxSeconds + 1)
	assert.Equal(t, int64(120_000), snap.Timer.DurationMs)

	// Extending while paused bumps the frozen remaining value too
	clock.Advance(20 * time.Second)
	e.PauseTimer()
	snap = e.ExtendTimer(10)
	assert.Equal(t, int64(110_000), snap.Timer.RemainingMs)
}

func TestTimer_OperationsWithoutTimerAreNoops(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	advanceTo(e, PhaseRoundIntro)

	snap := e.PauseTimer()
	assert.Nil(t, snap.Timer)
	snap = e.ResumeTimer()
	assert.Nil(t, snap.Timer)
	snap = e.ExtendTimer(30)
	assert.Nil(t, snap.Timer)
}

func TestTimer_MinigameDurationPerType(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	snap := advanceTo(e, PhaseMinigamePlay)

	// Round 1 is TRIVIA: 60 seconds from the fixture
	require.NotNil(t, snap.Timer)
	assert.Equal(t, PhaseMinigamePlay, snap.Timer.Phase)
	assert.Equal(t, int64(60_000), snap.Timer.DurationMs)
}
