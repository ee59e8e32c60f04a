package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvancePhase_SetupGuard(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	e := NewEngine(clock.Now)

	// No config, no teams: advance must be a silent no-op
	snap := e.AdvancePhase()
	assert.Equal(t, PhaseSetup, snap.Phase)
	assert.False(t, snap.CanAdvancePhase)

	// Config loaded but an orphan player remains
	e.SetGameConfig(testGameDefinition())
	e.SetPlayers([]Player{{ID: "player-1", Name: "A"}, {ID: "player-2", Name: "B"}})
	e.CreateTeam("红队")
	e.AssignPlayerToTeam("player-1", "team-1")
	snap = e.AdvancePhase()
	assert.Equal(t, PhaseSetup, snap.Phase)

	// Empty team blocks advance too
	e.CreateTeam("蓝队")
	snap = e.Snapshot()
	assert.False(t, snap.CanAdvancePhase)

	// Fully valid setup unlocks INTRO
	e.AssignPlayerToTeam("player-2", "team-2")
	snap = e.Snapshot()
	assert.True(t, snap.CanAdvancePhase)
	snap = e.AdvancePhase()
	assert.Equal(t, PhaseIntro, snap.Phase)
}

func TestAdvancePhase_IntroToRoundIntro(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	snap := advanceTo(e, PhaseRoundIntro)

	require.Equal(t, PhaseRoundIntro, snap.Phase)
	assert.Equal(t, 1, snap.CurrentRound)
	require.NotNil(t, snap.CurrentRoundConfig)
	assert.Equal(t, 2, snap.CurrentRoundConfig.PointsPerPlayer)
	assert.Equal(t, []string{"team-1", "team-2"}, snap.TurnOrderTeamIDs)
	assert.Equal(t, 0, snap.RoundTurnCursor)
	assert.Equal(t, "team-1", snap.ActiveRoundTeamID)
	assert.Empty(t, snap.CompletedRoundTurnTeamIDs)
}

func TestAdvancePhase_EatingStartsTimer(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	snap := advanceTo(e, PhaseEating)

	require.NotNil(t, snap.Timer)
	assert.Equal(t, PhaseEating, snap.Timer.Phase)
	assert.Equal(t, int64(90_000), snap.Timer.DurationMs)
	assert.Equal(t, int64(90_000), snap.Timer.RemainingMs)

	// Timer is cleared on entering MINIGAME_INTRO
	snap = e.AdvancePhase()
	require.Equal(t, PhaseMinigameIntro, snap.Phase)
	assert.Nil(t, snap.Timer)
}

func TestAdvancePhase_TurnLoopCompleteness(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	snap := advanceTo(e, PhaseEating)

	// Two teams: exactly two EATING→MINIGAME_INTRO→MINIGAME_PLAY cycles
	for teamIdx := 0; teamIdx < 2; teamIdx++ {
		require.Equal(t, PhaseEating, snap.Phase)
		assert.Equal(t, teamIdx, snap.RoundTurnCursor)
		snap = e.AdvancePhase()
		require.Equal(t, PhaseMinigameIntro, snap.Phase)
		snap = e.AdvancePhase()
		require.Equal(t, PhaseMinigamePlay, snap.Phase)
		snap = e.AdvancePhase()
	}

	require.Equal(t, PhaseRoundResults, snap.Phase)
	assert.Equal(t, snap.TurnOrderTeamIDs, snap.CompletedRoundTurnTeamIDs)
	assert.Equal(t, -1, snap.RoundTurnCursor)
	assert.Empty(t, snap.ActiveRoundTeamID)
}

func TestAdvancePhase_SecondRoundAndFinalResults(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	snap := advanceTo(e, PhaseRoundResults)

	snap = e.AdvancePhase()
	require.Equal(t, PhaseRoundIntro, snap.Phase)
	assert.Equal(t, 2, snap.CurrentRound)
	assert.Equal(t, 3, snap.CurrentRoundConfig.PointsPerPlayer)
	assert.Empty(t, snap.CompletedRoundTurnTeamIDs)

	snap = advanceTo(e, PhaseFinalResults)
	require.Equal(t, PhaseFinalResults, snap.Phase)
}

func TestAdvancePhase_FinalResultsIdempotent(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	snap := advanceTo(e, PhaseFinalResults)
	require.Equal(t, PhaseFinalResults, snap.Phase)
	round := snap.CurrentRound
	assert.False(t, snap.CanAdvancePhase)

	for i := 0; i < 5; i++ {
		snap = e.AdvancePhase()
		assert.Equal(t, PhaseFinalResults, snap.Phase)
		assert.Equal(t, round, snap.CurrentRound)
	}
}

func TestRevertPhaseTransition(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	snap := advanceTo(e, PhaseMinigamePlay)
	require.NotNil(t, snap.MinigameHostView)

	// MINIGAME_PLAY → MINIGAME_INTRO drops the projection and the timer
	snap = e.RevertPhaseTransition()
	require.Equal(t, PhaseMinigameIntro, snap.Phase)
	assert.Nil(t, snap.MinigameHostView)
	assert.Nil(t, snap.Timer)
	assert.Empty(t, snap.ActiveTurnTeamID)

	// MINIGAME_INTRO → EATING restarts a full eating timer
	snap = e.RevertPhaseTransition()
	require.Equal(t, PhaseEating, snap.Phase)
	require.NotNil(t, snap.Timer)
	assert.Equal(t, int64(90_000), snap.Timer.RemainingMs)

	// First team of the round: EATING → ROUND_INTRO
	snap = e.RevertPhaseTransition()
	require.Equal(t, PhaseRoundIntro, snap.Phase)
	assert.Nil(t, snap.Timer)

	// No further rollback defined here
	snap = e.RevertPhaseTransition()
	assert.Equal(t, PhaseRoundIntro, snap.Phase)
}

func TestRevertPhaseTransition_NotFirstTeam(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	advanceTo(e, PhaseMinigamePlay)
	snap := e.AdvancePhase() // second team's EATING
	require.Equal(t, PhaseEating, snap.Phase)
	require.Equal(t, 1, snap.RoundTurnCursor)

	// Rolling back into the previous team's turn is not allowed
	snap = e.RevertPhaseTransition()
	assert.Equal(t, PhaseEating, snap.Phase)
	assert.Equal(t, 1, snap.RoundTurnCursor)
}

func TestSkipTurnBoundary(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	snap := advanceTo(e, PhaseEating)

	// Skipping from EATING lands on the next team's EATING,
	// exactly like advancing through the whole turn would
	e.SetWingParticipation("player-1", true)
	snap = e.SkipTurnBoundary()
	require.Equal(t, PhaseEating, snap.Phase)
	assert.Equal(t, "team-2", snap.ActiveRoundTeamID)
	assert.Equal(t, []string{"team-1"}, snap.CompletedRoundTurnTeamIDs)
	// Captured pending points survive the skip
	assert.Equal(t, 2, snap.PendingWingPointsByTeamID["team-1"])

	// Last team: skip goes straight to ROUND_RESULTS
	snap = e.SkipTurnBoundary()
	require.Equal(t, PhaseRoundResults, snap.Phase)

	// Outside the turn loop the escape hatch is a no-op
	snap = e.SkipTurnBoundary()
	assert.Equal(t, PhaseRoundResults, snap.Phase)
}

func TestSkipTurnBoundary_FromMinigamePlay(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	advanceTo(e, PhaseMinigamePlay)
	e.SetPendingMinigamePoints(map[string]float64{"team-1": 4})

	snap := e.SkipTurnBoundary()
	require.Equal(t, PhaseEating, snap.Phase)
	assert.Equal(t, "team-2", snap.ActiveRoundTeamID)
	assert.Equal(t, 4, snap.PendingMinigamePointsByTeamID["team-1"])
	assert.Nil(t, snap.MinigameHostView)
}
