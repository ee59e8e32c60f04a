package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Isolation(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	snap := advanceTo(e, PhaseEating)
	e.SetWingParticipation("player-1", true)

	// Mutating a snapshot must never leak into engine state
	snap.Teams[0].TotalScore = 999
	snap.Teams[0].PlayerIDs[0] = "hacked"
	snap.TurnOrderTeamIDs[0] = "hacked"
	snap.WingParticipationByPlayerID["player-1"] = false
	snap.PendingWingPointsByTeamID["team-1"] = 0
	snap.GameConfig.Rounds[0].PointsPerPlayer = 100
	snap.Timer.RemainingMs = 0
	snap.Phase = PhaseFinalResults

	fresh := e.Snapshot()
	assert.Equal(t, PhaseEating, fresh.Phase)
	assert.Zero(t, fresh.Teams[0].TotalScore)
	assert.Equal(t, "player-1", fresh.Teams[0].PlayerIDs[0])
	assert.Equal(t, "team-1", fresh.TurnOrderTeamIDs[0])
	assert.True(t, fresh.WingParticipationByPlayerID["player-1"])
	assert.Equal(t, 2, fresh.PendingWingPointsByTeamID["team-1"])
	assert.Equal(t, 2, fresh.GameConfig.Rounds[0].PointsPerPlayer)
}

func TestSetGameConfig_InputIsolation(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	e := NewEngine(clock.Now)

	game := testGameDefinition()
	e.SetGameConfig(game)

	// Caller keeps ownership of the passed definition
	game.Rounds[0].PointsPerPlayer = 50
	game.Timers.EatingSeconds = 1

	snap := e.Snapshot()
	assert.Equal(t, 2, snap.GameConfig.Rounds[0].PointsPerPlayer)
	assert.Equal(t, 90, snap.GameConfig.Timers.EatingSeconds)
	assert.Equal(t, 2, snap.TotalRounds)
}

func TestSetFatalError_BlocksAllMutations(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	advanceTo(e, PhaseEating)

	snap := e.SetFatalError(3001, "题库文件损坏")
	require.NotNil(t, snap.FatalError)
	assert.Equal(t, 3001, snap.FatalError.Code)
	assert.Equal(t, PhaseSetup, snap.Phase)
	assert.Empty(t, snap.Teams)
	assert.Nil(t, snap.Timer)
	assert.False(t, snap.CanAdvancePhase)
	assert.False(t, snap.CanRedoScoringMutation)

	// Every mutation is a no-op while the error stands
	snap = e.AdvancePhase()
	assert.Equal(t, PhaseSetup, snap.Phase)
	snap = e.CreateTeam("红队")
	assert.Empty(t, snap.Teams)
	snap = e.SetGameConfig(testGameDefinition())
	assert.NotNil(t, snap.FatalError)
	snap = e.AdjustTeamScore("team-1", 5)
	assert.Empty(t, snap.Teams)

	// The first error wins, later ones do not overwrite it
	snap = e.SetFatalError(2001, "别的错误")
	assert.Equal(t, 3001, snap.FatalError.Code)
}

func TestReset_RecoversFromFatalError(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	e.SetFatalError(3001, "题库文件损坏")

	snap := e.Reset()
	require.Nil(t, snap.FatalError)
	assert.Equal(t, PhaseSetup, snap.Phase)
	assert.Empty(t, snap.Players)
	assert.Empty(t, snap.Teams)
	assert.Nil(t, snap.GameConfig)
	assert.Zero(t, snap.CurrentRound)

	// Room is usable again from scratch
	e.SetGameConfig(testGameDefinition())
	e.SetTriviaPrompts(testPrompts())
	e.SetPlayers([]Player{{ID: "player-1", Name: "A"}})
	e.CreateTeam("红队")
	snap = e.AssignPlayerToTeam("player-1", "team-1")
	// Team ids restart from team-1 after a full reset
	assert.Equal(t, "team-1", snap.Teams[0].ID)
	assert.True(t, e.Snapshot().CanAdvancePhase)
}

func TestReset_MidGame(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	advanceTo(e, PhaseMinigamePlay)
	e.RecordTriviaAttempt(true)

	snap := e.Reset()
	assert.Equal(t, PhaseSetup, snap.Phase)
	assert.Empty(t, snap.PendingMinigamePointsByTeamID)
	assert.Nil(t, snap.MinigameHostView)
	assert.Nil(t, snap.Timer)
	assert.Equal(t, -1, snap.RoundTurnCursor)
}
