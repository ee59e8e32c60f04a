package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	e := NewEngine(clock.Now)

	// Name is trimmed, ids are sequential
	snap := e.CreateTeam("  红队  ")
	require.Len(t, snap.Teams, 1)
	assert.Equal(t, "team-1", snap.Teams[0].ID)
	assert.Equal(t, "红队", snap.Teams[0].Name)

	snap = e.CreateTeam("蓝队")
	require.Len(t, snap.Teams, 2)
	assert.Equal(t, "team-2", snap.Teams[1].ID)

	// Blank names are ignored
	snap = e.CreateTeam("   ")
	assert.Len(t, snap.Teams, 2)
	snap = e.CreateTeam("")
	assert.Len(t, snap.Teams, 2)
}

func TestCreateTeam_LockedOutsideSetup(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine()
	advanceTo(e, PhaseIntro)

	snap := e.CreateTeam("黄队")
	assert.Len(t, snap.Teams, 2)
}

func TestAssignPlayerToTeam_ExclusiveMembership(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	e := NewEngine(clock.Now)
	e.SetPlayers([]Player{{ID: "player-1", Name: "A"}})
	e.CreateTeam("红队")
	e.CreateTeam("蓝队")

	snap := e.AssignPlayerToTeam("player-1", "team-1")
	assert.Equal(t, []string{"player-1"}, snap.Teams[0].PlayerIDs)

	// Moving to another team removes the old membership
	snap = e.AssignPlayerToTeam("player-1", "team-2")
	assert.Empty(t, snap.Teams[0].PlayerIDs)
	assert.Equal(t, []string{"player-1"}, snap.Teams[1].PlayerIDs)

	// Empty team id unassigns
	snap = e.AssignPlayerToTeam("player-1", "")
	assert.Empty(t, snap.Teams[0].PlayerIDs)
	assert.Empty(t, snap.Teams[1].PlayerIDs)
}

func TestAssignPlayerToTeam_UnknownRefsIgnored(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	e := NewEngine(clock.Now)
	e.SetPlayers([]Player{{ID: "player-1", Name: "A"}})
	e.CreateTeam("红队")
	e.AssignPlayerToTeam("player-1", "team-1")

	// Unknown player: ignored, not an error
	snap := e.AssignPlayerToTeam("ghost", "team-1")
	assert.Equal(t, []string{"player-1"}, snap.Teams[0].PlayerIDs)

	// Unknown team: ignored, membership untouched
	snap = e.AssignPlayerToTeam("player-1", "team-99")
	assert.Equal(t, []string{"player-1"}, snap.Teams[0].PlayerIDs)
}

func TestSetPlayers_PrunesMemberships(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	e := NewEngine(clock.Now)
	e.SetPlayers([]Player{{ID: "player-1", Name: "A"}, {ID: "player-2", Name: "B"}})
	e.CreateTeam("红队")
	e.AssignPlayerToTeam("player-1", "team-1")
	e.AssignPlayerToTeam("player-2", "team-1")

	// Replacing the roster drops vanished players from teams
	snap := e.SetPlayers([]Player{{ID: "player-2", Name: "B"}})
	assert.Equal(t, []string{"player-2"}, snap.Teams[0].PlayerIDs)
	assert.Len(t, snap.Players, 1)
}

func TestSetPlayers_RecomputesPendingWingPoints(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	e := NewEngine(clock.Now)
	e.SetGameConfig(testGameDefinition())
	e.SetTriviaPrompts(testPrompts())
	e.SetPlayers([]Player{
		{ID: "player-1", Name: "A"},
		{ID: "player-2", Name: "B"},
		{ID: "player-3", Name: "C"},
	})
	e.CreateTeam("红队")
	e.CreateTeam("蓝队")
	e.AssignPlayerToTeam("player-1", "team-1")
	e.AssignPlayerToTeam("player-2", "team-1")
	e.AssignPlayerToTeam("player-3", "team-2")

	snap := advanceTo(e, PhaseEating)
	require.Equal(t, "team-1", snap.ActiveRoundTeamID)

	// Both eaters recorded: 2 players × 2 points per player
	e.SetWingParticipation("player-1", true)
	snap = e.SetWingParticipation("player-2", true)
	require.Equal(t, 4, snap.PendingWingPointsByTeamID["team-1"])

	// Dropping one eater mid-turn shrinks the pending points with them
	snap = e.SetPlayers([]Player{
		{ID: "player-1", Name: "A"},
		{ID: "player-3", Name: "C"},
	})
	assert.Equal(t, 2, snap.PendingWingPointsByTeamID["team-1"])
	assert.NotContains(t, snap.WingParticipationByPlayerID, "player-2")
}
