package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeaderboardManager(t *testing.T) (*LeaderboardManager, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	lm := NewLeaderboardManager(client)
	return lm, mr
}

func TestLeaderboard_RecordAndGetNightResult(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	result := &NightResult{
		RoomCode:   "WNIGHT",
		FinishedAt: time.Now().Unix(),
		Teams: []TeamResult{
			{TeamID: "team-1", TeamName: "红队", TotalScore: 21},
			{TeamID: "team-2", TeamName: "蓝队", TotalScore: 17},
		},
	}

	err := lm.RecordNightResult(ctx, result)
	require.NoError(t, err)

	loaded, err := lm.GetNightResult(ctx, "WNIGHT")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "WNIGHT", loaded.RoomCode)
	assert.Len(t, loaded.Teams, 2)
	assert.Equal(t, 21, loaded.Teams[0].TotalScore)

	// Unknown room
	missing, err := lm.GetNightResult(ctx, "NOPE42")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLeaderboard_TopTeamsAccumulateAcrossNights(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	_ = lm.RecordNightResult(ctx, &NightResult{
		RoomCode: "NIGHT1",
		Teams: []TeamResult{
			{TeamID: "team-1", TeamName: "红队", TotalScore: 10},
			{TeamID: "team-2", TeamName: "蓝队", TotalScore: 12},
		},
	})
	_ = lm.RecordNightResult(ctx, &NightResult{
		RoomCode: "NIGHT2",
		Teams: []TeamResult{
			{TeamID: "team-1", TeamName: "红队", TotalScore: 8},
		},
	})

	entries, err := lm.GetTopTeams(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// 红队: 10+8=18, 蓝队: 12
	assert.Equal(t, "红队", entries[0].TeamName)
	assert.Equal(t, 18, entries[0].Score)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "蓝队", entries[1].TeamName)
}

func TestLeaderboard_EmptyResultIsNoop(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	assert.NoError(t, lm.RecordNightResult(ctx, nil))
	assert.NoError(t, lm.RecordNightResult(ctx, &NightResult{RoomCode: "EMPTY1"}))

	entries, err := lm.GetTopTeams(ctx, 5)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
