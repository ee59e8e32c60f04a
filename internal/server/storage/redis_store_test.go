package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client)
	return store, mr
}

func TestRedisStore_SaveLoadDeleteRoomState(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	state := json.RawMessage(`{"phase":"EATING","currentRound":1}`)

	// Save
	err := store.SaveRoomState(ctx, "ABCD23", state)
	assert.NoError(t, err)

	// Load
	loaded, err := store.LoadRoomState(ctx, "ABCD23")
	assert.NoError(t, err)
	assert.JSONEq(t, string(state), string(loaded))

	// Delete
	err = store.DeleteRoom(ctx, "ABCD23")
	assert.NoError(t, err)

	loaded, err = store.LoadRoomState(ctx, "ABCD23")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_EmptyStateIsSkipped(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	err := store.SaveRoomState(ctx, "ABCD23", nil)
	assert.NoError(t, err)

	loaded, err := store.LoadRoomState(ctx, "ABCD23")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_GetAllRoomCodes(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_ = store.SaveRoomState(ctx, "ROOM23", json.RawMessage(`{}`))
	_ = store.SaveRoomState(ctx, "ROOM45", json.RawMessage(`{}`))

	codes, err := store.GetAllRoomCodes(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"ROOM23", "ROOM45"}, codes)
}
