package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "room:"

	// 房间快照过期时间，覆盖一整晚的活动加余量
	roomExpiration = 6 * time.Hour
)

// RedisStore 房间快照的 Redis 存储。每次状态变更后整份覆写，
// 服务重启后可用于恢复展示（不恢复进行中的计时器）
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoomState 保存房间状态快照（JSON 编码后的引擎快照）
func (rs *RedisStore) SaveRoomState(ctx context.Context, roomCode string, state json.RawMessage) error {
	if len(state) == 0 {
		return nil
	}
	key := roomKeyPrefix + roomCode
	return rs.client.Set(ctx, key, []byte(state), roomExpiration).Err()
}

// LoadRoomState 加载房间状态快照，房间不存在时返回 nil
func (rs *RedisStore) LoadRoomState(ctx context.Context, roomCode string) (json.RawMessage, error) {
	key := roomKeyPrefix + roomCode
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(data), nil
}

// DeleteRoom 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, roomCode string) error {
	key := roomKeyPrefix + roomCode
	return rs.client.Del(ctx, key).Err()
}

// GetAllRoomCodes 获取所有存活房间号
func (rs *RedisStore) GetAllRoomCodes(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(keys))
	for i, key := range keys {
		codes[i] = key[len(roomKeyPrefix):]
	}
	return codes, nil
}
