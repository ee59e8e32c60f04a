package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	teamLeaderboardKey = "leaderboard:teams"
	nightResultPrefix  = "night:"

	// 当晚战绩保留时间
	nightResultExpiration = 30 * 24 * time.Hour
)

// TeamResult 一支队伍的最终战绩
type TeamResult struct {
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	TotalScore int    `json:"total_score"`
	WingsEaten int    `json:"wings_eaten"` // 全场吃完的翅膀人次
}

// NightResult 一场活动的最终榜单
type NightResult struct {
	RoomCode   string       `json:"room_code"`
	FinishedAt int64        `json:"finished_at"`
	Teams      []TeamResult `json:"teams"`
}

// LeaderboardEntry 跨场次队伍排行榜条目
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	TeamName string `json:"team_name"`
	Score    int    `json:"score"`
}

// LeaderboardManager 排行榜管理器。到达最终结算时记录一次当晚战绩，
// 并把各队得分累加进跨场次榜单
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// RecordNightResult 记录一场活动的最终战绩
func (lm *LeaderboardManager) RecordNightResult(ctx context.Context, result *NightResult) error {
	if result == nil || len(result.Teams) == 0 {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	pipe := lm.redis.Pipeline()
	pipe.Set(ctx, nightResultPrefix+result.RoomCode, data, nightResultExpiration)
	for _, team := range result.Teams {
		pipe.ZIncrBy(ctx, teamLeaderboardKey, float64(team.TotalScore), team.TeamName)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// GetNightResult 获取一场活动的最终战绩，不存在时返回 nil
func (lm *LeaderboardManager) GetNightResult(ctx context.Context, roomCode string) (*NightResult, error) {
	data, err := lm.redis.Get(ctx, nightResultPrefix+roomCode).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var result NightResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTopTeams 获取跨场次队伍排行榜
func (lm *LeaderboardManager) GetTopTeams(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	results, err := lm.redis.ZRevRangeWithScores(ctx, teamLeaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, z := range results {
		name, _ := z.Member.(string)
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			TeamName: name,
			Score:    int(z.Score),
		})
	}
	return entries, nil
}
