package protocol

import "encoding/json"

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HostAuth 主持端鉴权字段，嵌入所有需要主持密钥的载荷
type HostAuth struct {
	Secret string `json:"secret"`
}

// --- 客户端 → 服务端 ---

// PingPayload 心跳
type PingPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// CreateRoomPayload 创建房间
type CreateRoomPayload struct {
	HostName string `json:"host_name"`
}

// JoinDisplayPayload 大屏加入房间
type JoinDisplayPayload struct {
	RoomCode string `json:"room_code"`
}

// JoinHostPayload 主持端凭密钥重新绑定房间
type JoinHostPayload struct {
	RoomCode string `json:"room_code"`
	Secret   string `json:"secret"`
}

// LoadGamePayload 加载服务端配置的游戏内容
type LoadGamePayload struct {
	HostAuth
}

// SetPlayersPayload 设置玩家名单
type SetPlayersPayload struct {
	HostAuth
	Players []PlayerInfo `json:"players"`
}

// CreateTeamPayload 创建队伍
type CreateTeamPayload struct {
	HostAuth
	Name string `json:"name"`
}

// AssignPlayerPayload 分配玩家到队伍，TeamID 为空表示移出队伍
type AssignPlayerPayload struct {
	HostAuth
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
}

// ReorderTurnOrderPayload 调整出场顺序
type ReorderTurnOrderPayload struct {
	HostAuth
	TeamIDs []string `json:"team_ids"`
}

// PhaseControlPayload 推进/回退/跳过/重置等仅需鉴权的流程控制
type PhaseControlPayload struct {
	HostAuth
}

// SetWingParticipationPayload 记录吃翅参与
type SetWingParticipationPayload struct {
	HostAuth
	PlayerID string `json:"player_id"`
	DidEat   bool   `json:"did_eat"`
}

// SetMinigamePointsPayload 设置小游戏待结算分
type SetMinigamePointsPayload struct {
	HostAuth
	PointsByTeamID map[string]float64 `json:"points_by_team_id"`
}

// RecordTriviaAttemptPayload 记录答题尝试
type RecordTriviaAttemptPayload struct {
	HostAuth
	IsCorrect bool `json:"is_correct"`
}

// AdjustScorePayload 手动调整总分
type AdjustScorePayload struct {
	HostAuth
	TeamID string `json:"team_id"`
	Delta  int    `json:"delta"`
}

// ExtendTimerPayload 延长计时器
type ExtendTimerPayload struct {
	HostAuth
	AdditionalSeconds int `json:"additional_seconds"`
}

// --- 服务端 → 客户端 ---

// PongPayload 心跳回应，回显客户端时间戳
type PongPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// RoomCreatedPayload 房间创建成功，主持密钥仅此一次下发
type RoomCreatedPayload struct {
	RoomCode   string `json:"room_code"`
	HostSecret string `json:"host_secret"`
}

// DisplayJoinedPayload 大屏加入成功
type DisplayJoinedPayload struct {
	RoomCode string `json:"room_code"`
}

// HostJoinedPayload 主持端重新绑定成功
type HostJoinedPayload struct {
	RoomCode string `json:"room_code"`
}

// RoomClosedPayload 房间已关闭
type RoomClosedPayload struct {
	RoomCode string `json:"room_code"`
}

// RoomStatePayload 房间状态快照，State 为引擎快照的 JSON 编码
type RoomStatePayload struct {
	RoomCode string          `json:"room_code"`
	State    json.RawMessage `json:"state"`
}

// ErrorPayload 错误消息
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
