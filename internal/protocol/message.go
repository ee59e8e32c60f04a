package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode 编码消息为 JSON
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode 解码 JSON 消息
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom  MessageType = "create_room"  // 主持端创建房间
	MsgJoinDisplay MessageType = "join_display" // 大屏端加入房间
	MsgJoinHost    MessageType = "join_host"    // 主持端凭密钥重新绑定房间
	MsgLeaveRoom   MessageType = "leave_room"   // 离开房间

	// 设置阶段操作（仅主持端）
	MsgLoadGame     MessageType = "load_game"     // 加载游戏内容
	MsgSetPlayers   MessageType = "set_players"   // 设置玩家名单
	MsgCreateTeam   MessageType = "create_team"   // 创建队伍
	MsgAssignPlayer MessageType = "assign_player" // 分配玩家到队伍

	// 流程控制（仅主持端）
	MsgAdvancePhase     MessageType = "advance_phase"      // 推进阶段
	MsgRevertPhase      MessageType = "revert_phase"       // 回退一步
	MsgSkipTurn         MessageType = "skip_turn"          // 跳过当前队伍回合边界
	MsgReorderTurnOrder MessageType = "reorder_turn_order" // 调整出场顺序
	MsgResetRoom        MessageType = "reset_room"         // 完全重置房间

	// 计分操作（仅主持端）
	MsgSetWingParticipation MessageType = "set_wing_participation" // 记录吃翅参与
	MsgSetMinigamePoints    MessageType = "set_minigame_points"    // 设置小游戏待结算分
	MsgRecordTriviaAttempt  MessageType = "record_trivia_attempt"  // 记录答题尝试
	MsgAdjustScore          MessageType = "adjust_score"           // 手动调整总分
	MsgRedoScoring          MessageType = "redo_scoring"           // 回放最近一次计分变更

	// 计时器操作（仅主持端）
	MsgPauseTimer  MessageType = "pause_timer"  // 暂停计时器
	MsgResumeTimer MessageType = "resume_timer" // 恢复计时器
	MsgExtendTimer MessageType = "extend_timer" // 延长计时器
)

// 服务端 → 客户端 消息类型
const (
	MsgPong          MessageType = "pong"           // 心跳 pong
	MsgRoomCreated   MessageType = "room_created"   // 房间创建成功
	MsgDisplayJoined MessageType = "display_joined" // 大屏加入成功
	MsgHostJoined    MessageType = "host_joined"    // 主持端重新绑定成功
	MsgRoomState     MessageType = "room_state"     // 房间状态快照广播
	MsgRoomClosed    MessageType = "room_closed"    // 房间已关闭
	MsgError         MessageType = "error"          // 错误消息
)
