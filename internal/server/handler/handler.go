package handler

import (
	"log"

	"github.com/palemoky/wing-night/internal/config"
	"github.com/palemoky/wing-night/internal/game/room"
	"github.com/palemoky/wing-night/internal/protocol"
	"github.com/palemoky/wing-night/internal/protocol/codec"
	"github.com/palemoky/wing-night/internal/server/storage"
	"github.com/palemoky/wing-night/internal/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Server      types.ServerInterface
	RoomManager *room.RoomManager
	Leaderboard *storage.LeaderboardManager
	Content     config.ContentConfig
}

// Handler 消息处理器
type Handler struct {
	server      types.ServerInterface
	roomManager *room.RoomManager
	leaderboard *storage.LeaderboardManager
	content     config.ContentConfig
	handlers    map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		server:      deps.Server,
		roomManager: deps.RoomManager,
		leaderboard: deps.Leaderboard,
		content:     deps.Content,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 房间操作
		protocol.MsgCreateRoom:  h.handleCreateRoom,
		protocol.MsgJoinDisplay: h.handleJoinDisplay,
		protocol.MsgJoinHost:    h.handleJoinHost,
		protocol.MsgLeaveRoom:   func(c types.ClientInterface, _ *protocol.Message) { h.handleLeaveRoom(c) },

		// 设置阶段操作
		protocol.MsgLoadGame:     h.handleLoadGame,
		protocol.MsgSetPlayers:   h.handleSetPlayers,
		protocol.MsgCreateTeam:   h.handleCreateTeam,
		protocol.MsgAssignPlayer: h.handleAssignPlayer,

		// 流程控制
		protocol.MsgAdvancePhase:     h.handleAdvancePhase,
		protocol.MsgRevertPhase:      h.handleRevertPhase,
		protocol.MsgSkipTurn:         h.handleSkipTurn,
		protocol.MsgReorderTurnOrder: h.handleReorderTurnOrder,
		protocol.MsgResetRoom:        h.handleResetRoom,

		// 计分操作
		protocol.MsgSetWingParticipation: h.handleSetWingParticipation,
		protocol.MsgSetMinigamePoints:    h.handleSetMinigamePoints,
		protocol.MsgRecordTriviaAttempt:  h.handleRecordTriviaAttempt,
		protocol.MsgAdjustScore:          h.handleAdjustScore,
		protocol.MsgRedoScoring:          h.handleRedoScoring,

		// 计时器操作
		protocol.MsgPauseTimer:  h.handlePauseTimer,
		protocol.MsgResumeTimer: h.handleResumeTimer,
		protocol.MsgExtendTimer: h.handleExtendTimer,
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (客户端: %s)", msg.Type, client.GetID())
	client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// hostRoom 解析并鉴权一条主持端指令：客户端必须在房间内、
// 角色为主持端、密钥与房间匹配。失败时直接回错误消息
func (h *Handler) hostRoom(client types.ClientInterface, secret string) (*room.Room, bool) {
	code := client.GetRoom()
	if code == "" {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return nil, false
	}

	r := h.roomManager.GetRoom(code)
	if r == nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeRoomNotFound))
		return nil, false
	}

	if client.GetRole() != types.RoleHost || secret != r.HostSecret {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeNotAuthorized))
		return nil, false
	}

	return r, true
}
