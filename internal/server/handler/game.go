package handler

import (
	"github.com/palemoky/wing-night/internal/game/room"
	"github.com/palemoky/wing-night/internal/protocol"
	"github.com/palemoky/wing-night/internal/protocol/codec"
	"github.com/palemoky/wing-night/internal/types"
)

// mutateAuthorized 解码仅需鉴权的流程控制载荷并执行引擎变更。
// 引擎对非法调用静默忽略，处理层不再重复校验业务前置条件
func (h *Handler) mutateAuthorized(client types.ClientInterface, msg *protocol.Message,
	fn func(e *room.Engine) *room.RoomState) {
	var payload protocol.PhaseControlPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	h.roomManager.Mutate(r, fn)
}

// --- 设置阶段 ---

func (h *Handler) handleSetPlayers(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.SetPlayersPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	players := make([]room.Player, 0, len(payload.Players))
	for _, p := range payload.Players {
		players = append(players, room.Player{ID: p.ID, Name: p.Name})
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		return e.SetPlayers(players)
	})
}

func (h *Handler) handleCreateTeam(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.CreateTeamPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		return e.CreateTeam(payload.Name)
	})
}

func (h *Handler) handleAssignPlayer(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.AssignPlayerPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		return e.AssignPlayerToTeam(payload.PlayerID, payload.TeamID)
	})
}

// --- 流程控制 ---

func (h *Handler) handleAdvancePhase(client types.ClientInterface, msg *protocol.Message) {
	h.mutateAuthorized(client, msg, func(e *room.Engine) *room.RoomState {
		return e.AdvancePhase()
	})
}

func (h *Handler) handleRevertPhase(client types.ClientInterface, msg *protocol.Message) {
	h.mutateAuthorized(client, msg, func(e *room.Engine) *room.RoomState {
		return e.RevertPhaseTransition()
	})
}

func (h *Handler) handleSkipTurn(client types.ClientInterface, msg *protocol.Message) {
	h.mutateAuthorized(client, msg, func(e *room.Engine) *room.RoomState {
		return e.SkipTurnBoundary()
	})
}

func (h *Handler) handleReorderTurnOrder(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.ReorderTurnOrderPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		return e.ReorderTurnOrder(payload.TeamIDs)
	})
}

func (h *Handler) handleResetRoom(client types.ClientInterface, msg *protocol.Message) {
	h.mutateAuthorized(client, msg, func(e *room.Engine) *room.RoomState {
		return e.Reset()
	})
}

// --- 计分 ---

func (h *Handler) handleSetWingParticipation(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.SetWingParticipationPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		return e.SetWingParticipation(payload.PlayerID, payload.DidEat)
	})
}

func (h *Handler) handleSetMinigamePoints(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.SetMinigamePointsPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		return e.SetPendingMinigamePoints(payload.PointsByTeamID)
	})
}

func (h *Handler) handleRecordTriviaAttempt(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.RecordTriviaAttemptPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		return e.RecordTriviaAttempt(payload.IsCorrect)
	})
}

func (h *Handler) handleAdjustScore(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.AdjustScorePayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		return e.AdjustTeamScore(payload.TeamID, payload.Delta)
	})
}

func (h *Handler) handleRedoScoring(client types.ClientInterface, msg *protocol.Message) {
	h.mutateAuthorized(client, msg, func(e *room.Engine) *room.RoomState {
		return e.RedoLastScoringMutation()
	})
}

// --- 计时器 ---

func (h *Handler) handlePauseTimer(client types.ClientInterface, msg *protocol.Message) {
	h.mutateAuthorized(client, msg, func(e *room.Engine) *room.RoomState {
		return e.PauseTimer()
	})
}

func (h *Handler) handleResumeTimer(client types.ClientInterface, msg *protocol.Message) {
	h.mutateAuthorized(client, msg, func(e *room.Engine) *room.RoomState {
		return e.ResumeTimer()
	})
}

func (h *Handler) handleExtendTimer(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.ExtendTimerPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		return e.ExtendTimer(payload.AdditionalSeconds)
	})
}
