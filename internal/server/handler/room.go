package handler

import (
	"errors"
	"log"

	"github.com/palemoky/wing-night/internal/apperrors"
	"github.com/palemoky/wing-night/internal/content"
	"github.com/palemoky/wing-night/internal/game/room"
	"github.com/palemoky/wing-night/internal/protocol"
	"github.com/palemoky/wing-night/internal/protocol/codec"
	"github.com/palemoky/wing-night/internal/types"
)

// handleCreateRoom 处理主持端创建房间
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	// 已在房间中则先离开
	if client.GetRoom() != "" {
		h.roomManager.Leave(client)
	}

	r, err := h.roomManager.CreateRoom(client)
	if err != nil {
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
		return
	}

	// 主持密钥仅在创建时下发一次
	client.SendMessage(codec.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomCode:   r.Code,
		HostSecret: r.HostSecret,
	}))
}

// handleJoinDisplay 处理大屏端加入房间
func (h *Handler) handleJoinDisplay(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.JoinDisplayPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if client.GetRoom() != "" {
		h.roomManager.Leave(client)
	}

	r, err := h.roomManager.JoinDisplay(client, payload.RoomCode)
	if err != nil {
		h.sendGameError(client, err)
		return
	}

	client.SendMessage(codec.MustNewMessage(protocol.MsgDisplayJoined, protocol.DisplayJoinedPayload{
		RoomCode: r.Code,
	}))
}

// handleJoinHost 处理主持端凭密钥重新绑定房间
func (h *Handler) handleJoinHost(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.JoinHostPayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if client.GetRoom() != "" {
		h.roomManager.Leave(client)
	}

	r, err := h.roomManager.ReclaimHost(client, payload.RoomCode, payload.Secret)
	if err != nil {
		h.sendGameError(client, err)
		return
	}

	client.SendMessage(codec.MustNewMessage(protocol.MsgHostJoined, protocol.HostJoinedPayload{
		RoomCode: r.Code,
	}))
}

// handleLoadGame 加载服务端配置的游戏内容与题库。
// 内容文件损坏属于致命错误：房间被锁进错误状态，仅完全重置可恢复
func (h *Handler) handleLoadGame(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.LoadGamePayload
	if err := codec.DecodePayload(msg, &payload); err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, ok := h.hostRoom(client, payload.Secret)
	if !ok {
		return
	}

	game, err := content.LoadGame(h.content.GamePath)
	if err != nil {
		log.Printf("💥 房间 %s 游戏定义加载失败: %v", r.Code, err)
		h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
			return e.SetFatalError(protocol.ErrCodeContentLoad, err.Error())
		})
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeContentLoad, err.Error()))
		return
	}

	prompts, err := content.LoadTriviaPrompts(h.content.TriviaPath)
	if err != nil {
		log.Printf("💥 房间 %s 题库加载失败: %v", r.Code, err)
		h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
			return e.SetFatalError(protocol.ErrCodeContentLoad, err.Error())
		})
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeContentLoad, err.Error()))
		return
	}

	h.roomManager.Mutate(r, func(e *room.Engine) *room.RoomState {
		e.SetGameConfig(game)
		return e.SetTriviaPrompts(prompts)
	})
}

// sendGameError 把领域错误映射为协议错误消息
func (h *Handler) sendGameError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(codec.NewErrorMessage(gameErr.Code))
		return
	}
	client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
