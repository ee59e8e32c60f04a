package handler

import (
	"github.com/palemoky/wing-night/internal/protocol"
	"github.com/palemoky/wing-night/internal/protocol/codec"
	"github.com/palemoky/wing-night/internal/types"
)

// handlePing 处理心跳消息
func (h *Handler) handlePing(client types.ClientInterface, msg *protocol.Message) {
	var payload protocol.PingPayload
	_ = codec.DecodePayload(msg, &payload)

	client.SendMessage(codec.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		Timestamp: payload.Timestamp,
	}))
}

// handleLeaveRoom 处理离开房间
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	h.roomManager.Leave(client)
}
