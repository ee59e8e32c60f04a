package apperrors

import (
	"github.com/palemoky/wing-night/internal/protocol"
)

// GameError 游戏错误（房间和传输层共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound  = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrNotInRoom     = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrHostExists    = &GameError{Code: protocol.ErrCodeHostExists, Message: "房间已有主持端连接"}
	ErrNotAuthorized = &GameError{Code: protocol.ErrCodeNotAuthorized, Message: "主持密钥校验失败"}
	ErrContentLoad   = &GameError{Code: protocol.ErrCodeContentLoad, Message: "游戏内容加载失败"}
)
