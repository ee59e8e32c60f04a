package protocol

// 错误码
const (
	ErrCodeUnknown       = 1000
	ErrCodeInvalidMsg    = 1001
	ErrCodeRoomNotFound  = 2001
	ErrCodeNotInRoom     = 2002
	ErrCodeHostExists    = 2003 // 房间已有主持端
	ErrCodeNotAuthorized = 2004 // 主持密钥校验失败
	ErrCodeContentLoad   = 3001 // 游戏内容加载失败
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:       "未知错误",
	ErrCodeInvalidMsg:    "无效的消息格式",
	ErrCodeRoomNotFound:  "房间不存在",
	ErrCodeNotInRoom:     "您不在房间中",
	ErrCodeHostExists:    "房间已有主持端连接",
	ErrCodeNotAuthorized: "主持密钥校验失败",
	ErrCodeContentLoad:   "游戏内容加载失败",
}
