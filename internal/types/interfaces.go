package types

import (
	"github.com/palemoky/wing-night/internal/protocol"
)

// Role 连接在房间中的角色
type Role string

const (
	RoleNone    Role = ""
	RoleHost    Role = "host"    // 主持端：可见答案，可发指令
	RoleDisplay Role = "display" // 大屏端：只读，不可见答案
)

// ServerInterface 定义服务器接口（用于打破循环依赖）
type ServerInterface interface {
	GetOnlineCount() int
	GetClientByID(id string) ClientInterface
	RegisterClient(id string, client ClientInterface)
	UnregisterClient(id string)
}

// ClientInterface 定义客户端接口
type ClientInterface interface {
	GetID() string
	GetRoom() string
	SetRoom(code string)
	GetRole() Role
	SetRole(role Role)
	SendMessage(msg *protocol.Message)
	Close()
}
