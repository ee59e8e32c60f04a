package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/wing-night/internal/protocol"
	"github.com/palemoky/wing-night/internal/types"
)

// MockClient 实现 types.ClientInterface 的 mock
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetRoom() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetRoom(code string) {
	m.Called(code)
}

func (m *MockClient) GetRole() types.Role {
	args := m.Called()
	return args.Get(0).(types.Role)
}

func (m *MockClient) SetRole(role types.Role) {
	m.Called(role)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient 简单的 mock 客户端，不使用 testify（用于不需要断言调用的测试）
type SimpleClient struct {
	ID       string
	RoomCode string
	Role     types.Role
	Messages []*protocol.Message
}

func (c *SimpleClient) GetID() string                     { return c.ID }
func (c *SimpleClient) GetRoom() string                   { return c.RoomCode }
func (c *SimpleClient) SetRoom(code string)               { c.RoomCode = code }
func (c *SimpleClient) GetRole() types.Role               { return c.Role }
func (c *SimpleClient) SetRole(role types.Role)           { c.Role = role }
func (c *SimpleClient) SendMessage(msg *protocol.Message) { c.Messages = append(c.Messages, msg) }
func (c *SimpleClient) Close()                            {}

// LastMessage 最近收到的一条消息，没有则返回 nil
func (c *SimpleClient) LastMessage() *protocol.Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// MessagesOfType 按类型过滤收到的消息
func (c *SimpleClient) MessagesOfType(msgType protocol.MessageType) []*protocol.Message {
	var out []*protocol.Message
	for _, msg := range c.Messages {
		if msg.Type == msgType {
			out = append(out, msg)
		}
	}
	return out
}
