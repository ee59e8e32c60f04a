package testutil

import (
	"sync"

	"github.com/palemoky/wing-night/internal/types"
)

// MockServer 实现 types.ServerInterface 的内存版服务器，用于测试房间管理器与处理器
type MockServer struct {
	mu      sync.RWMutex
	clients map[string]types.ClientInterface
}

func NewMockServer() *MockServer {
	return &MockServer{clients: make(map[string]types.ClientInterface)}
}

func (s *MockServer) GetOnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *MockServer) GetClientByID(id string) types.ClientInterface {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.clients[id]; ok {
		return c
	}
	return nil
}

func (s *MockServer) RegisterClient(id string, client types.ClientInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[id] = client
}

func (s *MockServer) UnregisterClient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
}
