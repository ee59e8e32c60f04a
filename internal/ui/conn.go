package ui

import (
	"encoding/json"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	"github.com/palemoky/wing-night/internal/game/room"
	"github.com/palemoky/wing-night/internal/protocol"
	"github.com/palemoky/wing-night/internal/protocol/codec"
)

// --- tea 消息 ---

// ConnectedMsg 已加入房间
type ConnectedMsg struct{ RoomCode string }

// StateMsg 收到新的房间状态快照
type StateMsg struct{ State *room.RoomState }

// ErrMsg 服务端错误
type ErrMsg struct {
	Code    int
	Message string
}

// ClosedMsg 房间已关闭
type ClosedMsg struct{}

// DisconnectedMsg 连接断开
type DisconnectedMsg struct{ Err error }

// Conn 大屏端到服务器的 WebSocket 连接
type Conn struct {
	ws       *websocket.Conn
	incoming chan tea.Msg
}

// Dial 建立连接并以大屏身份加入房间
func Dial(serverURL, roomCode string) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
	if err != nil {
		return nil, err
	}

	c := &Conn{
		ws:       ws,
		incoming: make(chan tea.Msg, 16),
	}

	join := codec.MustNewMessage(protocol.MsgJoinDisplay, protocol.JoinDisplayPayload{
		RoomCode: roomCode,
	})
	data, err := join.Encode()
	if err != nil {
		ws.Close()
		return nil, err
	}
	if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
		ws.Close()
		return nil, err
	}

	go c.readLoop()
	return c, nil
}

// Recv 阻塞等待下一条消息，作为 tea.Cmd 使用
func (c *Conn) Recv() tea.Msg {
	msg, ok := <-c.incoming
	if !ok {
		return DisconnectedMsg{}
	}
	return msg
}

// Close 关闭连接
func (c *Conn) Close() {
	_ = c.ws.Close()
}

// readLoop 持续读取服务端消息并翻译为 tea 消息
func (c *Conn) readLoop() {
	defer close(c.incoming)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			c.incoming <- DisconnectedMsg{Err: err}
			return
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			log.Printf("消息解析错误: %v", err)
			continue
		}

		switch msg.Type {
		case protocol.MsgDisplayJoined:
			var payload protocol.DisplayJoinedPayload
			if err := codec.DecodePayload(msg, &payload); err == nil {
				c.incoming <- ConnectedMsg{RoomCode: payload.RoomCode}
			}

		case protocol.MsgRoomState:
			var payload protocol.RoomStatePayload
			if err := codec.DecodePayload(msg, &payload); err != nil {
				continue
			}
			var state room.RoomState
			if err := json.Unmarshal(payload.State, &state); err != nil {
				log.Printf("解析房间状态失败: %v", err)
				continue
			}
			c.incoming <- StateMsg{State: &state}

		case protocol.MsgRoomClosed:
			c.incoming <- ClosedMsg{}

		case protocol.MsgError:
			var payload protocol.ErrorPayload
			if err := codec.DecodePayload(msg, &payload); err == nil {
				c.incoming <- ErrMsg{Code: payload.Code, Message: payload.Message}
			}

		case protocol.MsgPong:
			// ignore
		}
	}
}
