package codec

import (
	"encoding/json"
	"fmt"

	"github.com/palemoky/wing-night/internal/protocol"
)

// NewMessage 构造带载荷的消息
func NewMessage(msgType protocol.MessageType, payload any) (*protocol.Message, error) {
	msg := &protocol.Message{Type: msgType}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("序列化载荷失败: %w", err)
		}
		msg.Payload = data
	}
	return msg, nil
}

// MustNewMessage 构造消息，序列化失败时 panic（仅用于服务端自有类型）
func MustNewMessage(msgType protocol.MessageType, payload any) *protocol.Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// DecodePayload 解码消息载荷
func DecodePayload(msg *protocol.Message, v any) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("消息 %s 缺少载荷", msg.Type)
	}
	return json.Unmarshal(msg.Payload, v)
}

// NewErrorMessage 按错误码构造错误消息
func NewErrorMessage(code int) *protocol.Message {
	text, ok := protocol.ErrorMessages[code]
	if !ok {
		text = protocol.ErrorMessages[protocol.ErrCodeUnknown]
	}
	return NewErrorMessageWithText(code, text)
}

// NewErrorMessageWithText 构造自定义文本的错误消息
func NewErrorMessageWithText(code int, text string) *protocol.Message {
	return MustNewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    code,
		Message: text,
	})
}
