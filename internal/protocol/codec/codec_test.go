package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/wing-night/internal/protocol"
)

func TestNewMessage_RoundTrip(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(protocol.MsgJoinHost, protocol.JoinHostPayload{
		RoomCode: "ABC234",
		Secret:   "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgJoinHost, msg.Type)

	var got protocol.JoinHostPayload
	require.NoError(t, DecodePayload(msg, &got))
	assert.Equal(t, "ABC234", got.RoomCode)
	assert.Equal(t, "s3cret", got.Secret)
}

func TestNewMessage_NilPayload(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(protocol.MsgResumeTimer, nil)
	require.NoError(t, err)
	assert.Empty(t, msg.Payload)

	var got protocol.PhaseControlPayload
	assert.Error(t, DecodePayload(msg, &got), "decoding an empty payload should fail")
}

func TestNewErrorMessage_KnownCode(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(protocol.ErrCodeRoomNotFound)

	var payload protocol.ErrorPayload
	require.NoError(t, DecodePayload(msg, &payload))
	assert.Equal(t, protocol.ErrCodeRoomNotFound, payload.Code)
	assert.Equal(t, protocol.ErrorMessages[protocol.ErrCodeRoomNotFound], payload.Message)
}

func TestNewErrorMessage_UnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(99999)

	var payload protocol.ErrorPayload
	require.NoError(t, DecodePayload(msg, &payload))
	assert.Equal(t, 99999, payload.Code)
	assert.Equal(t, protocol.ErrorMessages[protocol.ErrCodeUnknown], payload.Message)
}

func TestNewErrorMessageWithText(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessageWithText(protocol.ErrCodeContentLoad, "game.yaml 第 3 行格式错误")

	var payload protocol.ErrorPayload
	require.NoError(t, DecodePayload(msg, &payload))
	assert.Equal(t, "game.yaml 第 3 行格式错误", payload.Message)
}
