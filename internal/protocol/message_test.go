package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_EncodeDecode(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(JoinDisplayPayload{RoomCode: "ABC234"})
	require.NoError(t, err)

	msg := &Message{Type: MsgJoinDisplay, Payload: payload}
	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgJoinDisplay, decoded.Type)

	var got JoinDisplayPayload
	require.NoError(t, json.Unmarshal(decoded.Payload, &got))
	assert.Equal(t, "ABC234", got.RoomCode)
}

func TestMessage_EncodeOmitsEmptyPayload(t *testing.T) {
	t.Parallel()

	msg := &Message{Type: MsgPong}
	data, err := msg.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pong"}`, string(data))
}

func TestDecode_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestErrorMessages_CoverAllCodes(t *testing.T) {
	t.Parallel()

	codes := []int{
		ErrCodeUnknown,
		ErrCodeInvalidMsg,
		ErrCodeRoomNotFound,
		ErrCodeNotInRoom,
		ErrCodeHostExists,
		ErrCodeNotAuthorized,
		ErrCodeContentLoad,
	}
	for _, code := range codes {
		assert.NotEmpty(t, ErrorMessages[code], "error code %d has no message", code)
	}
}
