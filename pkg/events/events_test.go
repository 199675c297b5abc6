package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProtocolChange(t *testing.T) {
	change := ProtocolChange{
		UserID:    42,
		Active:    true,
		Reason:    "manual review",
		ChangedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(change)
	require.NoError(t, err)

	parsed, err := ParseProtocolChange(payload)
	require.NoError(t, err)
	assert.Equal(t, change, parsed)

	_, err = ParseProtocolChange([]byte("{not json"))
	assert.Error(t, err)
}

func TestListener_DispatchFansOut(t *testing.T) {
	l := NewListener("postgres://unused")

	var got []string
	l.handlersMu.Lock()
	l.handlers[ProtocolStatusChannel] = []Handler{
		func(_ string, payload []byte) { got = append(got, "a:"+string(payload)) },
		func(_ string, payload []byte) { got = append(got, "b:"+string(payload)) },
	}
	l.handlersMu.Unlock()

	l.dispatch(ProtocolStatusChannel, []byte("x"))
	l.dispatch("other_channel", []byte("y"))

	assert.Equal(t, []string{"a:x", "b:x"}, got)
}
