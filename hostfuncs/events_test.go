package hostfuncs

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gibberlink-dev/gibberlink-bridge/callback"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	"github.com/gibberlink-dev/gibberlink-bridge/internal/testutil"
	"github.com/gibberlink-dev/gibberlink-bridge/wireformat"
)

func emitEvent(t *testing.T, handler ByteHandler, wire wireformat.HardwareEventWire) wireformat.EventAckWire {
	t.Helper()
	payload, err := json.Marshal(wire)
	require.NoError(t, err)

	out, err := handler(context.Background(), payload)
	require.NoError(t, err)

	var ack wireformat.EventAckWire
	require.NoError(t, json.Unmarshal(out, &ack))
	return ack
}

func TestEmitEventHandler_DeliversToRegistry(t *testing.T) {
	reg := callback.NewRegistry()
	cb := &testutil.CountingCallback{}
	reg.Register(cb)

	handler := NewEmitEventHandler(reg)
	ack := emitEvent(t, handler, wireformat.HardwareEventWire{
		Subsystem:       string(entities.SubsystemLaser),
		Kind:            "alignment_lost",
		Payload:         []byte{0xde, 0xad},
		TimestampUnixMs: 1700000000000,
	})

	assert.True(t, ack.Delivered)
	assert.Nil(t, ack.Error)

	events := cb.Events()
	require.Len(t, events, 1)
	assert.Equal(t, entities.SubsystemLaser, events[0].Subsystem)
	assert.Equal(t, "alignment_lost", events[0].Kind)
	assert.Equal(t, []byte{0xde, 0xad}, events[0].Payload)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), events[0].Timestamp)
}

func TestEmitEventHandler_NoCallbackInstalled(t *testing.T) {
	handler := NewEmitEventHandler(callback.NewRegistry())
	ack := emitEvent(t, handler, wireformat.HardwareEventWire{
		Subsystem: string(entities.SubsystemHardware),
		Kind:      "capability_changed",
	})

	assert.False(t, ack.Delivered, "ack reports that no callback was installed")
	assert.Nil(t, ack.Error, "an empty slot is not an error")
}

func TestEmitEventHandler_MalformedEvent(t *testing.T) {
	reg := callback.NewRegistry()
	cb := &testutil.CountingCallback{}
	reg.Register(cb)
	handler := NewEmitEventHandler(reg)

	t.Run("unknown subsystem", func(t *testing.T) {
		ack := emitEvent(t, handler, wireformat.HardwareEventWire{
			Subsystem: "thermal",
			Kind:      "overheat",
		})
		require.NotNil(t, ack.Error)
		assert.Contains(t, ack.Error.Message, "thermal")
		assert.False(t, ack.Delivered)
	})

	t.Run("empty kind", func(t *testing.T) {
		ack := emitEvent(t, handler, wireformat.HardwareEventWire{
			Subsystem: string(entities.SubsystemLaser),
		})
		require.NotNil(t, ack.Error)
		assert.False(t, ack.Delivered)
	})

	assert.Empty(t, cb.Events(), "malformed events never reach the callback")
}

func TestLogMessageHandler(t *testing.T) {
	log, captured := testutil.NewCaptureLogger()
	handler := NewLogMessageHandler(log)

	payload, err := json.Marshal(wireformat.LogMessageWire{Level: "warn", Message: "laser drifting"})
	require.NoError(t, err)
	_, err = handler(context.Background(), payload)
	require.NoError(t, err)

	records := captured.Records()
	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelWarn, records[0].Level)
	assert.Equal(t, "laser drifting", records[0].Message)
}

func TestCoreLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, coreLevel("debug"))
	assert.Equal(t, slog.LevelInfo, coreLevel("info"))
	assert.Equal(t, slog.LevelWarn, coreLevel("warn"))
	assert.Equal(t, slog.LevelError, coreLevel("error"))
	assert.Equal(t, slog.LevelInfo, coreLevel("trace"), "unknown levels map to info")
}
