// Package wireformat defines the JSON wire format structures exchanged
// between the host and the gibberlink core. These types must remain stable
// and backward compatible as they define the ABI contract.
package wireformat

import (
	"fmt"
	"time"

	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
)

// FuncEmitHardwareEvent is the host function the core calls to deliver a
// hardware event.
const FuncEmitHardwareEvent = "emit_hardware_event"

// FuncLogMessage is the host function the core calls to emit a log record.
const FuncLogMessage = "log_message"

// ErrorDetail is the wire error format, shared with the domain layer.
type ErrorDetail = entities.ErrorDetail

// HardwareEventWire is the JSON wire format of a hardware event sent from
// core to host over emit_hardware_event. Payload travels base64-encoded
// (encoding/json's []byte convention).
type HardwareEventWire struct {
	Subsystem       string `json:"subsystem"`
	Kind            string `json:"kind"`
	Payload         []byte `json:"payload,omitempty"`
	TimestampUnixMs int64  `json:"timestamp_unix_ms"`
}

// EventAckWire is the host's JSON response to emit_hardware_event.
type EventAckWire struct {
	Error     *ErrorDetail `json:"error,omitempty"`
	Delivered bool         `json:"delivered"`
}

// LogMessageWire is the JSON wire format of a core log record sent over
// log_message.
type LogMessageWire struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// knownSubsystems guards the wire boundary against events for subsystems
// this host build does not know about.
var knownSubsystems = func() map[entities.Subsystem]struct{} {
	m := make(map[entities.Subsystem]struct{})
	for _, s := range entities.Subsystems() {
		m[s] = struct{}{}
	}
	return m
}()

// ToEvent converts the wire form into a domain HardwareEvent.
// Unknown subsystems and empty kinds are rejected.
func (w HardwareEventWire) ToEvent() (entities.HardwareEvent, error) {
	sub := entities.Subsystem(w.Subsystem)
	if _, ok := knownSubsystems[sub]; !ok {
		return entities.HardwareEvent{}, fmt.Errorf("unknown subsystem %q", w.Subsystem)
	}
	if w.Kind == "" {
		return entities.HardwareEvent{}, fmt.Errorf("event kind cannot be empty")
	}
	return entities.HardwareEvent{
		Subsystem: sub,
		Kind:      w.Kind,
		Payload:   w.Payload,
		Timestamp: time.UnixMilli(w.TimestampUnixMs).UTC(),
	}, nil
}

// FromEvent converts a domain HardwareEvent into its wire form.
func FromEvent(ev entities.HardwareEvent) HardwareEventWire {
	return HardwareEventWire{
		Subsystem:       string(ev.Subsystem),
		Kind:            ev.Kind,
		Payload:         ev.Payload,
		TimestampUnixMs: ev.Timestamp.UnixMilli(),
	}
}
