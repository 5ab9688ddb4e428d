package entities

import "time"

// HardwareEvent is a notification produced by the core when a hardware
// subsystem changes state (a capability appears or disappears, a sensor
// trips, and so on). Events cross the core boundary through the
// emit_hardware_event host function and are fanned out to the registered
// callback.
type HardwareEvent struct {
	// Subsystem is the subsystem that produced the event.
	Subsystem Subsystem `json:"subsystem"`

	// Kind is a core-defined event discriminator (for example
	// "capability_changed" or "alignment_lost").
	Kind string `json:"kind"`

	// Payload is an opaque, kind-specific byte blob. May be empty.
	Payload []byte `json:"payload,omitempty"`

	// Timestamp is when the core observed the event.
	Timestamp time.Time `json:"timestamp"`
}
