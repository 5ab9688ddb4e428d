// Package bridge exposes the gibberlink core to the host application. It
// is the boundary layer: every entry point wraps an interior,
// error-returning call in safecall, so a fault inside the core surfaces as
// the neutral sentinel for the return type (nil for buffers, false for
// booleans) plus exactly one log record, and never as a panic.
//
// A failed detection is indistinguishable from absent hardware; degrading
// to "unavailable" is the intended policy for optional capabilities.
package bridge

import (
	"context"
	"log/slog"

	"github.com/gibberlink-dev/gibberlink-bridge/boundary"
	"github.com/gibberlink-dev/gibberlink-bridge/callback"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/ports"
	"github.com/gibberlink-dev/gibberlink-bridge/safecall"
)

// Bridge is the host-facing surface of the gibberlink core.
type Bridge struct {
	core      ports.NativeCore
	callbacks *callback.Registry
	locks     *LockSet
	log       *slog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger used for boundary failure records.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bridge) {
		b.log = log
	}
}

// WithCallbackRegistry shares an existing callback registry, typically the
// one wired into the emit_hardware_event host function.
func WithCallbackRegistry(reg *callback.Registry) Option {
	return func(b *Bridge) {
		b.callbacks = reg
	}
}

// New creates a Bridge over the given core.
func New(core ports.NativeCore, opts ...Option) *Bridge {
	b := &Bridge{
		core:  core,
		locks: NewLockSet(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = slog.Default()
	}
	if b.callbacks == nil {
		b.callbacks = callback.NewRegistry()
	}
	return b
}

// Callbacks returns the bridge's callback registry for host function
// wiring and event delivery.
func (b *Bridge) Callbacks() *callback.Registry {
	return b.callbacks
}

// DetectHardwareCapabilities runs the core's hardware detector and returns
// the raw capability mask. Returns nil when the detector produced no data
// or any fault occurred; the core buffer is released exactly once either
// way.
func (b *Bridge) DetectHardwareCapabilities(ctx context.Context) []byte {
	return safecall.Bytes(b.log, "detect hardware capabilities", func() ([]byte, error) {
		var mask []byte
		err := b.locks.With(entities.SubsystemHardware, func() error {
			buf, err := b.core.DetectCapabilities(ctx)
			if err != nil {
				return err
			}
			mask = boundary.TakeBytes(buf)
			return nil
		})
		return mask, err
	})
}

// CheckUltrasonicHardwareAvailable reports whether an ultrasonic
// transducer is present. False on any fault.
func (b *Bridge) CheckUltrasonicHardwareAvailable(ctx context.Context) bool {
	return b.checkAvailable(ctx, "check ultrasonic hardware", entities.CapabilityUltrasonic)
}

// CheckLaserHardwareAvailable reports whether a laser emitter is present.
// False on any fault.
func (b *Bridge) CheckLaserHardwareAvailable(ctx context.Context) bool {
	return b.checkAvailable(ctx, "check laser hardware", entities.CapabilityLaser)
}

// CheckPhotodiodeHardwareAvailable reports whether a photodiode receiver
// is present. False on any fault.
func (b *Bridge) CheckPhotodiodeHardwareAvailable(ctx context.Context) bool {
	return b.checkAvailable(ctx, "check photodiode hardware", entities.CapabilityPhotodiode)
}

// CheckCameraHardwareAvailable reports whether a camera receiver is
// present. False on any fault.
func (b *Bridge) CheckCameraHardwareAvailable(ctx context.Context) bool {
	return b.checkAvailable(ctx, "check camera hardware", entities.CapabilityCamera)
}

// RegisterHardwareEventCallback installs cb as the hardware event
// callback, replacing any previous one. Registering nil clears the slot.
// Always returns true: the bookkeeping cannot fail, and the boolean exists
// for boundary API symmetry.
func (b *Bridge) RegisterHardwareEventCallback(cb ports.EventCallback) bool {
	b.callbacks.Register(cb)
	return true
}

// UnregisterHardwareEventCallback removes the current hardware event
// callback, if any. Always returns true.
func (b *Bridge) UnregisterHardwareEventCallback() bool {
	b.callbacks.Unregister()
	return true
}

// checkAvailable is the shared predicate path: probe under the matching
// subsystem lock, degrade to false through safecall.
func (b *Bridge) checkAvailable(ctx context.Context, op string, capability entities.Capability) bool {
	return safecall.Bool(b.log, op, func() (bool, error) {
		var available bool
		err := b.locks.With(capability.GuardedBy(), func() error {
			v, err := b.core.CapabilityAvailable(ctx, capability)
			if err != nil {
				return err
			}
			available = v
			return nil
		})
		return available, err
	})
}
