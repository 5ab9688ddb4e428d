// Package callback implements the hardware event callback registry: a
// single-slot, mutex-protected holder for the host application's event
// callback. The registry owns the only durable reference to the callback;
// replacing it releases the previous reference before the new one is
// installed, and deliveries in flight hold the reference alive until they
// complete.
package callback

import (
	"sync"

	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/ports"
)

// slotRef tracks one installed callback and the deliveries currently using
// it. A retired ref is released when its delivery count drops to zero.
type slotRef struct {
	cb      ports.EventCallback
	refs    int
	retired bool
}

// Registry holds at most one live callback reference. The zero value is
// not usable; create instances with NewRegistry. One mutex covers the full
// release-then-acquire sequence of Register, so concurrent Register and
// Unregister calls cannot double-release or leak a reference.
type Registry struct {
	mu  sync.Mutex
	ref *slotRef
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register installs cb as the current callback. Any previously installed
// callback is released first; installing nil just empties the slot. The
// bookkeeping never fails.
func (r *Registry) Register(cb ports.EventCallback) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.retireLocked()
	if cb == nil {
		return
	}
	retain(cb)
	r.ref = &slotRef{cb: cb}
}

// Unregister empties the slot, releasing the current callback if one is
// installed. No-op on an empty registry.
func (r *Registry) Unregister() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retireLocked()
}

// Registered reports whether a callback is currently installed.
func (r *Registry) Registered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ref != nil
}

// Deliver invokes the current callback with ev, if one is installed.
// The callback runs outside the registry lock; the reference is held for
// the duration of the call so a concurrent Register or Unregister cannot
// release it mid-delivery.
func (r *Registry) Deliver(ev entities.HardwareEvent) {
	r.mu.Lock()
	ref := r.ref
	if ref != nil {
		ref.refs++
	}
	r.mu.Unlock()

	if ref == nil {
		return
	}
	defer r.done(ref)
	ref.cb.OnHardwareEvent(ev)
}

// retireLocked detaches the current ref. If no delivery is in flight the
// reference is released immediately; otherwise the last finishing delivery
// releases it. Callers must hold r.mu.
func (r *Registry) retireLocked() {
	old := r.ref
	if old == nil {
		return
	}
	r.ref = nil
	old.retired = true
	if old.refs == 0 {
		release(old.cb)
	}
}

// done drops one delivery reference; the last one on a retired ref
// releases the callback.
func (r *Registry) done(ref *slotRef) {
	r.mu.Lock()
	ref.refs--
	last := ref.refs == 0 && ref.retired
	r.mu.Unlock()

	if last {
		release(ref.cb)
	}
}

func retain(cb ports.EventCallback) {
	if ret, ok := cb.(ports.Retainer); ok {
		ret.Retain()
	}
}

func release(cb ports.EventCallback) {
	if ret, ok := cb.(ports.Retainer); ok {
		ret.Release()
	}
}
