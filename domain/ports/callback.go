package ports

import "github.com/gibberlink-dev/gibberlink-bridge/domain/entities"

// EventCallback receives hardware events from the core. Implementations
// must tolerate being called from whichever goroutine drives the core.
type EventCallback interface {
	OnHardwareEvent(ev entities.HardwareEvent)
}

// Retainer is an optional extension of EventCallback for callbacks that
// manage an external strong reference (a pinned host object, an OS handle).
// The registry retains on install and releases exactly once when the
// callback is replaced or unregistered and no delivery is in flight.
type Retainer interface {
	Retain()
	Release()
}

// EventCallbackFunc adapts a plain function to EventCallback.
type EventCallbackFunc func(ev entities.HardwareEvent)

// OnHardwareEvent implements EventCallback.
func (f EventCallbackFunc) OnHardwareEvent(ev entities.HardwareEvent) {
	f(ev)
}
