package testutil

import (
	"sync"

	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
)

// CountingCallback is an event callback double that counts Retain/Release
// calls and records delivered events. The net retain-release count verifies
// the registry's durable-reference discipline.
type CountingCallback struct {
	mu       sync.Mutex
	retains  int
	releases int
	events   []entities.HardwareEvent
}

// OnHardwareEvent implements ports.EventCallback.
func (c *CountingCallback) OnHardwareEvent(ev entities.HardwareEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

// Retain implements ports.Retainer.
func (c *CountingCallback) Retain() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retains++
}

// Release implements ports.Retainer.
func (c *CountingCallback) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releases++
}

// Retains returns the number of Retain calls.
func (c *CountingCallback) Retains() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.retains
}

// Releases returns the number of Release calls.
func (c *CountingCallback) Releases() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.releases
}

// Net returns retains minus releases: 1 while installed, 0 once dropped.
func (c *CountingCallback) Net() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.retains - c.releases
}

// Events returns a copy of the delivered events.
func (c *CountingCallback) Events() []entities.HardwareEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.HardwareEvent, len(c.events))
	copy(out, c.events)
	return out
}
