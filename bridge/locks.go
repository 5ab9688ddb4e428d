package bridge

import (
	"sync"

	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
)

// LockSet serializes access to the native subsystems. Each known subsystem
// carries its own mutex; every bridge operation that touches a subsystem
// runs its full critical section inside the matching guard, so access
// paths cannot bypass the lock.
type LockSet struct {
	locks map[entities.Subsystem]*sync.Mutex
}

// NewLockSet allocates one mutex per known subsystem.
func NewLockSet() *LockSet {
	locks := make(map[entities.Subsystem]*sync.Mutex, len(entities.Subsystems()))
	for _, sub := range entities.Subsystems() {
		locks[sub] = &sync.Mutex{}
	}
	return &LockSet{locks: locks}
}

// With runs fn while holding the subsystem's lock. The lock is released on
// every exit path, including a panic inside fn. An unknown subsystem falls
// back to the general hardware lock rather than running unguarded.
func (s *LockSet) With(sub entities.Subsystem, fn func() error) error {
	mu, ok := s.locks[sub]
	if !ok {
		mu = s.locks[entities.SubsystemHardware]
	}
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
