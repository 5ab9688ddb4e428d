package boundary

import "sync"

// OwnedBuffer pairs a byte region obtained from the core with the release
// function that returns it to the core allocator. Release is idempotent:
// the paired function runs at most once regardless of how many exit paths
// reach it.
type OwnedBuffer struct {
	data    []byte
	release func()
	once    sync.Once
}

// NewOwnedBuffer wraps data and its release function. A nil release is
// allowed for buffers that need no teardown (test doubles, already-copied
// data).
func NewOwnedBuffer(data []byte, release func()) *OwnedBuffer {
	return &OwnedBuffer{data: data, release: release}
}

// Bytes returns the underlying bytes. The slice is only valid until
// Release is called.
func (b *OwnedBuffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the buffer length.
func (b *OwnedBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Release returns the buffer to its producer. Safe to call more than once
// and on a nil buffer.
func (b *OwnedBuffer) Release() {
	if b == nil {
		return
	}
	b.once.Do(func() {
		b.data = nil
		if b.release != nil {
			b.release()
		}
	})
}

// TakeBytes copies the buffer contents into host-owned memory and releases
// the buffer, as a single scoped operation. This is the only way bridge
// code converts a core buffer, so release on every exit path is
// structurally guaranteed. Nil-safe: TakeBytes(nil) returns nil.
func TakeBytes(b *OwnedBuffer) []byte {
	if b == nil {
		return nil
	}
	defer b.Release()
	src := b.Bytes()
	if len(src) == 0 {
		return nil
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out
}
