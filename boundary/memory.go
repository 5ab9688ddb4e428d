package boundary

import (
	"context"
	"unicode/utf8"

	"github.com/gibberlink-dev/gibberlink-bridge/domain/errors"
)

// Memory is the subset of core linear memory the translator needs.
// wazero's api.Memory satisfies it directly.
type Memory interface {
	// Read reads byteCount bytes starting at offset.
	// Returns false on out-of-range access.
	Read(offset, byteCount uint32) ([]byte, bool)

	// Write writes v starting at offset.
	// Returns false on out-of-range access.
	Write(offset uint32, v []byte) bool
}

// Alloc reserves size bytes inside core memory and returns the pointer.
// Implementations call the core's allocator export.
type Alloc func(ctx context.Context, size uint32) (uint32, error)

// BytesOut copies length bytes at ptr out of core memory into a host-owned
// slice. A null pointer or zero length yields nil without touching memory.
// Reads never go past length bytes. Returns nil if the read fails.
func BytesOut(mem Memory, ptr, length uint32) []byte {
	if ptr == 0 || length == 0 {
		return nil
	}
	data, ok := mem.Read(ptr, length)
	if !ok {
		return nil
	}
	// Copy out: the view returned by Read aliases core memory and is
	// invalidated by memory growth.
	out := make([]byte, length)
	copy(out, data)
	return out
}

// BytesIn allocates a core-owned buffer of matching length via alloc, writes
// data into it, and returns the packed ptr+len handle. Nil or empty input
// yields a zero handle and no allocation.
func BytesIn(ctx context.Context, mem Memory, alloc Alloc, data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	size := uint32(len(data))
	ptr, err := alloc(ctx, size)
	if err != nil {
		return 0, err
	}
	if !mem.Write(ptr, data) {
		return 0, &errors.MemoryError{Operation: "write", Ptr: ptr, Length: size}
	}
	return PackPtrLen(ptr, size), nil
}

// StringOut copies a core string out of memory. A null pointer yields
// ok=false, distinguishing "no string" from an empty string. Invalid UTF-8
// is passed through unmodified, matching Go's string conversion semantics.
func StringOut(mem Memory, ptr, length uint32) (string, bool) {
	if ptr == 0 {
		return "", false
	}
	if length == 0 {
		return "", true
	}
	data := BytesOut(mem, ptr, length)
	if data == nil {
		return "", false
	}
	return string(data), true
}

// ValidStringOut is StringOut restricted to well-formed UTF-8. Returns
// ok=false for a null pointer, a failed read, or malformed bytes.
func ValidStringOut(mem Memory, ptr, length uint32) (string, bool) {
	s, ok := StringOut(mem, ptr, length)
	if !ok {
		return "", false
	}
	if !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}
