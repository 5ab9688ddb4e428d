// Package boundary implements the byte translation layer between core
// memory and host types. It handles:
//
//   - Converting between packed i64 pointer+length format and byte slices
//   - Reading buffers and strings out of core linear memory
//   - Allocating and writing host data into core memory
//   - Owned-buffer handles whose release is structurally exactly-once
//
// Errors at this layer are communicated by nil/empty results rather than
// panics; null pointers and zero lengths are treated as valid no-op inputs,
// never as failures.
package boundary
