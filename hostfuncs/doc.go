// Package hostfuncs provides the host functions the gibberlink core
// imports, and the registry/middleware machinery that dispatches them.
//
// Host functions use a byte-in/byte-out calling convention (JSON payloads)
// so the runtime adapter only has to move opaque byte slices across core
// memory. Cross-cutting behavior (panic recovery, logging) is layered with
// middleware at registry construction time.
package hostfuncs
