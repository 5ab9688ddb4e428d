package host

import (
	"context"
	"fmt"

	"github.com/gibberlink-dev/gibberlink-bridge/boundary"
	"github.com/gibberlink-dev/gibberlink-bridge/hostfuncs"
	"github.com/tetratelabs/wazero/api"
)

// ExportAlloc is the core export the host calls to allocate response
// buffers inside core memory.
const ExportAlloc = "gibberlink_alloc"

// registerHostFunctions builds the gibberlink_host module from the handler
// registry. Every handler uses the packed i64 ptr+len convention: the core
// passes its request as a packed pointer into its own memory, and the host
// writes the JSON response into core memory allocated via gibberlink_alloc.
func (e *Executor) registerHostFunctions(ctx context.Context) error {
	builder := e.runtime.NewHostModuleBuilder(HostModuleName)

	for _, name := range e.registry.Names() {
		localName := name // capture for closure
		builder.NewFunctionBuilder().
			WithFunc(func(ctx context.Context, m api.Module, packed uint64) uint64 {
				return e.dispatch(ctx, m, localName, packed)
			}).
			Export(name)
	}

	_, err := builder.Instantiate(ctx)
	return err
}

// dispatch reads the request out of core memory, invokes the named handler,
// and writes the response back. Failures are answered with ErrorResponse
// JSON where possible and a zero handle otherwise; the core never traps on
// a host-side fault.
func (e *Executor) dispatch(ctx context.Context, m api.Module, name string, packed uint64) uint64 {
	ptr, length := boundary.UnpackPtrLen(packed)

	if length > e.maxEventSize {
		errMsg := fmt.Sprintf("request size %d exceeds maximum %d bytes", length, e.maxEventSize)
		e.log.Error("host function request rejected", "function", name, "error", errMsg)
		return e.writeResponse(ctx, m, hostfuncs.NewValidationError(errMsg).ToJSON())
	}

	payload := boundary.BytesOut(m.Memory(), ptr, length)
	if payload == nil && length > 0 {
		e.log.Error("failed to read host function request from core memory", "function", name)
		return e.writeResponse(ctx, m, hostfuncs.NewInternalError("failed to read request from core memory").ToJSON())
	}

	resp, err := e.registry.Invoke(ctx, name, payload)
	if err != nil {
		e.log.Error("host function invocation failed", "function", name, "error", err)
		return e.writeResponse(ctx, m, hostfuncs.NewInternalError(err.Error()).ToJSON())
	}

	return e.writeResponse(ctx, m, resp)
}

// writeResponse allocates core memory via the gibberlink_alloc export and
// writes data into it. Returns the packed ptr+len handle, or 0 when the
// core offers no allocator or the write fails.
func (e *Executor) writeResponse(ctx context.Context, m api.Module, data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}

	allocFn := m.ExportedFunction(ExportAlloc)
	if allocFn == nil {
		e.log.Error("core module missing allocator export", "export", ExportAlloc)
		return 0
	}

	alloc := func(ctx context.Context, size uint32) (uint32, error) {
		results, err := allocFn.Call(ctx, uint64(size))
		if err != nil {
			return 0, err
		}
		if len(results) == 0 {
			return 0, fmt.Errorf("%s returned no results", ExportAlloc)
		}
		return uint32(results[0]), nil
	}

	packed, err := boundary.BytesIn(ctx, m.Memory(), alloc, data)
	if err != nil {
		e.log.Error("failed to write host function response to core memory", "error", err)
		return 0
	}
	return packed
}
