package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gibberlink-dev/gibberlink-bridge/hostfuncs"
	"github.com/gibberlink-dev/gibberlink-bridge/wireformat"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// HostModuleName is the import module name under which the core sees the
// host functions.
const HostModuleName = "gibberlink_host"

// Executor manages the lifecycle of the gibberlink core module.
type Executor struct {
	runtime       wazero.Runtime
	registry      *hostfuncs.HandlerRegistry
	log           *slog.Logger
	maxEventSize  uint32
	maxReportSize uint32
}

// NewExecutor creates a new executor with the given options. It creates
// the wazero runtime, instantiates WASI, and registers the host module.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{}
	e.defaultLimits()
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = slog.Default()
	}

	// Default registry carries only the mandatory log_message handler.
	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry(
			hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()),
			hostfuncs.WithByteHandler(wireformat.FuncLogMessage, hostfuncs.NewLogMessageHandler(e.log)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerHostFunctions(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor, including any core
// instances still running.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// LoadCore instantiates the gibberlink core from its wasm binary and wires
// it to the executor's host functions.
func (e *Executor) LoadCore(ctx context.Context, wasmBytes []byte) (*CoreModule, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate core module: %w", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			mod.Close(ctx)
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return &CoreModule{
		module:        mod,
		log:           e.log,
		maxReportSize: e.maxReportSize,
	}, nil
}
