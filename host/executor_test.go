package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gibberlink-dev/gibberlink-bridge/callback"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	"github.com/gibberlink-dev/gibberlink-bridge/hostfuncs"
	"github.com/gibberlink-dev/gibberlink-bridge/internal/testutil"
	"github.com/gibberlink-dev/gibberlink-bridge/wireformat"
)

func TestNewExecutor_Defaults(t *testing.T) {
	ctx := context.Background()

	exec, err := NewExecutor(ctx)
	require.NoError(t, err)
	defer exec.Close(ctx)

	assert.Equal(t, uint32(entities.DefaultMaxEventSize), exec.maxEventSize)
	assert.Equal(t, uint32(entities.DefaultMaxReportSize), exec.maxReportSize)
	assert.True(t, exec.registry.Has(wireformat.FuncLogMessage), "default registry carries the log handler")
}

func TestNewExecutor_WithOptions(t *testing.T) {
	ctx := context.Background()
	log, _ := testutil.NewCaptureLogger()

	reg, err := hostfuncs.NewRegistry(
		hostfuncs.WithByteHandler(wireformat.FuncEmitHardwareEvent, hostfuncs.NewEmitEventHandler(callback.NewRegistry())),
		hostfuncs.WithByteHandler(wireformat.FuncLogMessage, hostfuncs.NewLogMessageHandler(log)),
	)
	require.NoError(t, err)

	exec, err := NewExecutor(ctx,
		WithHostFunctions(reg),
		WithLogger(log),
		WithMaxEventSize(1024),
		WithMaxReportSize(64),
	)
	require.NoError(t, err)
	defer exec.Close(ctx)

	assert.Same(t, reg, exec.registry)
	assert.Equal(t, uint32(1024), exec.maxEventSize)
	assert.Equal(t, uint32(64), exec.maxReportSize)
}

func TestNewExecutor_ZeroLimitsKeepDefaults(t *testing.T) {
	ctx := context.Background()

	exec, err := NewExecutor(ctx, WithMaxEventSize(0), WithMaxReportSize(0))
	require.NoError(t, err)
	defer exec.Close(ctx)

	assert.Equal(t, uint32(entities.DefaultMaxEventSize), exec.maxEventSize)
	assert.Equal(t, uint32(entities.DefaultMaxReportSize), exec.maxReportSize)
}

func TestExecutor_LoadCore_InvalidBinary(t *testing.T) {
	ctx := context.Background()

	exec, err := NewExecutor(ctx)
	require.NoError(t, err)
	defer exec.Close(ctx)

	_, err = exec.LoadCore(ctx, []byte("not a wasm binary"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to instantiate core module")
}

func TestCapabilityExports_CoverAllCapabilities(t *testing.T) {
	for _, capability := range entities.Capabilities() {
		assert.Contains(t, capabilityExports, capability)
	}
	assert.Len(t, capabilityExports, len(entities.Capabilities()))
}
