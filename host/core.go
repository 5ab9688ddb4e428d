package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gibberlink-dev/gibberlink-bridge/boundary"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/errors"
	"github.com/tetratelabs/wazero/api"
)

// Core export names. These mirror the C ABI of the native gibberlink
// library; the wasm build of the core exports the same symbols.
const (
	ExportDetectCapabilities = "detect_hardware_capabilities"
	ExportFreeData           = "gibberlink_free_data"

	ExportCheckUltrasonic = "check_ultrasonic_hardware_available"
	ExportCheckLaser      = "check_laser_hardware_available"
	ExportCheckPhotodiode = "check_photodiode_hardware_available"
	ExportCheckCamera     = "check_camera_hardware_available"
)

// capabilityExports maps each probeable capability to its core export.
var capabilityExports = map[entities.Capability]string{
	entities.CapabilityUltrasonic: ExportCheckUltrasonic,
	entities.CapabilityLaser:      ExportCheckLaser,
	entities.CapabilityPhotodiode: ExportCheckPhotodiode,
	entities.CapabilityCamera:     ExportCheckCamera,
}

// CoreModule adapts an instantiated gibberlink core to ports.NativeCore.
type CoreModule struct {
	module        api.Module
	log           *slog.Logger
	maxReportSize uint32
}

// DetectCapabilities calls the core's detector and wraps the returned
// buffer as an OwnedBuffer whose release returns it to the core allocator.
// A null result from the detector yields (nil, nil).
func (c *CoreModule) DetectCapabilities(ctx context.Context) (*boundary.OwnedBuffer, error) {
	fn := c.module.ExportedFunction(ExportDetectCapabilities)
	if fn == nil {
		return nil, &errors.DetectError{
			Export: ExportDetectCapabilities,
			Err:    fmt.Errorf("core does not export %q", ExportDetectCapabilities),
		}
	}

	results, err := fn.Call(ctx)
	if err != nil {
		return nil, &errors.DetectError{Export: ExportDetectCapabilities, Err: err}
	}
	if len(results) == 0 {
		return nil, &errors.DetectError{
			Export: ExportDetectCapabilities,
			Err:    fmt.Errorf("detector returned no results"),
		}
	}

	ptr, length := boundary.UnpackPtrLen(results[0])
	if ptr == 0 || length == 0 {
		return nil, nil
	}

	if length > c.maxReportSize {
		c.free(ctx, ptr, length)
		return nil, &errors.DetectError{
			Export: ExportDetectCapabilities,
			Err:    fmt.Errorf("report size %d exceeds maximum %d bytes", length, c.maxReportSize),
		}
	}

	data := boundary.BytesOut(c.module.Memory(), ptr, length)
	if data == nil {
		c.free(ctx, ptr, length)
		return nil, &errors.MemoryError{Operation: "read", Ptr: ptr, Length: length}
	}

	// The buffer bytes are already copied to host memory; release only has
	// to hand the core region back. Detached from ctx so a caller timeout
	// cannot leak core memory.
	freeCtx := context.WithoutCancel(ctx)
	return boundary.NewOwnedBuffer(data, func() {
		c.free(freeCtx, ptr, length)
	}), nil
}

// CapabilityAvailable probes one hardware capability via its core export.
// A missing export is a fault, not "unavailable": the bridge layer decides
// how to degrade.
func (c *CoreModule) CapabilityAvailable(ctx context.Context, capability entities.Capability) (bool, error) {
	export, ok := capabilityExports[capability]
	if !ok {
		return false, &errors.HardwareError{
			Subsystem: capability.GuardedBy(),
			Operation: "probe",
			Err:       fmt.Errorf("unknown capability %q", capability),
		}
	}

	fn := c.module.ExportedFunction(export)
	if fn == nil {
		return false, &errors.HardwareError{
			Subsystem: capability.GuardedBy(),
			Operation: "probe",
			Err:       fmt.Errorf("core does not export %q", export),
		}
	}

	results, err := fn.Call(ctx)
	if err != nil {
		return false, &errors.HardwareError{Subsystem: capability.GuardedBy(), Operation: "probe", Err: err}
	}
	if len(results) == 0 {
		return false, &errors.HardwareError{
			Subsystem: capability.GuardedBy(),
			Operation: "probe",
			Err:       fmt.Errorf("%s returned no results", export),
		}
	}
	return uint32(results[0]) != 0, nil
}

// Close tears down the core instance.
func (c *CoreModule) Close(ctx context.Context) error {
	return c.module.Close(ctx)
}

// free returns a core-owned buffer to the core allocator. Failure to free
// is logged and swallowed: the core instance owns its memory and reclaims
// it wholesale on Close.
func (c *CoreModule) free(ctx context.Context, ptr, length uint32) {
	fn := c.module.ExportedFunction(ExportFreeData)
	if fn == nil {
		c.log.Warn("core module missing free export, leaking buffer until close", "export", ExportFreeData)
		return
	}
	if _, err := fn.Call(ctx, uint64(ptr), uint64(length)); err != nil {
		c.log.Error("failed to free core buffer", "error", err, "ptr", ptr, "length", length)
	}
}
