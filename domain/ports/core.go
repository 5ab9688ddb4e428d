package ports

import (
	"context"

	"github.com/gibberlink-dev/gibberlink-bridge/boundary"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
)

// NativeCore is the interior contract of the gibberlink core. All methods
// return errors; translating failures to boundary sentinels (nil, false)
// happens exactly once, in the bridge layer.
type NativeCore interface {
	// DetectCapabilities runs the core's hardware detector and returns the
	// capability mask as an owned buffer. A (nil, nil) return means the
	// detector produced no data, which the boundary reports as null.
	// The caller must release the buffer; bridge code does so via
	// boundary.TakeBytes.
	DetectCapabilities(ctx context.Context) (*boundary.OwnedBuffer, error)

	// CapabilityAvailable probes a single hardware capability.
	CapabilityAvailable(ctx context.Context, c entities.Capability) (bool, error)

	// Close tears down the core instance.
	Close(ctx context.Context) error
}
