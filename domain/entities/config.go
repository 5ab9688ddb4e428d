package entities

// DefaultMaxEventSize limits hardware event payloads crossing the boundary
// from the core (64KB). Prevents a misbehaving core from triggering OOM by
// claiming huge event sizes.
const DefaultMaxEventSize = 64 * 1024

// DefaultMaxReportSize limits the capability report buffer returned by the
// detector (4KB). The well-formed report is CapabilityMaskLen bytes; the
// limit only bounds damage from a corrupted core.
const DefaultMaxReportSize = 4 * 1024

// BridgeConfig is the host-side configuration of the bridge, typically
// loaded from a YAML file and validated before use.
type BridgeConfig struct {
	// CorePath is the filesystem path of the gibberlink core module.
	CorePath string `yaml:"core_path" json:"core_path" validate:"required"`

	// LogLevel selects the minimum slog level ("debug", "info", "warn",
	// "error"). Empty means "info".
	LogLevel string `yaml:"log_level" json:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// MaxEventSize caps hardware event payloads read from core memory.
	MaxEventSize uint32 `yaml:"max_event_size" json:"max_event_size" validate:"lte=16777216"`

	// MaxReportSize caps the capability report buffer read from core memory.
	MaxReportSize uint32 `yaml:"max_report_size" json:"max_report_size" validate:"lte=16777216"`
}

// DefaultBridgeConfig returns a BridgeConfig with the default limits set.
// CorePath is left empty and must be supplied by the caller.
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		LogLevel:      "info",
		MaxEventSize:  DefaultMaxEventSize,
		MaxReportSize: DefaultMaxReportSize,
	}
}

// ApplyDefaults fills zero-valued limits with their defaults.
func (c *BridgeConfig) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.MaxEventSize == 0 {
		c.MaxEventSize = DefaultMaxEventSize
	}
	if c.MaxReportSize == 0 {
		c.MaxReportSize = DefaultMaxReportSize
	}
}
