package entities

import "fmt"

// Subsystem identifies a native subsystem guarded by its own lock.
type Subsystem string

const (
	SubsystemProtocol      Subsystem = "protocol"
	SubsystemUltrasonic    Subsystem = "ultrasonic"
	SubsystemLaser         Subsystem = "laser"
	SubsystemRangeDetector Subsystem = "range_detector"
	SubsystemHardware      Subsystem = "hardware"
)

// Subsystems lists every known subsystem. The bridge allocates one lock per
// entry; the set is fixed at compile time.
func Subsystems() []Subsystem {
	return []Subsystem{
		SubsystemProtocol,
		SubsystemUltrasonic,
		SubsystemLaser,
		SubsystemRangeDetector,
		SubsystemHardware,
	}
}

// Capability identifies a hardware capability the core can probe for.
type Capability string

const (
	CapabilityUltrasonic Capability = "ultrasonic"
	CapabilityLaser      Capability = "laser"
	CapabilityPhotodiode Capability = "photodiode"
	CapabilityCamera     Capability = "camera"
)

// Capabilities lists every probeable capability in mask order.
func Capabilities() []Capability {
	return []Capability{
		CapabilityUltrasonic,
		CapabilityLaser,
		CapabilityPhotodiode,
		CapabilityCamera,
	}
}

// GuardedBy returns the subsystem whose lock serializes probes for the
// capability. The photodiode is the range detector's sensor; camera probes
// go through the general hardware lock.
func (c Capability) GuardedBy() Subsystem {
	switch c {
	case CapabilityUltrasonic:
		return SubsystemUltrasonic
	case CapabilityLaser:
		return SubsystemLaser
	case CapabilityPhotodiode:
		return SubsystemRangeDetector
	default:
		return SubsystemHardware
	}
}

// CapabilityMaskLen is the length of the raw capability mask produced by the
// core's detector: one byte per capability, in Capabilities() order.
const CapabilityMaskLen = 4

// CapabilityReport is the decoded form of the detector's capability mask.
type CapabilityReport struct {
	Ultrasonic bool `json:"ultrasonic" description:"Ultrasonic transducer present"`
	Laser      bool `json:"laser" description:"Laser emitter present"`
	Photodiode bool `json:"photodiode" description:"Photodiode receiver present"`
	Camera     bool `json:"camera" description:"Camera receiver present"`
}

// DecodeCapabilityMask decodes a raw detector mask into a CapabilityReport.
// Any nonzero byte marks the capability as present.
func DecodeCapabilityMask(mask []byte) (CapabilityReport, error) {
	if len(mask) != CapabilityMaskLen {
		return CapabilityReport{}, fmt.Errorf("capability mask must be %d bytes, got %d", CapabilityMaskLen, len(mask))
	}
	return CapabilityReport{
		Ultrasonic: mask[0] != 0,
		Laser:      mask[1] != 0,
		Photodiode: mask[2] != 0,
		Camera:     mask[3] != 0,
	}, nil
}

// EncodeMask returns the raw mask form of the report.
func (r CapabilityReport) EncodeMask() []byte {
	mask := make([]byte, CapabilityMaskLen)
	flags := []bool{r.Ultrasonic, r.Laser, r.Photodiode, r.Camera}
	for i, set := range flags {
		if set {
			mask[i] = 1
		}
	}
	return mask
}

// Has reports whether the given capability is present.
func (r CapabilityReport) Has(c Capability) bool {
	switch c {
	case CapabilityUltrasonic:
		return r.Ultrasonic
	case CapabilityLaser:
		return r.Laser
	case CapabilityPhotodiode:
		return r.Photodiode
	case CapabilityCamera:
		return r.Camera
	default:
		return false
	}
}
