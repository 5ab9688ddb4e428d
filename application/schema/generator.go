// Package schema provides JSON schema generation for the bridge's wire
// types, so host applications can publish the shape of the events and
// reports they consume.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	"github.com/gibberlink-dev/gibberlink-bridge/wireformat"
)

// Generate creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
func Generate(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	s := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// CapabilityReport returns the JSON schema of the decoded capability
// report.
func CapabilityReport() ([]byte, error) {
	return Generate(entities.CapabilityReport{})
}

// HardwareEvent returns the JSON schema of the hardware event wire format.
func HardwareEvent() ([]byte, error) {
	return Generate(wireformat.HardwareEventWire{})
}
