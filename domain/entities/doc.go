// Package entities contains the core domain types of the gibberlink host
// bridge: subsystems, hardware capabilities, capability reports, hardware
// events, structured error details, and the bridge configuration.
//
// These types have no dependencies on the runtime or transport layers and
// define the vocabulary shared by the bridge, the host function layer, and
// the wire format.
package entities
