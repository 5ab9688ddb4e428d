// Package host manages the lifecycle of the gibberlink core module: it
// owns the wazero runtime, registers the host functions the core imports,
// instantiates the core, and adapts its exports to the ports.NativeCore
// contract consumed by the bridge.
package host
