// Package errors provides domain-specific error types for the bridge.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is an interface for custom error types that can convert
// themselves to a structured ErrorDetail. New error types only need to
// implement this interface without modifying ToErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// It recognizes custom error types and categorizes them appropriately.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	// If the error is already a *ErrorDetail (entity), use it directly.
	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	// Generic error - categorize as internal
	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// HardwareError represents a failure while touching a hardware subsystem.
type HardwareError struct {
	Err       error
	Subsystem entities.Subsystem
	Operation string
}

func (e *HardwareError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("hardware %s failed on %s: %v", e.Operation, e.Subsystem, e.Err)
	}
	return fmt.Sprintf("hardware access failed on %s: %v", e.Subsystem, e.Err)
}

func (e *HardwareError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *HardwareError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "hardware", Code: string(e.Subsystem)}
}

// DetectError represents a capability detection failure.
type DetectError struct {
	Err    error
	Export string
}

func (e *DetectError) Error() string {
	if e.Export != "" {
		return fmt.Sprintf("capability detection via %s failed: %v", e.Export, e.Err)
	}
	return fmt.Sprintf("capability detection failed: %v", e.Err)
}

func (e *DetectError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *DetectError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "detect", Code: e.Export}
}

// CallbackError represents a failure in the event delivery path.
type CallbackError struct {
	Err       error
	Operation string
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("callback %s failed: %v", e.Operation, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *CallbackError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "callback", Code: e.Operation}
}

// MemoryError represents a failed read or write of core memory.
type MemoryError struct {
	Operation string // "read" or "write"
	Ptr       uint32
	Length    uint32
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("core memory %s failed at 0x%x (%d bytes)", e.Operation, e.Ptr, e.Length)
}

// ToErrorDetail implements DetailedError.
func (e *MemoryError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "internal", Code: "core_memory"}
}

// WireFormatError represents a wire format encoding/decoding error.
type WireFormatError struct {
	Err       error
	Operation string
	Type      string
}

func (e *WireFormatError) Error() string {
	return fmt.Sprintf("wire format %s failed for %s: %v", e.Operation, e.Type, e.Err)
}

func (e *WireFormatError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *WireFormatError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: "wire_format"}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: e.Field}
}
