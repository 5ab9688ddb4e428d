package host

import (
	"log/slog"

	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	"github.com/gibberlink-dev/gibberlink-bridge/hostfuncs"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithHostFunctions configures the executor with a host function registry.
// Without this option the executor builds a registry containing only the
// mandatory log_message handler.
func WithHostFunctions(registry *hostfuncs.HandlerRegistry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithLogger sets the structured logger used by the executor and the
// handlers it creates by default.
func WithLogger(log *slog.Logger) Option {
	return func(e *Executor) {
		e.log = log
	}
}

// WithMaxEventSize caps the size of host function payloads read from core
// memory. Defaults to entities.DefaultMaxEventSize.
func WithMaxEventSize(size uint32) Option {
	return func(e *Executor) {
		if size > 0 {
			e.maxEventSize = size
		}
	}
}

// WithMaxReportSize caps the size of the capability report buffer read from
// core memory. Defaults to entities.DefaultMaxReportSize.
func WithMaxReportSize(size uint32) Option {
	return func(e *Executor) {
		if size > 0 {
			e.maxReportSize = size
		}
	}
}

// defaultLimits applies the entity-level default limits.
func (e *Executor) defaultLimits() {
	e.maxEventSize = entities.DefaultMaxEventSize
	e.maxReportSize = entities.DefaultMaxReportSize
}
