// Package testutil provides shared test doubles: a capturing slog handler
// for asserting on failure records, and a counting event callback for
// verifying the registry's retain/release discipline.
package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogRecord is one captured log entry.
type LogRecord struct {
	Level   slog.Level
	Message string
}

// CaptureHandler is a slog.Handler that records every entry it receives.
type CaptureHandler struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewCaptureLogger returns a logger whose records can be inspected through
// the returned handler.
func NewCaptureLogger() (*slog.Logger, *CaptureHandler) {
	h := &CaptureHandler{}
	return slog.New(h), h
}

// Enabled implements slog.Handler; every level is captured.
func (h *CaptureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (h *CaptureHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, LogRecord{Level: record.Level, Message: record.Message})
	return nil
}

// WithAttrs implements slog.Handler. Attributes are not tracked; the tests
// assert on messages and levels only.
func (h *CaptureHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler.
func (h *CaptureHandler) WithGroup(string) slog.Handler {
	return h
}

// Records returns a copy of the captured records.
func (h *CaptureHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogRecord, len(h.records))
	copy(out, h.records)
	return out
}

// ErrorRecords returns only the records at error level.
func (h *CaptureHandler) ErrorRecords() []LogRecord {
	var out []LogRecord
	for _, r := range h.Records() {
		if r.Level == slog.LevelError {
			out = append(out, r)
		}
	}
	return out
}
