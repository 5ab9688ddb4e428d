// Package safecall is the single point where interior faults are converted
// into the sentinel values the boundary API exposes. Every boundary-facing
// entry point runs through one of these wrappers; neither errors nor panics
// ever escape to the caller. Each fault produces exactly one log record of
// the form "<operation> failed: <detail>".
package safecall

import (
	"fmt"
	"log/slog"
)

// unknownDetail is logged when a fault carries no message.
const unknownDetail = "unknown error"

// Bool runs fn and returns its result. On error or panic it logs the fault
// and returns false.
func Bool(log *slog.Logger, op string, fn func() (bool, error)) (result bool) {
	defer recoverTo(log, op, func() { result = false })
	v, err := fn()
	if err != nil {
		logFailure(log, op, err.Error())
		return false
	}
	return v
}

// Bytes runs fn and returns its result. On error or panic it logs the fault
// and returns nil.
func Bytes(log *slog.Logger, op string, fn func() ([]byte, error)) (result []byte) {
	defer recoverTo(log, op, func() { result = nil })
	v, err := fn()
	if err != nil {
		logFailure(log, op, err.Error())
		return nil
	}
	return v
}

// String runs fn and returns its result. On error or panic it logs the
// fault and returns ("", false).
func String(log *slog.Logger, op string, fn func() (string, error)) (result string, ok bool) {
	defer recoverTo(log, op, func() { result, ok = "", false })
	v, err := fn()
	if err != nil {
		logFailure(log, op, err.Error())
		return "", false
	}
	return v, true
}

// recoverTo absorbs a panic, logs it once, and lets reset install the
// sentinel return value.
func recoverTo(log *slog.Logger, op string, reset func()) {
	if r := recover(); r != nil {
		logFailure(log, op, panicDetail(r))
		reset()
	}
}

func panicDetail(r any) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func logFailure(log *slog.Logger, op, detail string) {
	if detail == "" {
		detail = unknownDetail
	}
	if log == nil {
		log = slog.Default()
	}
	log.Error(op+" failed: "+detail, "operation", op)
}
