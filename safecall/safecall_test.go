package safecall

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gibberlink-dev/gibberlink-bridge/internal/testutil"
)

type silentError struct{}

func (silentError) Error() string { return "" }

func TestBool_Success(t *testing.T) {
	log, captured := testutil.NewCaptureLogger()

	assert.True(t, Bool(log, "probe", func() (bool, error) { return true, nil }))
	assert.False(t, Bool(log, "probe", func() (bool, error) { return false, nil }))
	assert.Empty(t, captured.ErrorRecords(), "successful calls must not log failures")
}

func TestBool_Error(t *testing.T) {
	log, captured := testutil.NewCaptureLogger()

	got := Bool(log, "check laser hardware", func() (bool, error) {
		return true, errors.New("transport closed")
	})
	assert.False(t, got, "errors degrade to false regardless of the returned value")

	records := captured.ErrorRecords()
	require.Len(t, records, 1, "exactly one failure record per fault")
	assert.Equal(t, "check laser hardware failed: transport closed", records[0].Message)
}

func TestBool_Panic(t *testing.T) {
	log, captured := testutil.NewCaptureLogger()

	got := Bool(log, "check camera hardware", func() (bool, error) {
		panic("photon overflow")
	})
	assert.False(t, got)

	records := captured.ErrorRecords()
	require.Len(t, records, 1)
	assert.Equal(t, "check camera hardware failed: photon overflow", records[0].Message)
}

func TestBool_EmptyErrorMessage(t *testing.T) {
	log, captured := testutil.NewCaptureLogger()

	Bool(log, "probe", func() (bool, error) { return false, silentError{} })

	records := captured.ErrorRecords()
	require.Len(t, records, 1)
	assert.Equal(t, "probe failed: unknown error", records[0].Message)
}

func TestBytes_Success(t *testing.T) {
	log, captured := testutil.NewCaptureLogger()
	want := []byte{0x01, 0x00, 0x01, 0x00}

	got := Bytes(log, "detect", func() ([]byte, error) { return want, nil })
	assert.Equal(t, want, got)
	assert.Empty(t, captured.ErrorRecords())
}

func TestBytes_Error(t *testing.T) {
	log, captured := testutil.NewCaptureLogger()

	got := Bytes(log, "detect hardware capabilities", func() ([]byte, error) {
		return []byte{1}, errors.New("detector trapped")
	})
	assert.Nil(t, got)

	records := captured.ErrorRecords()
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Message, "detect hardware capabilities")
	assert.Contains(t, records[0].Message, "detector trapped")
}

func TestBytes_Panic(t *testing.T) {
	log, captured := testutil.NewCaptureLogger()

	got := Bytes(log, "detect", func() ([]byte, error) { panic(errors.New("oom")) })
	assert.Nil(t, got)
	require.Len(t, captured.ErrorRecords(), 1)
	assert.Equal(t, "detect failed: oom", captured.ErrorRecords()[0].Message)
}

func TestString(t *testing.T) {
	log, captured := testutil.NewCaptureLogger()

	s, ok := String(log, "version", func() (string, error) { return "1.4.2", nil })
	assert.True(t, ok)
	assert.Equal(t, "1.4.2", s)

	s, ok = String(log, "version", func() (string, error) { return "x", errors.New("bad") })
	assert.False(t, ok)
	assert.Empty(t, s)
	assert.Len(t, captured.ErrorRecords(), 1)
}

func TestNilLoggerFallsBack(t *testing.T) {
	// Only checks that a nil logger does not panic; the record goes to the
	// default logger.
	assert.NotPanics(t, func() {
		Bool(nil, "probe", func() (bool, error) { return false, errors.New("x") })
	})
}
