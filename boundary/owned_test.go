package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnedBuffer_ReleaseOnce(t *testing.T) {
	released := 0
	buf := NewOwnedBuffer([]byte{1, 2, 3}, func() { released++ })

	assert.Equal(t, 3, buf.Len())
	buf.Release()
	buf.Release()
	buf.Release()
	assert.Equal(t, 1, released, "release must run at most once")
	assert.Nil(t, buf.Bytes(), "bytes are invalid after release")
}

func TestOwnedBuffer_NilSafe(t *testing.T) {
	var buf *OwnedBuffer
	assert.Nil(t, buf.Bytes())
	assert.Zero(t, buf.Len())
	assert.NotPanics(t, func() { buf.Release() })
	assert.Nil(t, TakeBytes(buf))
}

func TestOwnedBuffer_NilReleaseFunc(t *testing.T) {
	buf := NewOwnedBuffer([]byte{1}, nil)
	assert.NotPanics(t, func() { buf.Release() })
}

func TestTakeBytes(t *testing.T) {
	t.Run("copies and releases exactly once", func(t *testing.T) {
		released := 0
		src := []byte{0x01, 0x00, 0x01, 0x00}
		buf := NewOwnedBuffer(src, func() { released++ })

		out := TakeBytes(buf)
		require.Equal(t, src, out)
		assert.Equal(t, 1, released)

		// A second take yields nothing and does not double-release.
		assert.Nil(t, TakeBytes(buf))
		assert.Equal(t, 1, released)
	})

	t.Run("empty buffer still released", func(t *testing.T) {
		released := 0
		buf := NewOwnedBuffer(nil, func() { released++ })
		assert.Nil(t, TakeBytes(buf))
		assert.Equal(t, 1, released)
	})
}
