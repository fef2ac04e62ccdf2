package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorWriter struct {
	err error
}

func (w *errorWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, bb.Cap())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(RecordBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	t.Run("copies content", func(t *testing.T) {
		bb := NewByteBuffer(RecordBufferDefaultSize)
		bb.MustWrite([]byte("test data"))

		var buf bytes.Buffer
		n, err := bb.WriteTo(&buf)

		require.NoError(t, err)
		assert.Equal(t, int64(9), n)
		assert.Equal(t, "test data", buf.String())
	})

	t.Run("propagates writer error", func(t *testing.T) {
		bb := NewByteBuffer(RecordBufferDefaultSize)
		bb.MustWrite([]byte("test"))

		n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})
		require.ErrorIs(t, err, io.ErrShortWrite)
		assert.Equal(t, int64(0), n)
	})
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(RecordBufferDefaultSize)
		bb.Grow(100)
		assert.Equal(t, RecordBufferDefaultSize, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(RecordBufferDefaultSize)
		bb.MustWrite(make([]byte, RecordBufferDefaultSize))

		bb.Grow(16)
		assert.Equal(t, 2*RecordBufferDefaultSize, bb.Cap())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * RecordBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.MustWrite(make([]byte, size))

		bb.Grow(16)
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("grows at least the required bytes", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.MustWrite(make([]byte, 16))

		bb.Grow(10 * RecordBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap()-bb.Len(), 10*RecordBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.MustWrite([]byte("abcd"))
		bb.Grow(1024)
		assert.Equal(t, []byte("abcd"), bb.Bytes())
	})
}

func TestByteBuffer_Zeroed(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("dirtydirty"))

	b := bb.Zeroed(12)
	require.Len(t, b, 12)
	assert.Equal(t, make([]byte, 12), b)
	assert.Equal(t, 12, bb.Len())

	assert.Panics(t, func() { bb.Zeroed(-1) })
}

func TestByteBufferPool_Reuse(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	bb := pool.Get()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, bb.Cap(), 1024)
	bb.MustWrite([]byte("payload"))
	pool.Put(bb)

	bb = pool.Get()
	assert.Equal(t, 0, bb.Len(), "pooled buffers come back empty")
	pool.Put(bb)

	pool.Put(nil)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	bb := pool.Get()
	bb.Grow(10000)
	require.Greater(t, bb.Cap(), 4096)
	pool.Put(bb)

	bb2 := pool.Get()
	assert.LessOrEqual(t, bb2.Cap(), 4096, "oversized buffers are not retained")
}

func TestDefaultPools(t *testing.T) {
	rb := GetRecordBuffer()
	require.NotNil(t, rb)
	assert.GreaterOrEqual(t, rb.Cap(), RecordBufferDefaultSize)
	PutRecordBuffer(rb)

	bb := GetBlockBuffer()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, bb.Cap(), BlockBufferDefaultSize)
	PutBlockBuffer(bb)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 32
	const numIterations = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetRecordBuffer()
				b := bb.Zeroed(48)
				b[0] = 1
				assert.Equal(t, 48, bb.Len())
				PutRecordBuffer(bb)
			}
		}()
	}

	wg.Wait()
}
