package overlay

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/overlay/block"
	"github.com/arloliu/overlay/endian"
	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
	"github.com/arloliu/overlay/record"
)

func TestNewRecord(t *testing.T) {
	rec := NewRecord(record.WithName("plain"))
	n := record.TextInt(rec, 4)
	require.NoError(t, rec.Adopt([]byte("abcd")))

	v, err := n.Get()
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestNewPortableRecord(t *testing.T) {
	rec := NewPortableRecord(record.WithName("portable"))
	n := record.TextInt(rec, 4)
	u := record.Uint16(rec)

	buf := []byte("abcd\x00\x00")
	require.NoError(t, rec.Adopt(buf))

	_, err := n.Get()
	require.ErrorIs(t, err, errs.ErrInvalidNumber)

	require.NoError(t, u.Set(0x0102))
	require.Equal(t, []byte{0x02, 0x01}, buf[4:])
	require.Equal(t, "little", endian.Name(endian.GetLittleEndianEngine()))
}

func TestRecords(t *testing.T) {
	rec := NewRecord()
	code := record.Text(rec, 3)

	var got []string
	for i, err := range Records([]byte("AAABBBCCCx"), rec) {
		require.NoError(t, err)
		require.Equal(t, len(got), i)
		v, err := code.Get()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []string{"AAA", "BBB", "CCC"}, got)

	for _, err := range Records([]byte("AA"), rec) {
		require.ErrorIs(t, err, errs.ErrStorageOverflow)
	}
}

func TestBlockWrappers(t *testing.T) {
	rec := NewPortableRecord()
	id := record.Uint32(rec)
	require.NoError(t, rec.Allocate())

	var out bytes.Buffer
	w, err := NewCompressedBlockWriter(&out, rec, block.WithRecordsPerBlock(500))
	require.NoError(t, err)
	for i := range 100 {
		require.NoError(t, id.Set(uint32(i)))
		require.NoError(t, w.Append(rec))
	}
	require.NoError(t, w.Close())

	rd := NewBlockReader(&out)
	defer rd.Close()

	blk, err := rd.Next()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, blk.Compression)
	require.Equal(t, 100, blk.Count)
	require.Equal(t, blk.Checksum, Checksum(blk.Bytes()))

	_, err = NewBlockWriter(&out, NewRecord())
	require.ErrorIs(t, err, errs.ErrUnInitialized)
}
