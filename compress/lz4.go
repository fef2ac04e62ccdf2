package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec compresses payloads with the LZ4 block format.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Compress appends the LZ4 block encoding of src to dst.
func (LZ4Codec) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	start := len(dst)
	dst = grow(dst, lz4.CompressBlockBound(len(src)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst[start:cap(dst)])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:start+n], nil
}

// Decompress appends the decoded block to dst. The block format does not
// record its decoded size, so rawLen sizes the output exactly.
func (LZ4Codec) Decompress(dst, src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 {
		return dst, checkLen(format.CompressionLZ4, 0, rawLen)
	}

	start := len(dst)
	dst = grow(dst, rawLen)

	n, err := lz4.UncompressBlock(src, dst[start:start+rawLen])
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w: %w", errs.ErrCorruptPayload, err)
	}
	if err := checkLen(format.CompressionLZ4, n, rawLen); err != nil {
		return nil, err
	}

	return dst[:start+n], nil
}
