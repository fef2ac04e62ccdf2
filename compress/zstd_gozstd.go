//go:build gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

// Compress appends the Zstandard frame of src to dst.
func (ZstdCodec) Compress(dst, src []byte) ([]byte, error) {
	return gozstd.CompressLevel(dst, src, 3), nil
}

// Decompress appends the decoded frame to dst.
func (ZstdCodec) Decompress(dst, src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 {
		return dst, checkLen(format.CompressionZstd, 0, rawLen)
	}

	start := len(dst)
	out, err := gozstd.Decompress(dst, src)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w: %w", errs.ErrCorruptPayload, err)
	}
	if err := checkLen(format.CompressionZstd, len(out)-start, rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
