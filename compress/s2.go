package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

// S2Codec compresses payloads with S2, a faster Snappy extension.
type S2Codec struct{}

var _ Codec = S2Codec{}

func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress appends the S2 block encoding of src to dst.
func (S2Codec) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	start := len(dst)
	dst = grow(dst, s2.MaxEncodedLen(len(src)))
	encoded := s2.Encode(dst[start:cap(dst)], src)

	return dst[:start+len(encoded)], nil
}

// Decompress appends the decoded block to dst.
func (S2Codec) Decompress(dst, src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 {
		return dst, checkLen(format.CompressionS2, 0, rawLen)
	}

	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w: %w", errs.ErrCorruptPayload, err)
	}
	if err := checkLen(format.CompressionS2, n, rawLen); err != nil {
		return nil, err
	}

	start := len(dst)
	dst = grow(dst, n)
	if _, err := s2.Decode(dst[start:start+n], src); err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w: %w", errs.ErrCorruptPayload, err)
	}

	return dst[:start+n], nil
}

// grow makes room for n more bytes after len(b) without changing len(b).
func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)

	return out
}
