//go:build !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

// Decoders and encoders are built to run allocation free once warm, so both
// are pooled.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // block headers carry their own checksum
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress appends the Zstandard frame of src to dst.
func (ZstdCodec) Compress(dst, src []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(src, dst), nil
}

// Decompress appends the decoded frame to dst.
func (ZstdCodec) Decompress(dst, src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 {
		return dst, checkLen(format.CompressionZstd, 0, rawLen)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	start := len(dst)
	out, err := decoder.DecodeAll(src, dst)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w: %w", errs.ErrCorruptPayload, err)
	}
	if err := checkLen(format.CompressionZstd, len(out)-start, rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
