package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

// Codec compresses and decompresses block payloads.
type Codec interface {
	// Type returns the algorithm identifier stored in block headers.
	Type() format.CompressionType

	// Compress appends the compressed form of src to dst and returns the
	// extended slice. src is not modified.
	Compress(dst, src []byte) ([]byte, error)

	// Decompress appends the rawLen bytes encoded in src to dst. It fails
	// with errs.ErrCorruptPayload when src does not decode to exactly rawLen
	// bytes.
	Decompress(dst, src []byte, rawLen int) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Stats describes one compression round trip.
type Stats struct {
	Algorithm         format.CompressionType
	OriginalSize      int
	CompressedSize    int
	CompressionTime   time.Duration
	DecompressionTime time.Duration
}

// Ratio returns compressed size over original size, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return (1 - s.Ratio()) * 100
}

// Measure compresses data with codec, decompresses the result and reports
// sizes and timings. The round trip must reproduce data.
func Measure(codec Codec, data []byte) (Stats, error) {
	stats := Stats{Algorithm: codec.Type(), OriginalSize: len(data)}

	start := time.Now()
	packed, err := codec.Compress(nil, data)
	if err != nil {
		return stats, err
	}
	stats.CompressionTime = time.Since(start)
	stats.CompressedSize = len(packed)

	start = time.Now()
	raw, err := codec.Decompress(nil, packed, len(data))
	if err != nil {
		return stats, err
	}
	stats.DecompressionTime = time.Since(start)

	if string(raw) != string(data) {
		return stats, fmt.Errorf("%s round trip: %w", codec.Type(), errs.ErrCorruptPayload)
	}

	return stats, nil
}

func checkLen(typ format.CompressionType, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: decoded %d bytes, want %d: %w", typ, got, want, errs.ErrCorruptPayload)
	}

	return nil
}
