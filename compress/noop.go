package compress

import "github.com/arloliu/overlay/format"

// NoOpCodec stores payloads uncompressed.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress appends src to dst unchanged.
func (NoOpCodec) Compress(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

// Decompress appends src to dst unchanged after checking its length.
func (NoOpCodec) Decompress(dst, src []byte, rawLen int) ([]byte, error) {
	if err := checkLen(format.CompressionNone, len(src), rawLen); err != nil {
		return nil, err
	}

	return append(dst, src...), nil
}
