package compress

import "github.com/arloliu/overlay/format"

// ZstdCodec compresses payloads with Zstandard.
//
// It gives the best ratio of the built-in codecs and suits archival
// interchange files that are written once and read rarely.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

func (ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}
