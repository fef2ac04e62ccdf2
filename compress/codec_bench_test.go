package compress

import (
	"testing"
)

func BenchmarkCodecs_Compress(b *testing.B) {
	data := recordPayload(4096)

	for _, typ := range allTypes {
		codec, _ := GetCodec(typ)
		b.Run(typ.String(), func(b *testing.B) {
			dst := make([]byte, 0, len(data)*2)
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(dst[:0], data)
			}
		})
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	data := recordPayload(4096)

	for _, typ := range allTypes {
		codec, _ := GetCodec(typ)
		packed, err := codec.Compress(nil, data)
		if err != nil {
			b.Fatalf("Failed to compress: %v", err)
		}

		b.Run(typ.String(), func(b *testing.B) {
			dst := make([]byte, 0, len(data))
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Decompress(dst[:0], packed, len(data))
			}
		})
	}
}
