// Package compress provides the payload codecs used by block files.
//
// A block payload is a run of fixed-size records laid out back to back. Such
// payloads repeat the same field structure every record, and padded text fields
// carry long runs of the pad byte, so general-purpose compressors do well on
// them.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): the payload is stored as is.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Uses
//     klauspost/compress by default; build with the gozstd tag to use the cgo
//     binding to the reference library instead.
//   - S2 (format.CompressionS2): fast, good ratio on repetitive text.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// # Usage
//
// Codecs append to a destination slice so callers can reuse pooled buffers.
// Decompress is told the raw length, which block headers record, and fails
// when the payload does not decode to exactly that many bytes:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(nil, payload)
//	...
//	raw, err := codec.Decompress(buf[:0], packed, len(payload))
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Encoder and
// decoder state is pooled internally.
package compress
