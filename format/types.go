package format

type (
	ConverterKind   uint8
	CompressionType uint8
)

const (
	KindText        ConverterKind = 0x1 // KindText is fixed-width, padded text.
	KindNumericText ConverterKind = 0x2 // KindNumericText is a number stored as padded decimal text.
	KindBinary      ConverterKind = 0x3 // KindBinary is the raw representation of a fixed-size value.
	KindHex         ConverterKind = 0x4 // KindHex is raw bytes viewed as an uppercase hex string.
	KindRaw         ConverterKind = 0x5 // KindRaw is raw bytes viewed as a byte slice.
	KindRecord      ConverterKind = 0x6 // KindRecord is an embedded record.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k ConverterKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindNumericText:
		return "NumericText"
	case KindBinary:
		return "Binary"
	case KindHex:
		return "Hex"
	case KindRaw:
		return "Raw"
	case KindRecord:
		return "Record"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c names a supported compression algorithm.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
