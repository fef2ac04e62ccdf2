package codec

import "github.com/arloliu/overlay/format"

// Raw copies bytes in and out of a field unchanged.
type Raw struct{}

var _ Converter[[]byte] = Raw{}

// NewRaw creates a raw byte converter.
func NewRaw() Raw {
	return Raw{}
}

// Encode copies v into dst, zero-filling the remainder and truncating longer input.
func (Raw) Encode(v []byte, dst []byte) error {
	n := copy(dst, v)
	clear(dst[n:])

	return nil
}

// Decode returns a copy of src.
func (Raw) Decode(src []byte) ([]byte, error) {
	out := make([]byte, len(src))
	copy(out, src)

	return out, nil
}

func (Raw) Kind() format.ConverterKind {
	return format.KindRaw
}
