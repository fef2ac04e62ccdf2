package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

const upperHexDigits = "0123456789ABCDEF"

// Hex views raw bytes as an uppercase hex string. A field of N bytes reads as
// a string of 2N hex digits and must be written with exactly 2N hex digits.
type Hex struct{}

var _ Converter[string] = Hex{}

// NewHex creates a hex converter.
func NewHex() Hex {
	return Hex{}
}

// Encode parses v into len(dst) raw bytes. Both digit cases are accepted.
// Input of the wrong length or with non-hex characters returns an error
// wrapping errs.ErrInvalidHex and leaves dst unchanged.
func (Hex) Encode(v string, dst []byte) error {
	if len(v) != 2*len(dst) {
		return fmt.Errorf("%w: need %d hex digits, got %d", errs.ErrInvalidHex, 2*len(dst), len(v))
	}

	decoded := make([]byte, len(dst))
	if _, err := hex.Decode(decoded, []byte(v)); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidHex, err)
	}
	copy(dst, decoded)

	return nil
}

// Decode renders src as 2*len(src) uppercase hex digits.
func (Hex) Decode(src []byte) (string, error) {
	out := make([]byte, 2*len(src))
	for i, b := range src {
		out[2*i] = upperHexDigits[b>>4]
		out[2*i+1] = upperHexDigits[b&0x0F]
	}

	return string(out), nil
}

func (Hex) Kind() format.ConverterKind {
	return format.KindHex
}
