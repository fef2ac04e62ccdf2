package codec

import (
	"errors"

	"github.com/arloliu/overlay/format"
)

var errPadNUL = errors.New("codec: pad byte cannot be NUL")

// Converter encodes and decodes values of type T to and from a fixed-width
// byte range.
//
// Encode must only write inside dst and must leave dst unchanged when it
// returns an error. Decode must not retain src.
type Converter[T any] interface {
	Encode(v T, dst []byte) error
	Decode(src []byte) (T, error)
	Kind() format.ConverterKind
}

// Sizer is implemented by converters whose width is fixed by the value type.
// Records reject fields declared with any other width.
type Sizer interface {
	FixedSize() int
}

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating point types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of types NumericText can format and parse.
type Number interface {
	Signed | Unsigned | Float
}

// Fixed is the set of types Binary can store.
type Fixed interface {
	Number | ~bool
}
