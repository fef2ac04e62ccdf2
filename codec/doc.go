// Package codec provides the converter strategies that map typed values to and
// from the fixed-width byte range of a record field.
//
// # Overview
//
// Every field of a record is bound to a Converter[T]. The converter never owns
// memory: Encode writes into, and Decode reads from, the exact byte range the
// record resolves for the field on each access.
//
//	type Converter[T any] interface {
//	    Encode(v T, dst []byte) error
//	    Decode(src []byte) (T, error)
//	    Kind() format.ConverterKind
//	}
//
// # Strategies
//
//	Converter          | Value type | Width          | Notes
//	-------------------|------------|----------------|------------------------------------
//	Text               | string     | field size     | pad (default ' '), truncate, NUL->pad
//	NumericText[T]     | numbers    | field size     | decimal text, lenient parse by default
//	Binary[T]          | fixed      | sizeof(T)      | byte order from an endian engine
//	Hex                | string     | field size     | 2 uppercase hex digits per byte
//	Raw                | []byte     | field size     | zero-filled tail, truncate
//
// # Parse policy
//
// NumericText decodes blank, empty or non-numeric payloads as the zero value
// and a nil error. This keeps freshly allocated and space-filled records
// readable. WithStrict switches non-numeric payloads to errs.ErrInvalidNumber;
// blank payloads are still zero.
//
// Hex always reports malformed input with errs.ErrInvalidHex and leaves the
// destination untouched.
//
// # Thread Safety
//
// Converters are immutable after construction and safe for concurrent use. The
// byte ranges they operate on are not; see the record package.
package codec
