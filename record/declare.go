package record

import (
	"fmt"

	"github.com/arloliu/overlay/codec"
	"github.com/arloliu/overlay/errs"
)

// Text declares a padded text field using the record's pad byte.
func Text(r *Record, size int, opts ...FieldOption) *Field[string] {
	return NewField(r, size, codec.NewText(codec.WithPad(r.pad)), opts...)
}

// TextNumber declares a numeric text field of type T using the record's pad
// byte and number policy. A pad byte that cannot be told apart from a number
// is a declaration error.
func TextNumber[T codec.Number](r *Record, size int, opts ...FieldOption) *Field[T] {
	pad := r.pad
	if !codec.NumericPadAllowed(pad) {
		r.fail(fmt.Errorf("record %s: numeric text pad %q: %w", r.label(), pad, errs.ErrInvalidPad))
		pad = codec.DefaultPad
	}

	copts := []codec.TextOption{codec.WithPad(pad)}
	if r.strict {
		copts = append(copts, codec.WithStrict())
	}

	return NewField(r, size, codec.NewNumericText[T](copts...), opts...)
}

// TextInt declares an int stored as decimal text.
func TextInt(r *Record, size int, opts ...FieldOption) *Field[int] {
	return TextNumber[int](r, size, opts...)
}

// TextInt64 declares an int64 stored as decimal text.
func TextInt64(r *Record, size int, opts ...FieldOption) *Field[int64] {
	return TextNumber[int64](r, size, opts...)
}

// TextFloat declares a float32 stored as decimal text.
func TextFloat(r *Record, size int, opts ...FieldOption) *Field[float32] {
	return TextNumber[float32](r, size, opts...)
}

// TextFloat64 declares a float64 stored as decimal text.
func TextFloat64(r *Record, size int, opts ...FieldOption) *Field[float64] {
	return TextNumber[float64](r, size, opts...)
}

// Binary declares a field holding the binary representation of T in the
// record's byte order.
func Binary[T codec.Fixed](r *Record, opts ...FieldOption) *Field[T] {
	conv := codec.NewBinary[T](r.engine)
	return NewField(r, conv.FixedSize(), conv, opts...)
}

// Int8 declares a one-byte signed integer in the record's byte order.
func Int8(r *Record, opts ...FieldOption) *Field[int8] {
	return Binary[int8](r, opts...)
}

// Int16 declares a two-byte signed integer in the record's byte order.
func Int16(r *Record, opts ...FieldOption) *Field[int16] {
	return Binary[int16](r, opts...)
}

// Int32 declares a four-byte signed integer in the record's byte order.
func Int32(r *Record, opts ...FieldOption) *Field[int32] {
	return Binary[int32](r, opts...)
}

// Int64 declares an eight-byte signed integer in the record's byte order.
func Int64(r *Record, opts ...FieldOption) *Field[int64] {
	return Binary[int64](r, opts...)
}

// Uint8 declares a one-byte unsigned integer in the record's byte order.
func Uint8(r *Record, opts ...FieldOption) *Field[uint8] {
	return Binary[uint8](r, opts...)
}

// Uint16 declares a two-byte unsigned integer in the record's byte order.
func Uint16(r *Record, opts ...FieldOption) *Field[uint16] {
	return Binary[uint16](r, opts...)
}

// Uint32 declares a four-byte unsigned integer in the record's byte order.
func Uint32(r *Record, opts ...FieldOption) *Field[uint32] {
	return Binary[uint32](r, opts...)
}

// Uint64 declares an eight-byte unsigned integer in the record's byte order.
func Uint64(r *Record, opts ...FieldOption) *Field[uint64] {
	return Binary[uint64](r, opts...)
}

// Float32 declares a four-byte IEEE 754 float in the record's byte order.
func Float32(r *Record, opts ...FieldOption) *Field[float32] {
	return Binary[float32](r, opts...)
}

// Float64 declares an eight-byte IEEE 754 float in the record's byte order.
func Float64(r *Record, opts ...FieldOption) *Field[float64] {
	return Binary[float64](r, opts...)
}

// Bool declares a one-byte boolean. Any non-zero byte reads as true.
func Bool(r *Record, opts ...FieldOption) *Field[bool] {
	return Binary[bool](r, opts...)
}

// Byte declares a single raw byte.
func Byte(r *Record, opts ...FieldOption) *Field[byte] {
	return Binary[byte](r, opts...)
}

// Blob declares size raw bytes read and written as an uppercase hex string of
// 2*size digits.
func Blob(r *Record, size int, opts ...FieldOption) *Field[string] {
	return NewField(r, size, codec.NewHex(), opts...)
}

// RawBytes declares size raw bytes read and written as a byte slice.
func RawBytes(r *Record, size int, opts ...FieldOption) *Field[[]byte] {
	return NewField(r, size, codec.NewRaw(), opts...)
}
