package record

import (
	"fmt"

	"github.com/arloliu/overlay/codec"
	"github.com/arloliu/overlay/errs"
)

// Field is a typed view of a byte range of a record.
type Field[T any] struct {
	rec    *Record
	name   string
	offset int
	size   int
	conv   codec.Converter[T]
}

var _ Descriptor = (*Field[int])(nil)

// NewField declares a field of size bytes read and written through conv.
//
// A converter with a fixed width (codec.Sizer) must match size.
func NewField[T any](r *Record, size int, conv codec.Converter[T], opts ...FieldOption) *Field[T] {
	f := &Field[T]{rec: r, size: size, conv: conv}

	switch {
	case conv == nil:
		f.name = fieldName(opts)
		r.fail(fmt.Errorf("record %s: field %s: nil converter: %w", r.label(), f.name, errs.ErrInvalidFieldSize))

		return f
	case fixedSize(conv) > 0 && fixedSize(conv) != size:
		f.name = fieldName(opts)
		r.fail(fmt.Errorf("record %s: field %s: %d bytes declared for a %d-byte value: %w",
			r.label(), f.name, size, fixedSize(conv), errs.ErrInvalidFieldSize))

		return f
	}

	f.name, f.offset, _ = r.register(size, conv.Kind(), opts)

	return f
}

// Get decodes the field value.
func (f *Field[T]) Get() (T, error) {
	var zero T

	b, err := f.view()
	if err != nil {
		return zero, err
	}

	v, err := f.conv.Decode(b)
	if err != nil {
		return zero, fmt.Errorf("field %s: %w", f.name, err)
	}

	return v, nil
}

// Set encodes v into the field.
func (f *Field[T]) Set(v T) error {
	b, err := f.view()
	if err != nil {
		return err
	}
	if err := f.conv.Encode(v, b); err != nil {
		return fmt.Errorf("field %s: %w", f.name, err)
	}

	return nil
}

// Bytes returns a copy of the raw field bytes.
func (f *Field[T]) Bytes() ([]byte, error) {
	b, err := f.view()
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), b...), nil
}

// Offset returns the field offset within the record.
func (f *Field[T]) Offset() int {
	return f.offset
}

// Size returns the field width in bytes.
func (f *Field[T]) Size() int {
	return f.size
}

// Record returns the record the field was declared on.
func (f *Field[T]) Record() *Record {
	return f.rec
}

// Name returns the name given by Named, or "#<index>".
func (f *Field[T]) Name() string {
	return f.name
}

// Converter returns the converter that encodes and decodes the field bytes.
func (f *Field[T]) Converter() codec.Converter[T] {
	return f.conv
}

func (f *Field[T]) view() ([]byte, error) {
	w, err := f.rec.window()
	if err != nil {
		return nil, err
	}
	end := f.offset + f.size

	return w[f.offset:end:end], nil
}

func fixedSize(conv any) int {
	if s, ok := conv.(codec.Sizer); ok {
		return s.FixedSize()
	}

	return 0
}
