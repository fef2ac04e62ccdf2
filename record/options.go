package record

import (
	"errors"
	"fmt"

	"github.com/arloliu/overlay/endian"
	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/internal/options"
)

// Option configures a Record at creation time.
type Option = options.Option[*Record]

// WithName names the record in errors and log output.
func WithName(name string) Option {
	return options.NoError(func(r *Record) {
		r.name = name
	})
}

// WithByteOrder sets the byte order of binary fields declared through the
// record's declarators (Int32, Float64, Binary, ...). The default is the
// host's native order.
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.New(func(r *Record) error {
		if engine == nil {
			return errors.New("record: nil byte order")
		}
		r.engine = engine

		return nil
	})
}

// WithLittleEndian stores binary fields little-endian.
func WithLittleEndian() Option {
	return WithByteOrder(endian.GetLittleEndianEngine())
}

// WithBigEndian stores binary fields big-endian.
func WithBigEndian() Option {
	return WithByteOrder(endian.GetBigEndianEngine())
}

// WithPad sets the pad byte of text and numeric text fields declared through
// the record's declarators. The default is a space.
func WithPad(pad byte) Option {
	return options.New(func(r *Record) error {
		if pad == 0 {
			return fmt.Errorf("%w: NUL", errs.ErrInvalidPad)
		}
		r.pad = pad

		return nil
	})
}

type fieldConfig struct {
	name     string
	ref      Descriptor
	alignEnd bool
}

// FieldOption configures the placement and name of a declared field, array or embed.
type FieldOption = options.Option[*fieldConfig]

// AlignStart places the declaration at ref's offset, overlaying ref's bytes.
// ref must belong to the same record.
func AlignStart(ref Descriptor) FieldOption {
	return align(ref, false)
}

// AlignEnd places the declaration directly after ref, whether or not ref was
// the most recent declaration. ref must belong to the same record.
func AlignEnd(ref Descriptor) FieldOption {
	return align(ref, true)
}

func align(ref Descriptor, end bool) FieldOption {
	return options.New(func(c *fieldConfig) error {
		if ref == nil || ref.Record() == nil {
			return errors.New("record: nil alignment reference")
		}
		c.ref = ref
		c.alignEnd = end

		return nil
	})
}

// Named names the declaration. Unnamed declarations are reported as "#<index>".
func Named(name string) FieldOption {
	return options.NoError(func(c *fieldConfig) {
		c.name = name
	})
}

// WithStrictNumbers makes numeric text fields declared through the record's
// declarators report non-numeric payloads as errs.ErrInvalidNumber instead of
// reading them as zero.
func WithStrictNumbers() Option {
	return options.NoError(func(r *Record) {
		r.strict = true
	})
}

func fieldName(opts []FieldOption) string {
	var cfg fieldConfig
	_ = options.Apply(&cfg, opts...)

	return cfg.name
}
