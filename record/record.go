package record

import (
	"fmt"
	"strconv"

	"github.com/arloliu/overlay/endian"
	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
	"github.com/arloliu/overlay/internal/options"
	"go.uber.org/zap"
)

// Descriptor is anything declared on a record that occupies a byte range:
// fields, arrays and embedded records.
type Descriptor interface {
	Offset() int
	Size() int
	Record() *Record
}

// Layout is implemented by *Record, and by user structs that embed *Record,
// so they can be passed to NewEmbed.
type Layout interface {
	Layout() *Record
}

// FieldInfo describes one declaration for layout dumps.
type FieldInfo struct {
	Name   string
	Offset int
	Size   int
	Kind   format.ConverterKind
}

type span struct {
	name   string
	offset int
	size   int
	kind   format.ConverterKind
}

// Record is a fixed-size layout of fields over a byte buffer.
type Record struct {
	name   string
	engine endian.EndianEngine
	pad    byte
	strict bool

	spans []span
	size  int
	err   error

	storage Storage
	pos     int

	// set once the record is embedded
	parent *Record
	offset int
}

var _ Layout = (*Record)(nil)

// New creates an empty record. Invalid options are recorded like any other
// declaration error and reported by Err.
func New(opts ...Option) *Record {
	r := &Record{
		engine: endian.GetNativeEngine(),
		pad:    ' ',
	}
	if err := options.Apply(r, opts...); err != nil {
		r.fail(fmt.Errorf("record %s: %w", r.label(), err))
	}

	return r
}

// Layout returns r.
func (r *Record) Layout() *Record {
	return r
}

// Name returns the record name given by WithName.
func (r *Record) Name() string {
	return r.name
}

// Err returns the first declaration error, if any.
func (r *Record) Err() error {
	return r.err
}

// Size returns the record size in bytes.
func (r *Record) Size() (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(r.spans) == 0 {
		return 0, fmt.Errorf("record %s: no fields declared: %w", r.label(), errs.ErrUnInitialized)
	}

	return r.size, nil
}

// Fields lists the declarations in registration order. Array items are listed
// individually; an embedded record is listed as one entry of kind KindRecord.
func (r *Record) Fields() []FieldInfo {
	out := make([]FieldInfo, len(r.spans))
	for i, s := range r.spans {
		out[i] = FieldInfo{Name: s.name, Offset: s.offset, Size: s.size, Kind: s.kind}
	}

	return out
}

// Embedded reports whether r is placed inside another record.
func (r *Record) Embedded() bool {
	return r.parent != nil
}

func (r *Record) label() string {
	if r.name == "" {
		return "<unnamed>"
	}

	return r.name
}

func (r *Record) fail(err error) error {
	if r.err == nil {
		r.err = err
		Logger().Debug("record declaration failed", zap.String("record", r.label()), zap.Error(err))
	}

	return err
}

// end is the end of the most recent declaration, where sequential placement starts.
func (r *Record) end() int {
	if len(r.spans) == 0 {
		return 0
	}
	last := r.spans[len(r.spans)-1]

	return last.offset + last.size
}

// register places a declaration of size bytes and returns its name and offset.
func (r *Record) register(size int, kind format.ConverterKind, opts []FieldOption) (string, int, error) {
	var cfg fieldConfig
	err := options.Apply(&cfg, opts...)

	name := cfg.name
	if name == "" {
		name = "#" + strconv.Itoa(len(r.spans))
	}

	if err != nil {
		return name, 0, r.fail(fmt.Errorf("record %s: field %s: %w", r.label(), name, err))
	}

	switch {
	case r.parent != nil:
		err = fmt.Errorf("record %s is embedded: %w", r.label(), errs.ErrSealed)
	case r.storage != nil:
		err = fmt.Errorf("record %s has a buffer attached: %w", r.label(), errs.ErrSealed)
	case size <= 0:
		err = fmt.Errorf("size %d: %w", size, errs.ErrInvalidFieldSize)
	case cfg.ref != nil && cfg.ref.Record() != r:
		err = errs.ErrForeignReference
	}
	if err != nil {
		return name, 0, r.fail(fmt.Errorf("record %s: field %s: %w", r.label(), name, err))
	}

	offset := r.end()
	if cfg.ref != nil {
		offset = cfg.ref.Offset()
		if cfg.alignEnd {
			offset += cfg.ref.Size()
		}
	}

	r.spans = append(r.spans, span{name: name, offset: offset, size: size, kind: kind})
	r.size = max(r.size, offset+size)

	return name, offset, nil
}

// window returns the live bytes of the record.
func (r *Record) window() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}

	if r.parent != nil {
		pw, err := r.parent.window()
		if err != nil {
			return nil, err
		}
		end := r.offset + r.size

		return pw[r.offset:end:end], nil
	}

	if r.storage == nil {
		return nil, fmt.Errorf("record %s: no buffer attached: %w", r.label(), errs.ErrUnInitialized)
	}

	b := r.storage.Bytes()
	end := r.pos + r.size

	return b[r.pos:end:end], nil
}
