package record

import (
	"fmt"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

// Embed places a separately declared record inside a parent record.
//
// After embedding, the nested record is a view of the parent: its fields read
// and write the parent buffer at the embed offset, and it follows the parent
// through Adopt and Step. The nested layout is sealed.
type Embed[R Layout] struct {
	nested R
	rec    *Record
	name   string
	offset int
	size   int
}

var _ Descriptor = (*Embed[*Record])(nil)

// NewEmbed declares nested inside parent. nested must be fully declared, must
// not have a buffer attached and must not be embedded elsewhere.
func NewEmbed[R Layout](parent *Record, nested R, opts ...FieldOption) *Embed[R] {
	e := &Embed[R]{nested: nested, rec: parent, name: fieldName(opts)}

	inner := nested.Layout()
	if err := checkEmbed(parent, inner); err != nil {
		parent.fail(fmt.Errorf("record %s: embed %s: %w", parent.label(), e.name, err))
		return e
	}

	size, err := inner.Size()
	if err != nil {
		parent.fail(fmt.Errorf("record %s: embed %s: %w", parent.label(), e.name, err))
		return e
	}

	name, offset, err := parent.register(size, format.KindRecord, opts)
	if err != nil {
		return e
	}

	e.name, e.offset, e.size = name, offset, size
	inner.parent = parent
	inner.offset = offset

	return e
}

func checkEmbed(parent, inner *Record) error {
	if inner == nil {
		return fmt.Errorf("nil record: %w", errs.ErrUnInitialized)
	}
	if inner.parent != nil {
		return errs.ErrEmbedded
	}
	if inner.storage != nil {
		return fmt.Errorf("nested record %s has a buffer attached: %w", inner.label(), errs.ErrSealed)
	}
	for p := parent; p != nil; p = p.parent {
		if p == inner {
			return fmt.Errorf("record %s cannot contain itself: %w", inner.label(), errs.ErrEmbedded)
		}
	}

	return nil
}

// Nested returns the embedded record.
func (e *Embed[R]) Nested() R {
	return e.nested
}

// Offset returns the start of the nested record within the parent.
func (e *Embed[R]) Offset() int {
	return e.offset
}

// Size returns the nested record size.
func (e *Embed[R]) Size() int {
	return e.size
}

// Record returns the parent record.
func (e *Embed[R]) Record() *Record {
	return e.rec
}

// Name returns the name given by Named, or "#<index>".
func (e *Embed[R]) Name() string {
	return e.name
}
