package record

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/overlay/codec"
	"github.com/arloliu/overlay/errs"
)

// Array is a fixed number of identical consecutive declarations.
type Array[E Descriptor] struct {
	rec   *Record
	name  string
	items []E
}

var _ Descriptor = (*Array[*Field[int]])(nil)

// NewArray declares count items, each created by newItem. The first item is
// placed according to opts; the rest follow it sequentially. Items are named
// "<name>[i]" when the array is named.
//
// A count below one is recorded as errs.ErrIndexOutOfBounds.
func NewArray[E Descriptor](r *Record, count int, newItem func(r *Record, opts ...FieldOption) E, opts ...FieldOption) *Array[E] {
	a := &Array[E]{rec: r, name: fieldName(opts)}
	if count < 1 {
		r.fail(fmt.Errorf("record %s: array %s: count %d: %w", r.label(), a.name, count, errs.ErrIndexOutOfBounds))
		return a
	}

	a.items = make([]E, count)
	for i := range a.items {
		var itemOpts []FieldOption
		if i == 0 {
			itemOpts = append(itemOpts, opts...)
		}
		if a.name != "" {
			itemOpts = append(itemOpts, Named(fmt.Sprintf("%s[%d]", a.name, i)))
		}
		a.items[i] = newItem(r, itemOpts...)
	}

	return a
}

// At returns item i.
func (a *Array[E]) At(i int) (E, error) {
	if i < 0 || i >= len(a.items) {
		var zero E
		return zero, fmt.Errorf("array %s: index %d of %d: %w", a.name, i, len(a.items), errs.ErrIndexOutOfBounds)
	}

	return a.items[i], nil
}

// Len returns the item count.
func (a *Array[E]) Len() int {
	return len(a.items)
}

// Offset returns the offset of the first item.
func (a *Array[E]) Offset() int {
	if len(a.items) == 0 {
		return 0
	}

	return a.items[0].Offset()
}

// Size returns the item count times the item size.
func (a *Array[E]) Size() int {
	if len(a.items) == 0 {
		return 0
	}

	return len(a.items) * a.items[0].Size()
}

func (a *Array[E]) Record() *Record {
	return a.rec
}

func (a *Array[E]) Name() string {
	return a.name
}

// Items iterates over the items in index order.
func (a *Array[E]) Items() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, item := range a.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// FieldArray is an array of fields of one type with element accessors.
type FieldArray[T any] struct {
	*Array[*Field[T]]
}

// NewFieldArray declares count fields of size bytes sharing conv.
func NewFieldArray[T any](r *Record, count, size int, conv codec.Converter[T], opts ...FieldOption) *FieldArray[T] {
	newItem := func(r *Record, opts ...FieldOption) *Field[T] {
		return NewField(r, size, conv, opts...)
	}

	return &FieldArray[T]{Array: NewArray(r, count, newItem, opts...)}
}

// TextArray declares count text fields of size bytes.
func TextArray(r *Record, count, size int, opts ...FieldOption) *FieldArray[string] {
	return NewFieldArray(r, count, size, codec.NewText(codec.WithPad(r.pad)), opts...)
}

// BinaryArray declares count binary fields of type T in the record's byte order.
func BinaryArray[T codec.Fixed](r *Record, count int, opts ...FieldOption) *FieldArray[T] {
	conv := codec.NewBinary[T](r.engine)
	return NewFieldArray(r, count, conv.FixedSize(), conv, opts...)
}

// Get returns element i.
func (a *FieldArray[T]) Get(i int) (T, error) {
	f, err := a.At(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return f.Get()
}

// Set stores v in element i.
func (a *FieldArray[T]) Set(i int, v T) error {
	f, err := a.At(i)
	if err != nil {
		return err
	}

	return f.Set(v)
}

// Assign stores one value per element. The number of values must equal the
// array length. Either every element is written or the buffer is unchanged.
func (a *FieldArray[T]) Assign(vals ...T) error {
	if len(vals) != a.Len() {
		return fmt.Errorf("array %s: assign %d values to %d elements: %w",
			a.name, len(vals), a.Len(), errs.ErrIndexOutOfBounds)
	}

	w, err := a.view()
	if err != nil {
		return err
	}
	snapshot := append([]byte(nil), w...)

	for i, v := range vals {
		if err := a.items[i].Set(v); err != nil {
			copy(w, snapshot)
			return err
		}
	}

	return nil
}

// Values decodes every element.
func (a *FieldArray[T]) Values() ([]T, error) {
	out := make([]T, a.Len())
	for i, f := range a.items {
		v, err := f.Get()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// All iterates over the decoded elements of the current window. Iteration
// stops at the first element that fails to decode.
func (a *FieldArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, f := range a.items {
			v, err := f.Get()
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Format joins the elements with sep between left and right. String elements
// are single-quoted.
func (a *FieldArray[T]) Format(sep, left, right string) (string, error) {
	vals, err := a.Values()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(left)
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(sep)
		}
		if s, ok := any(v).(string); ok {
			sb.WriteByte('\'')
			sb.WriteString(s)
			sb.WriteByte('\'')

			continue
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString(right)

	return sb.String(), nil
}

// String formats the array as "[a, b, c]".
func (a *FieldArray[T]) String() string {
	s, err := a.Format(", ", "[", "]")
	if err != nil {
		return "[!" + err.Error() + "]"
	}

	return s
}

func (a *FieldArray[T]) view() ([]byte, error) {
	w, err := a.rec.window()
	if err != nil {
		return nil, err
	}
	start, end := a.Offset(), a.Offset()+a.Size()

	return w[start:end:end], nil
}
