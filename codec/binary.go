package codec

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/arloliu/overlay/endian"
	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

// Binary stores the fixed-width representation of a value.
//
// With the native engine the stored bytes are exactly the host's in-memory
// representation. Any other engine reorders multi-byte values, so a layout
// can describe files written on a machine of the other byte order.
type Binary[T Fixed] struct {
	engine endian.EndianEngine
	native bool
	size   int
	isBool bool
}

// NewBinary creates a binary converter for T. A nil engine selects the
// host's native byte order.
func NewBinary[T Fixed](engine endian.EndianEngine) Binary[T] {
	if engine == nil {
		engine = endian.GetNativeEngine()
	}

	var zero T

	return Binary[T]{
		engine: engine,
		native: endian.CompareNativeEndian(engine),
		size:   int(unsafe.Sizeof(zero)),
		isBool: reflect.TypeFor[T]().Kind() == reflect.Bool,
	}
}

// FixedSize returns the width of T in bytes.
func (c Binary[T]) FixedSize() int {
	return c.size
}

// Engine returns the byte order used by the converter.
func (c Binary[T]) Engine() endian.EndianEngine {
	return c.engine
}

// Encode writes v into the first FixedSize bytes of dst.
func (c Binary[T]) Encode(v T, dst []byte) error {
	if len(dst) < c.size {
		return fmt.Errorf("%w: binary value needs %d bytes, got %d", errs.ErrInvalidFieldSize, c.size, len(dst))
	}

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&v)), c.size)
	c.put(dst[:c.size], raw)

	return nil
}

// Decode reads a value from the first FixedSize bytes of src.
func (c Binary[T]) Decode(src []byte) (T, error) {
	var v T
	if len(src) < c.size {
		return v, fmt.Errorf("%w: binary value needs %d bytes, got %d", errs.ErrInvalidFieldSize, c.size, len(src))
	}

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&v)), c.size)
	c.get(raw, src[:c.size])

	// Only 0 and 1 are valid bool representations.
	if c.isBool && raw[0] > 1 {
		raw[0] = 1
	}

	return v, nil
}

func (c Binary[T]) Kind() format.ConverterKind {
	return format.KindBinary
}

// put stores the native bytes of a value in the engine's byte order.
func (c Binary[T]) put(dst, native []byte) {
	if c.native {
		copy(dst, native)
		return
	}

	host := endian.GetNativeEngine()
	switch c.size {
	case 2:
		c.engine.PutUint16(dst, host.Uint16(native))
	case 4:
		c.engine.PutUint32(dst, host.Uint32(native))
	case 8:
		c.engine.PutUint64(dst, host.Uint64(native))
	default:
		copy(dst, native)
	}
}

// get loads bytes in the engine's byte order into the native representation.
func (c Binary[T]) get(native, src []byte) {
	if c.native {
		copy(native, src)
		return
	}

	host := endian.GetNativeEngine()
	switch c.size {
	case 2:
		host.PutUint16(native, c.engine.Uint16(src))
	case 4:
		host.PutUint32(native, c.engine.Uint32(src))
	case 8:
		host.PutUint64(native, c.engine.Uint64(src))
	default:
		copy(native, src)
	}
}
