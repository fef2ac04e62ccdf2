package record

import (
	"fmt"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/internal/pool"
	"go.uber.org/zap"
)

// Storage is the buffer a record is attached to.
//
// It is either *Owned, allocated by the record, or *Borrowed, supplied by the
// caller. Storage cannot be implemented outside this package.
type Storage interface {
	// Bytes returns the whole attached buffer.
	Bytes() []byte
	// Owned reports whether the record owns the buffer.
	Owned() bool

	release()
}

// Owned is storage allocated from the record buffer pool.
type Owned struct {
	bb  *pool.ByteBuffer
	buf []byte
}

var _ Storage = (*Owned)(nil)

func newOwned(size int) *Owned {
	bb := pool.GetRecordBuffer()
	return &Owned{bb: bb, buf: bb.Zeroed(size)}
}

func (s *Owned) Bytes() []byte {
	return s.buf
}

func (s *Owned) Owned() bool {
	return true
}

func (s *Owned) release() {
	if s.bb == nil {
		return
	}
	pool.PutRecordBuffer(s.bb)
	s.bb = nil
	s.buf = nil
}

// Borrowed is storage supplied by the caller. The record never frees it.
type Borrowed struct {
	buf []byte
}

var _ Storage = (*Borrowed)(nil)

func (s *Borrowed) Bytes() []byte {
	return s.buf
}

func (s *Borrowed) Owned() bool {
	return false
}

func (s *Borrowed) release() {
	s.buf = nil
}

// Storage returns the attached storage, or nil.
func (r *Record) Storage() Storage {
	return r.storage
}

// Allocate attaches a zeroed buffer of exactly Size() bytes owned by the
// record. Any previous buffer is released first.
func (r *Record) Allocate() error {
	size, err := r.Size()
	if err != nil {
		return err
	}
	if r.parent != nil {
		return fmt.Errorf("record %s: allocate: %w", r.label(), errs.ErrEmbedded)
	}

	r.detach()
	r.storage = newOwned(size)
	r.pos = 0

	Logger().Debug("record buffer allocated", zap.String("record", r.label()), zap.Int("size", size))

	return nil
}

// Adopt attaches buf without taking ownership. buf must hold at least one
// record and may hold many; the window starts at the first one.
//
// A buffer smaller than the record fails with errs.ErrStorageOverflow and
// leaves the current attachment in place.
func (r *Record) Adopt(buf []byte) error {
	size, err := r.Size()
	if err != nil {
		return err
	}
	if r.parent != nil {
		return fmt.Errorf("record %s: adopt: %w", r.label(), errs.ErrEmbedded)
	}
	if len(buf) < size {
		return fmt.Errorf("record %s: adopt %d bytes for %d-byte record: %w",
			r.label(), len(buf), size, errs.ErrStorageOverflow)
	}

	r.detach()
	r.storage = &Borrowed{buf: buf}
	r.pos = 0

	Logger().Debug("record buffer adopted",
		zap.String("record", r.label()),
		zap.Int("size", size),
		zap.Int("capacity", len(buf)/size),
	)

	return nil
}

// Release detaches the buffer. Owned memory goes back to the pool and must
// not be used afterwards; borrowed memory is left alone.
func (r *Record) Release() {
	if r.storage == nil {
		return
	}
	r.detach()

	Logger().Debug("record buffer released", zap.String("record", r.label()))
}

func (r *Record) detach() {
	if r.storage != nil {
		r.storage.release()
	}
	r.storage = nil
	r.pos = 0
}

// Bytes returns the live record window. Writes to it are writes to the record.
func (r *Record) Bytes() ([]byte, error) {
	return r.window()
}

// CopyFrom copies Size() bytes from src into the record.
func (r *Record) CopyFrom(src []byte) error {
	w, err := r.window()
	if err != nil {
		return err
	}
	if len(src) < len(w) {
		return fmt.Errorf("record %s: copy %d bytes into %d-byte record: %w",
			r.label(), len(src), len(w), errs.ErrShortSource)
	}
	copy(w, src)

	return nil
}

// Reset zeroes the record window.
func (r *Record) Reset() error {
	w, err := r.window()
	if err != nil {
		return err
	}
	clear(w)

	return nil
}

// Capacity returns how many whole records the attached buffer holds.
func (r *Record) Capacity() int {
	root := r.root()
	if root.storage == nil || root.size == 0 {
		return 0
	}

	return len(root.storage.Bytes()) / root.size
}

// Position returns the index of the record the window is on.
func (r *Record) Position() int {
	if r.size == 0 {
		return 0
	}

	return r.pos / r.size
}

// Step moves the window by n records. A move outside the attached buffer
// fails with errs.ErrStorageOverflow and leaves the window where it was.
func (r *Record) Step(n int) error {
	return r.Seek(r.Position() + n)
}

// Next moves the window to the following record.
func (r *Record) Next() error {
	return r.Step(1)
}

// Prev moves the window to the preceding record.
func (r *Record) Prev() error {
	return r.Step(-1)
}

// Seek moves the window to the record at index.
func (r *Record) Seek(index int) error {
	if _, err := r.window(); err != nil {
		return err
	}
	if r.parent != nil {
		return fmt.Errorf("record %s: seek: %w", r.label(), errs.ErrEmbedded)
	}

	if index < 0 || index >= r.Capacity() {
		return fmt.Errorf("record %s: seek to record %d of %d: %w",
			r.label(), index, r.Capacity(), errs.ErrStorageOverflow)
	}
	r.pos = index * r.size

	return nil
}

func (r *Record) root() *Record {
	for r.parent != nil {
		r = r.parent
	}

	return r
}
