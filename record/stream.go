package record

import (
	"fmt"
	"io"

	"github.com/arloliu/overlay/internal/pool"
)

// WriteTo writes exactly Size() bytes of the record window to w.
func (r *Record) WriteTo(w io.Writer) (int64, error) {
	b, err := r.window()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(b)

	return int64(n), err
}

// WriteRecord writes the record window to w.
func (r *Record) WriteRecord(w io.Writer) error {
	_, err := r.WriteTo(w)
	return err
}

// ReadRecord reads exactly Size() bytes from rd into the record.
// On a short read the record is left unchanged and the reader's error
// (io.EOF or io.ErrUnexpectedEOF) is returned.
func (r *Record) ReadRecord(rd io.Reader) error {
	w, err := r.window()
	if err != nil {
		return err
	}

	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	tmp := bb.Zeroed(len(w))
	if _, err := io.ReadFull(rd, tmp); err != nil {
		return fmt.Errorf("record %s: read: %w", r.label(), err)
	}
	copy(w, tmp)

	return nil
}
