// Package overlay reads and writes fixed-layout records: mainframe flat files,
// protocol headers and other formats where every field sits at a known byte
// offset.
//
// A record layout is declared once as an ordered list of typed fields. The
// record is then attached to a buffer and its fields read and write that
// buffer directly, with no offset arithmetic in user code.
//
// # Core Features
//
//   - Sequential and aligned field placement, including overlapping variants
//   - Text, numeric text, binary (any byte order), hex and raw converters
//   - Fixed-count arrays and nested records at any depth
//   - Owned (pooled) and borrowed buffers, with stepping over record runs
//   - Bit-exact stream reads and writes
//   - Compressed, xxHash64-checksummed block files (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
//	rec := overlay.NewRecord(record.WithName("customer"))
//	id := record.TextInt(rec, 6)
//	name := record.Text(rec, 20)
//	balance := record.Float64(rec)
//
//	for i, err := range overlay.Records(file, rec) {
//	    if err != nil {
//	        return err
//	    }
//	    v, _ := name.Get()
//	    fmt.Println(i, v)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the record and
// block packages for the most common use cases. For fine-grained control use
// those packages directly.
package overlay

import (
	"io"
	"iter"

	"github.com/arloliu/overlay/block"
	"github.com/arloliu/overlay/format"
	"github.com/arloliu/overlay/internal/hash"
	"github.com/arloliu/overlay/record"
)

var portableOptions = []record.Option{
	record.WithLittleEndian(),
	record.WithStrictNumbers(),
}

// NewRecord creates an empty record layout using the host byte order and
// lenient numeric text.
func NewRecord(opts ...record.Option) *record.Record {
	return record.New(opts...)
}

// NewPortableRecord creates an empty record layout suited to interchange
// files: binary fields are little-endian regardless of host, and numeric text
// that does not parse is reported instead of read as zero. opts are applied
// after the defaults.
func NewPortableRecord(opts ...record.Option) *record.Record {
	return record.New(append(append([]record.Option(nil), portableOptions...), opts...)...)
}

// Records adopts buf, a flat run of records, and steps rec over each one.
// A trailing partial record is ignored.
func Records(buf []byte, rec *record.Record) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		if err := rec.Adopt(buf); err != nil {
			yield(-1, err)
			return
		}

		for i := range rec.Capacity() {
			if i > 0 {
				if err := rec.Next(); err != nil {
					yield(i, err)
					return
				}
			}
			if !yield(i, nil) {
				return
			}
		}
	}
}

// NewBlockWriter creates an uncompressed block writer for records of rec's layout.
func NewBlockWriter(w io.Writer, rec *record.Record, opts ...block.WriterOption) (*block.Writer, error) {
	size, err := rec.Size()
	if err != nil {
		return nil, err
	}

	return block.NewWriter(w, size, opts...)
}

// NewCompressedBlockWriter creates a Zstd-compressed block writer for records
// of rec's layout. opts are applied after the default.
func NewCompressedBlockWriter(w io.Writer, rec *record.Record, opts ...block.WriterOption) (*block.Writer, error) {
	opts = append([]block.WriterOption{block.WithCompression(format.CompressionZstd)}, opts...)
	return NewBlockWriter(w, rec, opts...)
}

// NewBlockReader creates a block reader over rd.
func NewBlockReader(rd io.Reader) *block.Reader {
	return block.NewReader(rd)
}

// Checksum returns the xxHash64 of data, the checksum block headers store.
func Checksum(data []byte) uint64 {
	return hash.Checksum(data)
}
