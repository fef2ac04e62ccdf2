package block

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/arloliu/overlay/compress"
	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
	"github.com/arloliu/overlay/internal/hash"
	"github.com/arloliu/overlay/internal/options"
	"github.com/arloliu/overlay/internal/pool"
	"github.com/arloliu/overlay/record"
)

// DefaultRecordsPerBlock is the block size used unless WithRecordsPerBlock is given.
const DefaultRecordsPerBlock = 1024

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithCompression selects the payload codec. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}
		w.codec = codec

		return nil
	})
}

// WithRecordsPerBlock sets how many records are buffered before a block is
// written.
func WithRecordsPerBlock(n int) WriterOption {
	return options.New(func(w *Writer) error {
		if n < 1 {
			return fmt.Errorf("records per block must be positive, got %d", n)
		}
		w.perBlock = n

		return nil
	})
}

// Writer packs fixed-size records into blocks.
type Writer struct {
	w          io.Writer
	recordSize int
	perBlock   int
	codec      compress.Codec

	hdr    *headerLayout
	raw    *pool.ByteBuffer
	packed *pool.ByteBuffer
	digest *hash.Digest
	count  int

	blocks int
	closed bool
}

// NewWriter creates a writer of recordSize-byte records to w.
func NewWriter(w io.Writer, recordSize int, opts ...WriterOption) (*Writer, error) {
	if recordSize <= 0 {
		return nil, fmt.Errorf("record size %d: %w", recordSize, errs.ErrInvalidFieldSize)
	}

	bw := &Writer{
		w:          w,
		recordSize: recordSize,
		perBlock:   DefaultRecordsPerBlock,
		codec:      compress.NewNoOpCodec(),
		digest:     hash.NewDigest(),
	}
	if err := options.Apply(bw, opts...); err != nil {
		return nil, err
	}

	hdr, err := newHeaderLayout()
	if err != nil {
		return nil, err
	}
	bw.hdr = hdr
	bw.raw = pool.GetBlockBuffer()
	bw.packed = pool.GetBlockBuffer()

	return bw, nil
}

// Append copies the current window of rec into the pending block. rec must
// be exactly the writer's record size.
func (w *Writer) Append(rec *record.Record) error {
	b, err := rec.Bytes()
	if err != nil {
		return err
	}

	return w.AppendBytes(b)
}

// AppendBytes adds one raw record to the pending block.
func (w *Writer) AppendBytes(raw []byte) error {
	if w.closed {
		return errs.ErrWriterClosed
	}
	if len(raw) != w.recordSize {
		return fmt.Errorf("append %d bytes to %d-byte block: %w", len(raw), w.recordSize, errs.ErrRecordSizeMismatch)
	}

	w.raw.MustWrite(raw)
	_, _ = w.digest.Write(raw)
	w.count++

	if w.count >= w.perBlock {
		return w.Flush()
	}

	return nil
}

// Flush writes the pending records as one block. It does nothing when no
// records are pending.
func (w *Writer) Flush() error {
	if w.closed {
		return errs.ErrWriterClosed
	}
	if w.count == 0 {
		return nil
	}

	payload := w.raw.Bytes()
	packed, err := w.codec.Compress(w.packed.B[:0], payload)
	if err != nil {
		return fmt.Errorf("compress block %d: %w", w.blocks, err)
	}
	w.packed.B = packed

	hdr := Header{
		Compression: w.codec.Type(),
		RecordSize:  w.recordSize,
		Count:       w.count,
		RawLen:      len(payload),
		PayloadLen:  len(packed),
		Checksum:    w.digest.Sum64(),
	}
	if err := w.hdr.encode(hdr); err != nil {
		return err
	}

	if err := w.hdr.WriteRecord(w.w); err != nil {
		return fmt.Errorf("write block %d header: %w", w.blocks, err)
	}
	if _, err := w.w.Write(packed); err != nil {
		return fmt.Errorf("write block %d payload: %w", w.blocks, err)
	}

	Logger().Debug("block flushed",
		zap.Int("block", w.blocks),
		zap.Int("records", hdr.Count),
		zap.Int("rawLen", hdr.RawLen),
		zap.Int("payloadLen", hdr.PayloadLen),
		zap.Stringer("compression", hdr.Compression),
	)

	w.blocks++
	w.count = 0
	w.raw.Reset()
	w.digest.Reset()

	return nil
}

// Blocks returns the number of blocks written so far.
func (w *Writer) Blocks() int {
	return w.blocks
}

// Close flushes pending records and releases the writer's buffers. It does
// not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	err := w.Flush()
	w.closed = true

	w.hdr.Release()
	pool.PutBlockBuffer(w.raw)
	pool.PutBlockBuffer(w.packed)
	w.raw, w.packed = nil, nil

	return err
}
