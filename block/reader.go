package block

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"go.uber.org/zap"

	"github.com/arloliu/overlay/compress"
	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/internal/hash"
	"github.com/arloliu/overlay/internal/pool"
	"github.com/arloliu/overlay/record"
)

// Reader reads blocks written by Writer.
type Reader struct {
	rd     io.Reader
	hdr    *headerLayout
	raw    *pool.ByteBuffer
	packed *pool.ByteBuffer
	blocks int
	err    error
}

// NewReader creates a block reader over rd.
func NewReader(rd io.Reader) *Reader {
	r := &Reader{
		rd:     rd,
		raw:    pool.GetBlockBuffer(),
		packed: pool.GetBlockBuffer(),
	}
	r.hdr, r.err = newHeaderLayout()

	return r
}

// Next reads, verifies and decompresses the next block.
//
// The returned block shares the reader's buffer and is valid until the next
// call to Next or Close. Next returns io.EOF when the stream ends cleanly on
// a block boundary.
func (r *Reader) Next() (*Block, error) {
	if r.err != nil {
		return nil, r.err
	}

	if err := r.hdr.ReadRecord(r.rd); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("block %d: truncated header: %w", r.blocks, errs.ErrInvalidBlockHeader)
		}
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, err
	}

	hdr, err := r.hdr.decode()
	if err != nil {
		Logger().Warn("invalid block header", zap.Int("block", r.blocks), zap.Error(err))
		return nil, fmt.Errorf("block %d: %w", r.blocks, err)
	}

	packed := r.packed.Zeroed(hdr.PayloadLen)
	if _, err := io.ReadFull(r.rd, packed); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, fmt.Errorf("block %d: read payload: %w", r.blocks, err)
	}

	codec, err := compress.GetCodec(hdr.Compression)
	if err != nil {
		return nil, fmt.Errorf("block %d: %w", r.blocks, err)
	}
	raw, err := codec.Decompress(r.raw.B[:0], packed, hdr.RawLen)
	if err != nil {
		Logger().Warn("block payload corrupt", zap.Int("block", r.blocks), zap.Error(err))
		return nil, fmt.Errorf("block %d: %w", r.blocks, err)
	}
	r.raw.B = raw

	if sum := hash.Checksum(raw); sum != hdr.Checksum {
		Logger().Warn("block checksum mismatch",
			zap.Int("block", r.blocks),
			zap.Uint64("want", hdr.Checksum),
			zap.Uint64("got", sum),
		)

		return nil, fmt.Errorf("block %d: %w", r.blocks, errs.ErrChecksumMismatch)
	}

	r.blocks++

	return &Block{Header: hdr, data: raw}, nil
}

// All iterates over the remaining blocks. Iteration stops after the first
// error, which is yielded with a nil block; a clean end yields no error.
func (r *Reader) All() iter.Seq2[*Block, error] {
	return func(yield func(*Block, error) bool) {
		for {
			blk, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(blk, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the reader's buffers. It does not close the underlying reader.
func (r *Reader) Close() {
	if r.raw == nil {
		return
	}
	if r.hdr != nil {
		r.hdr.Release()
	}
	pool.PutBlockBuffer(r.raw)
	pool.PutBlockBuffer(r.packed)
	r.raw, r.packed = nil, nil
	r.err = errors.New("block reader closed")
}

// Block is one decoded block.
type Block struct {
	Header
	data []byte
}

// Bytes returns the raw payload: Count records of RecordSize bytes.
func (b *Block) Bytes() []byte {
	return b.data
}

// Records adopts the payload into rec and steps it over every record,
// yielding the record index. rec must have the block's record size. rec stays
// attached to the payload afterwards.
func (b *Block) Records(rec *record.Record) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		size, err := rec.Size()
		if err == nil && size != b.RecordSize {
			err = fmt.Errorf("record is %d bytes, block holds %d-byte records: %w",
				size, b.RecordSize, errs.ErrRecordSizeMismatch)
		}
		if err == nil {
			err = rec.Adopt(b.data)
		}
		if err != nil {
			yield(-1, err)
			return
		}

		for i := range b.Count {
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
