package block

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
	"github.com/arloliu/overlay/record"
)

const (
	// HeaderSize is the encoded size of a block header.
	HeaderSize = 32
	// Magic opens every block header.
	Magic = "OVLB"
	// Version is the block format version written by this package.
	Version = 1

	// maxPayloadSize bounds the buffers a reader allocates for one block.
	maxPayloadSize = 1 << 30
)

// Header describes one block.
type Header struct {
	Compression format.CompressionType
	RecordSize  int
	Count       int
	RawLen      int
	PayloadLen  int
	Checksum    uint64
}

// headerLayout is the on-disk header overlaid on a 32-byte record.
type headerLayout struct {
	*record.Record
	magic       *record.Field[string]
	version     *record.Field[uint8]
	compression *record.Field[uint8]
	reserved    *record.Field[uint16]
	recordSize  *record.Field[uint32]
	count       *record.Field[uint32]
	rawLen      *record.Field[uint32]
	payloadLen  *record.Field[uint32]
	checksum    *record.Field[uint64]
}

func newHeaderLayout() (*headerLayout, error) {
	r := record.New(record.WithName("block header"), record.WithLittleEndian())
	h := &headerLayout{
		Record:      r,
		magic:       record.Text(r, len(Magic), record.Named("magic")),
		version:     record.Uint8(r, record.Named("version")),
		compression: record.Uint8(r, record.Named("compression")),
		reserved:    record.Uint16(r, record.Named("reserved")),
		recordSize:  record.Uint32(r, record.Named("recordSize")),
		count:       record.Uint32(r, record.Named("count")),
		rawLen:      record.Uint32(r, record.Named("rawLen")),
		payloadLen:  record.Uint32(r, record.Named("payloadLen")),
		checksum:    record.Uint64(r, record.Named("checksum")),
	}

	if err := h.Allocate(); err != nil {
		return nil, err
	}

	return h, nil
}

func (h *headerLayout) encode(hdr Header) error {
	return multierr.Combine(
		h.magic.Set(Magic),
		h.version.Set(Version),
		h.compression.Set(uint8(hdr.Compression)),
		h.reserved.Set(0),
		h.recordSize.Set(uint32(hdr.RecordSize)),
		h.count.Set(uint32(hdr.Count)),
		h.rawLen.Set(uint32(hdr.RawLen)),
		h.payloadLen.Set(uint32(hdr.PayloadLen)),
		h.checksum.Set(hdr.Checksum),
	)
}

func (h *headerLayout) decode() (Header, error) {
	var hdr Header

	magic, err := h.magic.Get()
	if err != nil {
		return hdr, err
	}
	if magic != Magic {
		return hdr, fmt.Errorf("%w: %q", errs.ErrInvalidMagic, magic)
	}

	version, err := h.version.Get()
	if err != nil {
		return hdr, err
	}
	if version != Version {
		return hdr, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	compression, err1 := h.compression.Get()
	recordSize, err2 := h.recordSize.Get()
	count, err3 := h.count.Get()
	rawLen, err4 := h.rawLen.Get()
	payloadLen, err5 := h.payloadLen.Get()
	checksum, err6 := h.checksum.Get()
	if err := multierr.Combine(err1, err2, err3, err4, err5, err6); err != nil {
		return hdr, err
	}

	hdr = Header{
		Compression: format.CompressionType(compression),
		RecordSize:  int(recordSize),
		Count:       int(count),
		RawLen:      int(rawLen),
		PayloadLen:  int(payloadLen),
		Checksum:    checksum,
	}

	return hdr, hdr.validate()
}

func (hdr Header) validate() error {
	switch {
	case !hdr.Compression.IsValid():
		return fmt.Errorf("%w: compression %d", errs.ErrInvalidBlockHeader, hdr.Compression)
	case hdr.RecordSize <= 0 || hdr.Count <= 0:
		return fmt.Errorf("%w: %d records of %d bytes", errs.ErrInvalidBlockHeader, hdr.Count, hdr.RecordSize)
	case hdr.RawLen != hdr.Count*hdr.RecordSize:
		return fmt.Errorf("%w: raw length %d for %d records of %d bytes",
			errs.ErrInvalidBlockHeader, hdr.RawLen, hdr.Count, hdr.RecordSize)
	case hdr.RawLen > maxPayloadSize || hdr.PayloadLen > maxPayloadSize:
		return fmt.Errorf("%w: payload too large", errs.ErrInvalidBlockHeader)
	}

	return nil
}
