// Package errs defines the sentinel errors returned by overlay packages.
//
// Errors are wrapped with context by the packages that return them, so callers
// should match with errors.Is:
//
//	if err := rec.Adopt(buf); errors.Is(err, errs.ErrStorageOverflow) {
//	    // buffer too small for the record layout
//	}
package errs

import "errors"

// Record layout and storage errors.
var (
	// ErrUnInitialized is returned when a record's size or storage is requested
	// before any field has been declared, or before a buffer has been attached.
	ErrUnInitialized = errors.New("record not initialized")

	// ErrStorageOverflow is returned when a borrowed buffer is smaller than the
	// record size, or when stepping would move the record window outside it.
	ErrStorageOverflow = errors.New("storage overflow")

	// ErrIndexOutOfBounds is returned for array indexes outside [0, count) and
	// for bulk assignments whose length differs from the array count.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrShortSource is returned when a bulk copy-in source is shorter than the record.
	ErrShortSource = errors.New("source shorter than record")

	// ErrInvalidFieldSize is returned when a field is declared with a non-positive
	// size or a size the converter cannot represent.
	ErrInvalidFieldSize = errors.New("invalid field size")

	// ErrForeignReference is returned when a field is aligned against a field of
	// another record.
	ErrForeignReference = errors.New("alignment reference belongs to another record")

	// ErrSealed is returned when a field is declared after a buffer was attached,
	// or on a record that is already embedded in another record.
	ErrSealed = errors.New("record layout sealed")

	// ErrInvalidPad is returned when a pad byte cannot be used by a converter,
	// such as NUL for text or a digit for numeric text.
	ErrInvalidPad = errors.New("invalid pad byte")

	// ErrEmbedded is returned when an embedded record is attached to storage of
	// its own, or embedded a second time.
	ErrEmbedded = errors.New("record is embedded in another record")
)

// Converter errors.
var (
	// ErrInvalidHex is returned when a hex field is set to a string that is not
	// exactly two hex digits per field byte.
	ErrInvalidHex = errors.New("invalid hex payload")

	// ErrInvalidNumber is returned by strict numeric text converters when the
	// stored text is not a number of the field type.
	ErrInvalidNumber = errors.New("invalid numeric text")
)

// Block file errors.
var (
	ErrInvalidBlockHeader = errors.New("invalid block header")
	ErrInvalidMagic       = errors.New("invalid block magic")
	ErrUnsupportedVersion = errors.New("unsupported block version")
	ErrChecksumMismatch   = errors.New("block checksum mismatch")
	ErrCorruptPayload     = errors.New("corrupt block payload")
	ErrRecordSizeMismatch = errors.New("record size mismatch")
	ErrWriterClosed       = errors.New("block writer closed")
)
