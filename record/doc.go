// Package record overlays typed fields onto fixed-layout byte buffers.
//
// A Record is an ordered set of field descriptors, each covering a byte range
// of the record. Fields are declared once, at schema definition time, and the
// record then reads and writes them through converters in whatever buffer it
// is attached to. There is no manual offset arithmetic in user code.
//
// # Declaring a Layout
//
// Declarations without a placement option are sequential: each one starts
// where the most recent declaration ended.
//
//	rec := record.New(record.WithName("customer"))
//	id := record.TextInt(rec, 6, record.Named("id"))
//	name := record.Text(rec, 20, record.Named("name"))
//	balance := record.Float64(rec, record.Named("balance"))
//
// AlignStart and AlignEnd place a declaration relative to an earlier one, so
// several fields can view the same bytes (a variant, or COBOL REDEFINES):
//
//	whole := record.Text(rec, 12)
//	head := record.Text(rec, 6, record.AlignStart(whole))
//	tail := record.Text(rec, 6, record.AlignEnd(head))
//
// The record size is the furthest end of any declaration.
//
// # Storage
//
// A record is attached to one buffer at a time:
//
//   - Allocate draws a zeroed buffer of exactly Size() bytes from an internal
//     pool. The record owns it and returns it on Release or re-attachment.
//   - Adopt borrows a caller slice, which may hold many consecutive records.
//     The record never retains or frees it beyond the binding.
//
// Step, Next, Prev and Seek move the record window over a borrowed region:
//
//	rec.Adopt(file)
//	for {
//	    v, _ := id.Get()
//	    ...
//	    if rec.Next() != nil {
//	        break
//	    }
//	}
//
// Fields resolve their bytes through the record on every access, so moving the
// window or re-attaching is reflected immediately.
//
// # Arrays and Embedded Records
//
// NewArray repeats a declaration; FieldArray adds element accessors for arrays
// of plain fields. NewEmbed places a separately declared record inside another
// one, after which the nested record's fields read and write the parent buffer.
//
// # Errors
//
// Declaration mistakes (a non-positive size, aligning against another record's
// field, declaring after a buffer is attached) do not panic. The first one is
// recorded on the record and returned by Err, Size, Allocate, Adopt and every
// field accessor. All errors wrap the sentinels in package errs.
//
// # Thread Safety
//
// Records are not safe for concurrent use. Share a schema between goroutines
// by declaring one record per goroutine.
package record
