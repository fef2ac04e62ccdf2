package record

import (
	"testing"
)

// ==============================================================================
// Helper Functions for Benchmarks
// ==============================================================================

type benchRecord struct {
	*Record
	name  *Field[string]
	qty   *Field[int]
	price *Field[float64]
	flags *FieldArray[uint16]
}

func newBenchRecord(tb testing.TB, count int) (*benchRecord, []byte) {
	tb.Helper()

	r := New(WithName("bench"), WithLittleEndian())
	b := &benchRecord{
		Record: r,
		name:   Text(r, 24),
		qty:    TextInt(r, 8),
		price:  Float64(r),
		flags:  BinaryArray[uint16](r, 4),
	}

	size, err := r.Size()
	if err != nil {
		tb.Fatalf("Failed to size record: %v", err)
	}

	buf := make([]byte, size*count)
	if err := r.Adopt(buf); err != nil {
		tb.Fatalf("Failed to adopt buffer: %v", err)
	}

	return b, buf
}

// ==============================================================================
// Field Accessor Benchmarks
// ==============================================================================

func BenchmarkFieldText(b *testing.B) {
	r, _ := newBenchRecord(b, 1)

	b.ReportAllocs()
	for b.Loop() {
		_ = r.name.Set("widget")
		_, _ = r.name.Get()
	}
}

func BenchmarkFieldNumericText(b *testing.B) {
	r, _ := newBenchRecord(b, 1)

	b.ReportAllocs()
	for b.Loop() {
		_ = r.qty.Set(12345)
		_, _ = r.qty.Get()
	}
}

func BenchmarkFieldBinary(b *testing.B) {
	r, _ := newBenchRecord(b, 1)

	b.ReportAllocs()
	for b.Loop() {
		_ = r.price.Set(9.99)
		_, _ = r.price.Get()
	}
}

func BenchmarkFieldArrayAssign(b *testing.B) {
	r, _ := newBenchRecord(b, 1)

	b.ReportAllocs()
	for b.Loop() {
		_ = r.flags.Assign(1, 2, 3, 4)
	}
}

// ==============================================================================
// Stepping Benchmarks
// ==============================================================================

func BenchmarkStepScan(b *testing.B) {
	const count = 1024
	r, _ := newBenchRecord(b, count)

	b.ReportAllocs()
	for b.Loop() {
		_ = r.Seek(0)
		for i := 0; i < count; i++ {
			_, _ = r.price.Get()
			if r.Next() != nil {
				break
			}
		}
	}
}
