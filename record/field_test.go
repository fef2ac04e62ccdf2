package record

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

func TestTextField(t *testing.T) {
	tests := []struct {
		name  string
		pad   byte
		value string
		want  string
	}{
		{"short value is padded", ' ', "ab", "ab    "},
		{"exact width", ' ', "abcdef", "abcdef"},
		{"long value is truncated", ' ', "abcdefgh", "abcdef"},
		{"empty value", ' ', "", "      "},
		{"custom pad", '*', "ab", "ab****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(WithPad(tt.pad))
			f := Text(r, 6)
			require.NoError(t, r.Allocate())

			require.NoError(t, f.Set(tt.value))
			got, err := f.Get()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Len(t, got, 6)
		})
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, opt := range []Option{WithLittleEndian(), WithBigEndian(), nil} {
		r := New(opt)
		i8 := Int8(r)
		i16 := Int16(r)
		i32 := Int32(r)
		i64 := Int64(r)
		u8 := Uint8(r)
		u16 := Uint16(r)
		u32 := Uint32(r)
		u64 := Uint64(r)
		f32 := Float32(r)
		f64 := Float64(r)
		b := Bool(r)
		by := Byte(r)
		require.NoError(t, r.Err())

		size, err := r.Size()
		require.NoError(t, err)
		require.Equal(t, 1+2+4+8+1+2+4+8+4+8+1+1, size)
		require.NoError(t, r.Allocate())

		for _, v := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
			require.NoError(t, i8.Set(v))
			got, err := i8.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []int16{math.MinInt16, -2, 0, 0x0102, math.MaxInt16} {
			require.NoError(t, i16.Set(v))
			got, err := i16.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []int32{math.MinInt32, -3, 0, 0x01020304, math.MaxInt32} {
			require.NoError(t, i32.Set(v))
			got, err := i32.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []int64{math.MinInt64, -4, 0, 0x0102030405060708, math.MaxInt64} {
			require.NoError(t, i64.Set(v))
			got, err := i64.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []uint8{0, 0x7F, math.MaxUint8} {
			require.NoError(t, u8.Set(v))
			got, err := u8.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []uint16{0, 0xBEEF, math.MaxUint16} {
			require.NoError(t, u16.Set(v))
			got, err := u16.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []uint32{0, 0xDEADBEEF, math.MaxUint32} {
			require.NoError(t, u32.Set(v))
			got, err := u32.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []uint64{0, 0xDEADBEEFCAFEBABE, math.MaxUint64} {
			require.NoError(t, u64.Set(v))
			got, err := u64.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []float32{0, -1.5, math.MaxFloat32, math.SmallestNonzeroFloat32} {
			require.NoError(t, f32.Set(v))
			got, err := f32.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []float64{0, math.Pi, -math.MaxFloat64, math.Inf(1)} {
			require.NoError(t, f64.Set(v))
			got, err := f64.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		for _, v := range []bool{true, false} {
			require.NoError(t, b.Set(v))
			got, err := b.Get()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		require.NoError(t, by.Set('Q'))
		got, err := by.Get()
		require.NoError(t, err)
		require.Equal(t, byte('Q'), got)
	}
}

func TestBinaryByteOrder(t *testing.T) {
	le := New(WithLittleEndian())
	lv := Uint32(le)
	be := New(WithBigEndian())
	bv := Uint32(be)

	lbuf := make([]byte, 4)
	bbuf := make([]byte, 4)
	require.NoError(t, le.Adopt(lbuf))
	require.NoError(t, be.Adopt(bbuf))

	require.NoError(t, lv.Set(0x01020304))
	require.NoError(t, bv.Set(0x01020304))
	require.Equal(t, []byte{4, 3, 2, 1}, lbuf)
	require.Equal(t, []byte{1, 2, 3, 4}, bbuf)
}

func TestNumericTextField(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		r := New()
		i := TextInt(r, 6)
		f := TextFloat(r, 6)
		require.NoError(t, r.Allocate())

		require.NoError(t, i.Set(-42))
		require.NoError(t, f.Set(3.141592654))

		b, err := r.Bytes()
		require.NoError(t, err)
		require.Equal(t, "-42   3.1415", string(b))

		iv, err := i.Get()
		require.NoError(t, err)
		require.Equal(t, -42, iv)

		fv, err := f.Get()
		require.NoError(t, err)
		require.InDelta(t, 3.1415, fv, 1e-6)
	})

	t.Run("lenient parse yields zero", func(t *testing.T) {
		for _, payload := range []string{"  abc ", "      ", "\x00\x00\x00\x00\x00\x00", "-.x   "} {
			r := New()
			i := TextInt64(r, 6)
			f := TextFloat64(r, 6)
			require.NoError(t, r.Adopt([]byte(payload+payload)))

			iv, err := i.Get()
			require.NoError(t, err)
			require.Zero(t, iv)

			fv, err := f.Get()
			require.NoError(t, err)
			require.Zero(t, fv)
		}
	})

	t.Run("lenient parse reads leading number", func(t *testing.T) {
		r := New()
		i := TextInt(r, 6)
		f := TextFloat64(r, 6)
		require.NoError(t, r.Adopt([]byte("12.50 2.5e1x")))

		iv, err := i.Get()
		require.NoError(t, err)
		require.Equal(t, 12, iv)

		fv, err := f.Get()
		require.NoError(t, err)
		require.InDelta(t, 25.0, fv, 1e-9)
	})

	t.Run("strict parse", func(t *testing.T) {
		r := New(WithStrictNumbers())
		i := TextInt(r, 4)
		require.NoError(t, r.Adopt([]byte("1a  ")))

		_, err := i.Get()
		require.ErrorIs(t, err, errs.ErrInvalidNumber)

		require.NoError(t, i.Set(0))
		require.NoError(t, r.CopyFrom([]byte("    ")))
		iv, err := i.Get()
		require.NoError(t, err)
		require.Zero(t, iv)
	})
}

func TestBlobField(t *testing.T) {
	require := require.New(t)

	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	r := New()
	f := Blob(r, 4)
	require.Equal(format.KindHex, f.Converter().Kind())
	require.NoError(r.Adopt(buf))

	s, err := f.Get()
	require.NoError(err)
	require.Equal("DEADBEEF", s)

	require.NoError(f.Set("0a0B0c0D"))
	require.Equal([]byte{0x0A, 0x0B, 0x0C, 0x0D}, buf)

	s, err = f.Get()
	require.NoError(err)
	require.Equal("0A0B0C0D", s)
	require.Equal(strings.ToUpper(s), s)

	require.ErrorIs(f.Set("xyzw0000"), errs.ErrInvalidHex)
	require.ErrorIs(f.Set("00"), errs.ErrInvalidHex)
	require.Equal([]byte{0x0A, 0x0B, 0x0C, 0x0D}, buf)
}

func TestRawBytesField(t *testing.T) {
	r := New()
	f := RawBytes(r, 4)
	require.NoError(t, r.Allocate())

	require.NoError(t, f.Set([]byte{1, 2}))
	got, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 0, 0}, got)

	got[0] = 9
	raw, err := f.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 0, 0}, raw, "Get must return a copy")

	raw[1] = 9
	again, err := f.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 0, 0}, again, "Bytes must return a copy")
}
