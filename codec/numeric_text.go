package codec

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/arloliu/overlay/errs"
	"github.com/arloliu/overlay/format"
)

// NumericText stores numbers as left-aligned decimal text, padded like Text.
//
// Values whose text form is wider than the field are truncated, exactly as
// Text truncates strings; a 6-byte float field set to 3.141592654 stores
// "3.1415".
type NumericText[T Number] struct {
	text   Text
	strict bool
	kind   reflect.Kind
	bits   int
}

// NewNumericText creates a numeric text converter for T.
//
// It panics when the pad byte is a digit, sign or decimal point, since such a
// pad cannot be told apart from the number when decoding.
func NewNumericText[T Number](opts ...TextOption) NumericText[T] {
	cfg := newTextConfig(opts)
	if !NumericPadAllowed(cfg.pad) {
		panic(fmt.Sprintf("codec: pad %q is ambiguous for numeric text", cfg.pad))
	}

	typ := reflect.TypeFor[T]()

	return NumericText[T]{
		text:   Text{pad: cfg.pad},
		strict: cfg.strict,
		kind:   typ.Kind(),
		bits:   typ.Bits(),
	}
}

// NumericPadAllowed reports whether pad can be used with NumericText.
func NumericPadAllowed(pad byte) bool {
	return pad != 0 && strings.IndexByte("0123456789+-.eE", pad) < 0
}

// Encode writes the decimal form of v padded to len(dst).
func (c NumericText[T]) Encode(v T, dst []byte) error {
	return c.text.Encode(c.format(v), dst)
}

// Decode parses the stored decimal text.
//
// Blank or empty payloads decode as zero. In the default lenient mode a
// payload with trailing junk decodes its leading number ("12.50" in an int
// field reads 12, "3.14xyz" in a float field reads 3.14) and a payload with
// no leading number decodes as zero, both with a nil error. A converter
// created WithStrict rejects anything but a complete number with an error
// wrapping errs.ErrInvalidNumber.
func (c NumericText[T]) Decode(src []byte) (T, error) {
	pad := rune(c.text.Pad())
	s := strings.TrimFunc(string(src), func(r rune) bool {
		return r == pad || r == ' ' || r == 0
	})
	if s == "" {
		return 0, nil
	}

	v, err := c.parse(s)
	if err != nil {
		if c.strict {
			return 0, fmt.Errorf("%w %q: %w", errs.ErrInvalidNumber, s, err)
		}

		if p := c.prefix(s); p != "" && p != s {
			if v, err := c.parse(p); err == nil {
				return v, nil
			}
		}

		return 0, nil
	}

	return v, nil
}

func (c NumericText[T]) Kind() format.ConverterKind {
	return format.KindNumericText
}

// Strict reports whether parse failures are returned as errors.
func (c NumericText[T]) Strict() bool {
	return c.strict
}

func (c NumericText[T]) format(v T) string {
	switch c.kind {
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(float64(v), 'f', -1, c.bits)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

func (c NumericText[T]) parse(s string) (T, error) {
	switch c.kind {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, c.bits)
		return T(f), err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, c.bits)
		return T(u), err
	default:
		i, err := strconv.ParseInt(s, 10, c.bits)
		return T(i), err
	}
}

// prefix returns the longest leading run of s that forms a number: an
// optional sign and digits, plus a fraction and exponent for floats.
func (c NumericText[T]) prefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := scanDigits(s, i)
	if c.kind != reflect.Float32 && c.kind != reflect.Float64 {
		if digits == i {
			return ""
		}

		return s[:digits]
	}

	end := digits
	if end < len(s) && s[end] == '.' {
		end = scanDigits(s, end+1)
	}
	// a lone sign or "." carries no digits
	if end-i == 0 || (end-i == 1 && s[i] == '.') {
		return ""
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := scanDigits(s, j); k > j {
			end = k
		}
	}

	return s[:end]
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return i
}
