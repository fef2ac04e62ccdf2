package codec

import (
	"github.com/arloliu/overlay/format"
	"github.com/arloliu/overlay/internal/options"
)

// DefaultPad is the pad byte used by text converters unless configured otherwise.
const DefaultPad = ' '

// Text stores strings left-aligned in a fixed-width range, padded with a pad byte.
type Text struct {
	pad byte
}

var _ Converter[string] = Text{}

type textConfig struct {
	pad    byte
	strict bool
}

// TextOption configures Text and NumericText converters.
type TextOption = options.Option[*textConfig]

// WithStrict makes NumericText report non-numeric payloads as
// errs.ErrInvalidNumber instead of decoding them as zero. Text ignores it.
func WithStrict() TextOption {
	return options.NoError(func(c *textConfig) {
		c.strict = true
	})
}

// WithPad sets the pad byte. NUL is rejected because Decode maps NUL to the pad.
func WithPad(pad byte) TextOption {
	return options.New(func(c *textConfig) error {
		if pad == 0 {
			return errPadNUL
		}
		c.pad = pad

		return nil
	})
}

// NewText creates a text converter. It panics on an invalid option, since
// options are fixed at schema definition time.
func NewText(opts ...TextOption) Text {
	cfg := newTextConfig(opts)
	return Text{pad: cfg.pad}
}

func newTextConfig(opts []TextOption) textConfig {
	cfg := textConfig{pad: DefaultPad}
	if err := options.Apply(&cfg, opts...); err != nil {
		panic(err)
	}

	return cfg
}

// Pad returns the pad byte.
func (c Text) Pad() byte {
	if c.pad == 0 {
		return DefaultPad
	}

	return c.pad
}

// Encode fills dst with the pad byte and copies as much of v as fits.
// Longer values are truncated. It never fails.
//
// Truncation counts bytes, not runes, so a multi-byte UTF-8 character that
// straddles the end of dst is cut and leaves an incomplete sequence.
func (c Text) Encode(v string, dst []byte) error {
	pad := c.Pad()
	for i := range dst {
		dst[i] = pad
	}
	copy(dst, v)

	return nil
}

// Decode returns exactly len(src) bytes with every NUL replaced by the pad byte.
func (c Text) Decode(src []byte) (string, error) {
	pad := c.Pad()
	out := make([]byte, len(src))
	for i, b := range src {
		if b == 0 {
			b = pad
		}
		out[i] = b
	}

	return string(out), nil
}

func (c Text) Kind() format.ConverterKind {
	return format.KindText
}
