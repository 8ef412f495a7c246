package mixercache

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	alsa "github.com/gen2brain/alsa-audiotool"
)

// Kind is the value type of a control.
type Kind int

const (
	KindUnknown Kind = iota
	KindBoolean
	KindInteger
	KindEnumerated
	KindByte
	KindInteger64
)

// String returns the control type name as printed by tinymix.
func (k Kind) String() string {
	return k.ctlType().String()
}

func (k Kind) ctlType() alsa.MixerCtlType {
	switch k {
	case KindBoolean:
		return alsa.MIXER_CTL_TYPE_BOOL
	case KindInteger:
		return alsa.MIXER_CTL_TYPE_INT
	case KindEnumerated:
		return alsa.MIXER_CTL_TYPE_ENUM
	case KindByte:
		return alsa.MIXER_CTL_TYPE_BYTE
	case KindInteger64:
		return alsa.MIXER_CTL_TYPE_INT64
	default:
		return alsa.MIXER_CTL_TYPE_UNKNOWN
	}
}

// KindOf maps a transport control type to a Kind. IEC958 and unknown types map to KindUnknown.
func KindOf(t alsa.MixerCtlType) Kind {
	switch t {
	case alsa.MIXER_CTL_TYPE_BOOL:
		return KindBoolean
	case alsa.MIXER_CTL_TYPE_INT:
		return KindInteger
	case alsa.MIXER_CTL_TYPE_ENUM:
		return KindEnumerated
	case alsa.MIXER_CTL_TYPE_BYTE:
		return KindByte
	case alsa.MIXER_CTL_TYPE_INT64:
		return KindInteger64
	default:
		return KindUnknown
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) Kind {
	return KindOf(alsa.ParseMixerCtlType(s))
}

// Value holds the slots of one control. The concrete type always matches Kind.
type Value interface {
	Kind() Kind
	Len() int
	Clone() Value
	// Strings formats each slot the way a control dump prints it.
	Strings() []string
}

// Booleans is the value of a boolean control.
type Booleans []bool

// Integers is the value of an integer control.
type Integers []int

// Enumerated is the value of an enumerated control, one selected label per slot.
type Enumerated []string

// Bytes is the value of a byte control.
type Bytes []byte

// Integers64 is the value of a 64-bit integer control.
type Integers64 []int64

func (v Booleans) Kind() Kind   { return KindBoolean }
func (v Integers) Kind() Kind   { return KindInteger }
func (v Enumerated) Kind() Kind { return KindEnumerated }
func (v Bytes) Kind() Kind      { return KindByte }
func (v Integers64) Kind() Kind { return KindInteger64 }

func (v Booleans) Len() int   { return len(v) }
func (v Integers) Len() int   { return len(v) }
func (v Enumerated) Len() int { return len(v) }
func (v Bytes) Len() int      { return len(v) }
func (v Integers64) Len() int { return len(v) }

func (v Booleans) Clone() Value   { return slices.Clone(v) }
func (v Integers) Clone() Value   { return slices.Clone(v) }
func (v Enumerated) Clone() Value { return slices.Clone(v) }
func (v Bytes) Clone() Value      { return slices.Clone(v) }
func (v Integers64) Clone() Value { return slices.Clone(v) }

func (v Booleans) Strings() []string {
	out := make([]string, len(v))
	for i, b := range v {
		out[i] = "0"
		if b {
			out[i] = "1"
		}
	}

	return out
}

func (v Integers) Strings() []string {
	out := make([]string, len(v))
	for i, n := range v {
		out[i] = strconv.Itoa(n)
	}

	return out
}

func (v Enumerated) Strings() []string { return slices.Clone(v) }

func (v Bytes) Strings() []string {
	out := make([]string, len(v))
	for i, b := range v {
		out[i] = strconv.Itoa(int(b))
	}

	return out
}

func (v Integers64) Strings() []string {
	out := make([]string, len(v))
	for i, n := range v {
		out[i] = strconv.FormatInt(n, 10)
	}

	return out
}

// Bool builds a boolean value.
func Bool(v ...bool) Booleans { return v }

// Int builds an integer value.
func Int(v ...int) Integers { return v }

// Enum builds an enumerated value.
func Enum(v ...string) Enumerated { return v }

// ZeroValue returns an all-zero value of the given kind with n slots, or nil for KindUnknown.
func ZeroValue(k Kind, n int) Value {
	switch k {
	case KindBoolean:
		return make(Booleans, n)
	case KindInteger:
		return make(Integers, n)
	case KindEnumerated:
		return make(Enumerated, n)
	case KindByte:
		return make(Bytes, n)
	case KindInteger64:
		return make(Integers64, n)
	default:
		return nil
	}
}

// ParseValue parses dump-formatted slots into a value of the given kind.
func ParseValue(k Kind, fields []string) (Value, error) {
	switch k {
	case KindBoolean:
		out := make(Booleans, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("slot %d: %w", i, err)
			}
			out[i] = n != 0
		}

		return out, nil
	case KindInteger:
		out := make(Integers, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("slot %d: %w", i, err)
			}
			out[i] = n
		}

		return out, nil
	case KindEnumerated:
		return Enumerated(slices.Clone(fields)), nil
	case KindByte:
		out := make(Bytes, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("slot %d: %w", i, err)
			}
			out[i] = byte(n)
		}

		return out, nil
	case KindInteger64:
		out := make(Integers64, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("slot %d: %w", i, err)
			}
			out[i] = n
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrTypeMismatch, k)
	}
}

// Resize returns a copy of v with n slots. Missing slots repeat the last slot of v.
func Resize(v Value, n int) Value {
	if v == nil {
		return nil
	}

	switch t := v.(type) {
	case Booleans:
		return resize(t, n)
	case Integers:
		return resize(t, n)
	case Enumerated:
		return resize(t, n)
	case Bytes:
		return resize(t, n)
	case Integers64:
		return resize(t, n)
	default:
		return v.Clone()
	}
}

func resize[S ~[]E, E any](s S, n int) S {
	out := make(S, n)
	copy(out, s)

	if len(s) > 0 {
		for i := len(s); i < n; i++ {
			out[i] = s[len(s)-1]
		}
	}

	return out
}

// Equal reports whether both values have the same kind and slots.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Kind() != b.Kind() || a.Len() != b.Len() {
		return false
	}

	return slices.Equal(a.Strings(), b.Strings())
}

// Format renders a value on one line, for logs and listings.
func Format(v Value) string {
	if v == nil {
		return "#N/A"
	}

	return strings.Join(v.Strings(), ",")
}
