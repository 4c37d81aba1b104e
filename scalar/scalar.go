package scalar

import (
	"fmt"
	"math"
)

// Scalar holds at most one primitive value together with its Kind.
//
// The payload is kept as raw bits in a single uint64, the same way a NaN-boxed
// value keeps its payload next to its tag. The bits are only ever decoded by
// the accessor matching kind, so a Scalar can never be read under the wrong
// interpretation. The zero value holds nothing and reports KindNone.
//
// Scalar is a plain value: assignment copies it, and it owns no pointers.
// It has no internal locking.
type Scalar struct {
	kind Kind
	raw  uint64
}

// Named types for the kinds whose C representation has no distinct Go type.
// byte and uint8 are the same type, as are rune and int32, so the plain char,
// wide and fixed-width character kinds need their own names for Of and New
// to tell them apart.
type (
	Char   byte
	WChar  rune
	Char16 uint16
	Char32 rune

	// LongDouble is stored with float64 precision; Go has no extended
	// floating-point type.
	LongDouble float64
)

// Primitive is the closed set of Go types a Scalar can be built from.
type Primitive interface {
	bool | Char | int8 | uint8 | WChar | Char16 | Char32 |
		int16 | uint16 | int32 | uint32 | int | uint | int64 | uint64 |
		float32 | float64 | LongDouble
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func FromBool(b bool) Scalar {
	var raw uint64
	if b {
		raw = 1
	}
	return Scalar{kind: KindBool, raw: raw}
}

func FromChar(c Char) Scalar {
	return Scalar{kind: KindChar, raw: uint64(c)}
}

func FromSignedChar(c int8) Scalar {
	return Scalar{kind: KindSignedChar, raw: uint64(uint8(c))}
}

func FromUnsignedChar(c uint8) Scalar {
	return Scalar{kind: KindUnsignedChar, raw: uint64(c)}
}

func FromWChar(c WChar) Scalar {
	return Scalar{kind: KindWChar, raw: uint64(uint32(c))}
}

func FromChar16(c Char16) Scalar {
	return Scalar{kind: KindChar16, raw: uint64(c)}
}

func FromChar32(c Char32) Scalar {
	return Scalar{kind: KindChar32, raw: uint64(uint32(c))}
}

func FromShort(n int16) Scalar {
	return Scalar{kind: KindShort, raw: uint64(uint16(n))}
}

func FromUnsignedShort(n uint16) Scalar {
	return Scalar{kind: KindUnsignedShort, raw: uint64(n)}
}

func FromInt(n int32) Scalar {
	return Scalar{kind: KindInt, raw: uint64(uint32(n))}
}

func FromUnsignedInt(n uint32) Scalar {
	return Scalar{kind: KindUnsignedInt, raw: uint64(n)}
}

func FromLong(n int) Scalar {
	return Scalar{kind: KindLong, raw: uint64(n)}
}

func FromUnsignedLong(n uint) Scalar {
	return Scalar{kind: KindUnsignedLong, raw: uint64(n)}
}

func FromLongLong(n int64) Scalar {
	return Scalar{kind: KindLongLong, raw: uint64(n)}
}

func FromUnsignedLongLong(n uint64) Scalar {
	return Scalar{kind: KindUnsignedLongLong, raw: n}
}

// FromFloat keeps the exact float32 bits, NaN payloads included.
func FromFloat(f float32) Scalar {
	return Scalar{kind: KindFloat, raw: uint64(math.Float32bits(f))}
}

func FromDouble(f float64) Scalar {
	return Scalar{kind: KindDouble, raw: math.Float64bits(f)}
}

func FromLongDouble(f LongDouble) Scalar {
	return Scalar{kind: KindLongDouble, raw: math.Float64bits(float64(f))}
}

// Of builds a Scalar whose kind is chosen by the exact Go type of v.
// No conversion is applied: Of(int32(7)) is an Int, Of(int64(7)) a LongLong.
func Of[T Primitive](v T) Scalar {
	s, _ := fromAny(v)
	return s
}

// New is Of for values whose type is only known at run time.
// It returns ErrUnsupportedType for any type outside Primitive.
func New(v any) (Scalar, error) {
	s, ok := fromAny(v)
	if !ok {
		return Scalar{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return s, nil
}

func fromAny(v any) (Scalar, bool) {
	switch x := v.(type) {
	case bool:
		return FromBool(x), true
	case Char:
		return FromChar(x), true
	case int8:
		return FromSignedChar(x), true
	case uint8:
		return FromUnsignedChar(x), true
	case WChar:
		return FromWChar(x), true
	case Char16:
		return FromChar16(x), true
	case Char32:
		return FromChar32(x), true
	case int16:
		return FromShort(x), true
	case uint16:
		return FromUnsignedShort(x), true
	case int32:
		return FromInt(x), true
	case uint32:
		return FromUnsignedInt(x), true
	case int:
		return FromLong(x), true
	case uint:
		return FromUnsignedLong(x), true
	case int64:
		return FromLongLong(x), true
	case uint64:
		return FromUnsignedLongLong(x), true
	case float32:
		return FromFloat(x), true
	case float64:
		return FromDouble(x), true
	case LongDouble:
		return FromLongDouble(x), true
	}
	return Scalar{}, false
}

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

// Kind returns the kind currently held.
func (s Scalar) Kind() Kind {
	return s.kind
}

// Is reports whether s currently holds kind k.
func (s Scalar) Is(k Kind) bool {
	return s.kind == k
}

// Reset drops the held value. The scalar reports KindNone afterwards.
func (s *Scalar) Reset() {
	*s = Scalar{}
}

// Swap exchanges the full state of a and b. Swapping a scalar with itself
// leaves it unchanged.
func Swap(a, b *Scalar) {
	*a, *b = *b, *a
}

// Take moves the held value out of s and returns it, leaving s empty.
func (s *Scalar) Take() Scalar {
	var out Scalar
	Swap(&out, s)
	return out
}

// MoveFrom moves the state of src into s. Whatever s held is dropped and
// src is left empty. Moving a scalar into itself is a no-op.
func (s *Scalar) MoveFrom(src *Scalar) {
	if s == src {
		return
	}
	s.Reset()
	Swap(s, src)
}

// ---------------------------------------------------------------------------
// Formatting
// ---------------------------------------------------------------------------

// Value returns the held value with its exact Go type, or nil when s is
// empty.
func (s Scalar) Value() any {
	switch s.kind {
	case KindBool:
		return s.raw != 0
	case KindChar:
		return Char(s.raw)
	case KindSignedChar:
		return int8(s.raw)
	case KindUnsignedChar:
		return uint8(s.raw)
	case KindWChar:
		return WChar(int32(s.raw))
	case KindChar16:
		return Char16(s.raw)
	case KindChar32:
		return Char32(int32(s.raw))
	case KindShort:
		return int16(s.raw)
	case KindUnsignedShort:
		return uint16(s.raw)
	case KindInt:
		return int32(s.raw)
	case KindUnsignedInt:
		return uint32(s.raw)
	case KindLong:
		return int(s.raw)
	case KindUnsignedLong:
		return uint(s.raw)
	case KindLongLong:
		return int64(s.raw)
	case KindUnsignedLongLong:
		return s.raw
	case KindFloat:
		return math.Float32frombits(uint32(s.raw))
	case KindDouble:
		return math.Float64frombits(s.raw)
	case KindLongDouble:
		return LongDouble(math.Float64frombits(s.raw))
	}
	return nil
}

// String renders s as Kind(value), or "None" when empty. The output is for
// people; nothing parses it back.
func (s Scalar) String() string {
	switch s.kind {
	case KindNone:
		return "None"
	case KindChar, KindSignedChar, KindUnsignedChar:
		return fmt.Sprintf("%s(%q)", s.kind, rune(uint8(s.raw)))
	case KindWChar, KindChar16, KindChar32:
		return fmt.Sprintf("%s(%q)", s.kind, rune(int32(s.raw)))
	}
	return fmt.Sprintf("%s(%v)", s.kind, s.Value())
}
