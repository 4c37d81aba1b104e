// Package scalar implements a tagged scalar value.
//
// A Scalar holds at most one value from a closed set of primitive kinds:
//   - Bool
//   - plain, signed and unsigned char (Char, int8, uint8)
//   - wide and fixed-width characters (WChar, Char16, Char32)
//   - short, int, long and long long integers, signed and unsigned
//     (int16/uint16, int32/uint32, int/uint, int64/uint64)
//   - Float, Double and LongDouble (float32, float64, LongDouble)
//
// LongDouble is kept at float64 precision. WChar is 32 bits wide.
//
// Values go in through the From* constructors, Of or New, and come out
// through one accessor per kind. An accessor returns an error matching
// ErrKindMismatch unless the scalar holds exactly that kind.
package scalar
