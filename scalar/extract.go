package scalar

import "math"

// ---------------------------------------------------------------------------
// Kind-checked extraction
//
// Each accessor succeeds only when the scalar holds exactly its kind. On any
// other kind it returns the zero value and a *MismatchError; there is no
// conversion between kinds, not even between Float and Double.
// ---------------------------------------------------------------------------

func (s Scalar) check(want Kind) error {
	if s.kind != want {
		return mismatch(want, s.kind)
	}
	return nil
}

func (s Scalar) Bool() (bool, error) {
	if err := s.check(KindBool); err != nil {
		return false, err
	}
	return s.raw != 0, nil
}

func (s Scalar) Char() (Char, error) {
	if err := s.check(KindChar); err != nil {
		return 0, err
	}
	return Char(s.raw), nil
}

func (s Scalar) SignedChar() (int8, error) {
	if err := s.check(KindSignedChar); err != nil {
		return 0, err
	}
	return int8(s.raw), nil
}

func (s Scalar) UnsignedChar() (uint8, error) {
	if err := s.check(KindUnsignedChar); err != nil {
		return 0, err
	}
	return uint8(s.raw), nil
}

func (s Scalar) WChar() (WChar, error) {
	if err := s.check(KindWChar); err != nil {
		return 0, err
	}
	return WChar(int32(s.raw)), nil
}

func (s Scalar) Char16() (Char16, error) {
	if err := s.check(KindChar16); err != nil {
		return 0, err
	}
	return Char16(s.raw), nil
}

func (s Scalar) Char32() (Char32, error) {
	if err := s.check(KindChar32); err != nil {
		return 0, err
	}
	return Char32(int32(s.raw)), nil
}

func (s Scalar) Short() (int16, error) {
	if err := s.check(KindShort); err != nil {
		return 0, err
	}
	return int16(s.raw), nil
}

func (s Scalar) UnsignedShort() (uint16, error) {
	if err := s.check(KindUnsignedShort); err != nil {
		return 0, err
	}
	return uint16(s.raw), nil
}

func (s Scalar) Int() (int32, error) {
	if err := s.check(KindInt); err != nil {
		return 0, err
	}
	return int32(s.raw), nil
}

func (s Scalar) UnsignedInt() (uint32, error) {
	if err := s.check(KindUnsignedInt); err != nil {
		return 0, err
	}
	return uint32(s.raw), nil
}

func (s Scalar) Long() (int, error) {
	if err := s.check(KindLong); err != nil {
		return 0, err
	}
	return int(s.raw), nil
}

func (s Scalar) UnsignedLong() (uint, error) {
	if err := s.check(KindUnsignedLong); err != nil {
		return 0, err
	}
	return uint(s.raw), nil
}

func (s Scalar) LongLong() (int64, error) {
	if err := s.check(KindLongLong); err != nil {
		return 0, err
	}
	return int64(s.raw), nil
}

func (s Scalar) UnsignedLongLong() (uint64, error) {
	if err := s.check(KindUnsignedLongLong); err != nil {
		return 0, err
	}
	return s.raw, nil
}

func (s Scalar) Float() (float32, error) {
	if err := s.check(KindFloat); err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(s.raw)), nil
}

func (s Scalar) Double() (float64, error) {
	if err := s.check(KindDouble); err != nil {
		return 0, err
	}
	return math.Float64frombits(s.raw), nil
}

// LongDouble returns the held value at float64 precision.
func (s Scalar) LongDouble() (LongDouble, error) {
	if err := s.check(KindLongDouble); err != nil {
		return 0, err
	}
	return LongDouble(math.Float64frombits(s.raw)), nil
}
