// Package selfcheck exercises the scalar contract at run time and reports
// each property through commonlog.
package selfcheck

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/chazu/anyscalar/scalar"
)

// Result is the outcome of one named check. Err is nil on success.
type Result struct {
	Name string
	Err  error
}

// Report collects the results of a run in execution order.
type Report struct {
	Results []Result
}

// Failed returns the number of failed checks.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

type check struct {
	name string
	fn   func() error
}

var checks = []check{
	{"default-empty", checkDefaultEmpty},
	{"round-trip", checkRoundTrip},
	{"mismatch", checkMismatch},
	{"overwrite", checkOverwrite},
	{"copy-independence", checkCopyIndependence},
	{"move-empties-source", checkMove},
	{"self-assignment", checkSelfAssignment},
	{"swap", checkSwap},
	{"reset", checkReset},
	{"value-assignment", checkValueAssignment},
}

// Run executes every check and logs each outcome to log.
func Run(log commonlog.Logger) Report {
	var report Report
	for _, c := range checks {
		err := c.fn()
		if err != nil {
			log.Errorf("%s: FAIL: %v", c.name, err)
		} else {
			log.Infof("%s: ok", c.name)
		}
		report.Results = append(report.Results, Result{Name: c.name, Err: err})
	}
	log.Noticef("%d checks, %d failed", len(report.Results), report.Failed())
	return report
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type sample struct {
	value scalar.Scalar
	want  any
}

func samples() []sample {
	return []sample{
		{scalar.FromBool(true), true},
		{scalar.FromChar('x'), scalar.Char('x')},
		{scalar.FromSignedChar(-5), int8(-5)},
		{scalar.FromUnsignedChar(250), uint8(250)},
		{scalar.FromWChar('ж'), scalar.WChar('ж')},
		{scalar.FromChar16(0x2603), scalar.Char16(0x2603)},
		{scalar.FromChar32(0x1F600), scalar.Char32(0x1F600)},
		{scalar.FromShort(-300), int16(-300)},
		{scalar.FromUnsignedShort(60000), uint16(60000)},
		{scalar.FromInt(123), int32(123)},
		{scalar.FromUnsignedInt(3000000000), uint32(3000000000)},
		{scalar.FromLong(-42), -42},
		{scalar.FromUnsignedLong(42), uint(42)},
		{scalar.FromLongLong(-1 << 40), int64(-1 << 40)},
		{scalar.FromUnsignedLongLong(1 << 63), uint64(1 << 63)},
		{scalar.FromFloat(12.5), float32(12.5)},
		{scalar.FromDouble(3.14), 3.14},
		{scalar.FromLongDouble(1.25), scalar.LongDouble(1.25)},
	}
}

// extract calls the accessor for kind k.
func extract(s scalar.Scalar, k scalar.Kind) (any, error) {
	switch k {
	case scalar.KindBool:
		return s.Bool()
	case scalar.KindChar:
		return s.Char()
	case scalar.KindSignedChar:
		return s.SignedChar()
	case scalar.KindUnsignedChar:
		return s.UnsignedChar()
	case scalar.KindWChar:
		return s.WChar()
	case scalar.KindChar16:
		return s.Char16()
	case scalar.KindChar32:
		return s.Char32()
	case scalar.KindShort:
		return s.Short()
	case scalar.KindUnsignedShort:
		return s.UnsignedShort()
	case scalar.KindInt:
		return s.Int()
	case scalar.KindUnsignedInt:
		return s.UnsignedInt()
	case scalar.KindLong:
		return s.Long()
	case scalar.KindUnsignedLong:
		return s.UnsignedLong()
	case scalar.KindLongLong:
		return s.LongLong()
	case scalar.KindUnsignedLongLong:
		return s.UnsignedLongLong()
	case scalar.KindFloat:
		return s.Float()
	case scalar.KindDouble:
		return s.Double()
	case scalar.KindLongDouble:
		return s.LongDouble()
	}
	return nil, fmt.Errorf("no accessor for %v", k)
}

func expectEmpty(s scalar.Scalar) error {
	if s.Kind() != scalar.KindNone {
		return fmt.Errorf("kind = %v, want None", s.Kind())
	}
	for _, k := range scalar.Kinds() {
		if _, err := extract(s, k); !errors.Is(err, scalar.ErrKindMismatch) {
			return fmt.Errorf("%v extraction on empty scalar: err = %v, want kind mismatch", k, err)
		}
	}
	return nil
}

func expectHolds(s scalar.Scalar, k scalar.Kind, want any) error {
	if s.Kind() != k {
		return fmt.Errorf("kind = %v, want %v", s.Kind(), k)
	}
	got, err := extract(s, k)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%v extraction = %v, want %v", k, got, want)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Checks
// ---------------------------------------------------------------------------

func checkDefaultEmpty() error {
	var s scalar.Scalar
	return expectEmpty(s)
}

func checkRoundTrip() error {
	for _, sm := range samples() {
		built, err := scalar.New(sm.want)
		if err != nil {
			return err
		}
		if built != sm.value {
			return fmt.Errorf("New(%T) = %v, want %v", sm.want, built, sm.value)
		}
		if err := expectHolds(sm.value, sm.value.Kind(), sm.want); err != nil {
			return err
		}
	}
	return nil
}

func checkMismatch() error {
	for _, sm := range samples() {
		for _, k := range scalar.Kinds() {
			if k == sm.value.Kind() {
				continue
			}
			_, err := extract(sm.value, k)
			var me *scalar.MismatchError
			if !errors.As(err, &me) {
				return fmt.Errorf("%v extraction on %v: err = %v, want kind mismatch", k, sm.value, err)
			}
			if me.Want != k || me.Got != sm.value.Kind() {
				return fmt.Errorf("mismatch error reports want %v have %v", me.Want, me.Got)
			}
		}
	}
	return nil
}

func checkOverwrite() error {
	s := scalar.FromInt(1)
	s = scalar.FromDouble(2.5)
	if err := expectHolds(s, scalar.KindDouble, 2.5); err != nil {
		return err
	}
	if _, err := s.Int(); !errors.Is(err, scalar.ErrKindMismatch) {
		return fmt.Errorf("old kind still extractable: err = %v", err)
	}
	return nil
}

func checkCopyIndependence() error {
	orig := scalar.FromInt(42)
	cp := orig
	if err := expectHolds(cp, scalar.KindInt, int32(42)); err != nil {
		return err
	}
	cp = scalar.FromBool(false)
	cp.Reset()
	return expectHolds(orig, scalar.KindInt, int32(42))
}

func checkMove() error {
	src := scalar.FromInt(99)
	dst := src.Take()
	if err := expectHolds(dst, scalar.KindInt, int32(99)); err != nil {
		return err
	}
	if err := expectEmpty(src); err != nil {
		return fmt.Errorf("source after Take: %w", err)
	}

	src = scalar.FromInt(55)
	dst = scalar.FromDouble(1)
	dst.MoveFrom(&src)
	if err := expectHolds(dst, scalar.KindInt, int32(55)); err != nil {
		return err
	}
	if err := expectEmpty(src); err != nil {
		return fmt.Errorf("source after MoveFrom: %w", err)
	}
	return nil
}

func checkSelfAssignment() error {
	s := scalar.FromShort(-8)
	self := &s
	s = *self
	if err := expectHolds(s, scalar.KindShort, int16(-8)); err != nil {
		return fmt.Errorf("copy to self: %w", err)
	}
	s.MoveFrom(self)
	if err := expectHolds(s, scalar.KindShort, int16(-8)); err != nil {
		return fmt.Errorf("move to self: %w", err)
	}
	return nil
}

func checkSwap() error {
	a := scalar.FromInt(10)
	b := scalar.FromDouble(20.5)
	scalar.Swap(&a, &b)
	if err := expectHolds(a, scalar.KindDouble, 20.5); err != nil {
		return err
	}
	if err := expectHolds(b, scalar.KindInt, int32(10)); err != nil {
		return err
	}
	scalar.Swap(&a, &a)
	return expectHolds(a, scalar.KindDouble, 20.5)
}

func checkReset() error {
	for _, sm := range samples() {
		s := sm.value
		s.Reset()
		if err := expectEmpty(s); err != nil {
			return fmt.Errorf("reset of %v: %w", sm.value, err)
		}
	}
	return nil
}

func checkValueAssignment() error {
	x := scalar.Of(int32(7))
	if err := expectHolds(x, scalar.KindInt, int32(7)); err != nil {
		return err
	}
	x = scalar.Of(float32(12.5))
	if err := expectHolds(x, scalar.KindFloat, float32(12.5)); err != nil {
		return err
	}
	if _, err := x.Int(); !errors.Is(err, scalar.ErrKindMismatch) {
		return fmt.Errorf("Int() on Float: err = %v, want kind mismatch", err)
	}
	return nil
}
