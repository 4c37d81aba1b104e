package scalar

import (
	"math/bits"
	"testing"
)

func TestKindZeroIsNone(t *testing.T) {
	var k Kind
	if k != KindNone {
		t.Errorf("zero Kind = %v, want None", k)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNone, "None"},
		{KindBool, "Bool"},
		{KindChar, "Char"},
		{KindWChar, "WChar"},
		{KindUnsignedLongLong, "UnsignedLongLong"},
		{KindLongDouble, "LongDouble"},
		{Kind(200), "Kind(?)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}

func TestKindsListsEveryValueKind(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 18 {
		t.Fatalf("len(Kinds()) = %d, want 18", len(kinds))
	}
	if kinds[0] != KindBool {
		t.Errorf("Kinds()[0] = %v, want Bool", kinds[0])
	}
	if kinds[len(kinds)-1] != KindLongDouble {
		t.Errorf("last kind = %v, want LongDouble", kinds[len(kinds)-1])
	}
	for _, k := range kinds {
		if k == KindNone {
			t.Error("Kinds() should not contain None")
		}
		if !k.Valid() {
			t.Errorf("%v.Valid() = false", k)
		}
		if k.GoType() == "" {
			t.Errorf("%v.GoType() is empty", k)
		}
		if k.Bits() == 0 {
			t.Errorf("%v.Bits() = 0", k)
		}
	}
}

func TestKindBits(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindBool, 1},
		{KindChar, 8},
		{KindSignedChar, 8},
		{KindChar16, 16},
		{KindWChar, 32},
		{KindShort, 16},
		{KindInt, 32},
		{KindLong, bits.UintSize},
		{KindLongLong, 64},
		{KindFloat, 32},
		{KindDouble, 64},
		{KindLongDouble, 64},
	}
	for _, tt := range tests {
		if got := tt.kind.Bits(); got != tt.want {
			t.Errorf("%v.Bits() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestInvalidKind(t *testing.T) {
	k := Kind(numKinds)
	if k.Valid() {
		t.Error("numKinds should not be valid")
	}
	if k.GoType() != "" {
		t.Errorf("GoType() = %q, want empty", k.GoType())
	}
	if k.Bits() != 0 {
		t.Errorf("Bits() = %d, want 0", k.Bits())
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range append([]Kind{KindNone}, Kinds()...) {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, true", k.String(), got, ok, k)
		}
	}
	if _, ok := ParseKind("Decimal"); ok {
		t.Error("ParseKind(Decimal) should fail")
	}
	if _, ok := ParseKind("int"); ok {
		t.Error("ParseKind is case sensitive")
	}
}
