package scalar

import "math/bits"

// Kind identifies which primitive a Scalar currently holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindChar
	KindSignedChar
	KindUnsignedChar
	KindWChar
	KindChar16
	KindChar32
	KindShort
	KindUnsignedShort
	KindInt
	KindUnsignedInt
	KindLong
	KindUnsignedLong
	KindLongLong
	KindUnsignedLongLong
	KindFloat
	KindDouble
	KindLongDouble

	numKinds
)

// kindInfo describes how a kind maps onto Go.
type kindInfo struct {
	name   string
	goType string
	bits   int
}

var kindTable = [numKinds]kindInfo{
	KindNone:             {"None", "", 0},
	KindBool:             {"Bool", "bool", 1},
	KindChar:             {"Char", "scalar.Char", 8},
	KindSignedChar:       {"SignedChar", "int8", 8},
	KindUnsignedChar:     {"UnsignedChar", "uint8", 8},
	KindWChar:            {"WChar", "scalar.WChar", 32},
	KindChar16:           {"Char16", "scalar.Char16", 16},
	KindChar32:           {"Char32", "scalar.Char32", 32},
	KindShort:            {"Short", "int16", 16},
	KindUnsignedShort:    {"UnsignedShort", "uint16", 16},
	KindInt:              {"Int", "int32", 32},
	KindUnsignedInt:      {"UnsignedInt", "uint32", 32},
	KindLong:             {"Long", "int", bits.UintSize},
	KindUnsignedLong:     {"UnsignedLong", "uint", bits.UintSize},
	KindLongLong:         {"LongLong", "int64", 64},
	KindUnsignedLongLong: {"UnsignedLongLong", "uint64", 64},
	KindFloat:            {"Float", "float32", 32},
	KindDouble:           {"Double", "float64", 64},
	KindLongDouble:       {"LongDouble", "scalar.LongDouble", 64},
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(?)"
	}
	return kindTable[k].name
}

// GoType returns the name of the Go type the kind's extraction yields.
// None has no Go type and returns "".
func (k Kind) GoType() string {
	if !k.Valid() {
		return ""
	}
	return kindTable[k].goType
}

// Bits returns the width of the kind's representation in bits.
// Bool reports 1 even though it occupies a byte.
func (k Kind) Bits() int {
	if !k.Valid() {
		return 0
	}
	return kindTable[k].bits
}

// Kinds returns every value-carrying kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := KindBool; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind looks up a kind by its String() name.
func ParseKind(name string) (Kind, bool) {
	for k := KindNone; k < numKinds; k++ {
		if kindTable[k].name == name {
			return k, true
		}
	}
	return KindNone, false
}
