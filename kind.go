package gslice

import "fmt"

// Kind identifies the element type held by a Tagged slice.
type Kind uint8

const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Uintptr
	String

	numKinds
)

var kindNames = [numKinds]string{
	Invalid: "invalid",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uintptr: "uintptr",
	String:  "string",
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names a supported element type.
func (k Kind) Valid() bool {
	return k > Invalid && k < numKinds
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := Int; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// KindOf returns the kind whose Go type is the dynamic type of v.
func KindOf(v any) (Kind, bool) {
	switch v.(type) {
	case int:
		return Int, true
	case int8:
		return Int8, true
	case int16:
		return Int16, true
	case int32:
		return Int32, true
	case int64:
		return Int64, true
	case uint:
		return Uint, true
	case uint8:
		return Uint8, true
	case uint16:
		return Uint16, true
	case uint32:
		return Uint32, true
	case uint64:
		return Uint64, true
	case uintptr:
		return Uintptr, true
	case string:
		return String, true
	default:
		return Invalid, false
	}
}
