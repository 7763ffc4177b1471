// Package exprtype defines the closed set of primitive type tags the
// expression VM operates over.
package exprtype

// Tag identifies the primitive type of an operand. It is encoded as a
// single byte both on the wire and in memory.
type Tag byte

const (
	Null Tag = iota
	Int32
	Int64
	Bool
	Float
	Double
	Decimal
	String

	// Date is a refinement over Int64 (milliseconds since epoch). It is not
	// part of the primary type enumeration but appears in the bytecode as
	// its own tag value, per the decoder's open question on DATE handling.
	Date
)

// Num is the number of primary type tags, NULL through STRING. Date is not
// counted: it is a refinement tag placed after them that shares the INT64
// host representation.
const Num = 8

var names = [...]string{
	Null:    "NULL",
	Int32:   "INT32",
	Int64:   "INT64",
	Bool:    "BOOL",
	Float:   "FLOAT",
	Double:  "DOUBLE",
	Decimal: "DECIMAL",
	String:  "STRING",
	Date:    "DATE",
}

// String returns the tag's canonical name, or "UNKNOWN" for an out-of-range
// value.
func (t Tag) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return "UNKNOWN"
}

// IsNumeric reports whether the tag denotes a type the arithmetic and math
// kernels operate on.
func (t Tag) IsNumeric() bool {
	switch t {
	case Int32, Int64, Float, Double, Decimal:
		return true
	default:
		return false
	}
}
