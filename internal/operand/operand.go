// Package operand implements the tagged-union value model the expression
// VM evaluates over: the Operand sum type, the null operand, and the Tuple
// row representation.
//
// Operand is modeled as a small struct carrying a type tag plus an `any`
// payload, the same shape the teacher's bytecode.Value{Data, Type} uses
// (CWBudde-go-dws/internal/bytecode/bytecode.go) and the C++ original's
// std::variant (original_source/src/expr/operand.h): a closed set of
// primitive tags, one concrete Go type per tag, immutable once constructed.
package operand

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/shopspring/decimal"

	"github.com/dingodb/libexpr/internal/exprtype"
)

// Operand is a tagged value: either the null operand, or exactly one of
// int32, int64, bool, float32, float64, decimal.Decimal or string. The tag
// is immutable once constructed; there is no way to mutate the payload of
// an existing Operand.
type Operand struct {
	tag  exprtype.Tag
	data any
}

// Null is the distinguished absent-value operand. It compares equal only to
// itself under Equal, never to a typed zero value.
var Null = Operand{tag: exprtype.Null}

// OfInt32 constructs an INT32 operand.
func OfInt32(v int32) Operand { return Operand{tag: exprtype.Int32, data: v} }

// OfInt64 constructs an INT64 operand.
func OfInt64(v int64) Operand { return Operand{tag: exprtype.Int64, data: v} }

// OfBool constructs a BOOL operand.
func OfBool(v bool) Operand { return Operand{tag: exprtype.Bool, data: v} }

// OfFloat constructs a FLOAT (32-bit) operand.
func OfFloat(v float32) Operand { return Operand{tag: exprtype.Float, data: v} }

// OfDouble constructs a DOUBLE (64-bit) operand.
func OfDouble(v float64) Operand { return Operand{tag: exprtype.Double, data: v} }

// OfDecimal constructs a DECIMAL operand.
func OfDecimal(v decimal.Decimal) Operand { return Operand{tag: exprtype.Decimal, data: v} }

// OfString constructs a STRING operand. Go strings are already immutable
// and share their backing array on copy, so no extra reference counting is
// needed to satisfy the "shared ownership" invariant in spec.md §3.2.
func OfString(v string) Operand { return Operand{tag: exprtype.String, data: v} }

// OfDate constructs a DATE operand: milliseconds since the Unix epoch,
// tagged distinctly from a plain INT64 so casts and formatting can tell
// them apart (spec.md §9's open question on the DATE opcode).
func OfDate(millis int64) Operand { return Operand{tag: exprtype.Date, data: millis} }

// OfNullable constructs either Null or a typed operand from a Go pointer,
// mirroring the common "nullable column value" shape a relational caller
// binds into a Tuple.
func OfNullable[T any](v *T, of func(T) Operand) Operand {
	if v == nil {
		return Null
	}
	return of(*v)
}

// Tag returns the operand's type tag.
func (o Operand) Tag() exprtype.Tag { return o.tag }

// IsNull reports whether o is the null operand.
func (o Operand) IsNull() bool { return o.tag == exprtype.Null }

// TypeMismatchError is returned by the Get* accessors when the operand's
// tag does not match the requested type.
type TypeMismatchError struct {
	Want exprtype.Tag
	Got  exprtype.Tag
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("operand: type mismatch: want %s, got %s", e.Want, e.Got)
}

// Int32 returns the operand's value, failing with *TypeMismatchError if the
// operand is not an INT32.
func (o Operand) Int32() (int32, error) {
	if o.tag != exprtype.Int32 {
		return 0, &TypeMismatchError{Want: exprtype.Int32, Got: o.tag}
	}
	return o.data.(int32), nil
}

// Int64 returns the operand's value, failing with *TypeMismatchError if the
// operand is not an INT64.
func (o Operand) Int64() (int64, error) {
	if o.tag != exprtype.Int64 {
		return 0, &TypeMismatchError{Want: exprtype.Int64, Got: o.tag}
	}
	return o.data.(int64), nil
}

// Bool returns the operand's value, failing with *TypeMismatchError if the
// operand is not a BOOL.
func (o Operand) Bool() (bool, error) {
	if o.tag != exprtype.Bool {
		return false, &TypeMismatchError{Want: exprtype.Bool, Got: o.tag}
	}
	return o.data.(bool), nil
}

// Float returns the operand's value, failing with *TypeMismatchError if the
// operand is not a FLOAT.
func (o Operand) Float() (float32, error) {
	if o.tag != exprtype.Float {
		return 0, &TypeMismatchError{Want: exprtype.Float, Got: o.tag}
	}
	return o.data.(float32), nil
}

// Double returns the operand's value, failing with *TypeMismatchError if
// the operand is not a DOUBLE.
func (o Operand) Double() (float64, error) {
	if o.tag != exprtype.Double {
		return 0, &TypeMismatchError{Want: exprtype.Double, Got: o.tag}
	}
	return o.data.(float64), nil
}

// Decimal returns the operand's value, failing with *TypeMismatchError if
// the operand is not a DECIMAL.
func (o Operand) Decimal() (decimal.Decimal, error) {
	if o.tag != exprtype.Decimal {
		return decimal.Decimal{}, &TypeMismatchError{Want: exprtype.Decimal, Got: o.tag}
	}
	return o.data.(decimal.Decimal), nil
}

// String returns the operand's value, failing with *TypeMismatchError if
// the operand is not a STRING.
func (o Operand) String() (string, error) {
	if o.tag != exprtype.String {
		return "", &TypeMismatchError{Want: exprtype.String, Got: o.tag}
	}
	return o.data.(string), nil
}

// Date returns the operand's value in milliseconds since the epoch,
// failing with *TypeMismatchError if the operand is not a DATE.
func (o Operand) Date() (int64, error) {
	if o.tag != exprtype.Date {
		return 0, &TypeMismatchError{Want: exprtype.Date, Got: o.tag}
	}
	return o.data.(int64), nil
}

// Equal implements the structural equality from spec.md §3.2: the null
// operand equals only the null operand; two non-null operands are equal
// only when their tags and values both match. Cross-type equality never
// succeeds implicitly.
func (o Operand) Equal(v Operand) bool {
	if o.tag != v.tag {
		return false
	}
	if o.tag == exprtype.Null {
		return true
	}
	switch o.tag {
	case exprtype.Decimal:
		return o.data.(decimal.Decimal).Equal(v.data.(decimal.Decimal))
	default:
		return o.data == v.data
	}
}

// GoString renders the operand for debugging/disassembly, e.g. "INT32(1)"
// or "NULL".
func (o Operand) GoString() string {
	if o.IsNull() {
		return "NULL"
	}
	return fmt.Sprintf("%s(%v)", o.tag, o.data)
}

// Hash returns a stable hash over (tag, value) such that Equal operands
// hash equal, mirroring the original's std::hash<Operand> specialization
// over its variant (original_source/src/expr/operand.h).
func (o Operand) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte{byte(o.tag)})
	if o.IsNull() {
		return h.Sum64()
	}
	var buf [8]byte
	switch o.tag {
	case exprtype.Int32:
		putU64(&buf, uint64(uint32(o.data.(int32))))
	case exprtype.Int64, exprtype.Date:
		v, _ := dataAsInt64(o)
		putU64(&buf, uint64(v))
	case exprtype.Bool:
		if o.data.(bool) {
			buf[0] = 1
		}
	case exprtype.Float:
		f := o.data.(float32)
		if f == 0 {
			f = 0 // -0 is Equal to +0, so both hash as +0
		}
		putU64(&buf, uint64(math.Float32bits(f)))
	case exprtype.Double:
		f := o.data.(float64)
		if f == 0 {
			f = 0 // -0 is Equal to +0, so both hash as +0
		}
		putU64(&buf, math.Float64bits(f))
	case exprtype.Decimal:
		_, _ = h.Write([]byte(o.data.(decimal.Decimal).String()))
		return h.Sum64()
	case exprtype.String:
		_, _ = h.Write([]byte(o.data.(string)))
		return h.Sum64()
	}
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

func dataAsInt64(o Operand) (int64, bool) {
	v, ok := o.data.(int64)
	return v, ok
}

func putU64(buf *[8]byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
}

// Tuple is an ordered, finite sequence of operands representing one input
// row, indexed from 0.
type Tuple []Operand

// Hash combines the per-operand hashes the way the original combines
// Tuple's hash (h = h*31 + hash(element)).
func (t Tuple) Hash() uint64 {
	var h uint64
	for _, o := range t {
		h = h*31 + o.Hash()
	}
	return h
}
