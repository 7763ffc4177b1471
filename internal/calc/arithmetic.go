// Package calc implements the pure calculation kernels the stack machine
// invokes: arithmetic, relational, logical, casting, math and string
// functions, plus the null-propagation and overflow-check policies from
// spec.md §4.2.
//
// Every kernel here assumes its inputs are already non-null — null
// propagation is enforced once, centrally, by internal/vm's operator
// dispatch before a kernel is ever called (see internal/vm/runner.go),
// rather than re-checked inside each of the ~40 kernels below. Div and Mod
// are the one case where a non-null *input* can still produce a null
// *output* (division/modulo by zero), so they report that with a bool
// rather than an error.
package calc

import "github.com/shopspring/decimal"

// Numeric constrains the kernels that are shared across every primitive
// numeric host type via Go generics, grounded on
// original_source/src/expr/calc/arithmetic.h's function templates.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Pos returns v unchanged.
func Pos[T Numeric](v T) T { return v }

// Neg returns the additive inverse of v.
func Neg[T Numeric](v T) T { return -v }

// Add returns v0 + v1. Integer overflow wraps; it is not checked here
// (spec.md §4.2.1 — overflow control belongs to an explicit CAST_CHECK).
func Add[T Numeric](v0, v1 T) T { return v0 + v1 }

// Sub returns v0 - v1, with the same wraparound policy as Add.
func Sub[T Numeric](v0, v1 T) T { return v0 - v1 }

// Mul returns v0 * v1, with the same wraparound policy as Add.
func Mul[T Numeric](v0, v1 T) T { return v0 * v1 }

// Div returns v0 / v1 and true, or the zero value and false when v1 is
// zero (the caller must treat a false second result as the null operand).
// Go's native integer division already truncates toward zero and its
// float division already follows IEEE-754, so no extra rounding logic is
// needed to satisfy spec.md §4.2.1's per-type semantics.
func Div[T Numeric](v0, v1 T) (T, bool) {
	if v1 == 0 {
		var zero T
		return zero, false
	}
	return v0 / v1, true
}

// IntNumeric constrains Mod to the integer types: FLOAT/DOUBLE/DECIMAL do
// not support it (spec.md §4.2.1).
type IntNumeric interface {
	~int32 | ~int64
}

// Mod returns v0 mod v1 and true, or the zero value and false when v1 is
// zero.
func Mod[T IntNumeric](v0, v1 T) (T, bool) {
	if v1 == 0 {
		var zero T
		return zero, false
	}
	return v0 % v1, true
}

// DecimalPos/DecimalNeg/DecimalAdd/DecimalSub/DecimalMul/DecimalDiv route
// through the opaque shopspring/decimal type, which exposes exactly the
// arithmetic/ordering/conversion capability set spec.md's "opaque decimal"
// glossary entry calls for.

func DecimalPos(v decimal.Decimal) decimal.Decimal { return v }

func DecimalNeg(v decimal.Decimal) decimal.Decimal { return v.Neg() }

func DecimalAdd(v0, v1 decimal.Decimal) decimal.Decimal { return v0.Add(v1) }

func DecimalSub(v0, v1 decimal.Decimal) decimal.Decimal { return v0.Sub(v1) }

func DecimalMul(v0, v1 decimal.Decimal) decimal.Decimal { return v0.Mul(v1) }

// DecimalDiv returns v0/v1 and true, or decimal.Zero and false when v1 is
// zero.
func DecimalDiv(v0, v1 decimal.Decimal) (decimal.Decimal, bool) {
	if v1.IsZero() {
		return decimal.Zero, false
	}
	return v0.Div(v1), true
}
