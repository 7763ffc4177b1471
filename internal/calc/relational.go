package calc

import "github.com/shopspring/decimal"

// Ordered constrains the relational kernels to every primitive type that
// has a natural Go ordering, including STRING (lexicographic byte-wise /
// ordinal comparison, per spec.md §4.2.2), grounded on
// original_source/src/calc/relational.h's function templates.
type Ordered interface {
	~int32 | ~int64 | ~float32 | ~float64 | ~string
}

func Eq[T Ordered](v0, v1 T) bool { return v0 == v1 }
func Ne[T Ordered](v0, v1 T) bool { return v0 != v1 }
func Lt[T Ordered](v0, v1 T) bool { return v0 < v1 }
func Le[T Ordered](v0, v1 T) bool { return v0 <= v1 }
func Gt[T Ordered](v0, v1 T) bool { return v0 > v1 }
func Ge[T Ordered](v0, v1 T) bool { return v0 >= v1 }

// EqBool/NeBool cover BOOL, which has no natural ordering but does support
// equality.
func EqBool(v0, v1 bool) bool { return v0 == v1 }
func NeBool(v0, v1 bool) bool { return v0 != v1 }

// DecimalEq/DecimalNe/DecimalLt/DecimalLe/DecimalGt/DecimalGe route through
// shopspring/decimal's Cmp, since decimal.Decimal has no native Go
// ordering operators.

func DecimalEq(v0, v1 decimal.Decimal) bool { return v0.Cmp(v1) == 0 }
func DecimalNe(v0, v1 decimal.Decimal) bool { return v0.Cmp(v1) != 0 }
func DecimalLt(v0, v1 decimal.Decimal) bool { return v0.Cmp(v1) < 0 }
func DecimalLe(v0, v1 decimal.Decimal) bool { return v0.Cmp(v1) <= 0 }
func DecimalGt(v0, v1 decimal.Decimal) bool { return v0.Cmp(v1) > 0 }
func DecimalGe(v0, v1 decimal.Decimal) bool { return v0.Cmp(v1) >= 0 }
