package calc

import "github.com/shopspring/decimal"

// IsTrue and IsFalse implement the predicate operators spec.md §4.2.4
// defines per host type, grounded on
// original_source/src/expr/calc/special.cc. For BOOL they read the value
// directly. For every numeric type the generic template's real GetValue<T>()
// truthy-check applies: IS TRUE is v != 0, IS FALSE is v == 0. Only STRING
// gets the special.cc specialization that overrides this with a fixed
// answer — a string has no zero value, so IsTrue<String>/IsFalse<String>
// are specialized to always-false/always-true instead, preserved verbatim.

// IsTrueBool reports whether a bound BOOL value is true.
func IsTrueBool(v bool) bool { return v }

// IsFalseBool reports whether a bound BOOL value is false.
func IsFalseBool(v bool) bool { return !v }

// IsTrueNumeric reports whether a bound numeric value is non-zero, the
// generic template's truthy-check shared by INT32/INT64/FLOAT/DOUBLE.
func IsTrueNumeric[T Numeric](v T) bool { return v != 0 }

// IsFalseNumeric reports whether a bound numeric value is zero.
func IsFalseNumeric[T Numeric](v T) bool { return v == 0 }

// IsTrueDecimal and IsFalseDecimal apply the same zero-check to DECIMAL,
// which has no native comparison operators.
func IsTrueDecimal(v decimal.Decimal) bool  { return !v.IsZero() }
func IsFalseDecimal(v decimal.Decimal) bool { return v.IsZero() }

// IsTrueString is IS TRUE's answer for a bound STRING operand: never true,
// regardless of the value carried, per special.cc's IsTrue<String>
// specialization.
func IsTrueString() bool { return false }

// IsFalseString is IS FALSE's answer for a non-null STRING operand: always
// true, since only the absence of a value (NULL) counts as "not false" for
// a type with no truthiness, per special.cc's IsFalse<String> specialization.
func IsFalseString() bool { return true }
