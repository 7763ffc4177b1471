package calc

import "math"

// Min and Max are shared across every Ordered host type, grounded on
// original_source/src/expr/calc/mathematic.cc's function templates.

func Min[T Ordered](v0, v1 T) T {
	if v0 < v1 {
		return v0
	}
	return v1
}

func Max[T Ordered](v0, v1 T) T {
	if v0 > v1 {
		return v0
	}
	return v1
}

// Abs returns the absolute value of v. Integer overflow at the type's
// minimum value wraps silently (the minimum value's negation is itself in
// two's complement); AbsCheck below is the checked counterpart that refuses
// that case instead.
func Abs[T ~int32 | ~int64 | ~float32 | ~float64](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// AbsCheck returns the absolute value of v and true, or the zero value and
// false when v is the type's minimum value (whose negation cannot be
// represented), per spec.md §4.2.6's checked-kernel policy.

func AbsCheckInt32(v int32) (int32, bool) {
	if v == math.MinInt32 {
		return 0, false
	}
	if v < 0 {
		return -v, true
	}
	return v, true
}

func AbsCheckInt64(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	if v < 0 {
		return -v, true
	}
	return v, true
}

// AbsCheckFloat and AbsCheckDouble never exceed limits: IEEE-754 floats
// represent their own negation exactly except for the two infinities, which
// Abs already handles correctly, so these always succeed.

func AbsCheckFloat(v float32) (float32, bool) { return Abs(v), true }

func AbsCheckDouble(v float64) (float64, bool) { return Abs(v), true }

// MinString and MaxString specialize Min/Max for STRING, grounded on the
// same mathematic.cc templates instantiated over the original's string
// host type.

func MinString(v0, v1 string) string { return Min(v0, v1) }

func MaxString(v0, v1 string) string { return Max(v0, v1) }
