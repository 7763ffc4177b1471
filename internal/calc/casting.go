package calc

import (
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the DATE refinement's text form, per spec.md §9's open
// question: a calendar date with no time-of-day or zone component
// (time-zone-aware date arithmetic is explicitly out of scope).
const dateLayout = "2006-01-02"

// CastDateFromString parses a "YYYY-MM-DD" string into milliseconds since
// the Unix epoch (UTC), returning 0 on a malformed date — the same
// parse-failure-returns-zero quirk the other CastXFromString kernels use.
func CastDateFromString(v string) int64 {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// CastStringFromDate renders a DATE operand's epoch-millisecond value back
// to its canonical "YYYY-MM-DD" text form.
func CastStringFromDate(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(dateLayout)
}

// CastInt32FromFloat and CastInt32FromDouble round to the nearest integer,
// ties away from zero, matching the original's lround/llround (not Go's
// round-half-to-even), grounded on
// original_source/src/expr/calc/casting.cc.

func CastInt32FromFloat(v float32) int32  { return int32(roundHalfAway(float64(v))) }
func CastInt32FromDouble(v float64) int32 { return int32(roundHalfAway(v)) }
func CastInt64FromFloat(v float32) int64  { return int64(roundHalfAway(float64(v))) }
func CastInt64FromDouble(v float64) int64 { return int64(roundHalfAway(v)) }

func roundHalfAway(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v + 0.5)
	}
	return math.Floor(v + 0.5)
}

// CastInt32FromString and CastInt64FromString parse the whole of v as a
// base-10 integer, returning 0 when v is not one (trailing text, or a value
// out of range, also yields 0) — the original's std::stoi / std::stoll
// swallow std::invalid_argument and return 0, so a failed parse is not an
// error here either.

func CastInt32FromString(v string) int32 {
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}

func CastInt64FromString(v string) int64 {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// CastFloatFromString and CastDoubleFromString parse v, returning 0 on
// failure with the same quirk as the integer parses above.

func CastFloatFromString(v string) float32 {
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0
	}
	return float32(f)
}

func CastDoubleFromString(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// CastStringFromInt32/Int64/Bool format the plain decimal/boolean text
// form.

func CastStringFromInt32(v int32) string { return strconv.FormatInt(int64(v), 10) }
func CastStringFromInt64(v int64) string { return strconv.FormatInt(v, 10) }
func CastStringFromBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// CastStringFromFloat and CastStringFromDouble format a fixed-point decimal
// at precision 15 (double) or 6 (float) per spec.md's canonical rule, then
// strip trailing zeros, always leaving at least one digit after the point —
// grounded on casting.cc's CastF, with the float precision narrowed to 6
// per spec.md's documented deviation from the single shared C++ template.

func CastStringFromFloat(v float32) string { return formatFixed(float64(v), 6) }

func CastStringFromDouble(v float64) string { return formatFixed(v, 15) }

func formatFixed(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i++
	}
	return s[:i]
}

// CastCheckInt32FromInt64 refuses a narrowing that would change the value,
// reporting ok=false in that case.
func CastCheckInt32FromInt64(v int64) (int32, bool) {
	r := int32(v)
	return r, int64(r) == v
}

// errorAcceptable mirrors casting.cc's ErrorAcceptable: the rounded integer
// may differ from the original float/double by up to 0.5 and still count as
// an exact, in-range conversion.
func errorAcceptable(r, v float64) bool {
	d := r - v
	if d < 0 {
		d = -d
	}
	return d <= 0.5
}

// CastCheckInt32FromFloat/FromDouble and CastCheckInt64FromFloat/FromDouble
// round like Cast, then refuse the conversion when the rounded result falls
// more than 0.5 away from the input — the only way that can happen is when
// the input lies outside the target type's representable range.

func CastCheckInt32FromFloat(v float32) (int32, bool) {
	r := CastInt32FromFloat(v)
	return r, errorAcceptable(float64(r), float64(v))
}

func CastCheckInt32FromDouble(v float64) (int32, bool) {
	r := CastInt32FromDouble(v)
	return r, errorAcceptable(float64(r), v)
}

func CastCheckInt64FromFloat(v float32) (int64, bool) {
	r := CastInt64FromFloat(v)
	return r, errorAcceptable(float64(r), float64(v))
}

func CastCheckInt64FromDouble(v float64) (int64, bool) {
	r := CastInt64FromDouble(v)
	return r, errorAcceptable(float64(r), v)
}

// CastDecimalFromString parses a decimal literal's ASCII text form, failing
// when the text is not a valid decimal number.
func CastDecimalFromString(v string) (decimal.Decimal, error) {
	return decimal.NewFromString(v)
}

// CastStringFromDecimal renders a decimal operand back to its canonical
// text form.
func CastStringFromDecimal(v decimal.Decimal) string { return v.String() }
