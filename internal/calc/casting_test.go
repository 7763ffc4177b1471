package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastStringFromDoubleTrailingZeros(t *testing.T) {
	assert.Equal(t, "1.5", CastStringFromDouble(1.5))
	assert.Equal(t, "2.0", CastStringFromDouble(2.0))
}

func TestCastStringFromFloatPrecisionSix(t *testing.T) {
	assert.Equal(t, "1.5", CastStringFromFloat(1.5))
}

func TestCastIntFromStringFailureReturnsZero(t *testing.T) {
	assert.Equal(t, int32(0), CastInt32FromString("not a number"))
	assert.Equal(t, int64(0), CastInt64FromString("nope"))
}

func TestCastIntFromStringSuccess(t *testing.T) {
	assert.Equal(t, int32(42), CastInt32FromString("42"))
	assert.Equal(t, int64(-7), CastInt64FromString("-7"))
}

func TestCastInt32FromFloatRoundsHalfAway(t *testing.T) {
	assert.Equal(t, int32(3), CastInt32FromFloat(2.5))
	assert.Equal(t, int32(-3), CastInt32FromFloat(-2.5))
}

func TestCastCheckInt32FromInt64(t *testing.T) {
	r, ok := CastCheckInt32FromInt64(42)
	assert.True(t, ok)
	assert.Equal(t, int32(42), r)

	_, ok = CastCheckInt32FromInt64(1 << 40)
	assert.False(t, ok)
}

func TestCastCheckInt32FromDouble(t *testing.T) {
	r, ok := CastCheckInt32FromDouble(123.0)
	assert.True(t, ok)
	assert.Equal(t, int32(123), r)

	_, ok = CastCheckInt32FromDouble(1e20)
	assert.False(t, ok)
}

func TestCastDecimalFromStringRoundTrip(t *testing.T) {
	d, err := CastDecimalFromString("123.123")
	assert.NoError(t, err)
	assert.Equal(t, "123.123", CastStringFromDecimal(d))
}

func TestCastStringFromBool(t *testing.T) {
	assert.Equal(t, "true", CastStringFromBool(true))
	assert.Equal(t, "false", CastStringFromBool(false))
}

func TestCastDateFromStringRoundTrip(t *testing.T) {
	millis := CastDateFromString("2026-07-30")
	assert.Equal(t, "2026-07-30", CastStringFromDate(millis))
}

func TestCastDateFromStringMalformedReturnsEpoch(t *testing.T) {
	assert.Equal(t, int64(0), CastDateFromString("not-a-date"))
}
