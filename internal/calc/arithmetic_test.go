package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDivByZero(t *testing.T) {
	_, ok := Div(int32(10), int32(0))
	assert.False(t, ok)

	r, ok := Div(int32(10), int32(2))
	assert.True(t, ok)
	assert.Equal(t, int32(5), r)
}

func TestModByZero(t *testing.T) {
	_, ok := Mod(int64(10), int64(0))
	assert.False(t, ok)

	r, ok := Mod(int64(10), int64(3))
	assert.True(t, ok)
	assert.Equal(t, int64(1), r)
}

func TestDivModRoundTrip(t *testing.T) {
	q, ok := Div(int32(17), int32(5))
	assert.True(t, ok)
	m, ok := Mod(int32(17), int32(5))
	assert.True(t, ok)
	assert.Equal(t, int32(17), q*5+m)
}

func TestDecimalArithmetic(t *testing.T) {
	a := decimal.RequireFromString("1.5")
	b := decimal.RequireFromString("2.25")
	assert.True(t, DecimalAdd(a, b).Equal(decimal.RequireFromString("3.75")))
	assert.True(t, DecimalSub(b, a).Equal(decimal.RequireFromString("0.75")))

	_, ok := DecimalDiv(a, decimal.Zero)
	assert.False(t, ok)
}

func TestNeg(t *testing.T) {
	assert.Equal(t, int32(-5), Neg(int32(5)))
	assert.Equal(t, 5.0, Neg(-5.0))
}
