package operand

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dingodb/libexpr/internal/exprtype"
)

func TestNullEquality(t *testing.T) {
	assert.True(t, Null.Equal(Null))
	assert.False(t, Null.Equal(OfInt32(0)))
	assert.True(t, Null.IsNull())
}

func TestTypedEquality(t *testing.T) {
	assert.True(t, OfInt32(5).Equal(OfInt32(5)))
	assert.False(t, OfInt32(5).Equal(OfInt32(6)))
	assert.False(t, OfInt32(5).Equal(OfInt64(5)))
}

func TestAccessorTypeMismatch(t *testing.T) {
	_, err := OfInt32(1).Int64()
	assert.Error(t, err)
	var mismatch *TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, exprtype.Int64, mismatch.Want)
	assert.Equal(t, exprtype.Int32, mismatch.Got)
}

func TestAccessorSuccess(t *testing.T) {
	v, err := OfInt32(7).Int32()
	assert.NoError(t, err)
	assert.Equal(t, int32(7), v)

	s, err := OfString("hi").String()
	assert.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestDecimalEquality(t *testing.T) {
	a := OfDecimal(decimal.RequireFromString("1.50"))
	b := OfDecimal(decimal.RequireFromString("1.5"))
	assert.True(t, a.Equal(b))
}

func TestHashStableForEqual(t *testing.T) {
	a := OfInt32(42)
	b := OfInt32(42)
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashDiffersAcrossValues(t *testing.T) {
	assert.NotEqual(t, OfInt32(1).Hash(), OfInt32(2).Hash())
}

func TestTupleHash(t *testing.T) {
	t1 := Tuple{OfInt32(1), OfString("a")}
	t2 := Tuple{OfInt32(1), OfString("a")}
	t3 := Tuple{OfInt32(1), OfString("b")}
	assert.Equal(t, t1.Hash(), t2.Hash())
	assert.NotEqual(t, t1.Hash(), t3.Hash())
}

func TestOfNullable(t *testing.T) {
	var p *int32
	assert.True(t, OfNullable(p, OfInt32).IsNull())

	v := int32(9)
	assert.True(t, OfNullable(&v, OfInt32).Equal(OfInt32(9)))
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "NULL", Null.GoString())
	assert.Equal(t, "INT32(1)", OfInt32(1).GoString())
}
