package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dingodb/libexpr/internal/exprtype"
	"github.com/dingodb/libexpr/internal/operand"
)

func runProgram(t *testing.T, ops []Operator, tuple operand.Tuple) operand.Operand {
	t.Helper()
	r := NewRunner(ops)
	r.BindTuple(tuple)
	require.NoError(t, r.Run())
	v, err := r.Get()
	require.NoError(t, err)
	return v
}

func TestNullPropagatesThroughArithmetic(t *testing.T) {
	ops := []Operator{
		{Kind: KindNull, Type: exprtype.Int32},
		{Kind: KindConst, Type: exprtype.Int32, Const: operand.OfInt32(5)},
		{Kind: KindAdd, Type: exprtype.Int32},
	}
	result := runProgram(t, ops, nil)
	assert.True(t, result.IsNull())
}

func TestIsNullNeverPropagates(t *testing.T) {
	ops := []Operator{
		{Kind: KindNull, Type: exprtype.Int32},
		{Kind: KindIsNull},
	}
	result := runProgram(t, ops, nil)
	v, err := result.Bool()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestStackUnderflow(t *testing.T) {
	r := NewRunner([]Operator{{Kind: KindAdd, Type: exprtype.Int32}})
	err := r.Run()
	assert.Error(t, err)
}

func TestVarIOutOfRange(t *testing.T) {
	r := NewRunner([]Operator{{Kind: KindVarI, Type: exprtype.Int32, Index: 2}})
	r.BindTuple(operand.Tuple{operand.OfInt32(1)})
	err := r.Run()
	assert.Error(t, err)
}

func TestAbsCheckLimitsError(t *testing.T) {
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.Int32, Const: operand.OfInt32(-2147483648)},
		{Kind: KindAbsCheck, Type: exprtype.Int32},
	}
	r := NewRunner(ops)
	err := r.Run()
	assert.Error(t, err)
}

func TestCastCheckedRefusesOverflow(t *testing.T) {
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.Int64, Const: operand.OfInt64(1 << 40)},
		{Kind: KindCastCheck, Type: exprtype.Int32, Src: exprtype.Int64},
	}
	r := NewRunner(ops)
	err := r.Run()
	assert.Error(t, err)
}

func TestAndOrShortCircuitIsValueLevel(t *testing.T) {
	// FALSE AND NULL = FALSE (false wins even though one side is null)
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.Bool, Const: operand.OfBool(false)},
		{Kind: KindNull, Type: exprtype.Bool},
		{Kind: KindAnd},
	}
	result := runProgram(t, ops, nil)
	v, err := result.Bool()
	require.NoError(t, err)
	assert.False(t, v)
}

func TestStringIsFalseWhenNonNull(t *testing.T) {
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.String, Const: operand.OfString("x")},
		{Kind: KindIsFalse, Type: exprtype.String},
	}
	result := runProgram(t, ops, nil)
	v, err := result.Bool()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestStringIsTrueAlwaysFalse(t *testing.T) {
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.String, Const: operand.OfString("x")},
		{Kind: KindIsTrue, Type: exprtype.String},
	}
	result := runProgram(t, ops, nil)
	v, err := result.Bool()
	require.NoError(t, err)
	assert.False(t, v)
}

func TestNumericIsTrueIsValueBased(t *testing.T) {
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.Int32, Const: operand.OfInt32(5)},
		{Kind: KindIsTrue, Type: exprtype.Int32},
	}
	result := runProgram(t, ops, nil)
	v, err := result.Bool()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestNumericIsFalseIsValueBased(t *testing.T) {
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.Int32, Const: operand.OfInt32(0)},
		{Kind: KindIsFalse, Type: exprtype.Int32},
	}
	result := runProgram(t, ops, nil)
	v, err := result.Bool()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestNumericIsTrueFalseForNonZero(t *testing.T) {
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.Double, Const: operand.OfDouble(3.5)},
		{Kind: KindIsFalse, Type: exprtype.Double},
	}
	result := runProgram(t, ops, nil)
	v, err := result.Bool()
	require.NoError(t, err)
	assert.False(t, v)
}

func TestModOnDoubleFails(t *testing.T) {
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.Double, Const: operand.OfDouble(5)},
		{Kind: KindConst, Type: exprtype.Double, Const: operand.OfDouble(2)},
		{Kind: KindMod, Type: exprtype.Double},
	}
	r := NewRunner(ops)
	err := r.Run()
	assert.Error(t, err)
}

func TestDateCastFromStringAndRelational(t *testing.T) {
	ops := []Operator{
		{Kind: KindConst, Type: exprtype.String, Const: operand.OfString("2026-07-30")},
		{Kind: KindCast, Type: exprtype.Date, Src: exprtype.String},
		{Kind: KindConst, Type: exprtype.String, Const: operand.OfString("2020-01-01")},
		{Kind: KindCast, Type: exprtype.Date, Src: exprtype.String},
		{Kind: KindGe, Type: exprtype.Date},
	}
	result := runProgram(t, ops, nil)
	v, err := result.Bool()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestResetStackPreservesTuple(t *testing.T) {
	ops := []Operator{{Kind: KindVarI, Type: exprtype.Int32, Index: 0}}
	r := NewRunner(ops)
	r.BindTuple(operand.Tuple{operand.OfInt32(9)})
	require.NoError(t, r.Run())
	r.ResetStack()
	require.NoError(t, r.Run())
	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, operand.OfInt32(9), v)
}
