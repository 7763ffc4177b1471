package decoder

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dingodb/libexpr/internal/operand"
	"github.com/dingodb/libexpr/internal/vm"
)

func decodeHex(t *testing.T, s string) ([]vm.Operator, int) {
	t.Helper()
	code, err := hex.DecodeString(s)
	require.NoError(t, err)
	ops, consumed, err := Decode(code)
	require.NoError(t, err)
	return ops, consumed
}

func runOps(t *testing.T, ops []vm.Operator, tuple operand.Tuple) operand.Operand {
	t.Helper()
	r := vm.NewRunner(ops)
	r.BindTuple(tuple)
	require.NoError(t, r.Run())
	v, err := r.Get()
	require.NoError(t, err)
	return v
}

// TestSeedScenarios exercises spec.md's seed end-to-end hex bytecode table.
func TestSeedScenarios(t *testing.T) {
	t.Run("scenario 1: CONST_INT32 1", func(t *testing.T) {
		ops, consumed := decodeHex(t, "1101")
		assert.Equal(t, 2, consumed)
		assert.Equal(t, operand.OfInt32(1), runOps(t, ops, nil))
	})

	t.Run("scenario 2: CONST_N_INT32 varint 150 -> -150", func(t *testing.T) {
		ops, _ := decodeHex(t, "219601")
		assert.Equal(t, operand.OfInt32(-150), runOps(t, ops, nil))
	})

	t.Run("scenario 3: 1+1", func(t *testing.T) {
		ops, _ := decodeHex(t, "110111018301")
		assert.Equal(t, operand.OfInt32(2), runOps(t, ops, nil))
	})

	t.Run("scenario 4: 3 + 4*6", func(t *testing.T) {
		ops, _ := decodeHex(t, "11031104110685018301")
		assert.Equal(t, operand.OfInt32(27), runOps(t, ops, nil))
	})

	t.Run("scenario 5: (7+8>14) AND (6<5)", func(t *testing.T) {
		ops, _ := decodeHex(t, "110711088301110E930111061105950152")
		assert.Equal(t, operand.OfBool(false), runOps(t, ops, nil))
	})

	t.Run("scenario 6: abs(INT32_MIN) wraps", func(t *testing.T) {
		ops, _ := decodeHex(t, "218080808008B301")
		result := runOps(t, ops, nil)
		v, err := result.Int32()
		require.NoError(t, err)
		assert.Equal(t, int32(-2147483648), v)
	})

	t.Run("scenario 7: VAR_I 0 + VAR_I 1", func(t *testing.T) {
		ops, _ := decodeHex(t, "310031018301")
		tuple := operand.Tuple{operand.OfInt32(1), operand.OfInt32(2)}
		assert.Equal(t, operand.OfInt32(3), runOps(t, ops, tuple))
	})

	t.Run("scenario 8: VAR_I string GT", func(t *testing.T) {
		ops, _ := decodeHex(t, "370037019307")
		tuple := operand.Tuple{operand.OfString("abc"), operand.OfString("aBc")}
		assert.Equal(t, operand.OfBool(true), runOps(t, ops, tuple))
	})
}

func TestDecimalLiteralDecode(t *testing.T) {
	ops, _ := decodeHex(t, "16073132332E313233")
	result := runOps(t, ops, nil)
	s, err := result.Decimal()
	require.NoError(t, err)
	assert.Equal(t, "123.123", s.String())
}

func TestUnknownOpcodeFails(t *testing.T) {
	code, err := hex.DecodeString("FF")
	require.NoError(t, err)
	_, _, err = Decode(code)
	assert.Error(t, err)
}

func TestEOEStopsDecoding(t *testing.T) {
	code, err := hex.DecodeString("110100")
	require.NoError(t, err)
	ops, consumed, err := Decode(code)
	require.NoError(t, err)
	assert.Equal(t, 3, consumed)
	assert.Len(t, ops, 1)
}
