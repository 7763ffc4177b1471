package libexpr

import (
	"encoding/hex"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dingodb/libexpr/internal/operand"
)

func decodeProgram(t *testing.T, hexCode string) *Program {
	t.Helper()
	code, err := hex.DecodeString(hexCode)
	require.NoError(t, err)
	p, _, err := Decode(code)
	require.NoError(t, err)
	return p
}

// TestSeedScenariosGolden snapshots the result of every seed hex program
// from spec.md §8, over the embedding facade rather than the raw decoder.
func TestSeedScenariosGolden(t *testing.T) {
	cases := []struct {
		name  string
		hex   string
		tuple operand.Tuple
	}{
		{"const_int32", "1101", nil},
		{"const_n_int32_varint", "219601", nil},
		{"add", "110111018301", nil},
		{"mul_add", "11031104110685018301", nil},
		{"and_gt_lt", "110711088301110E930111061105950152", nil},
		{"abs_wraps", "218080808008B301", nil},
		{"var_i_add", "310031018301", operand.Tuple{operand.OfInt32(1), operand.OfInt32(2)}},
		{"var_i_string_gt", "370037019307", operand.Tuple{operand.OfString("abc"), operand.OfString("aBc")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := decodeProgram(t, c.hex)
			p.BindTuple(c.tuple)
			result, err := p.Run()
			require.NoError(t, err)
			snaps.MatchSnapshot(t, result.GoString())
		})
	}
}

func TestDecimalLiteralGolden(t *testing.T) {
	p := decodeProgram(t, "16073132332E313233")
	result, err := p.Run()
	require.NoError(t, err)
	d, err := result.Decimal()
	require.NoError(t, err)
	assert.Equal(t, "123.123", d.String())
}

func TestResetAllowsRebinding(t *testing.T) {
	p := decodeProgram(t, "310031018301")
	p.BindTuple(operand.Tuple{operand.OfInt32(1), operand.OfInt32(2)})
	first, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, operand.OfInt32(3), first)

	p.Reset()
	p.BindTuple(operand.Tuple{operand.OfInt32(10), operand.OfInt32(20)})
	second, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, operand.OfInt32(30), second)
}
