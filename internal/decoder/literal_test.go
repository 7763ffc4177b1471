package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadVarintMultiByte(t *testing.T) {
	v, n, err := readVarint([]byte{0x96, 0x01}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), v)
	assert.Equal(t, 2, n)
}

func TestReadVarintSingleByte(t *testing.T) {
	v, n, err := readVarint([]byte{0x07}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)
	assert.Equal(t, 1, n)
}

func TestReadVarintTruncated(t *testing.T) {
	_, _, err := readVarint([]byte{0x80}, 0)
	assert.Error(t, err)
}

func TestReadStringShortLength(t *testing.T) {
	// length byte 3, then "abc"
	code := append([]byte{0x03}, []byte("abc")...)
	s, n, err := readString(code, 0)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
	assert.Equal(t, 4, n)
}

func TestReadFloatBigEndian(t *testing.T) {
	// 1.5f big-endian: 0x3FC00000
	code := []byte{0x3F, 0xC0, 0x00, 0x00}
	v, n, err := readFloat(code, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), v)
	assert.Equal(t, 4, n)
}

func TestReadDoubleBigEndian(t *testing.T) {
	// 1.5 big-endian: 0x3FF8000000000000
	code := []byte{0x3F, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	v, n, err := readDouble(code, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, 8, n)
}
