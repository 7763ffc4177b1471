package decoder

import (
	"encoding/binary"
	"math"

	"github.com/dingodb/libexpr/internal/exprerrors"
)

// readVarint decodes an unsigned LEB128 varint starting at code[offset],
// returning the decoded value and the number of bytes consumed. The sign,
// if any, is supplied by the caller from the opcode class — the wire value
// itself is always unsigned, per spec.md's literal encoding table.
func readVarint(code []byte, offset int) (uint64, int, error) {
	var result uint64
	var shift uint
	for i := 0; ; i++ {
		pos := offset + i
		if pos >= len(code) {
			return 0, 0, exprerrors.NewTruncatedLiteral(offset, len(code)-offset)
		}
		b := code[pos]
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, 0, exprerrors.NewTruncatedLiteral(offset, len(code)-offset)
		}
	}
}

// readInt32 decodes a varint-encoded INT32 literal.
func readInt32(code []byte, offset int) (int32, int, error) {
	v, n, err := readVarint(code, offset)
	if err != nil {
		return 0, 0, err
	}
	return int32(uint32(v)), n, nil
}

// readInt64 decodes a varint-encoded INT64 literal.
func readInt64(code []byte, offset int) (int64, int, error) {
	v, n, err := readVarint(code, offset)
	if err != nil {
		return 0, 0, err
	}
	return int64(v), n, nil
}

// readFloat decodes a 4-byte big-endian IEEE-754 FLOAT literal.
func readFloat(code []byte, offset int) (float32, int, error) {
	if offset+4 > len(code) {
		return 0, 0, exprerrors.NewTruncatedLiteral(offset, len(code)-offset)
	}
	bits := binary.BigEndian.Uint32(code[offset : offset+4])
	return math.Float32frombits(bits), 4, nil
}

// readDouble decodes an 8-byte big-endian IEEE-754 DOUBLE literal.
func readDouble(code []byte, offset int) (float64, int, error) {
	if offset+8 > len(code) {
		return 0, 0, exprerrors.NewTruncatedLiteral(offset, len(code)-offset)
	}
	bits := binary.BigEndian.Uint64(code[offset : offset+8])
	return math.Float64frombits(bits), 8, nil
}

// readLength decodes a STRING/DECIMAL length prefix: a single byte when it
// is below 128, or a varint when the high bit is set, per spec.md's
// "1-byte length (or varint length if ≥ 128)" rule.
func readLength(code []byte, offset int) (int, int, error) {
	if offset >= len(code) {
		return 0, 0, exprerrors.NewTruncatedLiteral(offset, len(code)-offset)
	}
	if code[offset] < 0x80 {
		return int(code[offset]), 1, nil
	}
	v, n, err := readVarint(code, offset)
	if err != nil {
		return 0, 0, err
	}
	return int(v), n, nil
}

// readString decodes a length-prefixed UTF-8 STRING literal.
func readString(code []byte, offset int) (string, int, error) {
	length, n, err := readLength(code, offset)
	if err != nil {
		return "", 0, err
	}
	start := offset + n
	if start+length > len(code) {
		return "", 0, exprerrors.NewTruncatedLiteral(offset, len(code)-offset)
	}
	return string(code[start : start+length]), n + length, nil
}

// readDecimalText decodes a length-prefixed ASCII DECIMAL literal, reusing
// the STRING wire format per spec.md's documented CONST_DECIMAL encoding
// (the reference decoder leaves this as a TODO; this implementation fills
// it in).
func readDecimalText(code []byte, offset int) (string, int, error) {
	return readString(code, offset)
}
