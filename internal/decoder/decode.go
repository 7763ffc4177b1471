package decoder

import (
	"github.com/shopspring/decimal"

	"github.com/dingodb/libexpr/internal/exprerrors"
	"github.com/dingodb/libexpr/internal/exprtype"
	"github.com/dingodb/libexpr/internal/operand"
	"github.com/dingodb/libexpr/internal/vm"
)

// maxTypeByte is the highest type tag value the decoder accepts, covering
// the DATE refinement (0x08) alongside the eight primary tags.
const maxTypeByte = 0x08

func tagFromByte(b byte) (exprtype.Tag, bool) {
	if b > maxTypeByte {
		return exprtype.Null, false
	}
	return exprtype.Tag(b), true
}

// Decode turns a bytecode stream into an ordered vm.Operator sequence. It
// stops at the EOE sentinel or at the end of code, whichever comes first,
// mirroring OperatorVector::Decode's single forward pass. consumed reports
// how many bytes were read, including a trailing EOE byte if one was
// present.
func Decode(code []byte) (ops []vm.Operator, consumed int, err error) {
	p := 0
	for p < len(code) {
		b := code[p]
		if b == eoe {
			return ops, p + 1, nil
		}
		op, n, err := decodeOne(code, p)
		if err != nil {
			return nil, 0, err
		}
		if op.Kind != vm.KindNop {
			ops = append(ops, op)
		}
		p += n
	}
	return ops, p, nil
}

func decodeOne(code []byte, p int) (vm.Operator, int, error) {
	b := code[p]
	switch {
	case b >= nullPrefix+1 && b <= nullPrefix+maxTypeByte:
		return decodeNullConst(b, p)
	case b >= constPrefix+1 && b <= constPrefix+maxTypeByte:
		return decodeConst(code, p)
	case b >= constNPrefix+1 && b <= constNPrefix+0x03:
		return decodeConstNeg(code, p)
	case b >= varIPrefix+1 && b <= varIPrefix+maxTypeByte:
		return decodeVarI(code, p)
	case b == not:
		return vm.Operator{Kind: vm.KindNot}, 1, nil
	case b == and:
		return vm.Operator{Kind: vm.KindAnd}, 1, nil
	case b == or:
		return vm.Operator{Kind: vm.KindOr}, 1, nil
	case b >= pos && b <= mod:
		return decodeTypedClass(code, p, arithKind(b))
	case b >= eq && b <= ne:
		return decodeTypedClass(code, p, relKind(b))
	case b >= isNull && b <= isFalse:
		return decodeTypedClass(code, p, predicateKind(b))
	case b >= min && b <= absC:
		return decodeTypedClass(code, p, mathKind(b))
	case b == cast:
		return decodeCast(code, p, vm.KindCast)
	case b == castC:
		return decodeCast(code, p, vm.KindCastCheck)
	case b == fun:
		return decodeFun(code, p)
	default:
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, len(code)-p)
	}
}

func arithKind(b byte) vm.Kind {
	return [...]vm.Kind{vm.KindPos, vm.KindNeg, vm.KindAdd, vm.KindSub, vm.KindMul, vm.KindDiv, vm.KindMod}[b-pos]
}

func relKind(b byte) vm.Kind {
	return [...]vm.Kind{vm.KindEq, vm.KindGe, vm.KindGt, vm.KindLe, vm.KindLt, vm.KindNe}[b-eq]
}

func predicateKind(b byte) vm.Kind {
	return [...]vm.Kind{vm.KindIsNull, vm.KindIsTrue, vm.KindIsFalse}[b-isNull]
}

func mathKind(b byte) vm.Kind {
	return [...]vm.Kind{vm.KindMin, vm.KindMax, vm.KindAbs, vm.KindAbsCheck}[b-min]
}

// decodeTypedClass decodes an operator class whose only payload is a
// trailing operand-type byte (POS..MOD, EQ..NE, IS_NULL..IS_FALSE,
// MIN..ABS_C).
func decodeTypedClass(code []byte, p int, kind vm.Kind) (vm.Operator, int, error) {
	if p+1 >= len(code) {
		return vm.Operator{}, 0, exprerrors.NewTruncatedLiteral(p, len(code)-p)
	}
	tag, ok := tagFromByte(code[p+1])
	if !ok {
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, len(code)-p)
	}
	return vm.Operator{Kind: kind, Type: tag}, 2, nil
}

func decodeNullConst(b byte, p int) (vm.Operator, int, error) {
	tag, ok := tagFromByte(b - nullPrefix)
	if !ok {
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, 0)
	}
	return vm.Operator{Kind: vm.KindNull, Type: tag, Const: operand.Null}, 1, nil
}

func decodeConst(code []byte, p int) (vm.Operator, int, error) {
	tag, ok := tagFromByte(code[p] - constPrefix)
	if !ok {
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, len(code)-p)
	}
	payloadOffset := p + 1
	var (
		v operand.Operand
		n int
	)
	switch tag {
	case exprtype.Int32:
		val, consumed, err := readInt32(code, payloadOffset)
		if err != nil {
			return vm.Operator{}, 0, err
		}
		v, n = operand.OfInt32(val), consumed
	case exprtype.Int64:
		val, consumed, err := readInt64(code, payloadOffset)
		if err != nil {
			return vm.Operator{}, 0, err
		}
		v, n = operand.OfInt64(val), consumed
	case exprtype.Bool:
		v, n = operand.OfBool(true), 0
	case exprtype.Float:
		val, consumed, err := readFloat(code, payloadOffset)
		if err != nil {
			return vm.Operator{}, 0, err
		}
		v, n = operand.OfFloat(val), consumed
	case exprtype.Double:
		val, consumed, err := readDouble(code, payloadOffset)
		if err != nil {
			return vm.Operator{}, 0, err
		}
		v, n = operand.OfDouble(val), consumed
	case exprtype.Decimal:
		text, consumed, err := readDecimalText(code, payloadOffset)
		if err != nil {
			return vm.Operator{}, 0, err
		}
		d, err := decimal.NewFromString(text)
		if err != nil {
			return vm.Operator{}, 0, exprerrors.NewTruncatedLiteral(payloadOffset, len(code)-payloadOffset)
		}
		v, n = operand.OfDecimal(d), consumed
	case exprtype.String:
		s, consumed, err := readString(code, payloadOffset)
		if err != nil {
			return vm.Operator{}, 0, err
		}
		v, n = operand.OfString(s), consumed
	case exprtype.Date:
		val, consumed, err := readInt64(code, payloadOffset)
		if err != nil {
			return vm.Operator{}, 0, err
		}
		v, n = operand.OfDate(val), consumed
	default:
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, len(code)-p)
	}
	return vm.Operator{Kind: vm.KindConst, Type: tag, Const: v}, 1 + n, nil
}

func decodeConstNeg(code []byte, p int) (vm.Operator, int, error) {
	tag, ok := tagFromByte(code[p] - constNPrefix)
	if !ok {
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, len(code)-p)
	}
	payloadOffset := p + 1
	switch tag {
	case exprtype.Int32:
		val, consumed, err := readInt32(code, payloadOffset)
		if err != nil {
			return vm.Operator{}, 0, err
		}
		return vm.Operator{Kind: vm.KindConst, Type: tag, Const: operand.OfInt32(-val)}, 1 + consumed, nil
	case exprtype.Int64:
		val, consumed, err := readInt64(code, payloadOffset)
		if err != nil {
			return vm.Operator{}, 0, err
		}
		return vm.Operator{Kind: vm.KindConst, Type: tag, Const: operand.OfInt64(-val)}, 1 + consumed, nil
	case exprtype.Bool:
		return vm.Operator{Kind: vm.KindConst, Type: tag, Const: operand.OfBool(false)}, 1, nil
	default:
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, len(code)-p)
	}
}

func decodeVarI(code []byte, p int) (vm.Operator, int, error) {
	tag, ok := tagFromByte(code[p] - varIPrefix)
	if !ok {
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, len(code)-p)
	}
	idx, n, err := readInt32(code, p+1)
	if err != nil {
		return vm.Operator{}, 0, err
	}
	return vm.Operator{Kind: vm.KindVarI, Type: tag, Index: int(idx)}, 1 + n, nil
}

// decodeCast decodes CAST/CAST_C's (dst<<4)|src payload byte. When dst==src
// the cast is a no-op: decodeCast returns a KindNop, which Decode leaves out
// of the program entirely, matching OperatorVector::AddCastOperator's
// identity-cast shortcut.
func decodeCast(code []byte, p int, kind vm.Kind) (vm.Operator, int, error) {
	if p+1 >= len(code) {
		return vm.Operator{}, 0, exprerrors.NewTruncatedLiteral(p, len(code)-p)
	}
	b := code[p+1]
	dst, dstOK := tagFromByte(b >> 4)
	src, srcOK := tagFromByte(b & 0x0F)
	if !dstOK || !srcOK {
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, len(code)-p)
	}
	if dst == src {
		return vm.Operator{Kind: vm.KindNop, Type: dst}, 2, nil
	}
	return vm.Operator{Kind: kind, Type: dst, Src: src}, 2, nil
}

func decodeFun(code []byte, p int) (vm.Operator, int, error) {
	if p+1 >= len(code) {
		return vm.Operator{}, 0, exprerrors.NewTruncatedLiteral(p, len(code)-p)
	}
	id := code[p+1]
	if id > byte(vm.FunMid3) {
		return vm.Operator{}, 0, exprerrors.NewUnknownCode(p, len(code)-p)
	}
	return vm.Operator{Kind: vm.KindFun, Fun: vm.FunKind(id)}, 2, nil
}
