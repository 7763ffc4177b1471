package vm

import (
	"github.com/dingodb/libexpr/internal/calc"
	"github.com/dingodb/libexpr/internal/exprerrors"
	"github.com/dingodb/libexpr/internal/exprtype"
	"github.com/dingodb/libexpr/internal/operand"
)

// stepCast handles CAST and CAST_C. Both propagate null; CAST_C additionally
// refuses a lossy narrowing conversion with a *exprerrors.LimitsError, per
// spec.md §4.2.5 and original_source/src/expr/calc/casting.cc's CastCheck
// overloads. Both also fail with a *exprerrors.LimitsError when the value
// cannot be converted at all: a cast to BOOL from any other type, or a
// STRING to DECIMAL cast whose text does not parse.
func (r *Runner) stepCast(op Operator) error {
	v, err := r.stack.Pop(op.Kind.String())
	if err != nil {
		return err
	}
	if v.IsNull() {
		r.stack.Push(operand.Null)
		return nil
	}
	checked := op.Kind == KindCastCheck
	result, ok, err := castValue(op.Src, op.Type, v, checked)
	if err != nil {
		return err
	}
	if !ok {
		return &exprerrors.LimitsError{Type: op.Type, Op: "CAST_C"}
	}
	r.stack.Push(result)
	return nil
}

func castValue(src, dst exprtype.Tag, v operand.Operand, checked bool) (operand.Operand, bool, error) {
	switch dst {
	case exprtype.Int32:
		return castToInt32(src, v, checked)
	case exprtype.Int64:
		return castToInt64(src, v, checked)
	case exprtype.Float:
		return castToFloat(src, v)
	case exprtype.Double:
		return castToDouble(src, v)
	case exprtype.String:
		return castToString(src, v)
	case exprtype.Decimal:
		return castToDecimal(src, v)
	case exprtype.Bool:
		return v, src == exprtype.Bool, nil
	case exprtype.Date:
		return castToDate(src, v)
	default:
		return operand.Operand{}, false, exprerrors.NewKernelError("CAST", errUnsupportedType(dst))
	}
}

func castToInt32(src exprtype.Tag, v operand.Operand, checked bool) (operand.Operand, bool, error) {
	switch src {
	case exprtype.Int64:
		x, _ := v.Int64()
		if checked {
			r, ok := calc.CastCheckInt32FromInt64(x)
			return operand.OfInt32(r), ok, nil
		}
		return operand.OfInt32(int32(x)), true, nil
	case exprtype.Float:
		x, _ := v.Float()
		if checked {
			r, ok := calc.CastCheckInt32FromFloat(x)
			return operand.OfInt32(r), ok, nil
		}
		return operand.OfInt32(calc.CastInt32FromFloat(x)), true, nil
	case exprtype.Double:
		x, _ := v.Double()
		if checked {
			r, ok := calc.CastCheckInt32FromDouble(x)
			return operand.OfInt32(r), ok, nil
		}
		return operand.OfInt32(calc.CastInt32FromDouble(x)), true, nil
	case exprtype.String:
		x, _ := v.String()
		return operand.OfInt32(calc.CastInt32FromString(x)), true, nil
	default:
		return operand.Operand{}, false, exprerrors.NewKernelError("CAST to INT32", errUnsupportedType(src))
	}
}

func castToInt64(src exprtype.Tag, v operand.Operand, checked bool) (operand.Operand, bool, error) {
	switch src {
	case exprtype.Int32:
		x, _ := v.Int32()
		return operand.OfInt64(int64(x)), true, nil
	case exprtype.Float:
		x, _ := v.Float()
		if checked {
			r, ok := calc.CastCheckInt64FromFloat(x)
			return operand.OfInt64(r), ok, nil
		}
		return operand.OfInt64(calc.CastInt64FromFloat(x)), true, nil
	case exprtype.Double:
		x, _ := v.Double()
		if checked {
			r, ok := calc.CastCheckInt64FromDouble(x)
			return operand.OfInt64(r), ok, nil
		}
		return operand.OfInt64(calc.CastInt64FromDouble(x)), true, nil
	case exprtype.String:
		x, _ := v.String()
		return operand.OfInt64(calc.CastInt64FromString(x)), true, nil
	case exprtype.Date:
		x, _ := v.Date()
		return operand.OfInt64(x), true, nil
	default:
		return operand.Operand{}, false, exprerrors.NewKernelError("CAST to INT64", errUnsupportedType(src))
	}
}

func castToFloat(src exprtype.Tag, v operand.Operand) (operand.Operand, bool, error) {
	switch src {
	case exprtype.Int32:
		x, _ := v.Int32()
		return operand.OfFloat(float32(x)), true, nil
	case exprtype.Int64:
		x, _ := v.Int64()
		return operand.OfFloat(float32(x)), true, nil
	case exprtype.Double:
		x, _ := v.Double()
		return operand.OfFloat(float32(x)), true, nil
	case exprtype.String:
		x, _ := v.String()
		return operand.OfFloat(calc.CastFloatFromString(x)), true, nil
	default:
		return operand.Operand{}, false, exprerrors.NewKernelError("CAST to FLOAT", errUnsupportedType(src))
	}
}

func castToDouble(src exprtype.Tag, v operand.Operand) (operand.Operand, bool, error) {
	switch src {
	case exprtype.Int32:
		x, _ := v.Int32()
		return operand.OfDouble(float64(x)), true, nil
	case exprtype.Int64:
		x, _ := v.Int64()
		return operand.OfDouble(float64(x)), true, nil
	case exprtype.Float:
		x, _ := v.Float()
		return operand.OfDouble(float64(x)), true, nil
	case exprtype.String:
		x, _ := v.String()
		return operand.OfDouble(calc.CastDoubleFromString(x)), true, nil
	default:
		return operand.Operand{}, false, exprerrors.NewKernelError("CAST to DOUBLE", errUnsupportedType(src))
	}
}

func castToString(src exprtype.Tag, v operand.Operand) (operand.Operand, bool, error) {
	switch src {
	case exprtype.Int32:
		x, _ := v.Int32()
		return operand.OfString(calc.CastStringFromInt32(x)), true, nil
	case exprtype.Int64:
		x, _ := v.Int64()
		return operand.OfString(calc.CastStringFromInt64(x)), true, nil
	case exprtype.Bool:
		x, _ := v.Bool()
		return operand.OfString(calc.CastStringFromBool(x)), true, nil
	case exprtype.Float:
		x, _ := v.Float()
		return operand.OfString(calc.CastStringFromFloat(x)), true, nil
	case exprtype.Double:
		x, _ := v.Double()
		return operand.OfString(calc.CastStringFromDouble(x)), true, nil
	case exprtype.Decimal:
		x, _ := v.Decimal()
		return operand.OfString(calc.CastStringFromDecimal(x)), true, nil
	case exprtype.Date:
		x, _ := v.Date()
		return operand.OfString(calc.CastStringFromDate(x)), true, nil
	default:
		return operand.Operand{}, false, exprerrors.NewKernelError("CAST to STRING", errUnsupportedType(src))
	}
}

func castToDecimal(src exprtype.Tag, v operand.Operand) (operand.Operand, bool, error) {
	if src != exprtype.String {
		return operand.Operand{}, false, exprerrors.NewKernelError("CAST to DECIMAL", errUnsupportedType(src))
	}
	x, _ := v.String()
	d, err := calc.CastDecimalFromString(x)
	if err != nil {
		return operand.Operand{}, false, nil
	}
	return operand.OfDecimal(d), true, nil
}

// castToDate handles CAST/CAST_C into DATE: parsing a "YYYY-MM-DD" STRING,
// or reinterpreting an INT64 millisecond count as a DATE directly.
func castToDate(src exprtype.Tag, v operand.Operand) (operand.Operand, bool, error) {
	switch src {
	case exprtype.String:
		x, _ := v.String()
		return operand.OfDate(calc.CastDateFromString(x)), true, nil
	case exprtype.Int64:
		x, _ := v.Int64()
		return operand.OfDate(x), true, nil
	default:
		return operand.Operand{}, false, exprerrors.NewKernelError("CAST to DATE", errUnsupportedType(src))
	}
}

// stepFun handles FUN, dispatching to the string function selected by
// op.Fun. Every string function propagates null: if any argument is null,
// the result is null, consistent with every other operator in the VM.
func (r *Runner) stepFun(op Operator) error {
	args := make([]operand.Operand, op.Fun.Arity())
	for i := len(args) - 1; i >= 0; i-- {
		v, err := r.stack.Pop("FUN")
		if err != nil {
			return err
		}
		args[i] = v
	}
	for _, a := range args {
		if a.IsNull() {
			r.stack.Push(operand.Null)
			return nil
		}
	}
	result, err := applyFun(op.Fun, args)
	if err != nil {
		return err
	}
	r.stack.Push(result)
	return nil
}

func applyFun(fn FunKind, args []operand.Operand) (operand.Operand, error) {
	str := func(i int) string {
		s, _ := args[i].String()
		return s
	}
	i32 := func(i int) int32 {
		n, _ := args[i].Int32()
		return n
	}
	switch fn {
	case FunConcat:
		return operand.OfString(calc.Concat(str(0), str(1))), nil
	case FunLower:
		return operand.OfString(calc.Lower(str(0))), nil
	case FunUpper:
		return operand.OfString(calc.Upper(str(0))), nil
	case FunLeft:
		return operand.OfString(calc.Left(str(0), i32(1))), nil
	case FunRight:
		return operand.OfString(calc.Right(str(0), i32(1))), nil
	case FunTrim:
		return operand.OfString(calc.Trim(str(0))), nil
	case FunLTrim:
		return operand.OfString(calc.LTrim(str(0))), nil
	case FunRTrim:
		return operand.OfString(calc.RTrim(str(0))), nil
	case FunSubstr2:
		return operand.OfString(calc.Substr2(str(0), i32(1))), nil
	case FunSubstr3:
		return operand.OfString(calc.Substr3(str(0), i32(1), i32(2))), nil
	case FunMid2:
		return operand.OfString(calc.Mid2(str(0), i32(1))), nil
	case FunMid3:
		return operand.OfString(calc.Mid3(str(0), i32(1), i32(2))), nil
	default:
		return operand.Operand{}, exprerrors.NewKernelError("FUN", errUnsupportedType(exprtype.Null))
	}
}
