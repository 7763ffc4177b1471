// Runner implements the stack-based executor spec.md §5 describes: walk a
// decoded operator sequence once, left to right, pushing and popping a
// single operand stack, with null propagation centralized here rather than
// duplicated inside internal/calc's kernels (see that package's doc
// comment). Grounded on CWBudde-go-dws/internal/bytecode/vm_exec.go's
// instruction dispatch loop and the teacher's EnhancedVM.Run switch.
package vm

import (
	"github.com/shopspring/decimal"

	"github.com/dingodb/libexpr/internal/calc"
	"github.com/dingodb/libexpr/internal/exprerrors"
	"github.com/dingodb/libexpr/internal/exprtype"
	"github.com/dingodb/libexpr/internal/operand"
)

// Runner holds a decoded program plus the mutable state (stack, bound
// tuple) one evaluation needs. A Runner is reusable across many tuples via
// BindTuple + Run + Reset, matching spec.md §6.1's embedding contract.
type Runner struct {
	ops   []Operator
	stack *Stack
	tuple operand.Tuple
}

// NewRunner returns a Runner over a decoded operator sequence.
func NewRunner(ops []Operator) *Runner {
	return &Runner{ops: ops, stack: NewStack(len(ops))}
}

// BindTuple binds the row Run will evaluate VAR_I operators against.
func (r *Runner) BindTuple(t operand.Tuple) { r.tuple = t }

// Reset clears the stack and unbinds the tuple, readying the Runner for
// another BindTuple/Run cycle without reallocating its operator sequence.
func (r *Runner) Reset() {
	r.stack.Reset()
	r.tuple = nil
}

// ResetStack clears the stack only, leaving the bound tuple untouched. Run
// calls this itself, so a Program can be bound once and Run repeatedly
// against a changing tuple without an explicit Reset between evaluations.
func (r *Runner) ResetStack() {
	r.stack.Reset()
}

// Run evaluates the bound program to completion, leaving exactly one
// operand on the stack. Callers use Get/GetType to read it.
func (r *Runner) Run() error {
	r.ResetStack()
	for _, op := range r.ops {
		if err := r.step(op); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the sole operand left on the stack after Run, failing with
// *exprerrors.StackUnderflowError if Run left the stack empty (a decoder or
// executor invariant violation).
func (r *Runner) Get() (operand.Operand, error) {
	return r.stack.Peek()
}

// GetType returns the result type of the program's final operator. It reads
// the decoded program, not the stack, so it is available before Run and
// still names the declared type when the result is the null operand. It
// fails with *exprerrors.StackUnderflowError for an empty program.
func (r *Runner) GetType() (exprtype.Tag, error) {
	if len(r.ops) == 0 {
		return exprtype.Null, &exprerrors.StackUnderflowError{Op: "GetType"}
	}
	switch op := r.ops[len(r.ops)-1]; op.Kind {
	case KindEq, KindNe, KindLt, KindLe, KindGt, KindGe, KindIsNull, KindIsTrue, KindIsFalse, KindNot, KindAnd, KindOr:
		return exprtype.Bool, nil
	case KindFun:
		return exprtype.String, nil
	default:
		return op.Type, nil
	}
}

func (r *Runner) step(op Operator) error {
	switch op.Kind {
	case KindNull:
		r.stack.Push(operand.Null)
		return nil
	case KindNop:
		return nil
	case KindConst:
		r.stack.Push(op.Const)
		return nil
	case KindVarI:
		return r.stepVarI(op)
	case KindPos, KindNeg, KindAbs:
		return r.stepUnaryArith(op)
	case KindAbsCheck:
		return r.stepAbsCheck(op)
	case KindAdd, KindSub, KindMul, KindDiv, KindMod:
		return r.stepBinaryArith(op)
	case KindEq, KindNe, KindLt, KindLe, KindGt, KindGe:
		return r.stepRelational(op)
	case KindMin, KindMax:
		return r.stepMinMax(op)
	case KindIsNull:
		return r.stepIsNull()
	case KindIsTrue, KindIsFalse:
		return r.stepIsTrueFalse(op)
	case KindNot:
		return r.stepNot()
	case KindAnd, KindOr:
		return r.stepAndOr(op)
	case KindCast, KindCastCheck:
		return r.stepCast(op)
	case KindFun:
		return r.stepFun(op)
	default:
		return &exprerrors.StackUnderflowError{Op: "unknown operator"}
	}
}

func (r *Runner) stepVarI(op Operator) error {
	if r.tuple == nil {
		return &exprerrors.BindingError{Index: op.Index, TupleLen: -1}
	}
	if op.Index < 0 || op.Index >= len(r.tuple) {
		return &exprerrors.BindingError{Index: op.Index, TupleLen: len(r.tuple)}
	}
	r.stack.Push(r.tuple[op.Index])
	return nil
}

// stepUnaryArith handles POS, NEG and ABS, which all propagate null and
// share the same one-operand-in one-operand-out shape.
func (r *Runner) stepUnaryArith(op Operator) error {
	v, err := r.stack.Pop(op.Kind.String())
	if err != nil {
		return err
	}
	if v.IsNull() {
		r.stack.Push(operand.Null)
		return nil
	}
	result, err := r.applyUnary(op, v)
	if err != nil {
		return err
	}
	r.stack.Push(result)
	return nil
}

func (r *Runner) applyUnary(op Operator, v operand.Operand) (operand.Operand, error) {
	switch op.Type {
	case exprtype.Int32:
		x, _ := v.Int32()
		return operand.OfInt32(unaryInt32(op.Kind, x)), nil
	case exprtype.Int64:
		x, _ := v.Int64()
		return operand.OfInt64(unaryInt64(op.Kind, x)), nil
	case exprtype.Float:
		x, _ := v.Float()
		return operand.OfFloat(unaryFloat(op.Kind, x)), nil
	case exprtype.Double:
		x, _ := v.Double()
		return operand.OfDouble(unaryDouble(op.Kind, x)), nil
	case exprtype.Decimal:
		x, _ := v.Decimal()
		return operand.OfDecimal(unaryDecimal(op.Kind, x)), nil
	default:
		return operand.Operand{}, exprerrors.NewKernelError("unary", errUnsupportedType(op.Type))
	}
}

func unaryInt32(k Kind, x int32) int32 {
	if k == KindNeg {
		return calc.Neg(x)
	}
	if k == KindAbs {
		return calc.Abs(x)
	}
	return calc.Pos(x)
}

func unaryInt64(k Kind, x int64) int64 {
	if k == KindNeg {
		return calc.Neg(x)
	}
	if k == KindAbs {
		return calc.Abs(x)
	}
	return calc.Pos(x)
}

func unaryFloat(k Kind, x float32) float32 {
	if k == KindNeg {
		return calc.Neg(x)
	}
	if k == KindAbs {
		return calc.Abs(x)
	}
	return calc.Pos(x)
}

func unaryDouble(k Kind, x float64) float64 {
	if k == KindNeg {
		return calc.Neg(x)
	}
	if k == KindAbs {
		return calc.Abs(x)
	}
	return calc.Pos(x)
}

func unaryDecimal(k Kind, x decimal.Decimal) decimal.Decimal {
	if k == KindNeg {
		return calc.DecimalNeg(x)
	}
	if k == KindAbs {
		return x.Abs()
	}
	return calc.DecimalPos(x)
}

// stepAbsCheck handles ABS_C, the checked absolute value. It propagates
// null like every other arithmetic operator, and reports a *LimitsError
// when the magnitude is unrepresentable (INT32/INT64 MIN only).
func (r *Runner) stepAbsCheck(op Operator) error {
	v, err := r.stack.Pop("ABS_C")
	if err != nil {
		return err
	}
	if v.IsNull() {
		r.stack.Push(operand.Null)
		return nil
	}
	switch op.Type {
	case exprtype.Int32:
		x, _ := v.Int32()
		res, ok := calc.AbsCheckInt32(x)
		if !ok {
			return &exprerrors.LimitsError{Type: op.Type, Op: "ABS_C"}
		}
		r.stack.Push(operand.OfInt32(res))
	case exprtype.Int64:
		x, _ := v.Int64()
		res, ok := calc.AbsCheckInt64(x)
		if !ok {
			return &exprerrors.LimitsError{Type: op.Type, Op: "ABS_C"}
		}
		r.stack.Push(operand.OfInt64(res))
	case exprtype.Float:
		x, _ := v.Float()
		res, _ := calc.AbsCheckFloat(x)
		r.stack.Push(operand.OfFloat(res))
	case exprtype.Double:
		x, _ := v.Double()
		res, _ := calc.AbsCheckDouble(x)
		r.stack.Push(operand.OfDouble(res))
	case exprtype.Decimal:
		x, _ := v.Decimal()
		r.stack.Push(operand.OfDecimal(x.Abs()))
	default:
		return exprerrors.NewKernelError("ABS_C", errUnsupportedType(op.Type))
	}
	return nil
}

// popPair pops the right then left operand off the stack, restoring the
// original push order (left was pushed first).
func (r *Runner) popPair(op string) (left, right operand.Operand, err error) {
	right, err = r.stack.Pop(op)
	if err != nil {
		return
	}
	left, err = r.stack.Pop(op)
	return
}

func (r *Runner) stepBinaryArith(op Operator) error {
	left, right, err := r.popPair(op.Kind.String())
	if err != nil {
		return err
	}
	if left.IsNull() || right.IsNull() {
		r.stack.Push(operand.Null)
		return nil
	}
	result, err := r.applyBinaryArith(op, left, right)
	if err != nil {
		return err
	}
	r.stack.Push(result)
	return nil
}

func (r *Runner) applyBinaryArith(op Operator, left, right operand.Operand) (operand.Operand, error) {
	switch op.Type {
	case exprtype.Int32:
		a, _ := left.Int32()
		b, _ := right.Int32()
		return binaryInt32(op.Kind, a, b)
	case exprtype.Int64:
		a, _ := left.Int64()
		b, _ := right.Int64()
		return binaryInt64(op.Kind, a, b)
	case exprtype.Float:
		a, _ := left.Float()
		b, _ := right.Float()
		return binaryFloat(op.Kind, a, b)
	case exprtype.Double:
		a, _ := left.Double()
		b, _ := right.Double()
		return binaryDouble(op.Kind, a, b)
	case exprtype.Decimal:
		a, _ := left.Decimal()
		b, _ := right.Decimal()
		return binaryDecimal(op.Kind, a, b)
	default:
		return operand.Operand{}, exprerrors.NewKernelError("binary arith", errUnsupportedType(op.Type))
	}
}

func binaryInt32(k Kind, a, b int32) (operand.Operand, error) {
	switch k {
	case KindAdd:
		return operand.OfInt32(calc.Add(a, b)), nil
	case KindSub:
		return operand.OfInt32(calc.Sub(a, b)), nil
	case KindMul:
		return operand.OfInt32(calc.Mul(a, b)), nil
	case KindDiv:
		r, ok := calc.Div(a, b)
		if !ok {
			return operand.Null, nil
		}
		return operand.OfInt32(r), nil
	default: // KindMod
		r, ok := calc.Mod(a, b)
		if !ok {
			return operand.Null, nil
		}
		return operand.OfInt32(r), nil
	}
}

func binaryInt64(k Kind, a, b int64) (operand.Operand, error) {
	switch k {
	case KindAdd:
		return operand.OfInt64(calc.Add(a, b)), nil
	case KindSub:
		return operand.OfInt64(calc.Sub(a, b)), nil
	case KindMul:
		return operand.OfInt64(calc.Mul(a, b)), nil
	case KindDiv:
		r, ok := calc.Div(a, b)
		if !ok {
			return operand.Null, nil
		}
		return operand.OfInt64(r), nil
	default:
		r, ok := calc.Mod(a, b)
		if !ok {
			return operand.Null, nil
		}
		return operand.OfInt64(r), nil
	}
}

func binaryFloat(k Kind, a, b float32) (operand.Operand, error) {
	switch k {
	case KindAdd:
		return operand.OfFloat(calc.Add(a, b)), nil
	case KindSub:
		return operand.OfFloat(calc.Sub(a, b)), nil
	case KindMul:
		return operand.OfFloat(calc.Mul(a, b)), nil
	case KindDiv:
		r, ok := calc.Div(a, b)
		if !ok {
			return operand.Null, nil
		}
		return operand.OfFloat(r), nil
	default: // KindMod is not defined for FLOAT
		return operand.Operand{}, &exprerrors.LimitsError{Type: exprtype.Float, Op: "MOD"}
	}
}

func binaryDouble(k Kind, a, b float64) (operand.Operand, error) {
	switch k {
	case KindAdd:
		return operand.OfDouble(calc.Add(a, b)), nil
	case KindSub:
		return operand.OfDouble(calc.Sub(a, b)), nil
	case KindMul:
		return operand.OfDouble(calc.Mul(a, b)), nil
	case KindDiv:
		r, ok := calc.Div(a, b)
		if !ok {
			return operand.Null, nil
		}
		return operand.OfDouble(r), nil
	default: // KindMod is not defined for DOUBLE
		return operand.Operand{}, &exprerrors.LimitsError{Type: exprtype.Double, Op: "MOD"}
	}
}

func binaryDecimal(k Kind, a, b decimal.Decimal) (operand.Operand, error) {
	switch k {
	case KindAdd:
		return operand.OfDecimal(calc.DecimalAdd(a, b)), nil
	case KindSub:
		return operand.OfDecimal(calc.DecimalSub(a, b)), nil
	case KindMul:
		return operand.OfDecimal(calc.DecimalMul(a, b)), nil
	case KindDiv:
		r, ok := calc.DecimalDiv(a, b)
		if !ok {
			return operand.Null, nil
		}
		return operand.OfDecimal(r), nil
	default: // KindMod is not defined for DECIMAL
		return operand.Operand{}, &exprerrors.LimitsError{Type: exprtype.Decimal, Op: "MOD"}
	}
}

func (r *Runner) stepRelational(op Operator) error {
	left, right, err := r.popPair(op.Kind.String())
	if err != nil {
		return err
	}
	if left.IsNull() || right.IsNull() {
		r.stack.Push(operand.Null)
		return nil
	}
	result, err := r.applyRelational(op, left, right)
	if err != nil {
		return err
	}
	r.stack.Push(operand.OfBool(result))
	return nil
}

func (r *Runner) applyRelational(op Operator, left, right operand.Operand) (bool, error) {
	switch op.Type {
	case exprtype.Int32:
		a, _ := left.Int32()
		b, _ := right.Int32()
		return relOrdered(op.Kind, a, b), nil
	case exprtype.Int64:
		a, _ := left.Int64()
		b, _ := right.Int64()
		return relOrdered(op.Kind, a, b), nil
	case exprtype.Float:
		a, _ := left.Float()
		b, _ := right.Float()
		return relOrdered(op.Kind, a, b), nil
	case exprtype.Double:
		a, _ := left.Double()
		b, _ := right.Double()
		return relOrdered(op.Kind, a, b), nil
	case exprtype.Date:
		a, _ := left.Date()
		b, _ := right.Date()
		return relOrdered(op.Kind, a, b), nil
	case exprtype.String:
		a, _ := left.String()
		b, _ := right.String()
		return relOrdered(op.Kind, a, b), nil
	case exprtype.Bool:
		a, _ := left.Bool()
		b, _ := right.Bool()
		switch op.Kind {
		case KindEq:
			return calc.EqBool(a, b), nil
		case KindNe:
			return calc.NeBool(a, b), nil
		default:
			return false, exprerrors.NewKernelError("relational", errUnsupportedType(op.Type))
		}
	case exprtype.Decimal:
		a, _ := left.Decimal()
		b, _ := right.Decimal()
		return relDecimal(op.Kind, a, b), nil
	default:
		return false, exprerrors.NewKernelError("relational", errUnsupportedType(op.Type))
	}
}

func relOrdered[T calc.Ordered](k Kind, a, b T) bool {
	switch k {
	case KindEq:
		return calc.Eq(a, b)
	case KindNe:
		return calc.Ne(a, b)
	case KindLt:
		return calc.Lt(a, b)
	case KindLe:
		return calc.Le(a, b)
	case KindGt:
		return calc.Gt(a, b)
	default: // KindGe
		return calc.Ge(a, b)
	}
}

func relDecimal(k Kind, a, b decimal.Decimal) bool {
	switch k {
	case KindEq:
		return calc.DecimalEq(a, b)
	case KindNe:
		return calc.DecimalNe(a, b)
	case KindLt:
		return calc.DecimalLt(a, b)
	case KindLe:
		return calc.DecimalLe(a, b)
	case KindGt:
		return calc.DecimalGt(a, b)
	default:
		return calc.DecimalGe(a, b)
	}
}

func (r *Runner) stepMinMax(op Operator) error {
	left, right, err := r.popPair(op.Kind.String())
	if err != nil {
		return err
	}
	if left.IsNull() || right.IsNull() {
		r.stack.Push(operand.Null)
		return nil
	}
	result, err := r.applyMinMax(op, left, right)
	if err != nil {
		return err
	}
	r.stack.Push(result)
	return nil
}

func (r *Runner) applyMinMax(op Operator, left, right operand.Operand) (operand.Operand, error) {
	isMin := op.Kind == KindMin
	switch op.Type {
	case exprtype.Int32:
		a, _ := left.Int32()
		b, _ := right.Int32()
		if isMin {
			return operand.OfInt32(calc.Min(a, b)), nil
		}
		return operand.OfInt32(calc.Max(a, b)), nil
	case exprtype.Int64:
		a, _ := left.Int64()
		b, _ := right.Int64()
		if isMin {
			return operand.OfInt64(calc.Min(a, b)), nil
		}
		return operand.OfInt64(calc.Max(a, b)), nil
	case exprtype.Float:
		a, _ := left.Float()
		b, _ := right.Float()
		if isMin {
			return operand.OfFloat(calc.Min(a, b)), nil
		}
		return operand.OfFloat(calc.Max(a, b)), nil
	case exprtype.Double:
		a, _ := left.Double()
		b, _ := right.Double()
		if isMin {
			return operand.OfDouble(calc.Min(a, b)), nil
		}
		return operand.OfDouble(calc.Max(a, b)), nil
	case exprtype.String:
		a, _ := left.String()
		b, _ := right.String()
		if isMin {
			return operand.OfString(calc.MinString(a, b)), nil
		}
		return operand.OfString(calc.MaxString(a, b)), nil
	case exprtype.Decimal:
		a, _ := left.Decimal()
		b, _ := right.Decimal()
		if isMin {
			if a.Cmp(b) <= 0 {
				return operand.OfDecimal(a), nil
			}
			return operand.OfDecimal(b), nil
		}
		if a.Cmp(b) >= 0 {
			return operand.OfDecimal(a), nil
		}
		return operand.OfDecimal(b), nil
	default:
		return operand.Operand{}, exprerrors.NewKernelError("min/max", errUnsupportedType(op.Type))
	}
}

// stepIsNull never propagates null: it exists precisely to observe
// nullness.
func (r *Runner) stepIsNull() error {
	v, err := r.stack.Pop("IS_NULL")
	if err != nil {
		return err
	}
	r.stack.Push(operand.OfBool(v.IsNull()))
	return nil
}

// stepIsTrueFalse handles IS_TRUE and IS_FALSE, which also never propagate
// null: a null operand is definitely not true and definitely not false
// (SQL three-valued semantics), so both answer a definite BOOL. Every
// numeric type answers by comparing against its zero value; only STRING has
// no truthiness of its own and answers with special.cc's fixed
// IsTrue/IsFalse specialization instead.
func (r *Runner) stepIsTrueFalse(op Operator) error {
	v, err := r.stack.Pop(op.Kind.String())
	if err != nil {
		return err
	}
	if v.IsNull() {
		r.stack.Push(operand.OfBool(false))
		return nil
	}
	isTrue := op.Kind == KindIsTrue
	switch op.Type {
	case exprtype.Bool:
		b, _ := v.Bool()
		if isTrue {
			r.stack.Push(operand.OfBool(calc.IsTrueBool(b)))
		} else {
			r.stack.Push(operand.OfBool(calc.IsFalseBool(b)))
		}
	case exprtype.Int32:
		x, _ := v.Int32()
		r.stack.Push(operand.OfBool(boolOr(isTrue, calc.IsTrueNumeric(x), calc.IsFalseNumeric(x))))
	case exprtype.Int64:
		x, _ := v.Int64()
		r.stack.Push(operand.OfBool(boolOr(isTrue, calc.IsTrueNumeric(x), calc.IsFalseNumeric(x))))
	case exprtype.Date:
		x, _ := v.Date()
		r.stack.Push(operand.OfBool(boolOr(isTrue, calc.IsTrueNumeric(x), calc.IsFalseNumeric(x))))
	case exprtype.Float:
		x, _ := v.Float()
		r.stack.Push(operand.OfBool(boolOr(isTrue, calc.IsTrueNumeric(x), calc.IsFalseNumeric(x))))
	case exprtype.Double:
		x, _ := v.Double()
		r.stack.Push(operand.OfBool(boolOr(isTrue, calc.IsTrueNumeric(x), calc.IsFalseNumeric(x))))
	case exprtype.Decimal:
		x, _ := v.Decimal()
		r.stack.Push(operand.OfBool(boolOr(isTrue, calc.IsTrueDecimal(x), calc.IsFalseDecimal(x))))
	case exprtype.String:
		if isTrue {
			r.stack.Push(operand.OfBool(calc.IsTrueString()))
		} else {
			r.stack.Push(operand.OfBool(calc.IsFalseString()))
		}
	default:
		return exprerrors.NewKernelError(op.Kind.String(), errUnsupportedType(op.Type))
	}
	return nil
}

// boolOr picks the IS_TRUE answer or the IS_FALSE answer depending on which
// predicate is being evaluated.
func boolOr(isTrue, trueAnswer, falseAnswer bool) bool {
	if isTrue {
		return trueAnswer
	}
	return falseAnswer
}

func (r *Runner) stepNot() error {
	v, err := r.stack.Pop("NOT")
	if err != nil {
		return err
	}
	result := calc.Not(triOf(v))
	push, ok := fromTri(result)
	if !ok {
		r.stack.Push(operand.Null)
		return nil
	}
	r.stack.Push(push)
	return nil
}

func (r *Runner) stepAndOr(op Operator) error {
	left, right, err := r.popPair(op.Kind.String())
	if err != nil {
		return err
	}
	var result calc.Tri
	if op.Kind == KindAnd {
		result = calc.And(triOf(left), triOf(right))
	} else {
		result = calc.Or(triOf(left), triOf(right))
	}
	push, ok := fromTri(result)
	if !ok {
		r.stack.Push(operand.Null)
		return nil
	}
	r.stack.Push(push)
	return nil
}

func triOf(v operand.Operand) calc.Tri {
	if v.IsNull() {
		return calc.TriNull
	}
	b, _ := v.Bool()
	return calc.TriOf(b)
}

func fromTri(t calc.Tri) (operand.Operand, bool) {
	switch t {
	case calc.TriTrue:
		return operand.OfBool(true), true
	case calc.TriFalse:
		return operand.OfBool(false), true
	default:
		return operand.Operand{}, false
	}
}

func errUnsupportedType(t exprtype.Tag) error {
	return &exprerrors.LimitsError{Type: t, Op: "unsupported operand type"}
}
