// Package exprerrors defines the expression VM's error taxonomy: malformed
// bytecode, unbound/out-of-range tuple access, stack discipline violations,
// and lossy-conversion refusals. Every error type implements error and
// carries enough context to locate the fault, in the same spirit as the
// teacher's internal/errors.SentraError (type + message + location) and
// CWBudde-go-dws/internal/bytecode.RuntimeError (message + stack trace).
package exprerrors

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dingodb/libexpr/internal/exprtype"
)

// DecodeError reports a malformed bytecode stream: an unrecognised opcode,
// a type byte with no matching kernel, or a literal that ran past the end
// of the input. The program is abandoned; any operators already decoded
// into the program are discarded with it.
type DecodeError struct {
	Offset    int
	Remaining int
	Reason    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %s at offset %d (%d bytes remaining)", e.Reason, e.Offset, e.Remaining)
}

// NewUnknownCode builds the DecodeError for an opcode or type byte the
// decoder does not recognise, mirroring the original's UnknownCode(offset,
// remaining) exception (operator_vector.cc).
func NewUnknownCode(offset, remaining int) *DecodeError {
	return &DecodeError{Offset: offset, Remaining: remaining, Reason: "unknown code"}
}

// NewTruncatedLiteral builds the DecodeError for a literal whose payload
// runs past the end of the bytecode.
func NewTruncatedLiteral(offset, remaining int) *DecodeError {
	return &DecodeError{Offset: offset, Remaining: remaining, Reason: "truncated literal"}
}

// BindingError reports a VAR_I operator executed without a bound tuple, or
// with an index outside the tuple's bounds.
type BindingError struct {
	Index    int
	TupleLen int
}

func (e *BindingError) Error() string {
	if e.TupleLen < 0 {
		return fmt.Sprintf("binding: no tuple bound, index %d requested", e.Index)
	}
	return fmt.Sprintf("binding: index %d out of range for tuple of length %d", e.Index, e.TupleLen)
}

// StackUnderflowError reports an operator that needed more operands than
// the stack held — an internal consistency failure from a malformed
// program the decoder nonetheless accepted.
type StackUnderflowError struct {
	Op string
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow executing %s", e.Op)
}

// LimitsError reports a checked kernel (CastCheck, AbsCheck) refusing a
// lossy conversion or overflowing absolute value.
type LimitsError struct {
	Type exprtype.Tag
	Op   string
}

func (e *LimitsError) Error() string {
	return fmt.Sprintf("%s exceeds limits of %s", e.Op, e.Type)
}

// KernelError wraps a failure from a host-abstracted kernel (decimal
// arithmetic, string formatting) with a captured stack trace via
// github.com/pkg/errors, so the failure site survives past the VM's flat
// Run loop.
type KernelError struct {
	Op    string
	Cause error
}

func (e *KernelError) Error() string {
	return fmt.Sprintf("kernel %s: %v", e.Op, e.Cause)
}

func (e *KernelError) Unwrap() error { return e.Cause }

// NewKernelError wraps cause with a stack trace captured at the call site.
func NewKernelError(op string, cause error) *KernelError {
	return &KernelError{Op: op, Cause: errors.WithStack(cause)}
}
