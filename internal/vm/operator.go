// Package vm implements the stack-based executor: the Operator sum type
// the decoder assembles a program from, the LIFO operand Stack, and the
// Runner that walks a decoded operator sequence against a bound Tuple.
//
// Operators are modeled as a single struct with a Kind discriminator and a
// handful of payload fields, switched over exhaustively in Runner.Run,
// rather than as a Kind interface implemented by many small types — the
// same "tagged struct, not a class hierarchy" shape spec.md §9 calls for
// interned vs. constructed operators, grounded on the teacher's
// bytecode.Instruction (CWBudde-go-dws/internal/bytecode/instruction.go),
// which likewise carries one OpCode plus a handful of optional operand
// fields instead of a type per instruction.
package vm

import (
	"fmt"

	"github.com/dingodb/libexpr/internal/exprtype"
	"github.com/dingodb/libexpr/internal/operand"
)

// Kind discriminates the operator variants a decoded program is built from.
type Kind byte

const (
	KindNull Kind = iota
	KindNop
	KindConst
	KindVarI
	KindPos
	KindNeg
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindEq
	KindGe
	KindGt
	KindLe
	KindLt
	KindNe
	KindIsNull
	KindIsTrue
	KindIsFalse
	KindMin
	KindMax
	KindAbs
	KindAbsCheck
	KindNot
	KindAnd
	KindOr
	KindCast
	KindCastCheck
	KindFun
)

var kindNames = [...]string{
	"NULL", "NOP", "CONST", "VAR_I", "POS", "NEG", "ADD", "SUB", "MUL", "DIV", "MOD",
	"EQ", "GE", "GT", "LE", "LT", "NE", "IS_NULL", "IS_TRUE", "IS_FALSE",
	"MIN", "MAX", "ABS", "ABS_C", "NOT", "AND", "OR", "CAST", "CAST_C", "FUN",
}

// String renders the operator kind's mnemonic, used in stack-underflow
// diagnostics and disassembly.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// FunKind enumerates the named string functions FUN dispatches to, grounded
// on original_source/src/expr/calc/string_fun.h's function table.
type FunKind byte

const (
	FunConcat FunKind = iota
	FunLower
	FunUpper
	FunLeft
	FunRight
	FunTrim
	FunLTrim
	FunRTrim
	FunSubstr2
	FunSubstr3
	FunMid2
	FunMid3
)

// Arity reports how many stack operands f consumes.
func (f FunKind) Arity() int {
	switch f {
	case FunLower, FunUpper, FunTrim, FunLTrim, FunRTrim:
		return 1
	case FunConcat, FunLeft, FunRight, FunSubstr2, FunMid2:
		return 2
	case FunSubstr3, FunMid3:
		return 3
	default:
		return 0
	}
}

// Operator is one decoded instruction. Only the fields relevant to Kind are
// populated; the rest hold zero values. Operators are plain values: the
// decoder builds one per opcode occurrence and stores it directly in the
// program's slice, so there is no shared operator table and no per-operator
// heap allocation.
type Operator struct {
	Kind Kind

	// Type is the operand type a POS/NEG/ADD/.../CAST(dst) operator is
	// specialized for. FUN operators leave it unset.
	Type exprtype.Tag

	// Src is the source type for KindCast/KindCastCheck; Type holds the
	// destination type.
	Src exprtype.Tag

	// Const holds the literal value for KindConst/KindNull.
	Const operand.Operand

	// Index holds the tuple position for KindVarI.
	Index int

	// Fun holds the function selector for KindFun.
	Fun FunKind
}

// String renders the operator for disassembly, e.g. "ADD INT32" or
// "CONST INT32(1)".
func (o Operator) String() string {
	switch o.Kind {
	case KindConst, KindNull:
		return o.Kind.String() + " " + o.Const.GoString()
	case KindVarI:
		return fmt.Sprintf("%s %s[%d]", o.Kind, o.Type, o.Index)
	case KindCast, KindCastCheck:
		return fmt.Sprintf("%s %s<-%s", o.Kind, o.Type, o.Src)
	case KindFun:
		return fmt.Sprintf("%s #%d", o.Kind, o.Fun)
	case KindNot, KindAnd, KindOr, KindNop:
		return o.Kind.String()
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.Type)
	}
}
