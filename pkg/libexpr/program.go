// Package libexpr is the public embedding facade over the internal
// expression VM: decode a bytecode program once, bind it against many
// tuples, and read back a typed scalar result per row. Grounded on
// CWBudde-go-dws/pkg/dwscript being the importable wrapper its cmd/ and
// external callers both use, rather than reaching into internal/* directly.
package libexpr

import (
	"github.com/dingodb/libexpr/internal/decoder"
	"github.com/dingodb/libexpr/internal/exprtype"
	"github.com/dingodb/libexpr/internal/operand"
	"github.com/dingodb/libexpr/internal/vm"
)

// Program is a decoded bytecode expression, ready to be bound against a
// sequence of tuples and run once per tuple.
type Program struct {
	runner *vm.Runner
}

// Decode parses code into a Program, returning the number of bytes
// consumed (through the EOE sentinel, if present) alongside any decode
// error.
func Decode(code []byte) (*Program, int, error) {
	ops, consumed, err := decoder.Decode(code)
	if err != nil {
		return nil, 0, err
	}
	return &Program{runner: vm.NewRunner(ops)}, consumed, nil
}

// BindTuple binds the row p.Run will evaluate VAR_I operators against.
// Binding a new tuple without calling Reset first is safe: Run always
// starts from an empty stack.
func (p *Program) BindTuple(t operand.Tuple) {
	p.runner.BindTuple(t)
}

// Run evaluates the program against the currently bound tuple and returns
// its scalar result.
func (p *Program) Run() (operand.Operand, error) {
	p.runner.ResetStack()
	if err := p.runner.Run(); err != nil {
		return operand.Operand{}, err
	}
	return p.runner.Get()
}

// Get returns the result of the most recent Run without re-evaluating the
// program.
func (p *Program) Get() (operand.Operand, error) {
	return p.runner.Get()
}

// GetType returns the result type of the program's final operator, read
// from the decoded program rather than from the last result, so it is the
// declared type even when Run produced the null operand.
func (p *Program) GetType() (exprtype.Tag, error) {
	return p.runner.GetType()
}

// Reset clears the program's evaluation state, readying it for another
// BindTuple/Run cycle.
func (p *Program) Reset() {
	p.runner.Reset()
}
