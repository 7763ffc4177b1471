// Package relfilter is a worked demonstration of the only control flow a
// relational collaborator needs around a decoded expression: bind a row,
// run the program, and keep the row when the result is definitely TRUE.
// Grounded on original_source/src/rel/op/filter_op.cc, which is a thin
// wrapper around exactly this loop. It is a reference collaborator, not a
// general relational operator framework.
package relfilter

import (
	"github.com/dingodb/libexpr/internal/exprtype"
	"github.com/dingodb/libexpr/internal/operand"
	"github.com/dingodb/libexpr/pkg/libexpr"
)

// Filter evaluates predicate once per row in rows, returning the rows for
// which predicate's result is a non-null BOOL true. Rows for which the
// predicate evaluates to NULL or false are dropped, matching SQL's WHERE
// clause semantics rather than treating NULL as an error.
func Filter(predicate *libexpr.Program, rows []operand.Tuple) ([]operand.Tuple, error) {
	kept := make([]operand.Tuple, 0, len(rows))
	for _, row := range rows {
		predicate.BindTuple(row)
		result, err := predicate.Run()
		if err != nil {
			return nil, err
		}
		if result.Tag() != exprtype.Bool {
			continue
		}
		v, err := result.Bool()
		if err != nil {
			return nil, err
		}
		if v {
			kept = append(kept, row)
		}
	}
	return kept, nil
}
