package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dingodb/libexpr/internal/operand"
	"github.com/dingodb/libexpr/pkg/libexpr"
)

var runVars string

var runCmd = &cobra.Command{
	Use:   "run <hex>",
	Short: "Run a hex-encoded bytecode program against a row of INT32 values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}
		program, _, err := libexpr.Decode(code)
		if err != nil {
			return err
		}
		row, err := parseRow(runVars)
		if err != nil {
			return err
		}
		program.BindTuple(row)
		result, err := program.Run()
		if err != nil {
			return err
		}
		fmt.Println(result.GoString())
		return nil
	},
}

func parseRow(csv string) (operand.Tuple, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	row := make(operand.Tuple, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("var %d: %w", i, err)
		}
		row[i] = operand.OfInt32(int32(n))
	}
	return row, nil
}

func init() {
	runCmd.Flags().StringVar(&runVars, "vars", "", "comma-separated INT32 values bound as the row's VAR_I operands")
	rootCmd.AddCommand(runCmd)
}
