package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dingodb/libexpr/internal/decoder"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Disassemble a hex-encoded bytecode program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}
		ops, consumed, err := decoder.Decode(code)
		if err != nil {
			return err
		}
		fmt.Printf("%s decoded, %s consumed, %d operators\n",
			humanize.Bytes(uint64(len(code))), humanize.Bytes(uint64(consumed)), len(ops))
		for i, op := range ops {
			fmt.Printf("%4d  %v\n", i, op)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
