package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/internal/ui"
	"github.com/Mohsinsiddi/w3bind/pkg/typedcall"
)

var encodeRaw bool

var encodeCmd = &cobra.Command{
	Use:   "encode <signature> [args...]",
	Short: "Encode calldata from a function signature and arguments",
	Long: `Build ABI-encoded calldata from a function signature and arguments.

Arguments go through the same coercion as generated bindings: numbers may be
decimal or 0x hex, bytes32 values must be exactly 32 bytes. Arrays and
tuples are passed as JSON; a tuple may be a JSON array or an object keyed by
field name. This is the reverse of the decode command.

Examples:
  w3bind encode "transfer(address,uint256)" 0xRecipient 1000000000000000000
  w3bind encode "input_struct((uint256 a, uint256 b) s)" '[1, 2]'
  w3bind encode "input_uint_array(uint256[])" '["1", 2, "0x03"]' --raw`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, funcArgs := args[0], args[1:]

		entry, err := contract.ParseSignature(sig)
		if err != nil {
			return err
		}
		inputs, err := contract.Arguments(entry.Inputs)
		if err != nil {
			return err
		}
		vals, err := cliValues(inputs, funcArgs)
		if err != nil {
			return err
		}
		vals, err = typedcall.CoerceArgs(inputs, vals)
		if err != nil {
			return err
		}
		packed, err := inputs.Pack(vals...)
		if err != nil {
			return fmt.Errorf("encoding failed: %w", err)
		}
		calldata := append(hexutil.MustDecode(entry.Selector()), packed...)

		if encodeRaw {
			fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(calldata))
			return nil
		}

		pairs := [][2]string{
			{"Signature", entry.Signature()},
			{"Selector", ui.Selector(entry.Selector())},
		}
		for i, arg := range inputs {
			pairs = append(pairs, [2]string{argLabel(arg, i), formatValue(vals[i])})
		}
		pairs = append(pairs, [2]string{"Calldata", ui.Val(hexutil.Encode(calldata))})

		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Encoded Calldata", pairs))
		return nil
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeRaw, "raw", false, "print only the calldata hex")
}
