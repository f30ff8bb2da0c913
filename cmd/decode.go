package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3bind/internal/ui"
)

var (
	decodeABI     string
	decodeBuiltin string
)

var decodeCmd = &cobra.Command{
	Use:   "decode <calldata>",
	Short: "Decode EVM calldata against an ABI",
	Long: `Decode raw calldata (hex) into the function it calls and its arguments.

The selector is matched against --abi or --builtin, or against every built-in
ABI when neither is given. No RPC call needed.

Examples:
  w3bind decode 0xa9059cbb000000000000000000000000d8da6bf26964af9d7eed9e03e53415d37aa960450000000000000000000000000000000000000000000000000de0b6b3a7640000
  w3bind decode 0x... --abi DataTypesInput.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hexutil.Decode(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid calldata: %w", err)
		}
		if len(data) < 4 {
			return fmt.Errorf("calldata too short: need a 4-byte selector, got %d bytes", len(data))
		}

		method, err := findMethod(data[:4], decodeABI, decodeBuiltin)
		if err != nil {
			return err
		}
		vals, err := method.Inputs.Unpack(data[4:])
		if err != nil {
			return fmt.Errorf("decoding %s arguments: %w", method.Sig, err)
		}

		pairs := [][2]string{
			{"Method", ui.Val(method.Sig)},
			{"Selector", ui.Selector(hexutil.Encode(data[:4]))},
		}
		for i, arg := range method.Inputs {
			pairs = append(pairs, [2]string{argLabel(arg, i), formatValue(vals[i])})
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Decoded Calldata", pairs))
		return nil
	},
}

// findMethod returns the first method whose selector is id.
func findMethod(id []byte, abiPath, builtin string) (*abi.Method, error) {
	arts, err := lookupArtifacts(abiPath, builtin)
	if err != nil {
		return nil, err
	}
	for _, art := range arts {
		parsed, err := abi.JSON(bytes.NewReader(art.RawABI))
		if err != nil {
			return nil, fmt.Errorf("parsing %s ABI: %w", art.ContractName, err)
		}
		if m, err := parsed.MethodById(id); err == nil {
			return m, nil
		}
	}
	return nil, fmt.Errorf("no function with selector %s", hexutil.Encode(id))
}

func init() {
	decodeCmd.Flags().StringVar(&decodeABI, "abi", "", "ABI or artifact file")
	decodeCmd.Flags().StringVar(&decodeBuiltin, "builtin", "", "built-in ABI (e.g. erc20)")
	decodeCmd.MarkFlagsMutuallyExclusive("abi", "builtin")
}
