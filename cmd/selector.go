package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"

	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/internal/ui"
)

var (
	selectorABI     string
	selectorBuiltin string
)

var selectorCmd = &cobra.Command{
	Use:   "selector <signature-or-selector>",
	Short: "Compute or look up a 4-byte function selector",
	Long: `Compute a 4-byte function selector from a signature, or look a selector
up in an ABI. Parameter names and nested tuples are accepted and normalised.
Lookups search --abi or --builtin, or every built-in ABI when neither is given.

Examples:
  w3bind selector "transfer(address to, uint256 amount)"   # → 0xa9059cbb
  w3bind selector "input_struct((uint256,uint256))"
  w3bind selector 0xa9059cbb                               # → transfer(address,uint256)
  w3bind selector 0x70a08231 --builtin erc20                # → balanceOf(address)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.TrimSpace(args[0])
		out := cmd.OutOrStdout()

		// If input starts with 0x, it's a selector to look up.
		if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
			sel := strings.ToLower(input)
			if len(sel) != 10 {
				return fmt.Errorf("invalid selector %q: expected 0x followed by 8 hex digits", input)
			}
			sigs, err := lookupSelector(sel, selectorABI, selectorBuiltin)
			if err != nil {
				return err
			}
			if len(sigs) == 0 {
				return fmt.Errorf("selector %s not found", sel)
			}
			pairs := [][2]string{{"Selector", ui.Selector(sel)}}
			for _, s := range sigs {
				pairs = append(pairs, [2]string{"Method", ui.Val(s)})
			}
			fmt.Fprintln(out, ui.KeyValueBlock("Selector Lookup", pairs))
			return nil
		}

		// Otherwise, compute selector from signature.
		sig, err := contract.NormalizeSignature(input)
		if err != nil {
			return err
		}
		h := sha3.NewLegacyKeccak256()
		h.Write([]byte(sig))
		hash := h.Sum(nil)

		pairs := [][2]string{
			{"Signature", sig},
			{"Selector", ui.Val("0x" + hex.EncodeToString(hash[:4]))},
			{"Full Hash", "0x" + hex.EncodeToString(hash)},
		}
		fmt.Fprintln(out, ui.KeyValueBlock("Function Selector", pairs))
		return nil
	},
}

// lookupSelector returns the canonical signatures of the functions whose
// selector is sel, deduplicated across artifacts.
func lookupSelector(sel, abiPath, builtin string) ([]string, error) {
	arts, err := lookupArtifacts(abiPath, builtin)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var sigs []string
	for _, art := range arts {
		for _, e := range contract.Functions(art.ABI) {
			if e.Selector() != sel || seen[e.Signature()] {
				continue
			}
			seen[e.Signature()] = true
			sigs = append(sigs, e.Signature())
		}
	}
	return sigs, nil
}

func init() {
	selectorCmd.Flags().StringVar(&selectorABI, "abi", "", "ABI or artifact file to search")
	selectorCmd.Flags().StringVar(&selectorBuiltin, "builtin", "", "built-in ABI to search (e.g. erc20)")
	selectorCmd.MarkFlagsMutuallyExclusive("abi", "builtin")
}
