package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mohsinsiddi/w3bind/internal/config"
	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/internal/logger"
	"github.com/Mohsinsiddi/w3bind/internal/ui"
	"github.com/Mohsinsiddi/w3bind/pkg/typedcall"
)

var (
	callABI     string
	callBuiltin string
	callRPC     string
	callSave    string
)

// dial connects to an RPC endpoint. The returned func releases the
// connection.
var dial = func(ctx context.Context, url string) (bind.ContractBackend, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, config.DialTimeout)
	defer cancel()
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

// pick chooses a read function interactively. Replaced in tests.
var pick = ui.PickItem

var callCmd = &cobra.Command{
	Use:   "call <address|alias> [method] [args...]",
	Short: "Call a read-only contract function",
	Long: `Perform an eth_call against a contract and print the decoded outputs.

The method may be a name or a full signature (required for overloads). When
it is omitted, an interactive picker lists the read functions. Arguments are
coerced like the inputs of a generated binding; arrays and tuples are JSON.

An alias saved with --save or "config alias" can stand in for the address
and carries its ABI file.

Examples:
  w3bind call 0xToken balanceOf 0xHolder --builtin erc20 --rpc http://localhost:8545
  w3bind call 0xToken --builtin erc20 --save usdc
  w3bind call usdc decimals`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		abiPath, builtin := callABI, callBuiltin

		var address common.Address
		if common.IsHexAddress(target) {
			address = common.HexToAddress(target)
		} else {
			cf, err := cfg.LoadContracts()
			if err != nil {
				return err
			}
			entry, err := cf.FindContract(target)
			if err != nil {
				return fmt.Errorf("%s is neither an address nor a saved alias: %w", target, err)
			}
			address = common.HexToAddress(entry.Address)
			if abiPath == "" && builtin == "" {
				abiPath = entry.ABIPath
				if id, ok := cutBuiltin(abiPath); ok {
					abiPath, builtin = "", id
				}
			}
		}

		art, err := loadArtifact(abiPath, builtin)
		if err != nil {
			return err
		}
		meta := &typedcall.MetaData{ABI: string(art.RawABI)}
		iface, err := meta.GetInterface()
		if err != nil {
			return err
		}

		var method string
		if len(args) > 1 {
			method = args[1]
		} else {
			if method, err = pickReadFunction(art); err != nil {
				return err
			}
			if method == "" {
				return nil // cancelled
			}
		}
		m, err := iface.GetFunction(method)
		if err != nil {
			return err
		}
		if !m.IsConstant() {
			return fmt.Errorf("%s is %s; call only performs read-only calls", m.Sig, m.StateMutability)
		}

		var rawArgs []string
		if len(args) > 2 {
			rawArgs = args[2:]
		}
		vals, err := cliValues(m.Inputs, rawArgs)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Sig, err)
		}

		rpcURL := callRPC
		if rpcURL == "" {
			rpcURL = cfg.RPCURL
		}
		if rpcURL == "" {
			return fmt.Errorf("no RPC endpoint: pass --rpc or run: w3bind config set rpc_url <url>")
		}

		ctx := commandContext(cmd, art.ContractName)
		backend, closeBackend, err := dial(ctx, rpcURL)
		if err != nil {
			return fmt.Errorf("connecting to %s: %w", rpcURL, err)
		}
		defer closeBackend()

		c, err := typedcall.NewContract(address, meta, backend)
		if err != nil {
			return err
		}

		logger.Debug(ctx, "calling contract",
			zap.String("address", address.Hex()),
			zap.String("method", m.Sig),
		)

		spin := ui.NewSpinnerTo(cmd.ErrOrStderr(), "calling "+m.Sig+"...")
		spin.Start()
		callCtx, cancel := context.WithTimeout(ctx, config.CallTimeout)
		defer cancel()
		res, err := c.Call(&bind.CallOpts{Context: callCtx}, m.Name, vals...)
		spin.Stop()
		if err != nil {
			return err
		}

		if callSave != "" {
			if err := saveAlias(callSave, address, abiPath, builtin); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Success("saved alias "+callSave))
		}

		pairs := [][2]string{{"Contract", ui.Selector(address.Hex())}}
		for i, out := range m.Outputs {
			pairs = append(pairs, [2]string{argLabel(out, i), formatValue(res.Index(i))})
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock(m.Sig, pairs))
		return nil
	},
}

// pickReadFunction lets the user choose one of the view and pure functions
// of art. It returns the chosen signature, or "" if cancelled.
func pickReadFunction(art *contract.Artifact) (string, error) {
	var items []ui.PickerItem
	for _, e := range contract.Functions(art.ABI) {
		if !e.IsReadFunction() {
			continue
		}
		items = append(items, ui.PickerItem{
			Label:    e.Name,
			SubLabel: e.Signature(),
			Value:    e.Signature(),
		})
	}
	return pick("Select a function of "+art.ContractName, items)
}

// builtinPrefix marks an alias whose ABI is a built-in, e.g. "builtin:erc20".
const builtinPrefix = "builtin:"

func cutBuiltin(ref string) (string, bool) {
	return strings.CutPrefix(ref, builtinPrefix)
}

// saveAlias records address under name in contracts.json. ABI files are
// stored as absolute paths.
func saveAlias(name string, address common.Address, abiPath, builtin string) error {
	ref := builtinPrefix + builtin
	if builtin == "" {
		abs, err := filepath.Abs(abiPath)
		if err != nil {
			return err
		}
		ref = abs
	}
	cf, err := cfg.LoadContracts()
	if err != nil {
		return err
	}
	cf.AddContract(config.ContractEntry{Name: name, Address: address.Hex(), ABIPath: ref})
	return cfg.SaveContracts(cf)
}

func init() {
	callCmd.Flags().StringVar(&callABI, "abi", "", "ABI or artifact file")
	callCmd.Flags().StringVar(&callBuiltin, "builtin", "", "built-in ABI (e.g. erc20)")
	callCmd.Flags().StringVar(&callRPC, "rpc", "", "RPC endpoint (default: configured rpc_url)")
	callCmd.Flags().StringVar(&callSave, "save", "", "save the address and ABI under this alias")
	callCmd.MarkFlagsMutuallyExclusive("abi", "builtin")
}
