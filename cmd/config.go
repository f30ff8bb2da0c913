package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3bind/internal/config"
	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"list"},
	Short:   "Show current configuration",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		var pairs [][2]string
		for _, key := range config.Keys() {
			v, err := cfg.Get(key)
			if err != nil {
				return err
			}
			if v == "" {
				v = ui.Meta("(unset)")
			}
			pairs = append(pairs, [2]string{key, v})
		}
		fmt.Fprintln(out, ui.KeyValueBlock("Current Configuration", pairs))

		cf, err := cfg.LoadContracts()
		if err != nil {
			return err
		}
		if len(cf.Contracts) > 0 {
			t := ui.NewTable([]ui.Column{{Title: "ALIAS"}, {Title: "ADDRESS"}, {Title: "ABI", MaxWidth: 60}})
			for _, c := range cf.Contracts {
				t.AddRow(ui.Row{c.Name, c.Address, c.ABIPath})
			}
			fmt.Fprint(out, t.Render())
		}
		fmt.Fprintln(out, ui.Meta("Config directory: "+cfg.Dir()))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set and persist a configuration value.

Keys:
  package         default package name of generated bindings
  runtime_import  import path of the typedcall runtime
  rpc_url         RPC endpoint used by call (http, https, ws or wss)
  env             logging mode: production or development`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := cfg.Set(key, value); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Success(fmt.Sprintf("%s set to %q", key, value)))
		return nil
	},
}

var configAliasCmd = &cobra.Command{
	Use:   "alias <name> <address> <abi-file|builtin:id>",
	Short: "Save a contract address and ABI under a name",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, addr, ref := args[0], args[1], args[2]
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("invalid address %q", addr)
		}

		var abiPath, builtin string
		if id, ok := cutBuiltin(ref); ok {
			if _, ok := contract.GetBuiltin(id); !ok {
				return fmt.Errorf("unknown builtin %q", id)
			}
			builtin = id
		} else {
			// Fail now rather than on the first call.
			if _, err := contract.LoadArtifact(ref); err != nil {
				return err
			}
			abiPath = ref
		}

		if err := saveAlias(name, common.HexToAddress(addr), abiPath, builtin); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Success("saved alias "+name))
		return nil
	},
}

var configUnaliasCmd = &cobra.Command{
	Use:   "unalias <name>",
	Short: "Remove a saved contract alias",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, err := cfg.LoadContracts()
		if err != nil {
			return err
		}
		if err := cf.RemoveContract(args[0]); err != nil {
			return err
		}
		if err := cfg.SaveContracts(cf); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Success("removed alias "+args[0]))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configAliasCmd, configUnaliasCmd)
}
