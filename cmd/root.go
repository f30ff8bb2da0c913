package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Mohsinsiddi/w3bind/internal/config"
	"github.com/Mohsinsiddi/w3bind/internal/logger"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/w3bind/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "w3bind",
	Short: "Typed Go bindings for Solidity contracts",
	Long: `w3bind generates typed Go bindings for Solidity contract ABIs.

  Inputs are widened (numbers accept strings, ints and *big.Int), outputs
  are exact Go types, and returned structs support both named and
  positional access. The same runtime backs the encode and call commands.

Configuration lives in ~/.w3bind (override with --config or W3BIND_CONFIG_DIR).`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := logger.Init(cfg.Env, verbose); err != nil {
			return fmt.Errorf("initialising logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// commandContext tags the command context for logging. contract may be empty.
func commandContext(cmd *cobra.Command, contract string) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, logger.CommandKey, cmd.Name())
	if contract != "" {
		ctx = context.WithValue(ctx, logger.ContractKey, contract)
	}
	return ctx
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default: $W3BIND_CONFIG_DIR or ~/.w3bind)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	// Register all sub-commands.
	rootCmd.AddCommand(
		generateCmd,
		inspectCmd,
		selectorCmd,
		encodeCmd,
		decodeCmd,
		callCmd,
		configCmd,
	)
}
