package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mohsinsiddi/w3bind/internal/codegen"
	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/internal/logger"
	"github.com/Mohsinsiddi/w3bind/internal/ui"
)

var (
	genABI     string
	genBin     string
	genBuiltin string
	genPkg     string
	genType    string
	genOut     string
	genRuntime string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate typed Go bindings from an ABI or artifact",
	Long: `Generate a typed Go binding for a contract.

The ABI file may be a raw ABI array or a Hardhat/Foundry artifact. When the
artifact carries bytecode (or --bin is given) a Deploy function is emitted.
The type name defaults to the artifact's contractName or the file name; the
package defaults to the configured package or the lower-cased type.

Examples:
  w3bind generate --abi artifacts/Token.json --out token/token.go
  w3bind generate --abi Pool.abi --bin Pool.bin --pkg pool --type Pool
  w3bind generate --builtin erc20 --pkg erc20`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		art, err := loadArtifact(genABI, genBuiltin)
		if err != nil {
			return err
		}

		bin := art.Bytecode
		if genBin != "" {
			if bin, err = contract.ReadBytecodeFile(genBin); err != nil {
				return err
			}
		}
		var binHex string
		if len(bin) > 0 {
			binHex = hexutil.Encode(bin)
		}

		typeName := genType
		if typeName == "" {
			typeName = art.ContractName
		}
		pkg := genPkg
		if pkg == "" {
			pkg = cfg.Package
		}
		runtimeImport := genRuntime
		if runtimeImport == "" {
			runtimeImport = cfg.RuntimeImport
		}

		ctx := commandContext(cmd, typeName)
		logger.Debug(ctx, "generating binding",
			zap.String("package", pkg),
			zap.String("runtime", runtimeImport),
			zap.Bool("deployable", binHex != ""),
		)

		code, err := codegen.Generate(codegen.Config{
			Package:       pkg,
			Type:          typeName,
			ABI:           string(art.RawABI),
			Bin:           binHex,
			RuntimeImport: runtimeImport,
		})
		if err != nil {
			return fmt.Errorf("generating %s: %w", typeName, err)
		}

		if genOut == "" {
			_, err := cmd.OutOrStdout().Write(code)
			return err
		}
		if err := os.MkdirAll(filepath.Dir(genOut), 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		if err := os.WriteFile(genOut, code, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", genOut, err)
		}

		logger.Info(ctx, "wrote binding", zap.String("path", genOut), zap.Int("bytes", len(code)))
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Success(fmt.Sprintf("%s binding written to %s", typeName, genOut)))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genABI, "abi", "", "ABI or artifact JSON file")
	generateCmd.Flags().StringVar(&genBuiltin, "builtin", "", "use a built-in ABI (e.g. erc20)")
	generateCmd.Flags().StringVar(&genBin, "bin", "", "deployment bytecode file (overrides artifact bytecode)")
	generateCmd.Flags().StringVar(&genPkg, "pkg", "", "Go package name")
	generateCmd.Flags().StringVar(&genType, "type", "", "Go type name of the contract")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "output file (default: stdout)")
	generateCmd.Flags().StringVar(&genRuntime, "runtime", "", "import path of the typedcall runtime")
	generateCmd.MarkFlagsMutuallyExclusive("abi", "builtin")
}
