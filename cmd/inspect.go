package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3bind/internal/codegen"
	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/internal/ui"
)

var (
	inspectBuiltin  string
	inspectBuiltins bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [abi-file]",
	Short: "Show the typed Go surface a binding would have",
	Long: `List every function of an ABI with its canonical signature, selector,
mutability and the Go method that generate would emit for it.

Examples:
  w3bind inspect artifacts/Token.json
  w3bind inspect --builtin erc20
  w3bind inspect --builtins`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if inspectBuiltins {
			t := ui.NewTable([]ui.Column{{Title: "ID"}, {Title: "TYPE"}, {Title: "DESCRIPTION"}})
			for _, b := range contract.AllBuiltins() {
				t.AddRow(ui.Row{b.ID, b.Name, b.Description})
			}
			fmt.Fprint(out, t.Render())
			return nil
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}
		art, err := loadArtifact(path, inspectBuiltin)
		if err != nil {
			return err
		}
		fns, err := codegen.Describe(string(art.RawABI))
		if err != nil {
			return err
		}

		t := ui.NewTable([]ui.Column{
			{Title: "SIGNATURE"},
			{Title: "SELECTOR", Width: 10},
			{Title: "MUTABILITY"},
			{Title: "GO METHOD"},
		})
		for _, f := range fns {
			t.AddRow(ui.Row{f.Signature, f.Selector, f.Mutability, goMethod(f)})
		}

		fmt.Fprintln(out, ui.Type(art.ContractName)+ui.Meta(fmt.Sprintf("  %d functions", len(fns))))
		fmt.Fprint(out, t.Render())
		return nil
	},
}

// goMethod renders f as a Go method signature without the opts parameter.
// Methods that change state return the transaction, not the ABI outputs.
func goMethod(f codegen.Function) string {
	var ret string
	switch {
	case f.Mutability != "view" && f.Mutability != "pure":
		ret = "(*types.Transaction, error)"
	case len(f.Returns) == 0:
		ret = "error"
	default:
		ret = "(" + strings.Join(append(append([]string(nil), f.Returns...), "error"), ", ") + ")"
	}
	return fmt.Sprintf("%s(%s) %s", f.GoName, strings.Join(f.Params, ", "), ret)
}

func init() {
	inspectCmd.Flags().StringVar(&inspectBuiltin, "builtin", "", "inspect a built-in ABI (e.g. erc20)")
	inspectCmd.Flags().BoolVar(&inspectBuiltins, "builtins", false, "list the built-in ABIs")
}
