package cmd

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3bind/internal/codegen"
	"github.com/Mohsinsiddi/w3bind/internal/config"
	"github.com/Mohsinsiddi/w3bind/internal/logger"
	"github.com/Mohsinsiddi/w3bind/internal/testchain"
)

// execute runs the CLI in-process against the config directory dir.
func execute(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvRPCURL, "")
	t.Setenv(config.EnvEnv, "")
	t.Cleanup(func() { logger.Set(nil) })

	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag to its default, since flag variables are
// package state shared by all runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func fixturePath() string {
	return testchain.ArtifactPath("DataTypesInput")
}

// ---------------------------------------------------------------------------
// generate
// ---------------------------------------------------------------------------

func TestGenerateWritesFile(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "gen", "datatypesinput.go")

	stdout, stderr, err := execute(t, dir, "generate", "--abi", fixturePath(), "--out", outFile)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "DataTypesInput binding written to")

	src, err := os.ReadFile(outFile)
	require.NoError(t, err)
	f, err := parser.ParseFile(token.NewFileSet(), outFile, src, 0)
	require.NoError(t, err)
	assert.Equal(t, "datatypesinput", f.Name.Name)
	assert.Contains(t, string(src), "func DeployDataTypesInput(")
	assert.Contains(t, string(src), `"github.com/Mohsinsiddi/w3bind/pkg/typedcall"`)
}

func TestGenerateToStdout(t *testing.T) {
	stdout, _, err := execute(t, t.TempDir(), "generate", "--builtin", "erc20", "--pkg", "token")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "// Code generated"), "binding must start with the generated-code header")
	assert.Contains(t, stdout, "package token")
	assert.Contains(t, stdout, "type ERC20 struct")
	assert.NotContains(t, stdout, "func DeployERC20(", "a raw ABI has no bytecode to deploy")
}

func TestGenerateFlags(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "echo.bin")
	require.NoError(t, os.WriteFile(bin, []byte("0x600e80600b6000396000f336600490038060046000376000f3\n"), 0o600))

	stdout, _, err := execute(t, dir, "generate", "--builtin", "erc20",
		"--bin", bin, "--type", "Token", "--runtime", "example.com/runtime/typedcall")
	require.NoError(t, err)
	assert.Contains(t, stdout, "package token")
	assert.Contains(t, stdout, "type Token struct")
	assert.Contains(t, stdout, "func DeployToken(")
	assert.Contains(t, stdout, `"example.com/runtime/typedcall"`)
}

func TestGenerateUsesConfiguredPackage(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, dir, "config", "set", "package", "bindings")
	require.NoError(t, err)

	stdout, _, err := execute(t, dir, "generate", "--builtin", "erc20")
	require.NoError(t, err)
	assert.Contains(t, stdout, "package bindings")
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, dir, "generate")
	assert.ErrorIs(t, err, errNoABI)

	_, _, err = execute(t, dir, "generate", "--abi", fixturePath(), "--builtin", "erc20")
	assert.Error(t, err, "--abi and --builtin are mutually exclusive")

	_, _, err = execute(t, dir, "generate", "--builtin", "nope")
	assert.ErrorContains(t, err, `unknown builtin "nope"`)

	_, _, err = execute(t, dir, "generate", "--builtin", "erc20", "--type", "lower")
	require.NoError(t, err, "type names are camel-cased")

	_, _, err = execute(t, dir, "generate", "--builtin", "erc20", "--pkg", "func")
	assert.ErrorContains(t, err, "generating ERC20")
}

// ---------------------------------------------------------------------------
// inspect
// ---------------------------------------------------------------------------

func TestInspect(t *testing.T) {
	stdout, _, err := execute(t, t.TempDir(), "inspect", fixturePath())
	require.NoError(t, err)

	assert.Contains(t, stdout, "DataTypesInput")
	assert.Contains(t, stdout, "input_struct((uint256,uint256))")
	assert.Contains(t, stdout, "InputStruct(input1 Struct1Struct) (Struct1StructOutput, error)")
	assert.Contains(t, stdout, "InputTuple(input1 typedcall.BigNumberish, input2 typedcall.BigNumberish) (*big.Int, *big.Int, error)")
}

func TestInspectBuiltin(t *testing.T) {
	stdout, _, err := execute(t, t.TempDir(), "inspect", "--builtin", "erc20")
	require.NoError(t, err)
	assert.Contains(t, stdout, "0xa9059cbb")
	assert.Contains(t, stdout, "(*types.Transaction, error)")

	stdout, _, err = execute(t, t.TempDir(), "inspect", "--builtins")
	require.NoError(t, err)
	assert.Contains(t, stdout, "erc20")
	assert.Contains(t, stdout, "ERC20")
}

func TestGoMethod(t *testing.T) {
	tests := []struct {
		name string
		fn   codegen.Function
		want string
	}{
		{"no outputs", codegen.Function{GoName: "Ping", Mutability: "view"}, "Ping() error"},
		{"pure", codegen.Function{GoName: "Id", Mutability: "pure", Params: []string{"v typedcall.BigNumberish"}, Returns: []string{"*big.Int"}}, "Id(v typedcall.BigNumberish) (*big.Int, error)"},
		{"transact", codegen.Function{GoName: "Transfer", Mutability: "nonpayable", Returns: []string{"bool"}}, "Transfer() (*types.Transaction, error)"},
		{"payable", codegen.Function{GoName: "Deposit", Mutability: "payable"}, "Deposit() (*types.Transaction, error)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, goMethod(tt.fn))
		})
	}
}

// ---------------------------------------------------------------------------
// config
// ---------------------------------------------------------------------------

func TestConfigSetAndShow(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, dir, "config", "set", "rpc_url", "http://localhost:8545")
	require.NoError(t, err)
	assert.Contains(t, stderr, `rpc_url set to "http://localhost:8545"`)

	stdout, _, err := execute(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "http://localhost:8545")
	assert.Contains(t, stdout, "github.com/Mohsinsiddi/w3bind/pkg/typedcall")
	assert.Contains(t, stdout, "Config directory: "+dir)

	_, _, err = execute(t, dir, "config", "set", "colour", "blue")
	assert.ErrorIs(t, err, config.ErrUnknownKey)

	_, _, err = execute(t, dir, "config", "set", "rpc_url", "ftp://example.com")
	assert.ErrorContains(t, err, "scheme must be")
}

func TestConfigAliases(t *testing.T) {
	dir := t.TempDir()
	const addr = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

	_, _, err := execute(t, dir, "config", "alias", "token", addr, "builtin:erc20")
	require.NoError(t, err)
	_, _, err = execute(t, dir, "config", "alias", "echo", addr, fixturePath())
	require.NoError(t, err)

	stdout, _, err := execute(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "builtin:erc20")
	assert.Contains(t, stdout, "echo")

	_, _, err = execute(t, dir, "config", "unalias", "token")
	require.NoError(t, err)
	stdout, _, err = execute(t, dir, "config", "show")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "builtin:erc20")

	_, _, err = execute(t, dir, "config", "unalias", "token")
	assert.ErrorIs(t, err, config.ErrContractNotFound)

	_, _, err = execute(t, dir, "config", "alias", "bad", "0x1234", "builtin:erc20")
	assert.ErrorContains(t, err, "invalid address")

	_, _, err = execute(t, dir, "config", "alias", "bad", addr, "builtin:nope")
	assert.ErrorContains(t, err, `unknown builtin "nope"`)

	_, _, err = execute(t, dir, "config", "alias", "bad", addr, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
