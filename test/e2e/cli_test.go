package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary before all E2E tests.
	tmp, err := os.MkdirTemp("", "w3bind-e2e-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmp)

	binaryPath = filepath.Join(tmp, "w3bind")
	// Build from the module root (two levels up from test/e2e/).
	moduleRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		panic(err)
	}
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Dir = moduleRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

// runCLI runs the binary with configDir as its config directory. W3BIND_*
// variables of the calling environment are not passed on.
func runCLI(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = t.TempDir()
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "W3BIND_") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
	cmd.Env = append(cmd.Env, "W3BIND_CONFIG_DIR="+configDir)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestVersionFlag(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "w3bind")
	assert.Contains(t, out, "0.1.0")
}

func TestHelpCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "--help")
	require.NoError(t, err)
	for _, name := range []string{"generate", "inspect", "selector", "encode", "decode", "call", "config"} {
		assert.Contains(t, out, name, "help should list %s", name)
	}
	assert.Contains(t, out, "--verbose")
}

func TestUnknownCommandShowsError(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "balance")
	assert.Error(t, err)
	assert.Contains(t, out, "unknown command")
}

func TestGenerateBuiltin(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "erc20", "erc20.go")

	out, err := runCLI(t, dir, "generate", "--builtin", "erc20", "--pkg", "erc20", "--out", outFile)
	require.NoError(t, err, out)
	assert.Contains(t, out, "binding written to")

	src, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package erc20")
	assert.Contains(t, string(src), "func NewERC20(")
}

func TestConfigPersistsInEnvDir(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "config", "set", "package", "bindings")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "config.json"))

	out, err := runCLI(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "bindings")
}

func TestDotEnvOverridesAreNotSaved(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("W3BIND_RPC_URL=http://127.0.0.1:9545\n"), 0o600))

	out, err := runCLI(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "http://127.0.0.1:9545")

	_, err = runCLI(t, dir, "config", "set", "env", "development")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "development")
	assert.NotContains(t, string(data), "9545")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "encode", "--raw", "transfer(address to, uint256 amount)",
		"0xd8da6bf26964af9d7eed9e03e53415d37aa96045", "1000000000000000000")
	require.NoError(t, err, out)
	calldata := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(calldata, "0xa9059cbb"))

	out, err = runCLI(t, dir, "decode", calldata)
	require.NoError(t, err, out)
	assert.Contains(t, out, "transfer(address,uint256)")
	assert.Contains(t, out, "1000000000000000000")
}
