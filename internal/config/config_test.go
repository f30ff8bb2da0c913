package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3bind/internal/codegen"
	"github.com/Mohsinsiddi/w3bind/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvConfigDir, config.EnvRPCURL, config.EnvEnv} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, codegen.DefaultRuntimeImport, cfg.RuntimeImport)
	assert.Empty(t, cfg.Package)
	assert.Empty(t, cfg.RPCURL)
}

func TestLoadFromEnvDir(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv(config.EnvConfigDir, dir)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir())
	assert.DirExists(t, dir)
}

func TestSaveAndReloadConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	require.NoError(t, cfg.Set("package", "bindings"))
	require.NoError(t, cfg.Set("rpc_url", "http://127.0.0.1:8545"))
	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(dir, "config.json"))

	reloaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "bindings", reloaded.Package)
	assert.Equal(t, "http://127.0.0.1:8545", reloaded.RPCURL)
}

func TestSetValidates(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.Set("colour", "blue"), config.ErrUnknownKey)
	assert.Error(t, cfg.Set("package", "func"))
	assert.Error(t, cfg.Set("package", "my-pkg"))
	assert.Error(t, cfg.Set("rpc_url", "ftp://node"))
	assert.Error(t, cfg.Set("env", "staging"))

	assert.NoError(t, cfg.Set("env", "development"))
	v, err := cfg.Get("env")
	require.NoError(t, err)
	assert.Equal(t, "development", v)

	_, err = cfg.Get("colour")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"env", "package", "rpc_url", "runtime_import"}, config.Keys())
}

func TestEnvOverridesAreNotPersisted(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("rpc_url", "http://saved:8545"))
	require.NoError(t, cfg.Save())

	t.Setenv(config.EnvRPCURL, "http://override:8545")
	t.Setenv(config.EnvEnv, "development")
	cfg, err = config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://override:8545", cfg.RPCURL)
	assert.Equal(t, "development", cfg.Env)

	require.NoError(t, cfg.Set("package", "other"))
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	var saved map[string]string
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "http://saved:8545", saved["rpc_url"])
	assert.Equal(t, "production", saved["env"])
	assert.Equal(t, "other", saved["package"])
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("W3BIND_RPC_URL=http://dotenv:8545\n"), 0o600))
	// godotenv never overwrites a set variable, so start unset.
	require.NoError(t, os.Unsetenv(config.EnvRPCURL))
	t.Cleanup(func() { _ = os.Unsetenv(config.EnvRPCURL) })

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:8545", cfg.RPCURL)
}

func TestLoadInvalidJSON(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0o600))

	_, err := config.Load(dir)
	assert.ErrorContains(t, err, "parsing config")
}

func TestContractsFile(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	cf, err := cfg.LoadContracts()
	require.NoError(t, err)
	assert.Empty(t, cf.Contracts)

	cf.AddContract(config.ContractEntry{Name: "echo", Address: "0x01", ABIPath: "a.json"})
	cf.AddContract(config.ContractEntry{Name: "echo", Address: "0x02", ABIPath: "b.json"})
	require.Len(t, cf.Contracts, 1, "adding an existing alias replaces it")
	require.NoError(t, cfg.SaveContracts(cf))

	reloaded, err := cfg.LoadContracts()
	require.NoError(t, err)
	entry, err := reloaded.FindContract("echo")
	require.NoError(t, err)
	assert.Equal(t, "0x02", entry.Address)

	_, err = reloaded.FindContract("missing")
	assert.ErrorIs(t, err, config.ErrContractNotFound)

	require.NoError(t, reloaded.RemoveContract("echo"))
	assert.ErrorIs(t, reloaded.RemoveContract("echo"), config.ErrContractNotFound)
}
