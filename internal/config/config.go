package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Mohsinsiddi/w3bind/internal/codegen"
)

const (
	defaultEnv = "production"

	configFile    = "config.json"
	contractsFile = "contracts.json"
	dotEnvFile    = ".env"

	// Environment overrides.
	EnvConfigDir = "W3BIND_CONFIG_DIR"
	EnvRPCURL    = "W3BIND_RPC_URL"
	EnvEnv       = "W3BIND_ENV"
)

// ErrUnknownKey is returned by Set and Get for keys the config does not have.
var ErrUnknownKey = errors.New("unknown config key")

// ErrContractNotFound is returned when an alias is not in contracts.json.
var ErrContractNotFound = errors.New("contract not found")

// Load reads config from dir (or creates defaults). dir defaults to
// $W3BIND_CONFIG_DIR, then ~/.w3bind. A .env file in dir or in the working
// directory is loaded first; variables already set in the process win.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = os.Getenv(EnvConfigDir)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".w3bind")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}
	if err := loadDotEnv(filepath.Join(dir, dotEnvFile), dotEnvFile); err != nil {
		return nil, err
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.configDir = dir
	cfg.applyEnv()
	return cfg, nil
}

// loadDotEnv loads every existing file in paths. Missing files are skipped.
func loadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("loading %s: %w", strings.Join(existing, ", "), err)
	}
	return nil
}

// applyEnv overlays environment overrides. They are not written back by Save.
func (c *Config) applyEnv() {
	c.overrides = make(map[string]string)
	if v := os.Getenv(EnvRPCURL); v != "" {
		c.overrides["rpc_url"] = c.RPCURL
		c.RPCURL = v
	}
	if v := os.Getenv(EnvEnv); v != "" {
		c.overrides["env"] = c.Env
		c.Env = v
	}
}

// Save writes the config to disk. Values that came from the environment are
// saved as they were before the override.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	persisted := *c
	for key, v := range c.overrides {
		_ = persisted.set(key, v)
	}
	return saveJSON(filepath.Join(c.configDir, configFile), &persisted)
}

// Keys lists the settable config keys.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of key.
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s (valid keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return *f(c), nil
}

// Set validates and assigns value to key. The override for key, if any, is
// dropped so that Save persists the new value.
func (c *Config) Set(key, value string) error {
	if err := c.set(key, value); err != nil {
		return err
	}
	delete(c.overrides, key)
	return nil
}

func (c *Config) set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %s (valid keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	if check, ok := validators[key]; ok {
		if err := check(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
	}
	*f(c) = value
	return nil
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// LoadContracts reads contracts.json.
func (c *Config) LoadContracts() (*ContractsFile, error) {
	return loadJSON[ContractsFile](filepath.Join(c.configDir, contractsFile))
}

// SaveContracts writes contracts.json.
func (c *Config) SaveContracts(cf *ContractsFile) error {
	return saveJSON(filepath.Join(c.configDir, contractsFile), cf)
}

// AddContract registers or replaces an alias.
func (cf *ContractsFile) AddContract(entry ContractEntry) {
	i := slices.IndexFunc(cf.Contracts, func(e ContractEntry) bool { return e.Name == entry.Name })
	if i >= 0 {
		cf.Contracts[i] = entry
		return
	}
	cf.Contracts = append(cf.Contracts, entry)
}

// FindContract looks an alias up by name.
func (cf *ContractsFile) FindContract(name string) (*ContractEntry, error) {
	for i := range cf.Contracts {
		if cf.Contracts[i].Name == name {
			return &cf.Contracts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrContractNotFound, name)
}

// RemoveContract deletes an alias.
func (cf *ContractsFile) RemoveContract(name string) error {
	i := slices.IndexFunc(cf.Contracts, func(e ContractEntry) bool { return e.Name == name })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrContractNotFound, name)
	}
	cf.Contracts = slices.Delete(cf.Contracts, i, i+1)
	return nil
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		RuntimeImport: codegen.DefaultRuntimeImport,
		Env:           defaultEnv,
		configDir:     dir,
	}
}

func loadJSON[T any](path string) (*T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &zero, nil
	}
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &v, nil
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
