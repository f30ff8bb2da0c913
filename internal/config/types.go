package config

import (
	"errors"
	"go/token"
	"net/url"
)

// Config holds all w3bind configuration.
type Config struct {
	Package       string `json:"package,omitempty"`        // default package of generated bindings
	RuntimeImport string `json:"runtime_import,omitempty"` // import path of the typedcall runtime
	RPCURL        string `json:"rpc_url,omitempty"`
	Env           string `json:"env,omitempty"` // "production" | "development"

	// internal: config dir path used for Save()
	configDir string
	// persisted values shadowed by environment overrides
	overrides map[string]string
}

// fields maps config keys to their storage.
var fields = map[string]func(*Config) *string{
	"package":        func(c *Config) *string { return &c.Package },
	"runtime_import": func(c *Config) *string { return &c.RuntimeImport },
	"rpc_url":        func(c *Config) *string { return &c.RPCURL },
	"env":            func(c *Config) *string { return &c.Env },
}

var validators = map[string]func(string) error{
	"package": func(v string) error {
		if v != "" && (!token.IsIdentifier(v) || token.IsKeyword(v)) {
			return errors.New("not a Go package name")
		}
		return nil
	},
	"rpc_url": func(v string) error {
		if v == "" {
			return nil
		}
		u, err := url.Parse(v)
		if err != nil {
			return err
		}
		switch u.Scheme {
		case "http", "https", "ws", "wss":
			return nil
		}
		return errors.New("scheme must be http, https, ws or wss")
	},
	"env": func(v string) error {
		switch v {
		case "production", "development":
			return nil
		}
		return errors.New("must be production or development")
	},
}

// ContractEntry is a named contract the call command can address by alias.
type ContractEntry struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	ABIPath string `json:"abi_path"`
}

// ContractsFile is the structure of contracts.json.
type ContractsFile struct {
	Contracts []ContractEntry `json:"contracts"`
}
