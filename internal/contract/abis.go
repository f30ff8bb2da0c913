package contract

import (
	"fmt"
	"sort"
)

// BuiltinKind describes a contract interface whose ABI is embedded in the
// binary, so `generate --builtin erc20` works without an ABI file. New
// built-ins register themselves via init() in their own <name>_abi.go file.
type BuiltinKind struct {
	ID          string // machine key, e.g. "erc20"
	Name        string // Go type name used for generated bindings, e.g. "ERC20"
	Description string // one-line summary shown by `inspect --builtins`
	ABI         string // ABI JSON array
}

var builtinRegistry = map[string]BuiltinKind{}

// RegisterBuiltin adds a built-in ABI to the global registry.
// Call this from init() in the file that defines the ABI.
func RegisterBuiltin(b BuiltinKind) {
	builtinRegistry[b.ID] = b
}

// GetBuiltin returns a built-in by ID. ok is false if not found.
func GetBuiltin(id string) (BuiltinKind, bool) {
	b, ok := builtinRegistry[id]
	return b, ok
}

// BuiltinArtifact parses the ABI of a built-in into an Artifact named after
// the built-in's Go type name.
func BuiltinArtifact(id string) (*Artifact, error) {
	b, ok := builtinRegistry[id]
	if !ok {
		return nil, fmt.Errorf("unknown builtin %q", id)
	}
	art, err := ParseArtifact([]byte(b.ABI), "builtin "+id)
	if err != nil {
		return nil, err
	}
	art.ContractName = b.Name
	return art, nil
}

// AllBuiltins returns all registered built-ins sorted by ID.
func AllBuiltins() []BuiltinKind {
	out := make([]BuiltinKind, 0, len(builtinRegistry))
	for _, b := range builtinRegistry {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
