package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/pkg/typedcall"
)

var errNoABI = errors.New("an ABI is required: pass --abi <file> or --builtin <name>")

// loadArtifact loads the ABI named by exactly one of the --abi and --builtin
// flags.
func loadArtifact(abiPath, builtin string) (*contract.Artifact, error) {
	switch {
	case builtin != "":
		return contract.BuiltinArtifact(builtin)
	case abiPath != "":
		return contract.LoadArtifact(abiPath)
	}
	return nil, errNoABI
}

// lookupArtifacts is loadArtifact for lookups: with neither flag set it
// searches every built-in ABI.
func lookupArtifacts(abiPath, builtin string) ([]*contract.Artifact, error) {
	if abiPath != "" || builtin != "" {
		art, err := loadArtifact(abiPath, builtin)
		if err != nil {
			return nil, err
		}
		return []*contract.Artifact{art}, nil
	}
	var out []*contract.Artifact
	for _, b := range contract.AllBuiltins() {
		art, err := contract.BuiltinArtifact(b.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, art)
	}
	return out, nil
}

// cliValues turns command-line arguments into values for the runtime
// coercer. Arrays and tuples are given as JSON, everything else as text.
func cliValues(args abi.Arguments, raw []string) ([]any, error) {
	if len(raw) != len(args) {
		return nil, fmt.Errorf("%w: want %d, got %d", typedcall.ErrArgumentCount, len(args), len(raw))
	}
	out := make([]any, len(raw))
	for i, arg := range args {
		v, err := cliValue(arg.Type, raw[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, arg.Type, err)
		}
		out[i] = v
	}
	return out, nil
}

func cliValue(t abi.Type, s string) (any, error) {
	switch t.T {
	case abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		dec := json.NewDecoder(strings.NewReader(s))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("expected JSON: %w", err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, fmt.Errorf("expected JSON: trailing data in %q", s)
		}
		return v, nil
	}
	return s, nil
}

// formatValue renders a decoded ABI value for display.
func formatValue(v any) string {
	switch v := v.(type) {
	case *big.Int:
		return v.String()
	case common.Address:
		return v.Hex()
	case []byte:
		return hexutil.Encode(v)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return hexutil.Encode(b)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// argLabel names argument i for display.
func argLabel(arg abi.Argument, i int) string {
	name := arg.Name
	if name == "" {
		name = fmt.Sprintf("[%d]", i)
	}
	return fmt.Sprintf("%s (%s)", name, arg.Type)
}
