// Package codegen renders typed Go bindings for a contract ABI. The output
// targets the pkg/typedcall runtime: widened inputs, exact Go outputs and
// output structs that implement typedcall.Tuple.
package codegen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strings"
	"text/template"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"

	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/internal/logger"
)

// DefaultRuntimeImport is the import path of the typedcall runtime.
const DefaultRuntimeImport = "github.com/Mohsinsiddi/w3bind/pkg/typedcall"

var (
	// ErrUnsupportedType is returned for ABI types the runtime cannot encode,
	// such as fixed and ufixed.
	ErrUnsupportedType = errors.New("unsupported ABI type")
	// ErrNameCollision is returned when two ABI items map to the same Go
	// identifier.
	ErrNameCollision = errors.New("name collision")
	// ErrInvalidConfig is returned for unusable type or package names.
	ErrInvalidConfig = errors.New("invalid generator config")
)

var tmpl = template.Must(template.New("binding").Parse(tmplSource))

// Config describes one binding to generate.
type Config struct {
	Package       string // Go package name, defaults to the lower-cased type
	Type          string // contract type name, e.g. "DataTypesInput"
	ABI           string // ABI JSON array
	Bin           string // optional deployment bytecode, hex
	RuntimeImport string // defaults to DefaultRuntimeImport
}

// Generate renders and gofmts the binding source for cfg.
func Generate(cfg Config) ([]byte, error) {
	b, err := build(&cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, b); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", cfg.Type, err)
	}
	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w\n%s", cfg.Type, err, buf.String())
	}

	logger.L().Debug("generated binding",
		zap.String("type", cfg.Type),
		zap.Int("calls", len(b.Calls)),
		zap.Int("transacts", len(b.Transacts)),
		zap.Int("structs", len(b.Structs)),
		zap.Int("bytes", len(code)),
	)
	return code, nil
}

func build(cfg *Config) (*binding, error) {
	if err := normalize(cfg); err != nil {
		return nil, err
	}

	entries, err := contract.ParseABI([]byte(cfg.ABI))
	if err != nil {
		return nil, err
	}
	if err := rejectFixedPoint(entries); err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(strings.NewReader(cfg.ABI))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contract.ErrInvalidABI, err)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(cfg.ABI)); err != nil {
		return nil, fmt.Errorf("%w: %v", contract.ErrInvalidABI, err)
	}

	bl := newBuilder(entries)
	methods := sortedMethods(parsed)
	if _, ok := bl.entries["constructor"]; ok {
		methods = append([]abi.Method{parsed.Constructor}, methods...)
	}

	// Structs are registered and named before any Go type is rendered.
	if err := bl.walk(methods, bl.collect); err != nil {
		return nil, err
	}
	if err := bl.resolve(); err != nil {
		return nil, err
	}
	if err := bl.walk(methods, bl.fill); err != nil {
		return nil, err
	}

	out := &binding{
		Package:       cfg.Package,
		Type:          cfg.Type,
		RuntimeImport: cfg.RuntimeImport,
		InputABI:      compact.String(),
		InputBin:      cfg.Bin,
		Structs:       bl.order,
	}
	sort.SliceStable(out.Structs, func(i, j int) bool { return out.Structs[i].Name < out.Structs[j].Name })

	for _, m := range methods {
		bm, err := bl.method(m)
		if err != nil {
			return nil, err
		}
		switch {
		case m.Type == abi.Constructor:
			out.Constructor = bm
		case m.IsConstant():
			out.Calls = append(out.Calls, bm)
		default:
			out.Transacts = append(out.Transacts, bm)
		}
		if bm.Structured {
			out.Outputs = append(out.Outputs, &structDef{
				Name:     bm.OutputStruct,
				Solidity: m.RawName,
				Fields:   bm.Returns,
			})
		}
	}
	if err := checkIdentifiers(out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkIdentifiers reports Go identifiers that two ABI items map to, such as
// the functions get_value and getValue.
func checkIdentifiers(b *binding) error {
	methods := make(map[string]string)
	for _, group := range [][]*method{b.Calls, b.Transacts} {
		for _, m := range group {
			if other, ok := methods[m.GoName]; ok {
				return fmt.Errorf("%w: duplicated identifier %s for %s and %s", ErrNameCollision, m.GoName, other, m.Sig)
			}
			methods[m.GoName] = m.Sig
		}
	}

	decls := map[string]string{
		b.Type:               "the contract type",
		b.Type + "MetaData":  "the contract metadata",
		b.Type + "Functions": "the untyped function set",
		"New" + b.Type:       "the binding constructor",
	}
	if b.InputBin != "" {
		decls["Deploy"+b.Type] = "the deployer"
	}
	declare := func(name, owner string) error {
		if other, ok := decls[name]; ok {
			return fmt.Errorf("%w: duplicated identifier %s for %s and %s", ErrNameCollision, name, other, owner)
		}
		decls[name] = owner
		return nil
	}
	for _, s := range b.Structs {
		owner := s.key
		if err := declare(s.Name+"Struct", owner); err != nil {
			return err
		}
		if err := declare(s.Name+"StructOutput", owner); err != nil {
			return err
		}
	}
	for _, o := range b.Outputs {
		if err := declare(o.Name, "the results of "+o.Solidity); err != nil {
			return err
		}
	}
	return nil
}

// walk applies fn to every argument type of methods.
func (b *builder) walk(methods []abi.Method, fn func(abi.Type, contract.ABIParam) error) error {
	for _, m := range methods {
		sig := m.Sig
		if m.Type == abi.Constructor {
			sig = "constructor"
		}
		inputs := b.params(sig, true, len(m.Inputs))
		for i, arg := range m.Inputs {
			if err := fn(arg.Type, inputs[i]); err != nil {
				return fmt.Errorf("%s: input %d: %w", m.Sig, i, err)
			}
		}
		outputs := b.params(sig, false, len(m.Outputs))
		for i, arg := range m.Outputs {
			if err := fn(arg.Type, outputs[i]); err != nil {
				return fmt.Errorf("%s: output %d: %w", m.Sig, i, err)
			}
		}
	}
	return nil
}

func normalize(cfg *Config) error {
	cfg.Type = abi.ToCamelCase(strings.TrimSpace(cfg.Type))
	if cfg.Type == "" || !token.IsIdentifier(cfg.Type) || !token.IsExported(cfg.Type) {
		return fmt.Errorf("%w: type name %q is not an exported Go identifier", ErrInvalidConfig, cfg.Type)
	}
	if cfg.Package == "" {
		cfg.Package = strings.ToLower(cfg.Type)
	}
	if !token.IsIdentifier(cfg.Package) || token.IsKeyword(cfg.Package) {
		return fmt.Errorf("%w: package name %q is not a Go identifier", ErrInvalidConfig, cfg.Package)
	}
	if cfg.RuntimeImport == "" {
		cfg.RuntimeImport = DefaultRuntimeImport
	}
	if strings.TrimSpace(cfg.ABI) == "" {
		return fmt.Errorf("%w: empty ABI", contract.ErrInvalidABI)
	}
	if bin := strings.TrimSpace(cfg.Bin); bin != "" && !strings.HasPrefix(bin, "0x") {
		cfg.Bin = "0x" + bin
	} else {
		cfg.Bin = bin
	}
	return nil
}

// rejectFixedPoint reports fixed and ufixed parameters, which go-ethereum
// cannot encode, with a clearer error than the ABI parser gives.
func rejectFixedPoint(entries []contract.ABIEntry) error {
	var check func(name string, ps []contract.ABIParam) error
	check = func(name string, ps []contract.ABIParam) error {
		for _, p := range ps {
			if strings.HasPrefix(p.Type, "fixed") || strings.HasPrefix(p.Type, "ufixed") {
				return fmt.Errorf("%w: %s in %s", ErrUnsupportedType, p.Type, name)
			}
			if err := check(name, p.Components); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range entries {
		if err := check(e.Name, e.Inputs); err != nil {
			return err
		}
		if err := check(e.Name, e.Outputs); err != nil {
			return err
		}
	}
	return nil
}

func sortedMethods(parsed abi.ABI) []abi.Method {
	keys := make([]string, 0, len(parsed.Methods))
	for k := range parsed.Methods {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]abi.Method, len(keys))
	for i, k := range keys {
		out[i] = parsed.Methods[k]
	}
	return out
}

// Function describes one generated method for the inspect command.
type Function struct {
	Name       string
	GoName     string
	Signature  string
	Selector   string
	Mutability string
	Params     []string // "input1 typedcall.BigNumberish"
	Returns    []string // Go output types
}

// Describe lists the typed surface that Generate would emit for abiJSON.
func Describe(abiJSON string) ([]Function, error) {
	b, err := build(&Config{Type: "Contract", ABI: abiJSON})
	if err != nil {
		return nil, err
	}
	var out []Function
	for _, group := range [][]*method{b.Calls, b.Transacts} {
		for _, m := range group {
			f := Function{
				Name:       m.Key,
				GoName:     m.GoName,
				Signature:  m.Sig,
				Selector:   m.Selector,
				Mutability: m.Mutability,
			}
			for _, p := range m.Params {
				f.Params = append(f.Params, p.Name+" "+p.In)
			}
			if m.Structured {
				f.Returns = []string{m.OutputStruct}
			} else {
				for _, r := range m.Returns {
					f.Returns = append(f.Returns, r.Out)
				}
			}
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
