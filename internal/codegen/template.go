package codegen

const tmplSource = `// Code generated by w3bind - DO NOT EDIT.
// This file is a generated binding and any manual changes will be lost.

package {{.Package}}

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"{{.RuntimeImport}}"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = big.NewInt
	_ = abi.ConvertType
	_ = bind.NewBoundContract
	_ = common.HexToAddress
	_ = types.NewTx
	_ = typedcall.NewContract
)
{{range .Structs}}
// {{.Name}}Struct is the input shape of {{if .Solidity}}the Solidity struct {{.Solidity}}{{else}}an unnamed tuple{{end}}.
type {{.Name}}Struct struct {
{{- range .Fields}}
	{{.Name}} {{.In}}
{{- end}}
}

// {{.Name}}StructOutput is the decoded shape of {{if .Solidity}}the Solidity struct {{.Solidity}}{{else}}an unnamed tuple{{end}}.
type {{.Name}}StructOutput struct {
{{- range .Fields}}
	{{.OutName}} {{.Out}}
{{- end}}
}

// Len returns the number of struct fields.
func (s {{.Name}}StructOutput) Len() int { return {{len .Fields}} }

// Index returns the i-th struct field. It panics when i is out of range.
func (s {{.Name}}StructOutput) Index(i int) any {
	return []any{ {{- .IndexList -}} }[i]
}

// Input converts the decoded struct into its input shape.
func (s {{.Name}}StructOutput) Input() {{.Name}}Struct {
	return {{.Name}}Struct{
{{- range .Fields}}
		{{.Name}}: {{.Widen}},
{{- end}}
	}
}
{{end}}
{{- range .Outputs}}
// {{.Name}} holds the named results of {{.Solidity}}.
type {{.Name}} struct {
{{- range .Fields}}
	{{.OutName}} {{.Out}}
{{- end}}
}

// Len returns the number of results.
func (s {{.Name}}) Len() int { return {{len .Fields}} }

// Index returns the i-th result. It panics when i is out of range.
func (s {{.Name}}) Index(i int) any {
	return []any{ {{- .IndexList -}} }[i]
}
{{end}}
// {{.Type}}MetaData contains all meta data concerning the {{.Type}} contract.
var {{.Type}}MetaData = &typedcall.MetaData{
	ABI: {{printf "%q" .InputABI}},
{{- if .InputBin}}
	Bin: {{printf "%q" .InputBin}},
{{- end}}
}

// {{.Type}} is a typed binding around the {{.Type}} contract.
type {{.Type}} struct {
	Interface *typedcall.Interface // ABI fragments keyed by canonical signature
	Functions *{{.Type}}Functions  // untyped positional results, one method per function
	contract  *typedcall.Contract
}

// {{.Type}}Functions calls {{.Type}} methods and returns their raw positional results.
type {{.Type}}Functions struct {
	contract *typedcall.Contract
}

// New{{.Type}} creates a binding to a deployed {{.Type}} contract.
func New{{.Type}}(address common.Address, backend bind.ContractBackend) (*{{.Type}}, error) {
	contract, err := typedcall.NewContract(address, {{.Type}}MetaData, backend)
	if err != nil {
		return nil, err
	}
	return new{{.Type}}(contract), nil
}

func new{{.Type}}(contract *typedcall.Contract) *{{.Type}} {
	return &{{.Type}}{
		Interface: contract.Interface(),
		Functions: &{{.Type}}Functions{contract: contract},
		contract:  contract,
	}
}
{{if .InputBin}}
// Deploy{{.Type}} deploys a new {{.Type}} contract and binds it.
func Deploy{{.Type}}(auth *bind.TransactOpts, backend bind.ContractBackend{{if .Constructor}}{{.Constructor.ParamList}}{{end}}) (common.Address, *types.Transaction, *{{.Type}}, error) {
	address, tx, contract, err := typedcall.Deploy(auth, {{.Type}}MetaData, backend{{if .Constructor}}{{.Constructor.ArgList}}{{end}})
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	return address, tx, new{{.Type}}(contract), nil
}
{{end}}
// Address returns the address of the bound contract.
func (c *{{.Type}}) Address() common.Address { return c.contract.Address() }

// Contract returns the dynamic dispatcher behind the binding.
func (c *{{.Type}}) Contract() *typedcall.Contract { return c.contract }
{{range .Calls}}
// {{.GoName}} is a free data retrieval call binding the contract method {{.Selector}}.
//
// Solidity: {{.Solidity}}
func (c *{{$.Type}}) {{.GoName}}(opts *bind.CallOpts{{.ParamList}}) {{.ResultList}} {
{{- if not .Returns}}
	_, err := c.contract.Call(opts, "{{.Key}}"{{.ArgList}})
	return err
{{- else}}
	out, err := c.contract.Call(opts, "{{.Key}}"{{.ArgList}})
	if err != nil {
		return {{.ZeroList}}err
	}
{{- if .Structured}}
	return {{.OutputStruct}}{
{{- range .Returns}}
		{{.OutName}}: {{.Result}},
{{- end}}
	}, nil
{{- else if eq (len .Returns) 1}}
	return {{(index .Returns 0).Result}}, nil
{{- else}}
{{- range .Returns}}
	{{.Var}} := {{.Result}}
{{- end}}
	return {{.VarList}}, nil
{{- end}}
{{- end}}
}
{{end}}
{{- range .Transacts}}
// {{.GoName}} is a paid mutator transaction binding the contract method {{.Selector}}.
//
// Solidity: {{.Solidity}}
func (c *{{$.Type}}) {{.GoName}}(opts *bind.TransactOpts{{.ParamList}}) (*types.Transaction, error) {
	return c.contract.Transact(opts, "{{.Key}}"{{.ArgList}})
}
{{end}}
{{- range .Calls}}
// {{.GoName}} calls {{.Key}} and returns the undecoded positional result.
func (f *{{$.Type}}Functions) {{.GoName}}(opts *bind.CallOpts{{.ParamList}}) (typedcall.Result, error) {
	return f.contract.Call(opts, "{{.Key}}"{{.ArgList}})
}
{{end}}
{{- range .Transacts}}
// {{.GoName}} sends a {{.Key}} transaction.
func (f *{{$.Type}}Functions) {{.GoName}}(opts *bind.TransactOpts{{.ParamList}}) (*types.Transaction, error) {
	return f.contract.Transact(opts, "{{.Key}}"{{.ArgList}})
}
{{end}}`
