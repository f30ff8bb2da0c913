package codegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/internal/testchain"
)

// generate renders cfg and requires the output to parse as Go.
func generate(t *testing.T, cfg Config) string {
	t.Helper()
	code, err := Generate(cfg)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "binding.go", code, parser.AllErrors)
	require.NoError(t, err, "generated code must parse:\n%s", code)
	return string(code)
}

// declarations prints every top-level declaration of src without comments,
// keyed by receiver and name.
func declarations(t *testing.T, src []byte) map[string]string {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, 0)
	require.NoError(t, err)

	out := make(map[string]string)
	add := func(key string, node any) {
		var buf bytes.Buffer
		require.NoError(t, printer.Fprint(&buf, fset, node))
		out[key] = buf.String()
	}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			key := d.Name.Name
			if d.Recv != nil {
				var recv bytes.Buffer
				require.NoError(t, printer.Fprint(&recv, fset, d.Recv.List[0].Type))
				key = recv.String() + "." + key
			}
			d.Doc = nil
			add(key, d)
		case *ast.GenDecl:
			for i, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					add("type "+s.Name.Name, s)
				case *ast.ValueSpec:
					add("var "+s.Names[0].Name+string(rune('0'+i)), s)
				case *ast.ImportSpec:
					add("import "+s.Path.Value, s)
				}
			}
		}
	}
	return out
}

func TestGeneratedDataTypesInputIsCurrent(t *testing.T) {
	art, err := contract.LoadArtifactFull(testchain.ArtifactPath("DataTypesInput"))
	require.NoError(t, err)

	code := generate(t, Config{
		Package: "datatypesinput",
		Type:    art.ContractName,
		ABI:     string(art.RawABI),
		Bin:     hexutil.Encode(art.Bytecode),
	})

	golden, err := os.ReadFile(filepath.Join("..", "..", "test", "bindings", "datatypesinput", "datatypesinput.go"))
	require.NoError(t, err)

	want := declarations(t, golden)
	got := declarations(t, []byte(code))
	require.Equal(t, len(want), len(got))
	for key, decl := range want {
		assert.Equal(t, decl, got[key], "declaration %s is stale, run go generate ./test/bindings/...", key)
	}
}

func TestGenerateDataTypesInputShapes(t *testing.T) {
	art, err := contract.LoadArtifactFull(testchain.ArtifactPath("DataTypesInput"))
	require.NoError(t, err)

	code := generate(t, Config{Type: art.ContractName, ABI: string(art.RawABI)})

	assert.Contains(t, code, "package datatypesinput\n")
	assert.Contains(t, code, "func (c *DataTypesInput) InputTuple(opts *bind.CallOpts, input1 typedcall.BigNumberish, input2 typedcall.BigNumberish) (*big.Int, *big.Int, error)")
	assert.Contains(t, code, "func (c *DataTypesInput) InputStruct2Tuple(opts *bind.CallOpts, input1 [3]Struct2Struct) ([3]Struct2StructOutput, error)")
	assert.Contains(t, code, "func (f *DataTypesInputFunctions) InputUintArray(opts *bind.CallOpts, input1 []typedcall.BigNumberish) (typedcall.Result, error)")
	assert.Contains(t, code, "Input1: typedcall.WidenSlice(s.Input1, func(v *big.Int) typedcall.BigNumberish { return v }),")
	assert.Contains(t, code, "Input2: s.Input2.Input(),")
	assert.Contains(t, code, "0x690b133d")
	assert.NotContains(t, code, "func DeployDataTypesInput", "no bytecode, no deploy helper")
}

const tokenABI = `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"name_","type":"string"},{"name":"decimals","type":"uint8"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getReserves","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"reserve0","type":"uint112"},{"name":"reserve1","type":"uint112"},{"name":"blockTimestampLast","type":"uint32"}]},
	{"type":"function","name":"pair","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"uint256"},{"name":"","type":"address"}]},
	{"type":"function","name":"ping","stateMutability":"view","inputs":[],"outputs":[]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"to","type":"address","indexed":true},
		{"name":"value","type":"uint256","indexed":false}]}
]`

func TestGenerateTransactsAndDeploy(t *testing.T) {
	code := generate(t, Config{Type: "Token", ABI: tokenABI, Bin: "6080"})

	assert.Contains(t, code, `Bin: "0x6080",`)
	assert.Contains(t, code, "func DeployToken(auth *bind.TransactOpts, backend bind.ContractBackend, name string, decimals typedcall.BigNumberish)")
	assert.Contains(t, code, "func (c *Token) Transfer(opts *bind.TransactOpts, to typedcall.AddressLike, value typedcall.BigNumberish) (*types.Transaction, error)")
	assert.Contains(t, code, "func (f *TokenFunctions) Transfer(opts *bind.TransactOpts, to typedcall.AddressLike, value typedcall.BigNumberish) (*types.Transaction, error)")
	assert.Contains(t, code, "func (c *Token) Ping(opts *bind.CallOpts) error")
}

func TestGenerateNamedOutputs(t *testing.T) {
	code := generate(t, Config{Type: "Token", ABI: tokenABI})

	assert.Contains(t, code, "type GetReservesOutput struct")
	assert.Contains(t, code, "func (c *Token) GetReserves(opts *bind.CallOpts) (GetReservesOutput, error)")
	assert.Contains(t, code, "func (s GetReservesOutput) Index(i int) any")
	assert.Contains(t, code, "BlockTimestampLast: *abi.ConvertType(out.Index(2), new(uint32)).(*uint32),")

	// Unnamed multi-output methods return positionally.
	assert.Contains(t, code, "func (c *Token) Pair(opts *bind.CallOpts) (*big.Int, common.Address, error)")
}

func TestGenerateParamNames(t *testing.T) {
	code := generate(t, Config{Type: "Names", ABI: `[
		{"type":"function","name":"set","stateMutability":"nonpayable","outputs":[],"inputs":[
			{"name":"type","type":"uint256"},
			{"name":"","type":"bool"},
			{"name":"address","type":"address"},
			{"name":"_to","type":"address"},
			{"name":"tokenID","type":"uint256"}]}
	]`})

	assert.Contains(t, code, "Set(opts *bind.TransactOpts, arg0 typedcall.BigNumberish, arg1 bool, arg2 typedcall.AddressLike, to typedcall.AddressLike, tokenID typedcall.BigNumberish)")
}

func TestGenerateOverloadsAndReservedNames(t *testing.T) {
	code := generate(t, Config{Type: "Overloaded", ABI: `[
		{"type":"function","name":"foo","stateMutability":"view","inputs":[{"name":"a","type":"uint256"}],"outputs":[]},
		{"type":"function","name":"foo","stateMutability":"view","inputs":[{"name":"a","type":"address"}],"outputs":[]},
		{"type":"function","name":"address","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]}
	]`})

	assert.Contains(t, code, "func (c *Overloaded) Foo(opts *bind.CallOpts, a typedcall.BigNumberish) error")
	assert.Contains(t, code, "func (c *Overloaded) Foo0(opts *bind.CallOpts, a typedcall.AddressLike) error")
	assert.Contains(t, code, `c.contract.Call(opts, "foo0", a)`)
	assert.Contains(t, code, "func (c *Overloaded) AddressFn(opts *bind.CallOpts) (common.Address, error)")
	assert.Contains(t, code, "func (c *Overloaded) Address() common.Address")
}

func TestGenerateAnonymousTuplesAndTupleMethodFields(t *testing.T) {
	code := generate(t, Config{Type: "Anon", ABI: `[
		{"type":"function","name":"get","stateMutability":"pure","inputs":[],"outputs":[
			{"name":"","type":"tuple","components":[
				{"name":"len","type":"uint8"},
				{"name":"index","type":"bytes32[2]"}]}]}
	]`})

	assert.Contains(t, code, "type Tuple1Struct struct")
	assert.Contains(t, code, "an unnamed tuple")
	assert.Contains(t, code, "LenField   uint8")
	assert.Contains(t, code, "IndexField [2][32]byte")
	assert.Regexp(t, `Len:\s+s\.LenField,`, code)
	assert.Contains(t, code, "w[i] = v")
	assert.Contains(t, code, "func (c *Anon) Get(opts *bind.CallOpts) (Tuple1StructOutput, error)")
}

func TestGenerateQualifiesCollidingStructs(t *testing.T) {
	code := generate(t, Config{Type: "Pools", ABI: `[
		{"type":"function","name":"a","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple","internalType":"struct PoolA.Info","components":[{"name":"x","type":"uint256"}]}]},
		{"type":"function","name":"b","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple","internalType":"struct PoolB.Info","components":[{"name":"y","type":"bool"}]}]}
	]`})

	assert.Contains(t, code, "type PoolAInfoStruct struct")
	assert.Contains(t, code, "type PoolBInfoStruct struct")
	assert.NotContains(t, code, "type InfoStruct struct")
}

func TestGenerateNameCollision(t *testing.T) {
	_, err := Generate(Config{Type: "Pools", ABI: `[
		{"type":"function","name":"a","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple","internalType":"struct Pool.Info","components":[{"name":"x","type":"uint256"}]}]},
		{"type":"function","name":"b","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple","internalType":"struct Other.Info","components":[{"name":"y","type":"bool"}]}]},
		{"type":"function","name":"c","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple","internalType":"struct PoolInfo","components":[{"name":"z","type":"string"}]}]}
	]`})
	assert.ErrorIs(t, err, ErrNameCollision)
}

func TestGenerateKeepsDottedAndFlatStructsApart(t *testing.T) {
	code := generate(t, Config{Type: "Pools", ABI: `[
		{"type":"function","name":"a","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple","internalType":"struct Pool.Info","components":[{"name":"x","type":"uint256"}]}]},
		{"type":"function","name":"c","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple","internalType":"struct PoolInfo","components":[{"name":"z","type":"string"}]}]}
	]`})

	assert.Contains(t, code, "the Solidity struct Pool.Info.")
	assert.Regexp(t, `type InfoStruct struct \{\s+X typedcall\.BigNumberish\s+\}`, code)
	assert.Regexp(t, `type PoolInfoStruct struct \{\s+Z string\s+\}`, code)
	assert.Contains(t, code, "func (c *Pools) A(opts *bind.CallOpts, p InfoStruct) error")
	assert.Contains(t, code, "func (c *Pools) C(opts *bind.CallOpts, p PoolInfoStruct) error")
}

func TestGenerateUnnamedTuplesWithDifferentFieldNames(t *testing.T) {
	code := generate(t, Config{Type: "Shapes", ABI: `[
		{"type":"function","name":"f","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple","components":[{"name":"a","type":"uint256"},{"name":"b","type":"uint256"}]}]},
		{"type":"function","name":"g","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple","components":[{"name":"x","type":"uint256"},{"name":"y","type":"uint256"}]}]},
		{"type":"function","name":"h","stateMutability":"pure","outputs":[],"inputs":[
			{"name":"p","type":"tuple[]","components":[{"name":"a","type":"uint256"},{"name":"b","type":"uint256"}]}]}
	]`})

	assert.Regexp(t, `type Tuple1Struct struct \{\s+A\s+typedcall\.BigNumberish\s+B\s+typedcall\.BigNumberish\s+\}`, code)
	assert.Regexp(t, `type Tuple2Struct struct \{\s+X\s+typedcall\.BigNumberish\s+Y\s+typedcall\.BigNumberish\s+\}`, code)
	assert.NotContains(t, code, "Tuple3Struct")
	assert.Contains(t, code, "func (c *Shapes) F(opts *bind.CallOpts, p Tuple1Struct) error")
	assert.Contains(t, code, "func (c *Shapes) G(opts *bind.CallOpts, p Tuple2Struct) error")
	assert.Contains(t, code, "func (c *Shapes) H(opts *bind.CallOpts, p []Tuple1Struct) error", "the same shape shares a struct")
}

func TestGenerateDuplicatedIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		abi  string
		msg  string
	}{
		{
			"snake and camel case methods",
			`[{"type":"function","name":"get_value","stateMutability":"view","inputs":[],"outputs":[]},
			  {"type":"function","name":"getValue","stateMutability":"view","inputs":[],"outputs":[]}]`,
			"duplicated identifier GetValue",
		},
		{
			"call and transact",
			`[{"type":"function","name":"set_value","stateMutability":"view","inputs":[],"outputs":[]},
			  {"type":"function","name":"setValue","stateMutability":"nonpayable","inputs":[],"outputs":[]}]`,
			"duplicated identifier SetValue",
		},
		{
			"output struct and struct",
			`[{"type":"function","name":"fooStruct","stateMutability":"view","inputs":[],"outputs":[
				{"name":"a","type":"uint8"},{"name":"b","type":"uint8"}]},
			  {"type":"function","name":"bar","stateMutability":"view","inputs":[
				{"name":"p","type":"tuple","internalType":"struct Foo","components":[{"name":"x","type":"uint8"}]}],"outputs":[]}]`,
			"duplicated identifier FooStructOutput",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(Config{Type: "Dup", ABI: tc.abi})
			assert.ErrorIs(t, err, ErrNameCollision)
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestGenerateRejects(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"fixed point", Config{Type: "F", ABI: `[{"type":"function","name":"f","inputs":[{"name":"a","type":"fixed128x18"}],"outputs":[]}]`}, ErrUnsupportedType},
		{"nested ufixed", Config{Type: "F", ABI: `[{"type":"function","name":"f","inputs":[],"outputs":[{"name":"","type":"tuple","components":[{"name":"a","type":"ufixed"}]}]}]`}, ErrUnsupportedType},
		{"not json", Config{Type: "F", ABI: `not json`}, contract.ErrInvalidABI},
		{"object", Config{Type: "F", ABI: `{"abi":[]}`}, contract.ErrInvalidABI},
		{"unknown type", Config{Type: "F", ABI: `[{"type":"function","name":"f","inputs":[{"name":"a","type":"foo"}],"outputs":[]}]`}, contract.ErrInvalidABI},
		{"empty abi", Config{Type: "F", ABI: "  "}, contract.ErrInvalidABI},
		{"bad type name", Config{Type: "my-token", ABI: "[]"}, ErrInvalidConfig},
		{"empty type name", Config{ABI: "[]"}, ErrInvalidConfig},
		{"keyword package", Config{Type: "F", Package: "func", ABI: "[]"}, ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGenerateNormalizesConfig(t *testing.T) {
	cfg := Config{Type: "erc20_token", ABI: "[]", Bin: " 6080 "}
	_, err := build(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "Erc20Token", cfg.Type)
	assert.Equal(t, "erc20token", cfg.Package)
	assert.Equal(t, "0x6080", cfg.Bin)
	assert.Equal(t, DefaultRuntimeImport, cfg.RuntimeImport)
}

func TestDescribe(t *testing.T) {
	fns, err := Describe(tokenABI)
	require.NoError(t, err)
	require.Len(t, fns, 4)

	byName := make(map[string]Function, len(fns))
	for _, f := range fns {
		byName[f.Name] = f
	}

	transfer := byName["transfer"]
	assert.Equal(t, "Transfer", transfer.GoName)
	assert.Equal(t, "transfer(address,uint256)", transfer.Signature)
	assert.Equal(t, "0xa9059cbb", transfer.Selector)
	assert.Equal(t, "nonpayable", transfer.Mutability)
	assert.Equal(t, []string{"to typedcall.AddressLike", "value typedcall.BigNumberish"}, transfer.Params)
	assert.Equal(t, []string{"bool"}, transfer.Returns)

	assert.Equal(t, []string{"GetReservesOutput"}, byName["getReserves"].Returns)
	assert.Equal(t, []string{"*big.Int", "common.Address"}, byName["pair"].Returns)
	assert.Empty(t, byName["ping"].Returns)
}
