package codegen

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"

	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/internal/logger"
)

var bigIntType = reflect.TypeOf((*big.Int)(nil))

const rt = "typedcall"

type binding struct {
	Package       string
	Type          string
	RuntimeImport string
	InputABI      string
	InputBin      string
	Constructor   *method
	Calls         []*method
	Transacts     []*method
	Structs       []*structDef
	Outputs       []*structDef
}

type method struct {
	Key        string
	GoName     string
	Sig        string
	Selector   string
	Solidity   string
	Mutability string
	Params     []field
	Returns    []field

	// Structured is set when every output of a multi-output method is named.
	Structured   bool
	OutputStruct string
}

type field struct {
	Name    string // Go identifier
	OutName string // field name in the output shape, clear of Tuple methods
	Raw     string // ABI name
	In      string // Go input type
	Out     string // Go output type
	Widen   string // converts the output field into its input shape
	Result  string // extracts the value from a typedcall.Result
	Var     string
}

type structDef struct {
	key       string
	short     string
	qualified string

	Name     string
	Solidity string
	Fields   []field
}

// ParamList renders ", a typedcall.BigNumberish, b typedcall.AddressLike".
func (m *method) ParamList() string {
	var b strings.Builder
	for _, p := range m.Params {
		fmt.Fprintf(&b, ", %s %s", p.Name, p.In)
	}
	return b.String()
}

// ArgList renders ", a, b".
func (m *method) ArgList() string {
	var b strings.Builder
	for _, p := range m.Params {
		b.WriteString(", " + p.Name)
	}
	return b.String()
}

// ResultList renders the typed return list including the trailing error.
func (m *method) ResultList() string {
	switch {
	case len(m.Returns) == 0:
		return "error"
	case m.Structured:
		return "(" + m.OutputStruct + ", error)"
	}
	types := make([]string, 0, len(m.Returns)+1)
	for _, r := range m.Returns {
		types = append(types, r.Out)
	}
	return "(" + strings.Join(append(types, "error"), ", ") + ")"
}

// ZeroList renders the zero values returned next to an error.
func (m *method) ZeroList() string {
	if m.Structured {
		return "*new(" + m.OutputStruct + "), "
	}
	var b strings.Builder
	for _, r := range m.Returns {
		b.WriteString("*new(" + r.Out + "), ")
	}
	return b.String()
}

// VarList renders "out0, out1".
func (m *method) VarList() string {
	vars := make([]string, len(m.Returns))
	for i, r := range m.Returns {
		vars[i] = r.Var
	}
	return strings.Join(vars, ", ")
}

// IndexList renders the field values handed to Tuple.Index.
func (s *structDef) IndexList() string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = "s." + f.OutName
	}
	return strings.Join(names, ", ")
}

// builder turns a parsed ABI into a binding. Struct names are settled in a
// first pass so that collisions can fall back to qualified names.
type builder struct {
	entries map[string]contract.ABIEntry
	structs map[string]*structDef
	order   []*structDef
	anon    int
}

func newBuilder(entries []contract.ABIEntry) *builder {
	b := &builder{
		entries: make(map[string]contract.ABIEntry, len(entries)),
		structs: make(map[string]*structDef),
	}
	for _, e := range entries {
		switch e.Type {
		case "function", "":
			b.entries[e.Signature()] = e
		case "constructor":
			b.entries["constructor"] = e
		}
	}
	return b
}

// params returns the raw ABI parameters backing args, matched by signature.
func (b *builder) params(sig string, inputs bool, n int) []contract.ABIParam {
	e, ok := b.entries[sig]
	if !ok {
		return make([]contract.ABIParam, n)
	}
	ps := e.Outputs
	if inputs {
		ps = e.Inputs
	}
	if len(ps) != n {
		return make([]contract.ABIParam, n)
	}
	return ps
}

// collect registers every struct reachable from t.
func (b *builder) collect(t abi.Type, p contract.ABIParam) error {
	switch t.T {
	case abi.TupleTy:
		key := structKey(t, p)
		if _, ok := b.structs[key]; !ok {
			s := &structDef{key: key}
			if short, qualified, ok := p.StructName(); ok {
				s.short, s.qualified = short, qualified
				s.Solidity, _ = p.StructPath()
			} else {
				b.anon++
				s.short = "Tuple" + strconv.Itoa(b.anon)
				s.qualified = s.short
			}
			b.structs[key] = s
			b.order = append(b.order, s)
		}
		for i, elem := range t.TupleElems {
			if err := b.collect(*elem, component(p, i)); err != nil {
				return err
			}
		}
	case abi.SliceTy, abi.ArrayTy:
		return b.collect(*t.Elem, p.Elem())
	case abi.FixedPointTy:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return nil
}

// resolve settles struct names. Short names shared by different structs
// fall back to their qualified names.
func (b *builder) resolve() error {
	byShort := make(map[string][]*structDef)
	for _, s := range b.order {
		byShort[s.short] = append(byShort[s.short], s)
	}
	seen := make(map[string]string)
	for _, s := range b.order {
		s.Name = s.short
		if len(byShort[s.short]) > 1 {
			s.Name = s.qualified
		}
		if other, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w: struct name %s is used by %s and %s", ErrNameCollision, s.Name, other, s.key)
		}
		seen[s.Name] = s.key
		logger.L().Debug("registered struct", zap.String("name", s.Name), zap.String("key", s.key))
	}
	return nil
}

// fill computes the field types of every struct once names are settled.
func (b *builder) fill(t abi.Type, p contract.ABIParam) error {
	switch t.T {
	case abi.TupleTy:
		s := b.structs[structKey(t, p)]
		if s.Fields != nil {
			return nil
		}
		s.Fields = make([]field, 0, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			cp := component(p, i)
			if err := b.fill(*elem, cp); err != nil {
				return err
			}
			f, err := b.field(*elem, cp, fieldName(t.TupleRawNames[i], i), t.TupleRawNames[i])
			if err != nil {
				return err
			}
			s.Fields = append(s.Fields, f)
		}
	case abi.SliceTy, abi.ArrayTy:
		return b.fill(*t.Elem, p.Elem())
	}
	return nil
}

func (b *builder) field(t abi.Type, p contract.ABIParam, name, raw string) (field, error) {
	in, err := b.goType(t, p, true)
	if err != nil {
		return field{}, err
	}
	out, err := b.goType(t, p, false)
	if err != nil {
		return field{}, err
	}
	outName := outputFieldName(name)
	widen, err := b.widen(t, p, "s."+outName)
	if err != nil {
		return field{}, err
	}
	return field{Name: name, OutName: outName, Raw: raw, In: in, Out: out, Widen: widen}, nil
}

// goType maps an ABI type to its Go input or output type.
func (b *builder) goType(t abi.Type, p contract.ABIParam, input bool) (string, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		if input {
			return rt + ".BigNumberish", nil
		}
		if gt := t.GetType(); gt != bigIntType {
			return gt.String(), nil
		}
		return "*big.Int", nil
	case abi.BoolTy:
		return "bool", nil
	case abi.StringTy:
		return "string", nil
	case abi.AddressTy:
		if input {
			return rt + ".AddressLike", nil
		}
		return "common.Address", nil
	case abi.BytesTy:
		if input {
			return rt + ".BytesLike", nil
		}
		return "[]byte", nil
	case abi.FixedBytesTy:
		if input {
			return rt + ".BytesLike", nil
		}
		return fmt.Sprintf("[%d]byte", t.Size), nil
	case abi.FunctionTy:
		if input {
			return rt + ".BytesLike", nil
		}
		return "[24]byte", nil
	case abi.SliceTy:
		elem, err := b.goType(*t.Elem, p.Elem(), input)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case abi.ArrayTy:
		elem, err := b.goType(*t.Elem, p.Elem(), input)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d]%s", t.Size, elem), nil
	case abi.TupleTy:
		s, ok := b.structs[structKey(t, p)]
		if !ok {
			return "", fmt.Errorf("%w: unregistered tuple %s", ErrUnsupportedType, t)
		}
		if input {
			return s.Name + "Struct", nil
		}
		return s.Name + "StructOutput", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

// widen renders the expression that turns expr, held in the output shape,
// into the input shape of t.
func (b *builder) widen(t abi.Type, p contract.ABIParam, expr string) (string, error) {
	in, err := b.goType(t, p, true)
	if err != nil {
		return "", err
	}
	out, err := b.goType(t, p, false)
	if err != nil {
		return "", err
	}
	if in == out {
		return expr, nil
	}

	switch t.T {
	case abi.TupleTy:
		return expr + ".Input()", nil
	case abi.SliceTy, abi.ArrayTy:
		elemIn, err := b.goType(*t.Elem, p.Elem(), true)
		if err != nil {
			return "", err
		}
		elemOut, err := b.goType(*t.Elem, p.Elem(), false)
		if err != nil {
			return "", err
		}
		inner, err := b.widen(*t.Elem, p.Elem(), "v")
		if err != nil {
			return "", err
		}
		if t.T == abi.SliceTy {
			return fmt.Sprintf("%s.WidenSlice(%s, func(v %s) %s { return %s })", rt, expr, elemOut, elemIn, inner), nil
		}
		return fmt.Sprintf("func(a %s) (w %s) {\nfor i, v := range a {\nw[i] = %s\n}\nreturn w\n}(%s)", out, in, inner, expr), nil
	}
	// Scalars widen by assignment to the input interface type.
	return expr, nil
}

func (b *builder) method(m abi.Method) (*method, error) {
	out := &method{
		Key:        m.Name,
		GoName:     methodName(m.Name),
		Sig:        m.Sig,
		Selector:   fmt.Sprintf("0x%x", m.ID),
		Solidity:   m.String(),
		Mutability: m.StateMutability,
	}
	sig := m.Sig
	if m.Type == abi.Constructor {
		sig = "constructor"
	}

	inputs := b.params(sig, true, len(m.Inputs))
	for i, arg := range m.Inputs {
		in, err := b.goType(arg.Type, inputs[i], true)
		if err != nil {
			return nil, fmt.Errorf("%s: input %d: %w", m.Sig, i, err)
		}
		out.Params = append(out.Params, field{Name: paramName(arg.Name, i), Raw: arg.Name, In: in})
	}

	outputs := b.params(sig, false, len(m.Outputs))
	named := len(m.Outputs) > 1
	for i, arg := range m.Outputs {
		typ, err := b.goType(arg.Type, outputs[i], false)
		if err != nil {
			return nil, fmt.Errorf("%s: output %d: %w", m.Sig, i, err)
		}
		if arg.Name == "" {
			named = false
		}
		name := fieldName(arg.Name, i)
		out.Returns = append(out.Returns, field{
			Name:    name,
			OutName: outputFieldName(name),
			Raw:     arg.Name,
			Out:     typ,
			Result:  fmt.Sprintf("*abi.ConvertType(out.Index(%d), new(%s)).(*%s)", i, typ, typ),
			Var:     "out" + strconv.Itoa(i),
		})
	}
	if named && m.IsConstant() && uniqueFields(out.Returns) {
		out.Structured = true
		out.OutputStruct = out.GoName + "Output"
	}
	return out, nil
}

func uniqueFields(fs []field) bool {
	seen := make(map[string]bool, len(fs))
	for _, f := range fs {
		if seen[f.OutName] {
			return false
		}
		seen[f.OutName] = true
	}
	return true
}

func component(p contract.ABIParam, i int) contract.ABIParam {
	if i < len(p.Components) {
		return p.Components[i]
	}
	return contract.ABIParam{}
}

// structKey identifies a struct by its dotted Solidity name, or by its shape
// when the ABI carries no internalType.
func structKey(t abi.Type, p contract.ABIParam) string {
	if path, ok := p.StructPath(); ok {
		return "struct " + path
	}
	return "tuple " + tupleShape(t, p)
}

// tupleShape renders t with its component names, so that unnamed tuples
// differing only in field names stay apart: "(uint256 a,(bool ok)[] list)".
func tupleShape(t abi.Type, p contract.ABIParam) string {
	switch t.T {
	case abi.TupleTy:
		if path, ok := p.StructPath(); ok {
			return "struct " + path
		}
		parts := make([]string, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			parts[i] = tupleShape(*elem, component(p, i)) + " " + t.TupleRawNames[i]
		}
		return "(" + strings.Join(parts, ",") + ")"
	case abi.SliceTy:
		return tupleShape(*t.Elem, p.Elem()) + "[]"
	case abi.ArrayTy:
		return fmt.Sprintf("%s[%d]", tupleShape(*t.Elem, p.Elem()), t.Size)
	}
	return t.String()
}
