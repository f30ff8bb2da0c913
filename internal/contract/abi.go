package contract

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/crypto/sha3"
)

// ErrInvalidABI is returned when ABI JSON cannot be used.
var ErrInvalidABI = errors.New("invalid ABI")

// ABIEntry is one ABI entry (function, event, constructor, etc.).
type ABIEntry struct {
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Inputs          []ABIParam `json:"inputs"`
	Outputs         []ABIParam `json:"outputs"`
	StateMutability string     `json:"stateMutability"`
	Anonymous       bool       `json:"anonymous,omitempty"`
}

// ABIParam is a parameter in an ABI entry. Tuple parameters carry their
// fields in Components.
type ABIParam struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	InternalType string     `json:"internalType,omitempty"`
	Components   []ABIParam `json:"components,omitempty"`
	Indexed      bool       `json:"indexed,omitempty"`
}

// IsReadFunction returns true if the function is read-only (view/pure).
func (e ABIEntry) IsReadFunction() bool {
	return e.Type == "function" &&
		(e.StateMutability == "view" || e.StateMutability == "pure")
}

// IsWriteFunction returns true if the function modifies state.
func (e ABIEntry) IsWriteFunction() bool {
	return e.Type == "function" &&
		(e.StateMutability == "nonpayable" || e.StateMutability == "payable")
}

// Signature returns the canonical signature, e.g. "input_struct((uint256,uint256))".
func (e ABIEntry) Signature() string {
	types := make([]string, len(e.Inputs))
	for i, p := range e.Inputs {
		types[i] = p.Canonical()
	}
	return e.Name + "(" + strings.Join(types, ",") + ")"
}

// Selector returns the 0x-prefixed 4-byte selector of the entry.
func (e ABIEntry) Selector() string {
	return Selector(e.Signature())
}

// Canonical returns the canonical ABI type string, expanding tuples into
// their component list: tuple[] with (uint256,bool) becomes "(uint256,bool)[]".
// The shorthands uint and int are expanded to their 256-bit names.
func (p ABIParam) Canonical() string {
	if !strings.HasPrefix(p.Type, "tuple") {
		base, suffix := p.Type, ""
		if i := strings.IndexByte(p.Type, '['); i >= 0 {
			base, suffix = p.Type[:i], p.Type[i:]
		}
		return canonicalAlias(base) + suffix
	}
	parts := make([]string, len(p.Components))
	for i, c := range p.Components {
		parts[i] = c.Canonical()
	}
	return "(" + strings.Join(parts, ",") + ")" + strings.TrimPrefix(p.Type, "tuple")
}

// Elem returns the element parameter of an array parameter. The element keeps
// the name and components; both type strings lose their last array suffix.
func (p ABIParam) Elem() ABIParam {
	e := p
	e.Type = trimArraySuffix(p.Type)
	e.InternalType = trimArraySuffix(p.InternalType)
	return e
}

// StructName returns the short and qualified struct name carried in
// internalType ("struct Outer.Inner[2]" gives "Inner", "OuterInner").
// ok is false when the parameter carries no struct internalType.
func (p ABIParam) StructName() (short, qualified string, ok bool) {
	return internalName(p.InternalType, "struct ")
}

// StructPath returns the dotted Solidity struct name carried in internalType
// ("struct Outer.Inner[2]" gives "Outer.Inner"). Two structs are the same
// struct only when their paths are equal.
func (p ABIParam) StructPath() (string, bool) {
	return internalPath(p.InternalType, "struct ")
}

// EnumName returns the enum name carried in internalType, if any.
func (p ABIParam) EnumName() (short string, ok bool) {
	short, _, ok = internalName(p.InternalType, "enum ")
	return short, ok
}

func internalName(internalType, prefix string) (string, string, bool) {
	name, ok := internalPath(internalType, prefix)
	if !ok {
		return "", "", false
	}
	short := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		short = name[i+1:]
	}
	return short, strings.ReplaceAll(name, ".", ""), true
}

func internalPath(internalType, prefix string) (string, bool) {
	if !strings.HasPrefix(internalType, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(internalType, prefix)
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	return name, name != ""
}

func trimArraySuffix(typ string) string {
	if !strings.HasSuffix(typ, "]") {
		return typ
	}
	if i := strings.LastIndex(typ, "["); i >= 0 {
		return typ[:i]
	}
	return typ
}

// Selector computes the 4-byte selector for a canonical signature.
func Selector(signature string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	return "0x" + hex.EncodeToString(h.Sum(nil)[:4])
}

// ParseABI decodes a raw ABI JSON array.
func ParseABI(data []byte) ([]ABIEntry, error) {
	var entries []ABIEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Provide a user-friendly error depending on the JSON content.
		data = bytes.TrimSpace(data)
		if len(data) > 0 && data[0] == '{' {
			return nil, fmt.Errorf("%w: got a JSON object, not an ABI array; artifacts must have an \"abi\" key", ErrInvalidABI)
		}
		return nil, fmt.Errorf("%w: expected an array of function/event definitions: %v", ErrInvalidABI, err)
	}
	return entries, nil
}

// Functions returns the function entries in declaration order.
func Functions(entries []ABIEntry) []ABIEntry {
	var out []ABIEntry
	for _, e := range entries {
		if e.Type == "function" || e.Type == "" {
			out = append(out, e)
		}
	}
	return out
}

// Arguments converts params into go-ethereum arguments. Unnamed tuple
// components are named field<i>, since go-ethereum rejects anonymous fields.
func Arguments(params []ABIParam) (abi.Arguments, error) {
	args := make(abi.Arguments, len(params))
	for i, p := range params {
		t, err := abi.NewType(p.Type, p.InternalType, marshaling(p.Components))
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %d (%s): %v", ErrInvalidABI, i, p.Type, err)
		}
		args[i] = abi.Argument{Name: p.Name, Type: t, Indexed: p.Indexed}
	}
	return args, nil
}

func marshaling(comps []ABIParam) []abi.ArgumentMarshaling {
	if len(comps) == 0 {
		return nil
	}
	out := make([]abi.ArgumentMarshaling, len(comps))
	for i, c := range comps {
		name := c.Name
		if name == "" {
			name = "field" + strconv.Itoa(i)
		}
		out[i] = abi.ArgumentMarshaling{
			Name:         name,
			Type:         c.Type,
			InternalType: c.InternalType,
			Components:   marshaling(c.Components),
			Indexed:      c.Indexed,
		}
	}
	return out
}
