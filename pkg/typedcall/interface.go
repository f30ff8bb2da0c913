package typedcall

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Interface is a parsed ABI with its fragments indexed by canonical
// signature, e.g. Functions["input_struct((uint256,uint256))"].
type Interface struct {
	ABI       abi.ABI
	Functions map[string]*abi.Method
	Events    map[string]*abi.Event
}

// ParseInterface parses ABI JSON into an Interface.
func ParseInterface(abiJSON string) (*Interface, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing ABI: %w", err)
	}
	return NewInterface(parsed), nil
}

// NewInterface indexes an already parsed ABI.
func NewInterface(parsed abi.ABI) *Interface {
	iface := &Interface{
		ABI:       parsed,
		Functions: make(map[string]*abi.Method, len(parsed.Methods)),
		Events:    make(map[string]*abi.Event, len(parsed.Events)),
	}
	for name := range parsed.Methods {
		m := parsed.Methods[name]
		iface.Functions[m.Sig] = &m
	}
	for name := range parsed.Events {
		e := parsed.Events[name]
		iface.Events[e.Sig] = &e
	}
	return iface
}

// GetFunction resolves a canonical signature, a bare Solidity name or a
// go-ethereum method key (overloads carry a numeric suffix, e.g. "foo0").
// A bare name that matches more than one overload is an error.
func (i *Interface) GetFunction(nameOrSignature string) (*abi.Method, error) {
	if strings.Contains(nameOrSignature, "(") {
		if m, ok := i.Functions[strings.ReplaceAll(nameOrSignature, " ", "")]; ok {
			return m, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, nameOrSignature)
	}

	var found *abi.Method
	for _, m := range i.Functions {
		if m.RawName != nameOrSignature {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %s matches %s and %s", ErrAmbiguousMethod, nameOrSignature, found.Sig, m.Sig)
		}
		found = m
	}
	if found != nil {
		return found, nil
	}
	if m, ok := i.ABI.Methods[nameOrSignature]; ok {
		return &m, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, nameOrSignature)
}

// MetaData carries the ABI and deployment bytecode of a generated binding.
type MetaData struct {
	mu    sync.Mutex
	iface *Interface

	ABI string
	Bin string
}

// GetInterface parses the ABI once and returns the cached Interface.
func (m *MetaData) GetInterface() (*Interface, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.iface != nil {
		return m.iface, nil
	}
	iface, err := ParseInterface(m.ABI)
	if err != nil {
		return nil, err
	}
	m.iface = iface
	return iface, nil
}
