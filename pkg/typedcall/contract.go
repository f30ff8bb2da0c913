// Package typedcall is the runtime behind w3bind generated bindings. It
// coerces widened Go inputs into canonical ABI values, performs the call
// through go-ethereum's bound contract and hands back decoded results.
package typedcall

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Contract dispatches calls by method name against one deployed contract.
type Contract struct {
	address common.Address
	iface   *Interface
	bound   *bind.BoundContract
}

// NewContract binds meta to the contract at address.
func NewContract(address common.Address, meta *MetaData, backend bind.ContractBackend) (*Contract, error) {
	iface, err := meta.GetInterface()
	if err != nil {
		return nil, err
	}
	return &Contract{
		address: address,
		iface:   iface,
		bound:   bind.NewBoundContract(address, iface.ABI, backend, backend, backend),
	}, nil
}

// Address returns the address the contract is bound to.
func (c *Contract) Address() common.Address { return c.address }

// Interface returns the parsed ABI of the contract.
func (c *Contract) Interface() *Interface { return c.iface }

// Call performs a read-only call of method with coerced args and returns the
// decoded outputs.
func (c *Contract) Call(opts *bind.CallOpts, method string, args ...any) (Result, error) {
	m, ok := c.iface.ABI.Methods[method]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}
	params, err := CoerceArgs(m.Inputs, args)
	if err != nil {
		return Result{}, fmt.Errorf("calling %s: %w", method, err)
	}

	var out []any
	if err := c.bound.Call(opts, &out, method, params...); err != nil {
		return Result{}, fmt.Errorf("calling %s: %w", method, err)
	}
	return NewResult(m.Outputs, out), nil
}

// Transact sends a transaction invoking method with coerced args.
func (c *Contract) Transact(opts *bind.TransactOpts, method string, args ...any) (*types.Transaction, error) {
	m, ok := c.iface.ABI.Methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}
	params, err := CoerceArgs(m.Inputs, args)
	if err != nil {
		return nil, fmt.Errorf("transacting %s: %w", method, err)
	}

	tx, err := c.bound.Transact(opts, method, params...)
	if err != nil {
		return nil, fmt.Errorf("transacting %s: %w", method, err)
	}
	return tx, nil
}

// Deploy deploys meta.Bin with coerced constructor args.
func Deploy(opts *bind.TransactOpts, meta *MetaData, backend bind.ContractBackend, args ...any) (common.Address, *types.Transaction, *Contract, error) {
	iface, err := meta.GetInterface()
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	bin := common.FromHex(meta.Bin)
	if len(bin) == 0 {
		return common.Address{}, nil, nil, ErrNoBytecode
	}
	params, err := CoerceArgs(iface.ABI.Constructor.Inputs, args)
	if err != nil {
		return common.Address{}, nil, nil, fmt.Errorf("deploying: %w", err)
	}

	address, tx, bound, err := bind.DeployContract(opts, iface.ABI, bin, backend, params...)
	if err != nil {
		return common.Address{}, nil, nil, fmt.Errorf("deploying: %w", err)
	}
	return address, tx, &Contract{address: address, iface: iface, bound: bound}, nil
}
