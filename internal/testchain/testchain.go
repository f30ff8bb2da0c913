// Package testchain provides an isolated in-process chain per test. Every
// Chain is backed by its own go-ethereum simulated backend, funds a fresh key
// and is closed through t.Cleanup.
package testchain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3bind/internal/contract"
	"github.com/Mohsinsiddi/w3bind/pkg/typedcall"
)

const blockGasLimit = 30_000_000

// Funding of the generated key: 100 ether.
var funding = new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))

// Chain is one ephemeral chain with a funded signer.
type Chain struct {
	Backend *simulated.Backend
	Client  simulated.Client
	Key     *ecdsa.PrivateKey
	Auth    *bind.TransactOpts
	ChainID *big.Int
}

// New starts a chain and registers its teardown with t.Cleanup, so the
// backend is closed whether the test passes or fails.
func New(t testing.TB) *Chain {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err, "generating key")
	from := crypto.PubkeyToAddress(key.PublicKey)

	backend := simulated.NewBackend(
		types.GenesisAlloc{from: {Balance: funding}},
		simulated.WithBlockGasLimit(blockGasLimit),
	)
	t.Cleanup(func() {
		_ = backend.Close()
	})

	client := backend.Client()
	chainID, err := client.ChainID(context.Background())
	require.NoError(t, err, "reading chain id")

	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	require.NoError(t, err, "creating transactor")

	return &Chain{
		Backend: backend,
		Client:  client,
		Key:     key,
		Auth:    auth,
		ChainID: chainID,
	}
}

// Commit seals the pending transactions into a block.
func (c *Chain) Commit() common.Hash {
	return c.Backend.Commit()
}

// CallOpts returns call options bound to ctx, sent from the funded key.
func (c *Chain) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: c.Auth.From}
}

// Deploy deploys meta with args, mines it and fails the test unless the
// creation receipt reports success.
func (c *Chain) Deploy(t testing.TB, meta *typedcall.MetaData, args ...any) common.Address {
	t.Helper()

	address, tx, _, err := typedcall.Deploy(c.Auth, meta, c.Client, args...)
	require.NoError(t, err, "deploying contract")
	c.Commit()
	c.RequireSuccess(t, tx)
	return address
}

// RequireSuccess fails the test unless tx was mined with a success status.
func (c *Chain) RequireSuccess(t testing.TB, tx *types.Transaction) *types.Receipt {
	t.Helper()

	receipt, err := c.Client.TransactionReceipt(context.Background(), tx.Hash())
	require.NoError(t, err, "fetching receipt for %s", tx.Hash().Hex())
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status, "transaction %s failed", tx.Hash().Hex())
	return receipt
}

func testdataDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata")
}

// ArtifactPath returns the path of a fixture artifact, e.g. "DataTypesInput".
func ArtifactPath(name string) string {
	return filepath.Join(testdataDir(), name+".json")
}

// Artifact loads a fixture artifact and requires it to carry bytecode.
func Artifact(t testing.TB, name string) *contract.Artifact {
	t.Helper()
	art, err := contract.LoadArtifactFull(ArtifactPath(name))
	require.NoError(t, err, "loading fixture artifact %s", name)
	return art
}

// MetaData loads a fixture artifact as binding metadata.
func MetaData(t testing.TB, name string) *typedcall.MetaData {
	t.Helper()
	art := Artifact(t, name)
	return &typedcall.MetaData{
		ABI: string(art.RawABI),
		Bin: hexutil.Encode(art.Bytecode),
	}
}
