package cmd

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3bind/pkg/typedcall"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"big int", big.NewInt(-42), "-42"},
		{"address", common.HexToAddress(vitalik), vitalik},
		{"bytes", []byte{0xde, 0xad}, "0xdead"},
		{"bytes1", [1]byte{0x01}, "0x01"},
		{"bytes32", [32]byte{31: 0xff}, "0x00000000000000000000000000000000000000000000000000000000000000ff"},
		{"string", "TypeChain", "TypeChain"},
		{"bool", false, "false"},
		{"int8", int8(-1), "-1"},
		{"uint8 array", [3]uint8{1, 2, 3}, "0x010203"},
		{"slice", []*big.Int{big.NewInt(1), big.NewInt(2)}, "[1,2]"},
		{"struct", struct {
			A *big.Int `json:"a"`
		}{big.NewInt(7)}, `{"a":7}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}

func TestCLIValues(t *testing.T) {
	uint8Type, err := abi.NewType("uint8", "", nil)
	require.NoError(t, err)
	arrayType, err := abi.NewType("uint256[]", "", nil)
	require.NoError(t, err)
	args := abi.Arguments{{Name: "a", Type: uint8Type}, {Name: "b", Type: arrayType}}

	vals, err := cliValues(args, []string{"7", `[1, "2"]`})
	require.NoError(t, err)
	assert.Equal(t, "7", vals[0], "scalars stay text for the coercer")
	assert.Equal(t, []any{json.Number("1"), "2"}, vals[1])

	_, err = cliValues(args, []string{"7"})
	assert.ErrorIs(t, err, typedcall.ErrArgumentCount)

	_, err = cliValues(args, []string{"7", "[1,"})
	assert.ErrorContains(t, err, "argument 1 (uint256[]): expected JSON")

	_, err = cliValues(args, []string{"7", "[1] [2]"})
	assert.ErrorContains(t, err, "trailing data")
}

func TestArgLabel(t *testing.T) {
	uint8Type, err := abi.NewType("uint8", "", nil)
	require.NoError(t, err)

	assert.Equal(t, "value (uint8)", argLabel(abi.Argument{Name: "value", Type: uint8Type}, 0))
	assert.Equal(t, "[2] (uint8)", argLabel(abi.Argument{Type: uint8Type}, 2))
}
