package typedcall

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	uint256, err := abi.NewType("uint256", "", nil)
	require.NoError(t, err)
	args := abi.Arguments{{Name: "amount", Type: uint256}, {Type: uint256}}

	r := NewResult(args, []any{big.NewInt(1), big.NewInt(2)})
	require.Equal(t, 2, r.Len())
	assert.Equal(t, big.NewInt(2), r.Index(1))

	v, ok := r.Get("amount")
	require.True(t, ok)
	assert.Equal(t, big.NewInt(1), v)

	_, ok = r.Get("")
	assert.False(t, ok, "unnamed outputs are positional only")
	_, ok = r.Get("missing")
	assert.False(t, ok)

	vals := r.Values()
	vals[0] = nil
	assert.NotNil(t, r.Index(0), "Values must return a copy")

	assert.Panics(t, func() { r.Index(2) })
}

func TestResultImplementsTuple(t *testing.T) {
	var tuple Tuple = NewResult(nil, []any{"a"})
	assert.Equal(t, 1, tuple.Len())
	assert.Equal(t, "a", tuple.Index(0))
}

func TestWidenSlice(t *testing.T) {
	assert.Nil(t, WidenSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, WidenSlice([]int{1, 2}, strconv.Itoa))

	widened := WidenSlice([]*big.Int{big.NewInt(3)}, func(v *big.Int) BigNumberish { return v })
	require.Len(t, widened, 1)
	assert.Equal(t, big.NewInt(3), widened[0])
}
