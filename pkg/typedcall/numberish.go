package typedcall

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BigNumberish is any value accepted where the ABI expects an integer: Go
// integer kinds, *big.Int, big.Int, decimal or 0x-prefixed hex strings,
// json.Number and integral floats no larger than 2^53-1.
type BigNumberish any

// BytesLike is any value accepted where the ABI expects bytes: a 0x-prefixed
// hex string, []byte, a byte array, or a slice/array of integers in [0,255].
type BytesLike any

// AddressLike is any value accepted where the ABI expects an address: a hex
// string of any case (the 0x prefix is optional), common.Address or [20]byte.
type AddressLike any

const maxSafeInteger = 1<<53 - 1

// ToBigInt converts a BigNumberish into a fresh *big.Int.
func ToBigInt(v BigNumberish) (*big.Int, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil is not a number", ErrInvalidValue)
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrInvalidValue)
		}
		return new(big.Int).Set(x), nil
	case big.Int:
		return new(big.Int).Set(&x), nil
	case string:
		return parseBigInt(x)
	case json.Number:
		return parseBigInt(string(x))
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case bool:
		return nil, fmt.Errorf("%w: bool %v is not a number", ErrInvalidValue, x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), nil
	case reflect.String:
		return parseBigInt(rv.String())
	}
	return nil, fmt.Errorf("%w: %T is not a number", ErrInvalidValue, v)
}

func parseBigInt(s string) (*big.Int, error) {
	body := strings.TrimSpace(s)
	neg := strings.HasPrefix(body, "-")
	body = strings.TrimPrefix(body, "-")

	base := 10
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		base, body = 16, body[2:]
	}
	if body == "" {
		return nil, fmt.Errorf("%w: invalid number %q", ErrInvalidValue, s)
	}
	n, ok := new(big.Int).SetString(body, base)
	if !ok {
		return nil, fmt.Errorf("%w: invalid number %q", ErrInvalidValue, s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

func fromFloat(f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%w: %v is not an integer", ErrInvalidValue, f)
	}
	if math.Abs(f) > maxSafeInteger {
		return nil, fmt.Errorf("%w: %v exceeds the safe integer range, pass a string or *big.Int", ErrInvalidValue, f)
	}
	return big.NewInt(int64(f)), nil
}

// ToBytes converts a BytesLike into a fresh byte slice.
func ToBytes(v BytesLike) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil is not bytes", ErrInvalidValue)
	case string:
		return decodeHex(x)
	case []byte:
		return append([]byte{}, x...), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return decodeHex(rv.String())
	case reflect.Slice, reflect.Array:
		out := make([]byte, rv.Len())
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			for i := range out {
				out[i] = byte(rv.Index(i).Uint())
			}
			return out, nil
		}
		for i := range out {
			n, err := ToBigInt(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("byte %d: %w", i, err)
			}
			if n.Sign() < 0 || n.BitLen() > 8 {
				return nil, fmt.Errorf("%w: byte %d out of range: %s", ErrInvalidValue, i, n)
			}
			out[i] = byte(n.Uint64())
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T is not bytes", ErrInvalidValue, v)
}

func decodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("%w: hex string %q must start with 0x", ErrInvalidValue, s)
	}
	b, err := hexutil.Decode("0x" + s[2:])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidValue, s, err)
	}
	return b, nil
}

// ToAddress converts an AddressLike into a common.Address. Hex strings are
// compared case-insensitively: the checksum of mixed-case input is not checked.
func ToAddress(v AddressLike) (common.Address, error) {
	switch x := v.(type) {
	case common.Address:
		return x, nil
	case *common.Address:
		if x == nil {
			return common.Address{}, fmt.Errorf("%w: nil address", ErrInvalidValue)
		}
		return *x, nil
	case [common.AddressLength]byte:
		return common.Address(x), nil
	case []byte:
		if len(x) != common.AddressLength {
			return common.Address{}, fmt.Errorf("%w: address must be %d bytes, got %d", ErrInvalidValue, common.AddressLength, len(x))
		}
		return common.BytesToAddress(x), nil
	case string:
		if !common.IsHexAddress(x) {
			return common.Address{}, fmt.Errorf("%w: invalid address %q", ErrInvalidValue, x)
		}
		return common.HexToAddress(x), nil
	}
	return common.Address{}, fmt.Errorf("%w: %T is not an address", ErrInvalidValue, v)
}
