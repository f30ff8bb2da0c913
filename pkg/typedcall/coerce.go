package typedcall

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var bigIntType = reflect.TypeOf((*big.Int)(nil))

// Coerce converts a widened input value into the canonical Go value that
// go-ethereum packs for t: uint8 for uint8, *big.Int for uint256,
// [N]byte for bytesN, the reflect-built struct for tuples, and so on.
func Coerce(t abi.Type, v any) (any, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, err := ToBigInt(v)
		if err != nil {
			return nil, err
		}
		if err := checkRange(t, n); err != nil {
			return nil, err
		}
		return intValue(t, n), nil

	case abi.BoolTy:
		return toBool(v)

	case abi.StringTy:
		if s, ok := v.(string); ok {
			return s, nil
		}
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return rv.String(), nil
		}
		return nil, fmt.Errorf("%w: %T is not a string", ErrInvalidValue, v)

	case abi.AddressTy:
		return ToAddress(v)

	case abi.BytesTy:
		return ToBytes(v)

	case abi.FixedBytesTy, abi.FunctionTy:
		b, err := ToBytes(v)
		if err != nil {
			return nil, err
		}
		rt := t.GetType()
		if len(b) != rt.Len() {
			return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidValue, t, rt.Len(), len(b))
		}
		arr := reflect.New(rt).Elem()
		for i, c := range b {
			arr.Index(i).SetUint(uint64(c))
		}
		return arr.Interface(), nil

	case abi.SliceTy, abi.ArrayTy:
		return coerceList(t, v)

	case abi.TupleTy:
		return coerceTuple(t, v)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

// CoerceArgs coerces vals against args position by position.
func CoerceArgs(args abi.Arguments, vals []any) ([]any, error) {
	if len(vals) != len(args) {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrArgumentCount, len(args), len(vals))
	}
	out := make([]any, len(vals))
	for i, arg := range args {
		cv, err := Coerce(arg.Type, vals[i])
		if err != nil {
			return nil, fmt.Errorf("coercing argument %d (%s): %w", i, arg.Type, err)
		}
		out[i] = cv
	}
	return out, nil
}

func checkRange(t abi.Type, n *big.Int) error {
	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return fmt.Errorf("%w: negative value %s for %s", ErrInvalidValue, n, t)
		}
		if n.BitLen() > t.Size {
			return fmt.Errorf("%w: %s overflows %s", ErrInvalidValue, n, t)
		}
		return nil
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
		return fmt.Errorf("%w: %s overflows %s", ErrInvalidValue, n, t)
	}
	return nil
}

func intValue(t abi.Type, n *big.Int) any {
	rt := t.GetType()
	if rt == bigIntType {
		return n
	}
	if t.T == abi.UintTy {
		return reflect.ValueOf(n.Uint64()).Convert(rt).Interface()
	}
	return reflect.ValueOf(n.Int64()).Convert(rt).Interface()
}

func toBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		switch x {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %v (%T) is not a bool", ErrInvalidValue, v, v)
}

func coerceList(t abi.Type, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %s needs a slice or array, got %T", ErrInvalidValue, t, v)
	}
	n := rv.Len()
	if t.T == abi.ArrayTy && n != t.Size {
		return nil, fmt.Errorf("%w: %s needs %d elements, got %d", ErrInvalidValue, t, t.Size, n)
	}

	var out reflect.Value
	if t.T == abi.SliceTy {
		out = reflect.MakeSlice(t.GetType(), n, n)
	} else {
		out = reflect.New(t.GetType()).Elem()
	}
	for i := 0; i < n; i++ {
		ev, err := Coerce(*t.Elem, rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out.Index(i).Set(reflect.ValueOf(ev))
	}
	return out.Interface(), nil
}

func coerceTuple(t abi.Type, v any) (any, error) {
	values, err := tupleValues(t, v)
	if err != nil {
		return nil, err
	}
	out := reflect.New(t.GetType()).Elem()
	for i, elem := range t.TupleElems {
		ev, err := Coerce(*elem, values[i])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", t.TupleRawNames[i], err)
		}
		out.Field(i).Set(reflect.ValueOf(ev))
	}
	return out.Interface(), nil
}

// tupleValues lines v up with the tuple fields of t. Accepted shapes, in
// order: a Tuple, a map keyed by raw ABI field name, a struct with camel-cased
// field names, and a positional slice or array.
func tupleValues(t abi.Type, v any) ([]any, error) {
	names := t.TupleRawNames
	values := make([]any, len(names))

	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil is not a %s", ErrInvalidValue, t)
	case Tuple:
		if x.Len() != len(names) {
			return nil, fmt.Errorf("%w: %s needs %d fields, got %d", ErrInvalidValue, t, len(names), x.Len())
		}
		for i := range names {
			values[i] = x.Index(i)
		}
		return values, nil
	case map[string]any:
		for i, raw := range names {
			val, ok := x[raw]
			if !ok {
				val, ok = x[abi.ToCamelCase(raw)]
			}
			if !ok {
				return nil, fmt.Errorf("%w: missing field %q for %s", ErrInvalidValue, raw, t)
			}
			values[i] = val
		}
		return values, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %T", ErrInvalidValue, v)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		for i, raw := range names {
			f := rv.FieldByName(abi.ToCamelCase(raw))
			if !f.IsValid() {
				return nil, fmt.Errorf("%w: %s has no field %s", ErrInvalidValue, rv.Type(), abi.ToCamelCase(raw))
			}
			values[i] = f.Interface()
		}
		return values, nil
	case reflect.Slice, reflect.Array:
		if rv.Len() != len(names) {
			return nil, fmt.Errorf("%w: %s needs %d fields, got %d", ErrInvalidValue, t, len(names), rv.Len())
		}
		for i := range names {
			values[i] = rv.Index(i).Interface()
		}
		return values, nil
	}
	return nil, fmt.Errorf("%w: %T cannot be used as %s", ErrInvalidValue, v, t)
}
