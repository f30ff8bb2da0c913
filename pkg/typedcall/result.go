package typedcall

import "github.com/ethereum/go-ethereum/accounts/abi"

// Tuple is positional access to a decoded struct or result list. Generated
// output structs implement it next to their named fields.
type Tuple interface {
	Len() int
	Index(i int) any
}

// Result is the decoded return list of one call. Values are the canonical
// go-ethereum Go values, reachable by position and by raw ABI name.
type Result struct {
	values []any
	names  []string
}

// NewResult pairs decoded values with the names of the arguments they came from.
func NewResult(args abi.Arguments, values []any) Result {
	names := make([]string, len(values))
	for i := range values {
		if i < len(args) {
			names[i] = args[i].Name
		}
	}
	return Result{values: values, names: names}
}

// Len returns the number of decoded values.
func (r Result) Len() int { return len(r.values) }

// Index returns the i-th decoded value. It panics when i is out of range.
func (r Result) Index(i int) any { return r.values[i] }

// Get returns the value decoded for the output named name.
func (r Result) Get(name string) (any, bool) {
	if name == "" {
		return nil, false
	}
	for i, n := range r.names {
		if n == name {
			return r.values[i], true
		}
	}
	return nil, false
}

// Values returns a copy of the decoded values in declaration order.
func (r Result) Values() []any {
	return append([]any(nil), r.values...)
}

// WidenSlice maps a decoded slice into its input shape.
func WidenSlice[O, I any](in []O, widen func(O) I) []I {
	if in == nil {
		return nil
	}
	out := make([]I, len(in))
	for i, v := range in {
		out[i] = widen(v)
	}
	return out
}
