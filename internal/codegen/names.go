package codegen

import (
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// reservedParams cannot be used as parameter names: they are predeclared,
// imported package names, or locals of the generated method bodies.
var reservedParams = map[string]bool{
	// predeclared
	"any": true, "bool": true, "byte": true, "comparable": true, "error": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "rune": true, "string": true, "float32": true, "float64": true,
	"complex64": true, "complex128": true, "true": true, "false": true, "iota": true,
	"nil": true, "new": true, "make": true, "len": true, "cap": true, "append": true,
	"copy": true, "delete": true, "panic": true, "recover": true, "print": true,
	"println": true, "close": true, "min": true, "max": true, "clear": true,
	// imports
	"big": true, "abi": true, "bind": true, "common": true, "types": true, "typedcall": true,
	// locals
	"c": true, "f": true, "opts": true, "auth": true, "backend": true, "out": true,
	"err": true, "address": true, "tx": true, "contract": true,
}

// reservedMethods are methods and fields of the generated contract type.
var reservedMethods = map[string]bool{
	"Address": true, "Contract": true, "Interface": true, "Functions": true,
}

// tupleMethods are implemented by every generated output shape.
var tupleMethods = map[string]bool{"Len": true, "Index": true, "Input": true}

// paramName returns the Go parameter name for the i-th ABI argument.
func paramName(raw string, i int) string {
	name := lowerFirst(abi.ToCamelCase(raw))
	if name == "" || token.IsKeyword(name) || reservedParams[name] || !token.IsIdentifier(name) {
		return "arg" + strconv.Itoa(i)
	}
	return name
}

// methodName returns the exported Go method name for a go-ethereum method key.
func methodName(key string) string {
	name := abi.ToCamelCase(key)
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = "M" + name
	}
	if reservedMethods[name] {
		name += "Fn"
	}
	return name
}

// fieldName returns the exported Go field name of a struct or output field.
func fieldName(raw string, i int) string {
	name := abi.ToCamelCase(raw)
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return "Arg" + strconv.Itoa(i)
	}
	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	// Keep leading acronyms readable: ID → id, URLPath → urlPath.
	runes := []rune(s)
	i := 0
	for i < len(runes) && unicode.IsUpper(runes[i]) {
		i++
	}
	switch {
	case i == 0:
		return s
	case i == 1 || i == len(runes):
		return strings.ToLower(string(runes[:i])) + string(runes[i:])
	default:
		return strings.ToLower(string(runes[:i-1])) + string(runes[i-1:])
	}
}

// outputFieldName keeps output struct fields clear of the Tuple methods.
func outputFieldName(name string) string {
	if tupleMethods[name] {
		return name + "Field"
	}
	return name
}
