package typedcall

import "errors"

var (
	// ErrMethodNotFound is returned when a call names a method the ABI does not declare.
	ErrMethodNotFound = errors.New("method not found in ABI")

	// ErrAmbiguousMethod is returned when a bare name matches several overloads.
	ErrAmbiguousMethod = errors.New("ambiguous method name")

	// ErrArgumentCount is returned when a call passes the wrong number of arguments.
	ErrArgumentCount = errors.New("wrong number of arguments")

	// ErrInvalidValue is returned when a value cannot be coerced to its ABI type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedType is returned for ABI types the runtime cannot coerce.
	ErrUnsupportedType = errors.New("unsupported ABI type")

	// ErrNoBytecode is returned when deploying metadata without bytecode.
	ErrNoBytecode = errors.New("no deployment bytecode")
)
