package typedcall

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// FormatBytes32String right-pads the UTF-8 bytes of s with zeros into a
// bytes32. At most 31 bytes fit, leaving room for the terminating zero.
func FormatBytes32String(s string) ([32]byte, error) {
	var out [32]byte
	if len(s) > 31 {
		return out, fmt.Errorf("%w: bytes32 string must be less than 32 bytes, got %d", ErrInvalidValue, len(s))
	}
	copy(out[:], s)
	return out, nil
}

// ParseBytes32String is the inverse of FormatBytes32String.
func ParseBytes32String(b [32]byte) (string, error) {
	if b[31] != 0 {
		return "", fmt.Errorf("%w: bytes32 string has no null terminator", ErrInvalidValue)
	}
	s := b[:bytes.IndexByte(b[:], 0)]
	if !utf8.Valid(s) {
		return "", fmt.Errorf("%w: bytes32 string is not valid UTF-8", ErrInvalidValue)
	}
	return string(s), nil
}
