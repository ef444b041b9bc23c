package timens

import "errors"

var (
	// ErrMalformedInput is returned by the string and wire parsers on
	// syntactically invalid input. Use [errors.Is] to test for it.
	ErrMalformedInput = errors.New("timens: malformed input")

	// ErrPlatformRange is returned by the narrow-integer conversions
	// when the value does not fit the platform's int.
	ErrPlatformRange = errors.New("timens: out of range for platform int")
)
