package sixbit

import "errors"

// All failures are detected synchronously and reported to the immediate
// caller; encoding is all-or-nothing per call. Errors carry detail text and
// wrap one of these sentinels for errors.Is matching.
var (
	// ErrNoCommonPage means no single code page valid at the target width
	// contains every character of the input.
	ErrNoCommonPage = errors.New("sixbit: no single code page covers the string")

	// ErrTooLong means the input exceeds the selected page's character
	// capacity at the target width. This includes wide-script strings at
	// widths whose wide capacity is zero.
	ErrTooLong = errors.New("sixbit: string exceeds packed capacity")

	// ErrUnknownTag means the tag bits of a value being decoded name a
	// reserved code page slot at that width.
	ErrUnknownTag = errors.New("sixbit: reserved code page tag")

	// ErrUnsupportedWidth means a container width outside
	// {8, 16, 32, 64, 128} was requested.
	ErrUnsupportedWidth = errors.New("sixbit: unsupported container width")
)
