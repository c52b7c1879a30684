/*
Package codepage defines the script-specific code pages used by sixbit packed
strings, and the tag values that select them.

A code page is a fixed, ordered set of at most 64 Unicode characters addressed
by 6-bit codes, with code 0 reserved as the string terminator and padding
value. One page (Han) instead covers the whole Unified Repertoire and Ordering
block with arithmetic 15-bit codes.

Tags are assigned in increasing order of each page's initial Unicode block, so
that numeric tag comparison agrees with inter-script block order. The four
pages whose low tag bits are zero are "primary" and remain addressable when
only two tag bits are available.

All tables are immutable after process start; the reverse character index is
built at most once, on first use.
*/
package codepage

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sixbit'
func tracer() tracing.Trace {
	return tracing.Select("sixbit")
}
