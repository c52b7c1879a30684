/*
Package sixbit packs short, single-script strings into fixed-width unsigned
integers of 8, 16, 32, 64 or 128 bits.

Each packed value starts with a small tag selecting a "code page": a fixed set
of at most 64 Unicode characters addressed by 6-bit codes (see package
codepage). Characters are placed left to right starting at the most
significant coding bit; unused trailing slots are zero. Code 0 is reserved as
terminator and padding, which makes a strict prefix always compare below any
extension of it. The result is that comparing two packed values of the same
width as plain unsigned integers yields Unicode code-point lexicographic order
of the decoded strings, with shorter strings sorting before longer ones that
share a prefix.

One very large script is handled specially: Chinese, through the Unified
Repertoire and Ordering block, packs at 15 bits per character and therefore
only fits in 32-bit and larger containers.

The number of spare bits left over by 6-bit slots depends on the container:
two tag bits for 8/32/128-bit values, four for 16/64-bit values. Four-tag-bit
containers address additional, "secondary" code pages; strings using those
pages cannot be packed at 8, 32 or 128 bits.

	width | tag bits | coding bits | max chars | max wide chars
	  128 |        2 |         126 |        21 |              8
	   64 |        4 |          60 |        10 |              4
	   32 |        2 |          30 |         5 |              2
	   16 |        4 |          12 |         2 |              0
	    8 |        2 |           6 |         1 |              0

Not every string fits, and not every short string draws all its characters
from one page, so encoding is partial: Encode reports ErrNoCommonPage or
ErrTooLong instead of producing a value that would not round-trip. Mixing
pages within one string is never permitted. Callers must also pre-normalize
text into the exact form a page expects (for example decomposing Korean
syllables to compatibility jamo); this package performs no normalization.

Packed values are immutable scalars and all tables are read-only after first
use, so encoding and decoding are safe for concurrent use without
coordination.

This datatype is a low-level optimization for systems processing many small
strings: values can live in headers, NaN boxes or other small-literal value
types, avoid heap allocation entirely, and several of them fit side by side
in a single wide register for batched comparison.
*/
package sixbit
