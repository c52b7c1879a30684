package sixbit

import (
	"fmt"
	"iter"
	"strings"

	"github.com/graydon/sixbit/codepage"
)

// Decode unpacks the low width bits of v into a lazy character sequence.
//
// The width must match the one the value was produced at; it is not
// recoverable from the value itself. The only failure is ErrUnknownTag, when
// the tag bits name a reserved page slot at this width (and
// ErrUnsupportedWidth for an unknown width). Everything else decodes: the
// sequence ends at the first zero or out-of-range code, or when the coding
// bits are exhausted, so adversarial bit patterns yield a short (possibly
// empty) sequence rather than a panic.
//
// The returned sequence is a fresh, restartable computation over the packed
// bits: ranging over it twice yields the same characters.
func Decode(v Uint128, width int) (iter.Seq[rune], error) {
	prof, err := ProfileFor(width)
	if err != nil {
		return nil, err
	}
	mask := uint64(1)<<uint(prof.TagBits) - 1
	tag := codepage.Tag(v.Shr(uint(prof.Width-prof.TagBits)).Lo & mask)
	page, ok := codepage.ForTag(tag, prof.TagBits)
	if !ok {
		return nil, fmt.Errorf("%w: tag %d at %d bits", ErrUnknownTag, tag, prof.Width)
	}
	codeBits := page.CodeBits()
	capacity := prof.MaxLength(page.Wide)
	// Left-align the coding bits at the top of the 128-bit cursor; each slot
	// is then the topmost codeBits bits.
	aligned := v.Shl(uint(128 - prof.Width + prof.TagBits))
	return func(yield func(rune) bool) {
		cur := aligned
		for range capacity {
			code := uint16(cur.Shr(uint(128 - codeBits)).Lo)
			r, ok := page.Rune(code)
			if !ok {
				return
			}
			if !yield(r) {
				return
			}
			cur = cur.Shl(uint(codeBits))
		}
	}, nil
}

// DecodeString unpacks v at the given width and collects the characters into
// a string.
func DecodeString(v Uint128, width int) (string, error) {
	seq, err := Decode(v, width)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for r := range seq {
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Decode8 unpacks a uint8 packed value.
func Decode8(v uint8) (iter.Seq[rune], error) {
	return Decode(Uint128{Lo: uint64(v)}, 8)
}

// Decode16 unpacks a uint16 packed value.
func Decode16(v uint16) (iter.Seq[rune], error) {
	return Decode(Uint128{Lo: uint64(v)}, 16)
}

// Decode32 unpacks a uint32 packed value.
func Decode32(v uint32) (iter.Seq[rune], error) {
	return Decode(Uint128{Lo: uint64(v)}, 32)
}

// Decode64 unpacks a uint64 packed value.
func Decode64(v uint64) (iter.Seq[rune], error) {
	return Decode(Uint128{Lo: v}, 64)
}

// Decode128 unpacks a 128-bit packed value.
func Decode128(v Uint128) (iter.Seq[rune], error) {
	return Decode(v, 128)
}
