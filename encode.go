package sixbit

import (
	"fmt"

	"github.com/graydon/sixbit/codepage"
)

// Encode packs s into the low width bits of a Uint128.
//
// The empty string encodes to the all-zero value at every width. Otherwise
// the code page is the one owning the first character (pages are mutually
// exclusive); every further character must come from the same page, and the
// page must be addressable with the width's tag bits, or encoding fails with
// ErrNoCommonPage. Strings longer than the page's capacity at this width fail
// with ErrTooLong. Widths outside {8,16,32,64,128} fail with
// ErrUnsupportedWidth.
func Encode(s string, width int) (Uint128, error) {
	prof, err := ProfileFor(width)
	if err != nil {
		return Uint128{}, err
	}
	return encode(s, prof)
}

func encode(s string, prof Profile) (Uint128, error) {
	if s == "" {
		// Tag 0, all coding slots zero.
		return Uint128{}, nil
	}
	var page *codepage.Page
	var out Uint128
	var capacity, codeBits, n int
	for _, r := range s {
		var code uint16
		if page == nil {
			p, c, ok := codepage.Of(r)
			if !ok {
				return Uint128{}, fmt.Errorf("%w: no page contains %q", ErrNoCommonPage, r)
			}
			if prof.TagBits == 2 && !p.Primary() {
				return Uint128{}, fmt.Errorf("%w: page %s is not addressable at %d bits",
					ErrNoCommonPage, p.Name, prof.Width)
			}
			page = p
			code = c
			codeBits = p.CodeBits()
			capacity = prof.MaxLength(p.Wide)
			tag := p.Tag
			if prof.TagBits == 2 {
				tag >>= 2
			}
			out = Uint128{Lo: uint64(tag)}
		} else {
			c, ok := page.Code(r)
			if !ok {
				return Uint128{}, fmt.Errorf("%w: %q is not in page %s", ErrNoCommonPage, r, page.Name)
			}
			code = c
		}
		// Page membership settles before length does: a string that both
		// mixes pages and overruns reports the page mismatch.
		if n == capacity {
			return Uint128{}, fmt.Errorf("%w: page %s holds at most %d characters at %d bits",
				ErrTooLong, page.Name, capacity, prof.Width)
		}
		out = out.Shl(uint(codeBits)).Or(Uint128{Lo: uint64(code)})
		n++
	}
	// Zero-fill unused trailing slots, then the slack bits below the last
	// slot (only the 128-bit wide layout has any).
	out = out.Shl(uint(codeBits * (capacity - n)))
	out = out.Shl(uint(prof.CodingBits - codeBits*capacity))
	return out, nil
}

// Encode8 packs s into a uint8.
func Encode8(s string) (uint8, error) {
	v, err := Encode(s, 8)
	return uint8(v.Lo), err
}

// Encode16 packs s into a uint16.
func Encode16(s string) (uint16, error) {
	v, err := Encode(s, 16)
	return uint16(v.Lo), err
}

// Encode32 packs s into a uint32.
func Encode32(s string) (uint32, error) {
	v, err := Encode(s, 32)
	return uint32(v.Lo), err
}

// Encode64 packs s into a uint64.
func Encode64(s string) (uint64, error) {
	v, err := Encode(s, 64)
	return v.Lo, err
}

// Encode128 packs s into a Uint128.
func Encode128(s string) (Uint128, error) {
	return Encode(s, 128)
}
