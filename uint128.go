package sixbit

import (
	"fmt"
	"strings"
)

// Uint128 is a 128-bit unsigned integer carrier for packed values. Go has no
// native 128-bit integer type, so the codec core runs on this and narrows to
// uint8..uint64 for the smaller widths. Values for width W occupy the low W
// bits.
type Uint128 struct {
	Hi, Lo uint64
}

// Shl returns u shifted left by n bits.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Shr returns u shifted right by n bits.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// Or returns the bitwise or of u and v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// Cmp compares u and v as unsigned integers, returning -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// String formats u as 0x-prefixed, zero-padded hex.
func (u Uint128) String() string {
	return fmt.Sprintf("0x%016x%016x", u.Hi, u.Lo)
}

// Hex formats u as 32 hex digits without prefix.
func (u Uint128) Hex() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}

// ParseUint128 parses a hex string (optionally 0x-prefixed) of at most 32
// digits into a Uint128.
func ParseUint128(s string) (Uint128, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" || len(digits) > 32 {
		return Uint128{}, fmt.Errorf("not a 128-bit hex value: %q", s)
	}
	var u Uint128
	for _, c := range digits {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return Uint128{}, fmt.Errorf("not a 128-bit hex value: %q", s)
		}
		u = u.Shl(4).Or(Uint128{Lo: d})
	}
	return u, nil
}
