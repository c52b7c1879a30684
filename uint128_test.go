package sixbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint128Shifts(t *testing.T) {
	u := Uint128{Lo: 1}
	assert.Equal(t, Uint128{Lo: 2}, u.Shl(1))
	assert.Equal(t, Uint128{Hi: 1}, u.Shl(64))
	assert.Equal(t, Uint128{Hi: 1 << 62}, u.Shl(126))
	assert.Equal(t, Uint128{}, u.Shl(128))

	v := Uint128{Hi: 0x8000000000000000}
	assert.Equal(t, Uint128{Lo: 1}, v.Shr(127))
	assert.Equal(t, Uint128{Lo: 0x8000000000000000}, v.Shr(64))
	assert.Equal(t, v, v.Shr(0))
	assert.Equal(t, Uint128{}, v.Shr(128))

	// Shifts crossing the 64-bit boundary carry bits between halves.
	w := Uint128{Hi: 0x1, Lo: 0x8000000000000001}
	assert.Equal(t, Uint128{Hi: 0x3, Lo: 0x2}, w.Shl(1))
	assert.Equal(t, Uint128{Lo: 0xC000000000000000}, w.Shr(1).Shr(62).Shl(62))
}

func TestUint128Cmp(t *testing.T) {
	assert.Equal(t, 0, Uint128{Hi: 1, Lo: 2}.Cmp(Uint128{Hi: 1, Lo: 2}))
	assert.Equal(t, -1, Uint128{Lo: 5}.Cmp(Uint128{Hi: 1}))
	assert.Equal(t, 1, Uint128{Hi: 1}.Cmp(Uint128{Lo: ^uint64(0)}))
	assert.Equal(t, -1, Uint128{Hi: 1, Lo: 1}.Cmp(Uint128{Hi: 1, Lo: 2}))
	assert.True(t, Uint128{}.IsZero())
	assert.False(t, Uint128{Lo: 1}.IsZero())
}

func TestUint128Hex(t *testing.T) {
	u := Uint128{Hi: 0xC017000000000000, Lo: 0x1}
	assert.Equal(t, "0xc0170000000000000000000000000001", u.String())
	assert.Equal(t, "c0170000000000000000000000000001", u.Hex())
}

func TestParseUint128(t *testing.T) {
	u, err := ParseUint128("0x299adb70")
	require.NoError(t, err)
	assert.Equal(t, Uint128{Lo: 0x299adb70}, u)

	u, err = ParseUint128("C0170000000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, Uint128{Hi: 0xC017000000000000}, u)

	u, err = ParseUint128("0")
	require.NoError(t, err)
	assert.True(t, u.IsZero())

	for _, bad := range []string{"", "0x", "xyz", "0x123456789012345678901234567890123"} {
		_, err := ParseUint128(bad)
		assert.Error(t, err, "%q", bad)
	}
}

func TestParseFormatsRoundTrip(t *testing.T) {
	v, err := Encode("PRINTER IS ON FIRE!!", 128)
	require.NoError(t, err)
	back, err := ParseUint128(v.String())
	require.NoError(t, err)
	assert.Equal(t, v, back)
}
