package sixbit

import (
	"encoding/binary"
	"fmt"
)

// Bytes serializes the low width bits of v big-endian. Byte-wise comparison
// (bytes.Compare, memcmp) of two serialized values of the same width orders
// them exactly like the underlying integers, and therefore like the decoded
// strings.
func Bytes(v Uint128, width int) ([]byte, error) {
	switch width {
	case 8:
		return []byte{uint8(v.Lo)}, nil
	case 16:
		return binary.BigEndian.AppendUint16(nil, uint16(v.Lo)), nil
	case 32:
		return binary.BigEndian.AppendUint32(nil, uint32(v.Lo)), nil
	case 64:
		return binary.BigEndian.AppendUint64(nil, v.Lo), nil
	case 128:
		b := binary.BigEndian.AppendUint64(nil, v.Hi)
		return binary.BigEndian.AppendUint64(b, v.Lo), nil
	}
	return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, width)
}

// FromBytes reads a big-endian packed value; the width is implied by len(b).
func FromBytes(b []byte) (Uint128, int, error) {
	switch len(b) {
	case 1:
		return Uint128{Lo: uint64(b[0])}, 8, nil
	case 2:
		return Uint128{Lo: uint64(binary.BigEndian.Uint16(b))}, 16, nil
	case 4:
		return Uint128{Lo: uint64(binary.BigEndian.Uint32(b))}, 32, nil
	case 8:
		return Uint128{Lo: binary.BigEndian.Uint64(b)}, 64, nil
	case 16:
		return Uint128{Hi: binary.BigEndian.Uint64(b[:8]), Lo: binary.BigEndian.Uint64(b[8:])}, 128, nil
	}
	return Uint128{}, 0, fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, len(b)*8)
}
