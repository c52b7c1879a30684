package codepage

import "sync"

// bmpMap maps BMP code units (0..65535) to packed (tag,code) entries.
// It's a two-level page table:
//   - top[hi] = block index (1..NumBlocks), or 0 meaning "block absent".
//   - blocks is a flat array of NumBlocks*256 entries.
//
// Lookup is O(1) with two array reads. An entry packs tag<<6|code; 0 means
// "not in any page" (valid because code 0 is never assigned to a character).
//
// Memory: 256*2 bytes for top plus 512 bytes per populated block; the full
// repertoire of all 6-bit pages touches only a handful of high-byte blocks.
type bmpMap struct {
	top    [256]uint16 // block index (1-based); 0 means none
	blocks []uint16    // flat: NumBlocks*256
}

func (m *bmpMap) get(bmp uint16) uint16 {
	hi := bmp >> 8
	bi := m.top[hi]
	if bi == 0 {
		return 0
	}
	base := int(bi-1) << 8
	return m.blocks[base+int(bmp&0xFF)]
}

func (m *bmpMap) set(bmp uint16, entry uint16) {
	hi := bmp >> 8
	bi := m.top[hi]
	if bi == 0 {
		m.blocks = append(m.blocks, make([]uint16, 256)...)
		bi = uint16(len(m.blocks) >> 8)
		m.top[hi] = bi
	}
	base := int(bi-1) << 8
	m.blocks[base+int(bmp&0xFF)] = entry
}

var (
	revOnce sync.Once
	rev     *bmpMap
)

// reverse returns the shared rune -> (tag,code) index, building it on first
// use. The index covers the 6-bit pages only; Han is resolved by range check.
func reverse() *bmpMap {
	revOnce.Do(func() {
		m := &bmpMap{}
		entries := 0
		for _, p := range pages {
			if p == nil || p.Wide {
				continue
			}
			for code, r := range p.runes {
				if code == 0 {
					continue
				}
				m.set(uint16(r), uint16(p.Tag)<<CodeBits|uint16(code))
				entries++
			}
		}
		rev = m
		tracer().Infof("code page index built entries=%d blocks=%d", entries, len(m.blocks)>>8)
	})
	return rev
}
