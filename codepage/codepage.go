package codepage

import "slices"

// Tag selects the code page a packed string's codes are interpreted under.
// Tags are 4 bits wide; containers with only 2 tag bits address the subset of
// tags whose low bit pair is zero (the primary pages).
type Tag uint8

const (
	TagLatinUpper Tag = 0b0000 // primary
	TagLatinLower Tag = 0b0001
	TagGreek      Tag = 0b0011
	TagCyrillic   Tag = 0b0100 // primary
	TagHebrew     Tag = 0b0110
	TagArabic     Tag = 0b1000 // primary
	TagDevanagari Tag = 0b1010
	TagHangulJamo Tag = 0b1011
	TagHan        Tag = 0b1100 // primary, wide
	TagKana       Tag = 0b1111
)

// NumTags is the size of the 4-bit tag space, including reserved slots.
const NumTags = 16

// Han block bounds and code arithmetic. Wide codes are 15 bits per character;
// code 0 stays reserved as terminator, so the block is offset by one.
const (
	HanFirst     = '一'
	HanLast      = '鿿'
	hanOffset    = HanFirst - 1
	WideCodeBits = 15
	CodeBits     = 6
)

// Page is one code page: a tag plus an ordered character repertoire.
// For 6-bit pages runes[i] is the character for code i, runes[0] == 0, and
// entries 1..len-1 are strictly increasing by code point. The wide Han page
// has no stored repertoire; its codes are computed from the code point.
type Page struct {
	Tag   Tag
	Name  string
	Wide  bool
	runes []rune
}

var (
	latinUpper = &Page{Tag: TagLatinUpper, Name: "latin-upper", runes: latinUpperRunes}
	latinLower = &Page{Tag: TagLatinLower, Name: "latin-lower", runes: latinLowerRunes}
	greek      = &Page{Tag: TagGreek, Name: "greek", runes: greekRunes}
	cyrillic   = &Page{Tag: TagCyrillic, Name: "cyrillic", runes: cyrillicRunes}
	hebrew     = &Page{Tag: TagHebrew, Name: "hebrew", runes: hebrewRunes}
	arabic     = &Page{Tag: TagArabic, Name: "arabic", runes: arabicRunes}
	devanagari = &Page{Tag: TagDevanagari, Name: "devanagari", runes: devanagariRunes}
	hangulJamo = &Page{Tag: TagHangulJamo, Name: "hangul-jamo", runes: jamoRunes}
	han        = &Page{Tag: TagHan, Name: "han", Wide: true}
	kana       = &Page{Tag: TagKana, Name: "halfwidth-kana", runes: kanaRunes}
)

// pages is the versioned tag assignment table. Nil slots are reserved.
var pages = [NumTags]*Page{
	TagLatinUpper: latinUpper,
	TagLatinLower: latinLower,
	TagGreek:      greek,
	TagCyrillic:   cyrillic,
	TagHebrew:     hebrew,
	TagArabic:     arabic,
	TagDevanagari: devanagari,
	TagHangulJamo: hangulJamo,
	TagHan:        han,
	TagKana:       kana,
}

// ForTag resolves a tag extracted from a packed value. tagBits is the number
// of tag bits the container carries (2 or 4); a 2-bit tag addresses the
// primary slot with the same high bit pair. Returns false for reserved slots.
func ForTag(tag Tag, tagBits int) (*Page, bool) {
	if tagBits == 2 {
		tag <<= 2
	}
	if tag >= NumTags {
		return nil, false
	}
	p := pages[tag]
	return p, p != nil
}

// Of returns the page containing r together with r's code in that page.
// Pages are mutually exclusive, so the answer is unique.
func Of(r rune) (*Page, uint16, bool) {
	if r >= HanFirst && r <= HanLast {
		return han, uint16(r - hanOffset), true
	}
	if r <= 0 || r > 0xFFFF {
		return nil, 0, false
	}
	entry := reverse().get(uint16(r))
	if entry == 0 {
		return nil, 0, false
	}
	return pages[entry>>CodeBits], entry & (1<<CodeBits - 1), true
}

// All yields the assigned pages in ascending tag order.
func All() []*Page {
	out := make([]*Page, 0, NumTags)
	for _, p := range pages {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Primary reports whether the page remains addressable with 2 tag bits.
func (p *Page) Primary() bool {
	return p.Tag&0b11 == 0
}

// Size returns the number of assigned codes, including the terminator code 0.
func (p *Page) Size() int {
	if p.Wide {
		return int(HanLast-HanFirst) + 2
	}
	return len(p.runes)
}

// CodeBits returns the per-character code width for this page.
func (p *Page) CodeBits() int {
	if p.Wide {
		return WideCodeBits
	}
	return CodeBits
}

// Code returns the in-page code for r, or false if r is not in the page.
func (p *Page) Code(r rune) (uint16, bool) {
	if p.Wide {
		if r < HanFirst || r > HanLast {
			return 0, false
		}
		return uint16(r - hanOffset), true
	}
	i, found := slices.BinarySearch(p.runes, r)
	if !found || i == 0 {
		return 0, false
	}
	return uint16(i), true
}

// Rune returns the character for an in-page code. Code 0 is the terminator,
// not a character; it and out-of-range codes return false.
func (p *Page) Rune(code uint16) (rune, bool) {
	if code == 0 {
		return 0, false
	}
	if p.Wide {
		if int(code) >= p.Size() {
			return 0, false
		}
		return hanOffset + rune(code), true
	}
	if int(code) >= len(p.runes) {
		return 0, false
	}
	return p.runes[code], true
}
